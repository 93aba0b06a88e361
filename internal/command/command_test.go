package command

import (
	"hash/crc32"
	"testing"

	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/errs"
	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestManager(t *testing.T, data []byte) *Manager {
	t.Helper()
	logger := log.NewTestLogger(t)
	s := project.New(0x1000, data, options.Default())
	return New(logger, s)
}

func TestSetLabelAndUndo(t *testing.T) {
	m := newTestManager(t, []byte{0xEA, 0xEA})

	err := m.SetLabel(0x1000, 0, "entry")
	assert.NoError(t, err)
	l, ok := m.State().Labels.GetPrimary(0x1000)
	assert.True(t, ok)
	assert.Equal(t, "entry", l.Name)

	err = m.Undo()
	assert.NoError(t, err)
	_, ok = m.State().Labels.GetPrimary(0x1000)
	assert.False(t, ok)

	err = m.Redo()
	assert.NoError(t, err)
	l, ok = m.State().Labels.GetPrimary(0x1000)
	assert.True(t, ok)
	assert.Equal(t, "entry", l.Name)
}

func TestSetLabelCollisionRejected(t *testing.T) {
	m := newTestManager(t, []byte{0xEA, 0xEA})

	err := m.SetLabel(0x1000, 0, "entry")
	assert.NoError(t, err)
	err = m.SetLabel(0x1001, 0, "entry")
	assert.Error(t, err)

	// Rejected commands must not touch the undo stack.
	assert.Len(t, m.undo, 1)
	assert.False(t, m.CanRedo())
}

func TestUndoEmptyStackReturnsNotApplicable(t *testing.T) {
	m := newTestManager(t, []byte{0xEA})
	err := m.Undo()
	assert.Error(t, err)
	assert.True(t, errs.NotApplicable.Is(err))
}

func TestBatchRollsBackOnError(t *testing.T) {
	m := newTestManager(t, []byte{0xEA, 0xEA})
	err := m.SetLabel(0x1000, 0, "entry")
	assert.NoError(t, err)

	err = m.Batch("twoLabels", func(mgr *Manager) error {
		if err := mgr.SetLabel(0x1001, 0, "second"); err != nil {
			return err
		}
		// This collides with "entry" and should force a full rollback of
		// the batch, including the "second" label set just above.
		return mgr.SetLabel(0x1001, 1, "entry")
	})
	assert.Error(t, err)

	_, ok := m.State().Labels.GetByName("second")
	assert.False(t, ok)
	l, ok := m.State().Labels.GetPrimary(0x1000)
	assert.True(t, ok)
	assert.Equal(t, "entry", l.Name)
}

func TestSetBlockTypeTriggersAnalyzer(t *testing.T) {
	data := []byte{0x4C, 0x03, 0x10, 0xEA} // JMP $1003 ; NOP
	m := newTestManager(t, data)

	err := m.SetBlockType(0x1000, len(data), block.Code)
	assert.NoError(t, err)

	refs := m.State().Xrefs.Of(0x1003)
	assert.Len(t, refs, 1)
}

func TestToggleBookmarkUndo(t *testing.T) {
	m := newTestManager(t, []byte{0xEA})

	m.ToggleBookmark(0x1000)
	assert.True(t, m.State().Bookmarks.Has(0x1000))

	err := m.Undo()
	assert.NoError(t, err)
	assert.False(t, m.State().Bookmarks.Has(0x1000))
}

// TestUndoRedoNeverMutatesUnderlyingBytes checks the raw image's identity
// via a checksum across a command/undo/redo cycle, rather than comparing the
// slice contents directly: State.Clone shares Bytes by reference precisely
// because it must never be mutated, and a checksum mismatch would reveal any
// path that broke that invariant.
func TestUndoRedoNeverMutatesUnderlyingBytes(t *testing.T) {
	data := []byte{0x4C, 0x03, 0x10, 0xEA}
	m := newTestManager(t, data)
	want := crc32.ChecksumIEEE(m.State().Bytes)

	err := m.SetBlockType(0x1000, len(data), block.Code)
	assert.NoError(t, err)
	assert.Equal(t, want, crc32.ChecksumIEEE(m.State().Bytes))

	err = m.SetLabel(0x1003, 0, "target")
	assert.NoError(t, err)
	assert.Equal(t, want, crc32.ChecksumIEEE(m.State().Bytes))

	err = m.Undo()
	assert.NoError(t, err)
	assert.Equal(t, want, crc32.ChecksumIEEE(m.State().Bytes))

	err = m.Redo()
	assert.NoError(t, err)
	assert.Equal(t, want, crc32.ChecksumIEEE(m.State().Bytes))
}
