package project

import (
	"testing"

	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestNewPrePopulatesExternalLabels(t *testing.T) {
	s := New(0x1000, []byte{0xEA, 0xEA}, options.Default())

	all := s.Labels.All()
	assert.True(t, len(all) > 0)
	for _, l := range all {
		assert.Equal(t, label.External, l.Kind)
	}
}

func TestLengthEndContains(t *testing.T) {
	s := New(0x1000, []byte{0xEA, 0xEA, 0xEA}, options.Default())

	assert.Equal(t, 3, s.Length())
	assert.Equal(t, 0x1003, s.End())
	assert.True(t, s.Contains(0x1000))
	assert.True(t, s.Contains(0x1002))
	assert.False(t, s.Contains(0x1003))
	assert.False(t, s.Contains(0x0FFF))
}

func TestReadByteAndReadWord(t *testing.T) {
	s := New(0x1000, []byte{0x4C, 0x03, 0x10}, options.Default())

	assert.Equal(t, byte(0x4C), s.ReadByte(0x1000))
	assert.Equal(t, uint16(0x1003), s.ReadWord(0x1001))
}

func TestCloneDeepCopiesMutableFieldsAndResetsXrefs(t *testing.T) {
	s := New(0x1000, []byte{0xEA}, options.Default())
	_, _, err := s.Labels.Set(0x1000, 0, "entry", label.User)
	assert.NoError(t, err)
	s.Xrefs.Add(0x1000, 0x2000, 0)
	s.Version = 7

	clone := s.Clone()

	assert.Equal(t, s.Origin, clone.Origin)
	assert.Equal(t, uint64(7), clone.Version)

	// Bytes is shared by identity (immutable), not deep-copied.
	assert.Equal(t, len(s.Bytes), len(clone.Bytes))
	assert.True(t, &s.Bytes[0] == &clone.Bytes[0])

	// Xrefs is rebuilt fresh, never carried over.
	assert.Equal(t, 0, clone.Xrefs.Len())

	// Mutating the clone's labels must not affect the original.
	_, _, err = clone.Labels.Set(0x1000, 0, "renamed", label.User)
	assert.NoError(t, err)
	original, ok := s.Labels.GetByName("entry")
	assert.True(t, ok)
	assert.Equal(t, uint16(0x1000), original.Address)
}
