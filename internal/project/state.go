// Package project owns the persistent state of one disassembly session: the
// immutable raw image, the block-type map, labels, comments, operand-format
// overrides, bookmarks, settings and the cross-reference index the analyzer
// produces. The command layer (internal/command) is
// the only legitimate mutator; every other consumer must treat a *State as
// read-only between commands.
package project

import (
	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/comment"
	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/c64disasm/internal/platform"
	"github.com/retroenv/c64disasm/internal/xref"
)

// State is the full persistent state of a loaded binary.
type State struct {
	Origin uint16
	Bytes  []byte // immutable for the project's lifetime

	Blocks    *block.Map
	Labels    *label.Table
	Comments  *comment.Table
	Formats   *operandFormats
	Bookmarks *bookmarks
	Xrefs     *xref.Index

	Settings options.Settings

	// Version increments on every committed command, undo and redo, used by
	// the pipeline to key its line cache.
	Version uint64
}

// New creates project state for a freshly loaded binary, pre-populating the
// External label table for the configured platform.
func New(origin uint16, data []byte, settings options.Settings) *State {
	s := &State{
		Origin:    origin,
		Bytes:     append([]byte(nil), data...),
		Blocks:    block.New(origin, len(data)),
		Labels:    label.New(),
		Comments:  comment.New(),
		Formats:   newOperandFormats(),
		Bookmarks: newBookmarks(),
		Xrefs:     xref.New(),
		Settings:  settings,
	}
	for _, e := range platform.Labels(settings.Platform) {
		_, _, _ = s.Labels.Set(e.Address, 0, e.Name, label.External)
	}
	return s
}

// Length returns the number of bytes in the raw image.
func (s *State) Length() int {
	return len(s.Bytes)
}

// End returns the address one past the last byte of the binary.
func (s *State) End() int {
	return int(s.Origin) + s.Length()
}

// Contains reports whether address a is inside [Origin, Origin+Length).
func (s *State) Contains(a uint16) bool {
	return int(a) >= int(s.Origin) && int(a) < s.End()
}

// ReadByte returns the byte at absolute address a.
func (s *State) ReadByte(a uint16) byte {
	return s.Bytes[int(a)-int(s.Origin)]
}

// ReadWord returns the little-endian 16-bit value at address a.
func (s *State) ReadWord(a uint16) uint16 {
	lo := uint16(s.ReadByte(a))
	hi := uint16(s.ReadByte(a + 1))
	return hi<<8 | lo
}

// Clone returns a deep copy of the state, used by the command layer as the
// whole-state undo snapshot taken before every command and batch. The
// copy's Xrefs is empty.
func (s *State) Clone() *State {
	return &State{
		Origin:    s.Origin,
		Bytes:     s.Bytes, // immutable, safe to share
		Blocks:    s.Blocks.Clone(),
		Labels:    s.Labels.Clone(),
		Comments:  s.Comments.Clone(),
		Formats:   s.Formats.Clone(),
		Bookmarks: s.Bookmarks.Clone(),
		Xrefs:     xref.New(), // rebuilt by the analyzer, never hand-restored
		Settings:  s.Settings,
		Version:   s.Version,
	}
}
