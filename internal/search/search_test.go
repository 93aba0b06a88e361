package search

import (
	"testing"

	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/retrogolib/assert"
)

func TestBytesFindsAllOccurrences(t *testing.T) {
	data := []byte{0xA9, 0x01, 0xA9, 0x01, 0x60}
	s := project.New(0x1000, data, options.Default())

	hits := Bytes(s, []byte{0xA9, 0x01})

	assert.Len(t, hits, 2)
	assert.Equal(t, uint16(0x1000), hits[0])
	assert.Equal(t, uint16(0x1002), hits[1])
}

func TestBytesEmptyPatternMatchesNothing(t *testing.T) {
	data := []byte{0xA9, 0x01}
	s := project.New(0x1000, data, options.Default())
	assert.Len(t, Bytes(s, nil), 0)
}

func TestTextRawCaseInsensitive(t *testing.T) {
	data := []byte("HeLLo world")
	s := project.New(0x1000, data, options.Default())

	hits := Text(s, "hello", Raw)

	assert.Len(t, hits, 1)
	assert.Equal(t, uint16(0x1000), hits[0])
}

func TestTextPetsciiLetters(t *testing.T) {
	data := []byte{0x48, 0x49} // PETSCII unshifted 'H','I'
	s := project.New(0x1000, data, options.Default())

	hits := Text(s, "HI", Petscii)

	assert.Len(t, hits, 1)
	assert.Equal(t, uint16(0x1000), hits[0])
}
