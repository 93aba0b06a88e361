// Package search finds byte and text patterns in a project's raw binary
// image, returning match addresses rather than line indices so callers can
// resolve results through whichever view (pipeline lines, hex dump) they're
// showing.
package search

import (
	"strings"

	"github.com/retroenv/c64disasm/internal/project"
)

// Encoding selects how bytes are decoded into characters for a text search.
type Encoding uint8

const (
	// Raw compares bytes directly against the query's ASCII bytes.
	Raw Encoding = iota
	// Petscii decodes bytes as PETSCII before comparing.
	Petscii
	// Screencode decodes bytes as C64 screen codes before comparing.
	Screencode
)

// Bytes returns every address where pattern occurs verbatim in s's image.
// An empty pattern matches nowhere.
func Bytes(s *project.State, pattern []byte) []uint16 {
	if len(pattern) == 0 || len(pattern) > s.Length() {
		return nil
	}
	var hits []uint16
	last := s.Length() - len(pattern)
	for i := 0; i <= last; i++ {
		if matchesAt(s.Bytes, i, pattern) {
			hits = append(hits, s.Origin+uint16(i))
		}
	}
	return hits
}

func matchesAt(data []byte, at int, pattern []byte) bool {
	for i, b := range pattern {
		if data[at+i] != b {
			return false
		}
	}
	return true
}

// Text decodes the whole image under enc into uppercase ASCII (unprintable
// bytes become a placeholder that matches nothing) and returns every address
// where query occurs, case-insensitively.
func Text(s *project.State, query string, enc Encoding) []uint16 {
	if query == "" {
		return nil
	}
	query = strings.ToUpper(query)
	decoded := decodeUpper(s.Bytes, enc)

	var hits []uint16
	last := len(decoded) - len(query)
	for i := 0; i <= last; i++ {
		if decoded[i:i+len(query)] == query {
			hits = append(hits, s.Origin+uint16(i))
		}
	}
	return hits
}

// decodeUpper renders data as an uppercase-ASCII string under enc, one rune
// per byte so addresses stay aligned with byte offsets.
func decodeUpper(data []byte, enc Encoding) string {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = decodeByteUpper(b, enc)
	}
	return string(out)
}

// decodeByteUpper maps a single byte to its uppercase display character, or
// '\x00' (which cannot appear in a search query) if it has none. PETSCII and
// screencode share the same alphanumeric layout once screen codes are
// remapped into PETSCII's, following the C64 character ROM's two banks.
func decodeByteUpper(b byte, enc Encoding) byte {
	switch enc {
	case Screencode:
		b = screencodeToPetscii(b)
		fallthrough
	case Petscii:
		switch {
		case b >= 0x41 && b <= 0x5A: // unshifted PETSCII letters
			return b
		case b >= 0xC1 && b <= 0xDA: // shifted-bank uppercase letters
			return b - 0x80
		case b >= 0x30 && b <= 0x39, b == 0x20:
			return b
		default:
			return 0
		}
	default: // Raw
		if b >= 'a' && b <= 'z' {
			return b - 0x20
		}
		if (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == ' ' {
			return b
		}
		return 0
	}
}

// screencodeToPetscii maps a C64 screen code onto the PETSCII code with the
// same glyph, covering the unshifted letter/digit range search cares about.
func screencodeToPetscii(b byte) byte {
	switch {
	case b <= 0x1F:
		return b + 0x40
	case b >= 0x20 && b <= 0x3F:
		return b
	default:
		return b
	}
}
