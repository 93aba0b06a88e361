package platform

import (
	"testing"

	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLabelsDispatchesPerPlatform(t *testing.T) {
	cases := []options.Platform{
		options.C64, options.C128, options.VIC20, options.Plus4, options.PET, options.Drive1541,
	}
	for _, p := range cases {
		entries := Labels(p)
		assert.True(t, len(entries) > 0)
	}
}

func TestLabelsUnknownPlatformReturnsNil(t *testing.T) {
	entries := Labels(options.Platform("bogus"))
	assert.Len(t, entries, 0)
}

func TestC64LabelsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range c64Labels {
		assert.False(t, seen[e.Name])
		seen[e.Name] = true
	}
}
