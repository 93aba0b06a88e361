// Package platform provides the External label tables for well-known
// addresses (KERNAL routines, hardware registers) per target system.
// Coverage is representative rather than exhaustive - expanding a table is
// mechanical data entry, not core-engine logic, so it is intentionally out
// of this package's test surface.
package platform

import "github.com/retroenv/c64disasm/internal/options"

// Entry is one well-known address/name pair.
type Entry struct {
	Address uint16
	Name    string
}

// Labels returns the External label table for the given platform.
func Labels(p options.Platform) []Entry {
	switch p {
	case options.C64:
		return c64Labels
	case options.C128:
		return c128Labels
	case options.VIC20:
		return vic20Labels
	case options.Plus4:
		return plus4Labels
	case options.PET:
		return petLabels
	case options.Drive1541:
		return drive1541Labels
	default:
		return nil
	}
}
