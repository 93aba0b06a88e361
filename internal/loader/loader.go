// Package loader turns a raw file image into the (origin, bytes) tuple
// project.New needs. It only understands the two formats the core engine's
// test surface requires; disk-image and cartridge containers are left to a
// future Loader implementation.
package loader

import "github.com/retroenv/c64disasm/internal/errs"

// Format identifies which convention a Load call should apply to interpret
// the origin address.
type Format uint8

const (
	// PRG expects a two-byte little-endian load address prefix, the C64
	// .prg convention.
	PRG Format = iota
	// Raw treats the whole file as data starting at an explicitly given
	// origin.
	Raw
)

// Load extracts the origin address and disassemblable bytes from data per
// format. rawOrigin is only consulted for Raw; PRG always derives its origin
// from the first two bytes.
func Load(data []byte, format Format, rawOrigin uint16) (origin uint16, bytes []byte, err error) {
	switch format {
	case PRG:
		if len(data) < 2 {
			return 0, nil, errs.New(errs.KindInvalidRange, "prg file must have at least a 2-byte load address")
		}
		origin = uint16(data[0]) | uint16(data[1])<<8
		return origin, data[2:], nil
	case Raw:
		if len(data) == 0 {
			return 0, nil, errs.New(errs.KindInvalidRange, "raw file must not be empty")
		}
		return rawOrigin, data, nil
	default:
		return 0, nil, errs.New(errs.KindInvalidRange, "unknown loader format")
	}
}

// Save is Load's inverse: it re-attaches whatever origin framing format
// requires so the exact bytes Load handed to the analyzer can be written
// back out as a loadable file. It never touches the disassembly itself, so
// it stays on the right side of the reassembly boundary - this is image
// packaging, not code generation.
func Save(origin uint16, bytes []byte, format Format) []byte {
	switch format {
	case PRG:
		out := make([]byte, 0, len(bytes)+2)
		out = append(out, byte(origin), byte(origin>>8))
		return append(out, bytes...)
	default:
		return append([]byte(nil), bytes...)
	}
}
