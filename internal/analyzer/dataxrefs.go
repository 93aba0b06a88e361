package analyzer

import (
	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/project"
)

// dataTarget is one synthesized pointer read out of an address-split table:
// referrer is the address of the table entry (or entry pair for the split
// variants), target is the 16-bit value it encodes.
type dataTarget struct {
	referrer uint16
	target   uint16
}

// dataBlockTargets decodes the pointer table encoded by r, if r's type is one
// of the three address-bearing variants. WordData/LoHiWord/HiLoWord runs hold
// plain 16-bit values, not addresses, and never produce cross-references.
func dataBlockTargets(s *project.State, r block.Run) []dataTarget {
	switch r.Type {
	case block.Address:
		return plainAddressTargets(s, r)
	case block.LoHiAddress:
		return splitAddressTargets(s, r, true)
	case block.HiLoAddress:
		return splitAddressTargets(s, r, false)
	default:
		return nil
	}
}

// plainAddressTargets reads consecutive little-endian words, one per pair of
// bytes, referrer being the address of the low byte of the pair.
func plainAddressTargets(s *project.State, r block.Run) []dataTarget {
	var out []dataTarget
	for a := r.Start; a < r.End(); a += 2 {
		out = append(out, dataTarget{referrer: a, target: s.ReadWord(a)})
	}
	return out
}

// splitAddressTargets reads a table stored as two parallel halves, low bytes
// first then high bytes (loHiFirst) or the reverse, pairing entry i of the
// first half with entry i of the second to reconstruct one address per pair.
// The referrer recorded for each pair is the address of its low-byte entry,
// regardless of which half it lives in.
func splitAddressTargets(s *project.State, r block.Run, loHiFirst bool) []dataTarget {
	count := r.Length / 2
	var out []dataTarget
	for i := 0; i < count; i++ {
		var loAddr, hiAddr uint16
		if loHiFirst {
			loAddr = r.Start + uint16(i)
			hiAddr = r.Start + uint16(count) + uint16(i)
		} else {
			hiAddr = r.Start + uint16(i)
			loAddr = r.Start + uint16(count) + uint16(i)
		}
		lo := s.ReadByte(loAddr)
		hi := s.ReadByte(hiAddr)
		target := uint16(hi)<<8 | uint16(lo)
		out = append(out, dataTarget{referrer: loAddr, target: target})
	}
	return out
}
