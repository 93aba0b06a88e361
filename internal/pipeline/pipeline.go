// Package pipeline turns a project state into an ordered sequence of
// render-ready lines, plus the address<->line-index map derived from them.
package pipeline

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/formatter"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/c64disasm/internal/xref"
)

// Cache holds one generated line list keyed by the state Version it was
// produced from, so callers can skip regeneration when nothing changed. The
// formatter passed to Get is not part of the key.
// Regenerating unconditionally is also correct; the cache is a latency
// optimization, not a correctness requirement.
type Cache struct {
	version uint64
	lines   []Line
	byAddr  map[uint16]int // address -> index of its primary (subIndex 0) line
}

// Get returns the cached line list for state, regenerating it if state's
// Version has moved on since the last call.
func (c *Cache) Get(state *project.State, f formatter.Formatter) []Line {
	if c.lines != nil && c.version == state.Version {
		return c.lines
	}
	c.lines = Generate(state, f)
	c.version = state.Version
	c.byAddr = make(map[uint16]int, len(c.lines))
	for i, l := range c.lines {
		if l.SubIndex == 0 {
			if _, exists := c.byAddr[l.Address]; !exists {
				c.byAddr[l.Address] = i
			}
		}
	}
	return c.lines
}

// LineOf returns the index of the primary line at address, if any.
func (c *Cache) LineOf(address uint16) (int, bool) {
	i, ok := c.byAddr[address]
	return i, ok
}

// AddressOf returns the address of line index i.
func (c *Cache) AddressOf(i int) (uint16, bool) {
	if i < 0 || i >= len(c.lines) {
		return 0, false
	}
	return c.lines[i].Address, true
}

// Generate is a pure function from state and the active formatter to the
// ordered line list. It never mutates state.
func Generate(s *project.State, f formatter.Formatter) []Line {
	var lines []Line
	for _, r := range s.Blocks.AllRuns() {
		lines = append(lines, preamble(s, r)...)

		if r.Collapsed {
			lines = append(lines, Line{Address: r.Start, Kind: CollapsedSummary})
			continue
		}

		switch r.Type {
		case block.Code:
			lines = append(lines, emitCode(s, r, f)...)
		case block.ByteData:
			lines = append(lines, emitBytes(s, r, DataByte, s.Settings.BytesPerLine)...)
		case block.WordData:
			lines = append(lines, emitWords(s, r, DataWord, f)...)
		case block.Address:
			lines = append(lines, emitWords(s, r, DataAddress, f)...)
		case block.LoHiAddress, block.LoHiWord:
			lines = append(lines, emitSplit(s, r, DataLoHiPair)...)
		case block.HiLoAddress, block.HiLoWord:
			lines = append(lines, emitSplit(s, r, DataHiLoPair)...)
		case block.PetsciiText:
			lines = append(lines, emitText(s, r, formatter.Petscii)...)
		case block.ScreencodeText:
			lines = append(lines, emitText(s, r, formatter.Screencode)...)
		case block.ExternalFile:
			lines = append(lines, emitExternal(r))
		default: // Undefined
			lines = append(lines, emitBytes(s, r, DataByte, 1)...)
		}
	}
	return lines
}

// preamble emits the line-comment, label and blank-line-for-splitter lines
// that precede the first real line of a run, in that order.
func preamble(s *project.State, r block.Run) []Line {
	var out []Line
	if text, ok := s.Comments.Line(r.Start); ok {
		out = append(out, Line{Address: r.Start, SubIndex: 1, Kind: LineCommentLine, LineComment: splitLines(text)})
	}
	if l, ok := s.Labels.GetPrimary(r.Start); ok {
		out = append(out, Line{Address: r.Start, SubIndex: 2, Kind: LabelLine, Label: l.Name})
	}
	if r.SplitterBefore {
		out = append(out, Line{Address: r.Start, SubIndex: 3, Kind: Blank})
	}
	return out
}

func splitLines(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, text[start:i])
			start = i + 1
		}
	}
	out = append(out, text[start:])
	return out
}

// emitCode decodes r as a sequence of instructions, honoring the illegal-
// opcode and BRK settings, and truncating gracefully if a decode would run
// past the run's end.
func emitCode(s *project.State, r block.Run, f formatter.Formatter) []Line {
	var out []Line
	addr := r.Start
	end := r.End()
	for addr < end {
		op := cpu.Decode(s.ReadByte(addr))
		length := cpu.InstructionLength(op, s.Settings.BrkSingleByte)

		if uint32(addr)+uint32(length) > uint32(end) {
			for addr < end {
				out = append(out, Line{Address: addr, Kind: DataByte, Bytes: []byte{s.ReadByte(addr)}})
				addr++
			}
			break
		}

		if op.IsIllegal && !s.Settings.UseIllegalOpcodes {
			out = append(out, Line{
				Address:     addr,
				Kind:        DataByte,
				Bytes:       []byte{s.ReadByte(addr)},
				SideComment: "illegal/partial",
			})
			addr++
			continue
		}

		bytes := make([]byte, length)
		for i := 0; i < length; i++ {
			bytes[i] = s.ReadByte(addr + uint16(i))
		}
		out = append(out, Line{
			Address:     addr,
			Kind:        Instruction,
			Bytes:       bytes,
			Mnemonic:    op.Mnemonic,
			Operand:     renderOperand(op, addr, s, f),
			XrefComment: xrefSummary(s.Xrefs, addr, s.Settings.MaxXrefs),
		})
		addr += uint16(length)
	}
	return out
}

// emitBytes packs perLine byte values per line.
func emitBytes(s *project.State, r block.Run, kind Kind, perLine int) []Line {
	if perLine <= 0 {
		perLine = 1
	}
	var out []Line
	for addr := r.Start; addr < r.End(); {
		n := perLine
		if remaining := int(r.End() - addr); n > remaining {
			n = remaining
		}
		bytes := make([]byte, n)
		for i := 0; i < n; i++ {
			bytes[i] = s.ReadByte(addr + uint16(i))
		}
		out = append(out, Line{Address: addr, Kind: kind, Bytes: bytes})
		addr += uint16(n)
	}
	return out
}

// emitWords packs whole 16-bit little-endian values, wordsPerLine per line.
// For DataAddress runs the operand token resolves through the symbol table
// exactly like an instruction operand would.
func emitWords(s *project.State, r block.Run, kind Kind, f formatter.Formatter) []Line {
	perLine := s.Settings.WordsPerLine
	if perLine <= 0 {
		perLine = 1
	}
	var out []Line
	for addr := r.Start; addr < r.End(); {
		n := perLine
		if remaining := int(r.End()-addr) / 2; n > remaining {
			n = remaining
		}
		if n <= 0 {
			n = 1
		}
		var operands []string
		bytes := make([]byte, 0, n*2)
		for i := 0; i < n; i++ {
			entryAddr := addr + uint16(i*2)
			bytes = append(bytes, s.ReadByte(entryAddr), s.ReadByte(entryAddr+1))
			if kind == DataAddress {
				operands = append(operands, symbolOrNumeric(s.ReadWord(entryAddr), s, f))
			} else {
				operands = append(operands, fmt.Sprintf("$%04x", s.ReadWord(entryAddr)))
			}
		}
		out = append(out, Line{Address: addr, Kind: kind, Bytes: bytes, Operand: joinOperands(operands)})
		addr += uint16(n * 2)
	}
	return out
}

// emitSplit renders a two-half split table (address or word variant) as two
// groups of byte lines, first half then second half, in file order - which
// is low-half-first for LoHi* types and high-half-first for HiLo* types.
func emitSplit(s *project.State, r block.Run, kind Kind) []Line {
	half := r.Length / 2
	perLine := s.Settings.WordsPerLine
	if perLine <= 0 {
		perLine = 1
	}

	first := emitBytes(s, block.Run{Start: r.Start, Length: half}, kind, perLine)
	second := emitBytes(s, block.Run{Start: r.Start + uint16(half), Length: half}, kind, perLine)
	return append(first, second...)
}

// emitText wraps a text run at the configured character limit, one line per
// wrapped segment.
func emitText(s *project.State, r block.Run, enc formatter.TextEncoding) []Line {
	limit := s.Settings.TextLineLimit
	if limit <= 0 {
		limit = 40
	}
	var out []Line
	for addr := r.Start; addr < r.End(); {
		n := limit
		if remaining := int(r.End() - addr); n > remaining {
			n = remaining
		}
		bytes := make([]byte, n)
		for i := 0; i < n; i++ {
			bytes[i] = s.ReadByte(addr + uint16(i))
		}
		out = append(out, Line{Address: addr, Kind: Text, Bytes: bytes, Encoding: enc})
		addr += uint16(n)
	}
	return out
}

func emitExternal(r block.Run) Line {
	return Line{
		Address: r.Start,
		Kind:    ExternalInclude,
		Operand: fmt.Sprintf("range_%04x_%04x", r.Start, r.End()),
	}
}

func joinOperands(operands []string) string {
	out := ""
	for i, o := range operands {
		if i > 0 {
			out += ", "
		}
		out += o
	}
	return out
}

// xrefSummary renders the referrer list for addr, truncated to maxXrefs
// entries (0 means unlimited).
func xrefSummary(idx *xref.Index, addr uint16, maxXrefs int) string {
	refs := idx.Of(addr)
	if len(refs) == 0 {
		return ""
	}
	if maxXrefs > 0 && len(refs) > maxXrefs {
		refs = refs[:maxXrefs]
	}
	out := ""
	for i, r := range refs {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("$%04x", r.Referrer)
	}
	return out
}
