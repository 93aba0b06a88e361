package pipeline

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/formatter"
	"github.com/retroenv/c64disasm/internal/project"
)

// operandAddress computes the address referenced by op's operand, mirroring
// the analyzer's own addressing-mode decode so the pipeline and analyzer
// never disagree about what an instruction points at.
func operandAddress(op cpu.Opcode, addr uint16, s *project.State) (uint16, bool) {
	switch op.Addressing {
	case cpu.ZeroPage, cpu.ZeroPageX, cpu.ZeroPageY, cpu.IndirectX, cpu.IndirectY:
		return uint16(s.ReadByte(addr + 1)), true
	case cpu.Absolute, cpu.AbsoluteX, cpu.AbsoluteY, cpu.Indirect:
		return s.ReadWord(addr + 1), true
	case cpu.Relative:
		offset := int8(s.ReadByte(addr + 1))
		return uint16(int32(addr) + 2 + int32(offset)), true
	default:
		return 0, false
	}
}

// renderOperand produces the final operand token for an instruction line,
// resolving symbols and operand-format overrides and asking f for the
// dialect-specific punctuation.
func renderOperand(op cpu.Opcode, addr uint16, s *project.State, f formatter.Formatter) string {
	if op.Addressing == cpu.Implied || op.Addressing == cpu.Accumulator {
		return f.FormatOperand(op.Addressing, "", false)
	}

	if op.Addressing == cpu.Immediate {
		value := s.ReadByte(addr + 1)
		return f.FormatOperand(op.Addressing, immediateToken(addr, value, s, f), false)
	}

	operandAddr, ok := operandAddress(op, addr, s)
	if !ok {
		return ""
	}

	token := symbolOrNumeric(operandAddr, s, f)
	widthHint := s.Settings.PreserveLongBytes &&
		(op.Addressing == cpu.Absolute || op.Addressing == cpu.AbsoluteX || op.Addressing == cpu.AbsoluteY) &&
		operandAddr < 0x100
	return f.FormatOperand(op.Addressing, token, widthHint)
}

// immediateToken renders a `#imm` operand, honoring the lohi-of/hilo-of
// overrides which turn a plain immediate into a `<label`/`>label` byte
// extraction once the paired address resolves to a symbol.
func immediateToken(addr uint16, value byte, s *project.State, f formatter.Formatter) string {
	if fo, ok := s.Formats.Get(addr); ok {
		switch fo.Kind {
		case project.FormatLoHiOf:
			if _, ok := s.Labels.GetByName(fo.Label); ok {
				return f.LoByteOf(fo.Label)
			}
		case project.FormatHiLoOf:
			if _, ok := s.Labels.GetByName(fo.Label); ok {
				return f.HiByteOf(fo.Label)
			}
		}
	}
	return formatImmediate(addr, value, s)
}

// formatImmediate renders a plain numeric immediate per its operand-format
// override (default: hex).
func formatImmediate(addr uint16, value byte, s *project.State) string {
	kind := project.FormatHex
	if fo, ok := s.Formats.Get(addr); ok {
		kind = fo.Kind
	}
	switch kind {
	case project.FormatDecimal:
		return fmt.Sprintf("%d", value)
	case project.FormatBinary:
		return fmt.Sprintf("%%%08b", value)
	case project.FormatInverseHex:
		return fmt.Sprintf("$%02x", ^value)
	case project.FormatInverseDecimal:
		return fmt.Sprintf("%d", ^value)
	case project.FormatInverseBinary:
		return fmt.Sprintf("%%%08b", ^value)
	default:
		return fmt.Sprintf("$%02x", value)
	}
}

// symbolOrNumeric resolves addr to a label name (User or Auto; External
// always resolves) or falls back to a numeric literal.
func symbolOrNumeric(addr uint16, s *project.State, f formatter.Formatter) string {
	if l, ok := s.Labels.GetPrimary(addr); ok {
		return f.FormatLabelRef(l.Name)
	}
	if addr >= 0x100 {
		return fmt.Sprintf("$%04x", addr)
	}
	return fmt.Sprintf("$%02x", addr)
}
