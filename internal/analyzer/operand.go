package analyzer

import (
	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/project"
)

// operandTarget computes the 16-bit address an instruction's operand refers
// to, if any. For zero-page indexed-indirect/indirect-indexed addressing the
// "target" is the zero-page pointer location itself - the walk never
// dereferences pointers speculatively.
func operandTarget(op cpu.Opcode, addr uint16, s *project.State) (uint16, bool) {
	if !op.Addressing.HasAddressOperand() && op.Addressing != cpu.IndirectX && op.Addressing != cpu.IndirectY {
		return 0, false
	}

	switch op.Addressing {
	case cpu.ZeroPage, cpu.ZeroPageX, cpu.ZeroPageY:
		return uint16(s.ReadByte(addr + 1)), true
	case cpu.Absolute, cpu.AbsoluteX, cpu.AbsoluteY, cpu.Indirect:
		return s.ReadWord(addr + 1), true
	case cpu.IndirectX, cpu.IndirectY:
		return uint16(s.ReadByte(addr + 1)), true
	case cpu.Relative:
		offset := int8(s.ReadByte(addr + 1))
		return uint16(int32(addr) + 2 + int32(offset)), true
	default:
		return 0, false
	}
}
