// Package formatter defines the dialect contract the pipeline renders
// against. Four concrete implementations (ca65, acme, kickasm, tass) live in
// their own subpackages; the pipeline never branches on which one is active.
package formatter

import "github.com/retroenv/c64disasm/internal/cpu"

// TextEncoding selects which 8-bit character table a text run uses.
type TextEncoding uint8

const (
	Petscii TextEncoding = iota
	Screencode
)

// Formatter renders the tokens of one assembler dialect. Implementations
// hold no per-line state; dialect switching happens once at project-settings
// boundaries, never per line.
type Formatter interface {
	// CommentPrefix returns the line-comment marker.
	CommentPrefix() string

	DirectiveByte() string
	DirectiveWord() string
	DirectiveInclude() string

	// DirectiveText returns the text directive for enc, e.g. ".text" or
	// "!text". EncodingPush/EncodingPop bracket a run of DirectiveText lines
	// with whatever pragma the dialect needs to select the character table;
	// either may return "" if the dialect has nothing to emit.
	DirectiveText(enc TextEncoding) string
	EncodingPush(enc TextEncoding) string
	EncodingPop(enc TextEncoding) string

	// FormatOperand renders operand, which is already either a numeric
	// literal or a resolved symbol name, for the given addressing mode.
	// widthHint requests the dialect's "force absolute width" sigil for an
	// absolute-mode operand that would otherwise assemble to zero-page.
	FormatOperand(mode cpu.AddressingMode, operand string, widthHint bool) string

	FormatLabelDef(name string) string
	FormatLabelRef(name string) string

	// LoByteOf and HiByteOf render "<label"/">label"-style low/high byte
	// extraction for the lohi-of/hilo-of operand-format overrides.
	LoByteOf(label string) string
	HiByteOf(label string) string

	// ValidateLabel returns name unchanged, or an adjusted form, or an error
	// if name collides with a reserved word in this dialect.
	ValidateLabel(name string) (string, error)
}

// OperandSyntax renders the addressing-mode punctuation shared by all four
// dialects (`#`, `,x`/`,y`, parens for the indirect forms). Dialects differ
// only in directives and width-hint sigils, not in this base syntax.
func OperandSyntax(mode cpu.AddressingMode, operand string) string {
	switch mode {
	case cpu.Immediate:
		return "#" + operand
	case cpu.ZeroPage, cpu.Absolute:
		return operand
	case cpu.ZeroPageX, cpu.AbsoluteX:
		return operand + ",x"
	case cpu.ZeroPageY, cpu.AbsoluteY:
		return operand + ",y"
	case cpu.Indirect:
		return "(" + operand + ")"
	case cpu.IndirectX:
		return "(" + operand + ",x)"
	case cpu.IndirectY:
		return "(" + operand + "),y"
	case cpu.Accumulator:
		return "a"
	default:
		return operand
	}
}
