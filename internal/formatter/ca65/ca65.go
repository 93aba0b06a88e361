// Package ca65 implements the formatter.Formatter contract for the cc65
// suite's ca65 assembler.
package ca65

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/errs"
	"github.com/retroenv/c64disasm/internal/formatter"
)

// Formatter renders ca65 syntax.
type Formatter struct{}

// New creates a ca65 formatter.
func New() Formatter {
	return Formatter{}
}

func (Formatter) CommentPrefix() string    { return ";" }
func (Formatter) DirectiveByte() string    { return ".byte" }
func (Formatter) DirectiveWord() string    { return ".word" }
func (Formatter) DirectiveInclude() string { return ".binary" }

func (Formatter) DirectiveText(formatter.TextEncoding) string { return ".text" }

func (Formatter) EncodingPush(enc formatter.TextEncoding) string {
	switch enc {
	case formatter.Screencode:
		return `.encode "screen"`
	default:
		return `.encode "none"`
	}
}

func (Formatter) EncodingPop(formatter.TextEncoding) string { return "" }

func (Formatter) FormatOperand(mode cpu.AddressingMode, operand string, widthHint bool) string {
	suffix := ""
	if widthHint && (mode == cpu.Absolute || mode == cpu.AbsoluteX || mode == cpu.AbsoluteY) {
		suffix = "@w"
	}
	return formatter.OperandSyntax(mode, operand) + suffix
}

func (Formatter) FormatLabelDef(name string) string { return name + ":" }
func (Formatter) FormatLabelRef(name string) string { return name }
func (Formatter) LoByteOf(label string) string      { return "<" + label }
func (Formatter) HiByteOf(label string) string      { return ">" + label }

func (Formatter) ValidateLabel(name string) (string, error) {
	if reservedWords[name] {
		return "", errs.New(errs.KindLabelNameInvalid, fmt.Sprintf("%q is a reserved ca65 keyword", name))
	}
	return name, nil
}

// reservedWords is a representative, non-exhaustive set of ca65 control
// keywords and register-shaped identifiers that must not be used as labels.
var reservedWords = map[string]bool{
	"A": true, "X": true, "Y": true,
	"and": true, "or": true, "xor": true, "not": true,
	"mod": true, "shl": true, "shr": true,
}
