// Package kickasm implements the formatter.Formatter contract for Kick
// Assembler.
package kickasm

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/errs"
	"github.com/retroenv/c64disasm/internal/formatter"
)

// Formatter renders Kick Assembler syntax.
type Formatter struct{}

// New creates a Kick Assembler formatter.
func New() Formatter {
	return Formatter{}
}

func (Formatter) CommentPrefix() string    { return "//" }
func (Formatter) DirectiveByte() string    { return ".byte" }
func (Formatter) DirectiveWord() string    { return ".word" }
func (Formatter) DirectiveInclude() string { return ".import binary" }

func (Formatter) DirectiveText(formatter.TextEncoding) string { return ".text" }

func (Formatter) EncodingPush(enc formatter.TextEncoding) string {
	if enc == formatter.Screencode {
		return `.encoding "screencode_mixed"`
	}
	return `.encoding "petscii_upper"`
}

func (Formatter) EncodingPop(formatter.TextEncoding) string { return "" }

func (Formatter) FormatOperand(mode cpu.AddressingMode, operand string, widthHint bool) string {
	base := formatter.OperandSyntax(mode, operand)
	if widthHint && (mode == cpu.Absolute || mode == cpu.AbsoluteX || mode == cpu.AbsoluteY) {
		return ".abs " + base
	}
	return base
}

func (Formatter) FormatLabelDef(name string) string { return name + ":" }
func (Formatter) FormatLabelRef(name string) string { return name }
func (Formatter) LoByteOf(label string) string      { return "<" + label }
func (Formatter) HiByteOf(label string) string      { return ">" + label }

func (Formatter) ValidateLabel(name string) (string, error) {
	if reservedWords[name] {
		return "", errs.New(errs.KindLabelNameInvalid, fmt.Sprintf("%q is a reserved Kick Assembler directive name", name))
	}
	return name, nil
}

// reservedWords is a representative, non-exhaustive set of Kick Assembler
// directive and preprocessor keywords.
var reservedWords = map[string]bool{
	"byte": true, "word": true, "text": true, "import": true,
	"function": true, "macro": true, "pseudocommand": true, "segment": true,
}
