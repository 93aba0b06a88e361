// Package acme implements the formatter.Formatter contract for the ACME
// cross-assembler.
package acme

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/errs"
	"github.com/retroenv/c64disasm/internal/formatter"
)

// Formatter renders ACME syntax.
type Formatter struct{}

// New creates an ACME formatter.
func New() Formatter {
	return Formatter{}
}

func (Formatter) CommentPrefix() string    { return ";" }
func (Formatter) DirectiveByte() string    { return "!byte" }
func (Formatter) DirectiveWord() string    { return "!word" }
func (Formatter) DirectiveInclude() string { return "!binary" }

func (Formatter) DirectiveText(enc formatter.TextEncoding) string {
	if enc == formatter.Screencode {
		return "!scr"
	}
	return "!text"
}

func (Formatter) EncodingPush(formatter.TextEncoding) string { return "" }
func (Formatter) EncodingPop(formatter.TextEncoding) string  { return "" }

func (Formatter) FormatOperand(mode cpu.AddressingMode, operand string, widthHint bool) string {
	suffix := ""
	if widthHint && (mode == cpu.Absolute || mode == cpu.AbsoluteX || mode == cpu.AbsoluteY) {
		suffix = "+2"
	}
	return formatter.OperandSyntax(mode, operand) + suffix
}

func (Formatter) FormatLabelDef(name string) string { return name }
func (Formatter) FormatLabelRef(name string) string { return name }
func (Formatter) LoByteOf(label string) string      { return "<" + label }
func (Formatter) HiByteOf(label string) string      { return ">" + label }

func (Formatter) ValidateLabel(name string) (string, error) {
	if reservedWords[name] {
		return "", errs.New(errs.KindLabelNameInvalid, fmt.Sprintf("%q is a reserved ACME pseudo-opcode", name))
	}
	return name, nil
}

// reservedWords is a representative, non-exhaustive set of ACME pseudo-opcode
// names, which (unlike ca65 directives) are valid identifier shapes and so
// must be rejected explicitly rather than relying on a directive-prefix
// character to disambiguate them.
var reservedWords = map[string]bool{
	"byte": true, "word": true, "text": true, "scr": true, "binary": true,
	"fill": true, "pseudopc": true, "macro": true, "end": true,
}
