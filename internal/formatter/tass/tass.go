// Package tass implements the formatter.Formatter contract for the 64tass
// cross-assembler.
package tass

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/errs"
	"github.com/retroenv/c64disasm/internal/formatter"
)

// Formatter renders 64tass syntax.
type Formatter struct{}

// New creates a 64tass formatter.
func New() Formatter {
	return Formatter{}
}

func (Formatter) CommentPrefix() string    { return ";" }
func (Formatter) DirectiveByte() string    { return ".byte" }
func (Formatter) DirectiveWord() string    { return ".word" }
func (Formatter) DirectiveInclude() string { return ".incbin" }

// DirectiveText has no dedicated text directive in 64tass; PETSCII and
// screencode strings are both emitted as quoted .byte literals, the
// screencode variant wrapped in the scrcode macro by EncodingPush/Pop.
func (Formatter) DirectiveText(formatter.TextEncoding) string { return ".byte" }

func (Formatter) EncodingPush(enc formatter.TextEncoding) string {
	if enc == formatter.Screencode {
		return "scrcode {"
	}
	return ""
}

func (Formatter) EncodingPop(enc formatter.TextEncoding) string {
	if enc == formatter.Screencode {
		return "}"
	}
	return ""
}

func (Formatter) FormatOperand(mode cpu.AddressingMode, operand string, widthHint bool) string {
	base := formatter.OperandSyntax(mode, operand)
	if widthHint && (mode == cpu.Absolute || mode == cpu.AbsoluteX || mode == cpu.AbsoluteY) {
		return base // no width hint is emitted: the operand renders as without widthHint
	}
	return base
}

func (Formatter) FormatLabelDef(name string) string { return name }
func (Formatter) FormatLabelRef(name string) string { return name }
func (Formatter) LoByteOf(label string) string      { return "<" + label }
func (Formatter) HiByteOf(label string) string      { return ">" + label }

func (Formatter) ValidateLabel(name string) (string, error) {
	if reservedWords[name] {
		return "", errs.New(errs.KindLabelNameInvalid, fmt.Sprintf("%q is a reserved 64tass keyword", name))
	}
	return name, nil
}

// reservedWords is a representative, non-exhaustive set of 64tass control
// keywords.
var reservedWords = map[string]bool{
	"byte": true, "word": true, "incbin": true, "scrcode": true,
	"macro": true, "endmacro": true, "proc": true, "endproc": true,
}
