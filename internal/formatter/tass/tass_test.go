package tass

import (
	"testing"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/formatter"
	"github.com/retroenv/retrogolib/assert"
)

func TestFormatOperandIndexing(t *testing.T) {
	f := New()
	assert.Equal(t, "#$05", f.FormatOperand(cpu.Immediate, "$05", false))
	assert.Equal(t, "($fe),y", f.FormatOperand(cpu.IndirectY, "$fe", false))
}

func TestDirectiveTextIsAlwaysByte(t *testing.T) {
	f := New()
	assert.Equal(t, ".byte", f.DirectiveText(formatter.Petscii))
	assert.Equal(t, ".byte", f.DirectiveText(formatter.Screencode))
}

func TestEncodingPushPopBracketsScreencodeOnly(t *testing.T) {
	f := New()
	assert.Equal(t, "", f.EncodingPush(formatter.Petscii))
	assert.Equal(t, "", f.EncodingPop(formatter.Petscii))
	assert.Equal(t, "scrcode {", f.EncodingPush(formatter.Screencode))
	assert.Equal(t, "}", f.EncodingPop(formatter.Screencode))
}

func TestValidateLabelRejectsReservedWord(t *testing.T) {
	f := New()
	_, err := f.ValidateLabel("proc")
	assert.Error(t, err)

	name, err := f.ValidateLabel("my_label")
	assert.NoError(t, err)
	assert.Equal(t, "my_label", name)
}
