package acme

import (
	"testing"

	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/retrogolib/assert"
)

func TestFormatOperandIndexing(t *testing.T) {
	f := New()
	assert.Equal(t, "#$05", f.FormatOperand(cpu.Immediate, "$05", false))
	assert.Equal(t, "$d020,x", f.FormatOperand(cpu.AbsoluteX, "$d020", false))
}

func TestFormatOperandWidthHint(t *testing.T) {
	f := New()
	assert.Equal(t, "$00d0+2", f.FormatOperand(cpu.Absolute, "$00d0", true))
	assert.Equal(t, "$00d0", f.FormatOperand(cpu.Absolute, "$00d0", false))
}

func TestDirectiveTextSelectsScreencode(t *testing.T) {
	f := New()
	assert.Equal(t, "!text", f.DirectiveText(0))
	assert.Equal(t, "!scr", f.DirectiveText(1))
}

func TestFormatLabelDefAndRef(t *testing.T) {
	f := New()
	assert.Equal(t, "loop", f.FormatLabelDef("loop"))
	assert.Equal(t, "loop", f.FormatLabelRef("loop"))
	assert.Equal(t, "<loop", f.LoByteOf("loop"))
	assert.Equal(t, ">loop", f.HiByteOf("loop"))
}

func TestValidateLabelRejectsReservedWord(t *testing.T) {
	f := New()
	_, err := f.ValidateLabel("macro")
	assert.Error(t, err)

	name, err := f.ValidateLabel("my_label")
	assert.NoError(t, err)
	assert.Equal(t, "my_label", name)
}
