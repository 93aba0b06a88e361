package pipeline

import (
	"testing"

	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/formatter/ca65"
	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/retrogolib/assert"
)

func TestGenerateCodeLine(t *testing.T) {
	data := []byte{0x4C, 0x03, 0x10, 0xEA} // JMP $1003 ; NOP
	s := project.New(0x1000, data, options.Default())
	err := s.Blocks.Assign(0x1000, len(data), block.Code)
	assert.NoError(t, err)
	_, _, err = s.Labels.Set(0x1003, 0, "loop", label.User)
	assert.NoError(t, err)

	lines := Generate(s, ca65.New())

	var found bool
	for _, l := range lines {
		if l.Kind == Instruction && l.Address == 0x1000 {
			found = true
			assert.Equal(t, "JMP", l.Mnemonic)
			assert.Equal(t, "loop", l.Operand)
		}
	}
	assert.True(t, found, "expected an Instruction line at $1000")
}

func TestGenerateByteDataPacksPerLine(t *testing.T) {
	data := make([]byte, 10)
	settings := options.Default()
	settings.BytesPerLine = 4
	s := project.New(0x2000, data, settings)
	err := s.Blocks.Assign(0x2000, len(data), block.ByteData)
	assert.NoError(t, err)

	lines := Generate(s, ca65.New())

	assert.Len(t, lines, 3) // 4 + 4 + 2 bytes
	assert.Len(t, lines[0].Bytes, 4)
	assert.Len(t, lines[2].Bytes, 2)
}

func TestGenerateEmitsLabelBeforeRun(t *testing.T) {
	data := []byte{0xEA, 0xEA}
	s := project.New(0x1000, data, options.Default())
	err := s.Blocks.Assign(0x1000, len(data), block.Code)
	assert.NoError(t, err)
	_, _, err = s.Labels.Set(0x1000, 0, "start", label.User)
	assert.NoError(t, err)

	lines := Generate(s, ca65.New())

	assert.True(t, len(lines) >= 2)
	assert.Equal(t, LabelLine, lines[0].Kind)
	assert.Equal(t, "start", lines[0].Label)
}

func TestCacheRegeneratesOnVersionChange(t *testing.T) {
	data := []byte{0xEA}
	s := project.New(0x1000, data, options.Default())
	err := s.Blocks.Assign(0x1000, len(data), block.Code)
	assert.NoError(t, err)

	var c Cache
	first := c.Get(s, ca65.New())
	assert.Equal(t, first, c.Get(s, ca65.New()))

	s.Version++
	second := c.Get(s, ca65.New())
	assert.Equal(t, len(first), len(second))
}

func TestEmitSplitOrdersHalvesInFileOrder(t *testing.T) {
	data := []byte{0x00, 0x10, 0x34, 0x12} // lo-half then hi-half of two 16-bit addrs
	s := project.New(0x3000, data, options.Default())
	err := s.Blocks.Assign(0x3000, len(data), block.LoHiAddress)
	assert.NoError(t, err)

	lines := Generate(s, ca65.New())

	assert.Len(t, lines, 2)
	assert.Equal(t, DataLoHiPair, lines[0].Kind)
	assert.Equal(t, []byte{0x00, 0x10}, lines[0].Bytes)
	assert.Equal(t, []byte{0x34, 0x12}, lines[1].Bytes)
}
