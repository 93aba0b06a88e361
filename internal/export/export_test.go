package export

import (
	"strings"
	"testing"

	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/formatter/ca65"
	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/c64disasm/internal/pipeline"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/retrogolib/assert"
)

func TestWriteAsmRendersInstructionLine(t *testing.T) {
	data := []byte{0xEA, 0xEA}
	s := project.New(0x1000, data, options.Default())
	err := s.Blocks.Assign(0x1000, len(data), block.Code)
	assert.NoError(t, err)

	f := ca65.New()
	lines := pipeline.Generate(s, f)

	var b strings.Builder
	err = WriteAsm(&b, lines, f)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(b.String(), "NOP"), "expected NOP in output:\n"+b.String())
}

func TestWriteAndReadLabelsRoundTrip(t *testing.T) {
	labels := []label.Label{
		{Address: 0x1000, Name: "entry", Kind: label.User},
		{Address: 0x1005, Name: "sub_1005", Kind: label.Auto},
	}

	var b strings.Builder
	err := WriteLabels(&b, labels)
	assert.NoError(t, err)

	entries, err := ReadLabels(strings.NewReader(b.String()))
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, uint16(0x1000), entries[0].Address)
	assert.Equal(t, "entry", entries[0].Name)
}

func TestReadLabelsSkipsCommentsAndBlankLines(t *testing.T) {
	input := "# a comment\n\n1000 entry\n"
	entries, err := ReadLabels(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadLabelsRejectsMalformedLine(t *testing.T) {
	_, err := ReadLabels(strings.NewReader("not-enough-fields\n"))
	assert.Error(t, err)
}
