package project

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOperandFormatsSetAndGet(t *testing.T) {
	f := newOperandFormats()
	previous, hadPrevious := f.Set(0x1000, OperandFormat{Kind: FormatHex})
	assert.False(t, hadPrevious)
	assert.Equal(t, FormatDefault, previous.Kind)

	got, ok := f.Get(0x1000)
	assert.True(t, ok)
	assert.Equal(t, FormatHex, got.Kind)
}

func TestOperandFormatsSetDefaultClears(t *testing.T) {
	f := newOperandFormats()
	_, _ = f.Set(0x1000, OperandFormat{Kind: FormatBinary})

	previous, hadPrevious := f.Set(0x1000, OperandFormat{Kind: FormatDefault})
	assert.True(t, hadPrevious)
	assert.Equal(t, FormatBinary, previous.Kind)

	_, ok := f.Get(0x1000)
	assert.False(t, ok)
}

func TestOperandFormatsCloneIsIndependent(t *testing.T) {
	f := newOperandFormats()
	_, _ = f.Set(0x1000, OperandFormat{Kind: FormatLoHiOf, Label: "table"})

	clone := f.Clone()
	_, _ = clone.Set(0x1000, OperandFormat{Kind: FormatDefault})

	original, ok := f.Get(0x1000)
	assert.True(t, ok)
	assert.Equal(t, "table", original.Label)

	_, ok = clone.Get(0x1000)
	assert.False(t, ok)
}
