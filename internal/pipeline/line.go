package pipeline

import "github.com/retroenv/c64disasm/internal/formatter"

// Kind identifies what a render line represents.
type Kind uint8

const (
	Blank Kind = iota
	LabelLine
	LineCommentLine
	Instruction
	DataByte
	DataWord
	DataAddress
	DataLoHiPair
	DataHiLoPair
	Text
	ExternalInclude
	CollapsedSummary
)

// Arrows records the control-flow edges an instruction line participates in,
// for the UI to draw jump/branch arrows in the address gutter. Column is the
// gutter column reserved for this edge, bounded by the arrow-columns
// setting.
type Arrows struct {
	Incoming []Edge
	Outgoing []Edge
}

// Edge is one endpoint of a drawn control-flow arrow.
type Edge struct {
	OtherAddress uint16
	Column       int
}

// Line is one render-ready output line.
type Line struct {
	Address  uint16
	SubIndex int
	Kind     Kind

	Bytes       []byte // raw bytes consumed by this line, for the raw-bytes column
	Label       string // label definition text, set only on LabelLine
	Mnemonic    string
	Operand     string
	SideComment string
	LineComment []string // line-comment text, set only on LineCommentLine
	XrefComment string   // rendered cross-reference summary, truncated per max-xrefs

	// Encoding is set on Text lines, identifying which character table the
	// bytes render under.
	Encoding formatter.TextEncoding

	Arrows Arrows
}
