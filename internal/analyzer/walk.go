// Package analyzer implements the code-reachability walk and auto-labeler: a
// pure function of block map, labels and settings that produces the
// cross-reference index and the Auto label set.
package analyzer

import (
	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/cpu"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/c64disasm/internal/xref"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Run performs a full analyzer pass: it clears and rebuilds the Auto label
// set and the cross-reference index from the current block map, User/
// External labels and settings. The result is a pure function of that
// input - identical state always produces byte-identical labels and
// cross-references.
func Run(logger *log.Logger, s *project.State) {
	s.Labels.ClearKind(labelAutoKind)
	s.Xrefs = xref.New()

	w := &walker{
		state:   s,
		visited: set.New[uint16](),
		queue:   nil,
	}

	w.seedFromCodeRuns()
	w.seedFromDataBlocks()
	w.drain()

	assignAutoLabels(s, w.visitedList)

	logger.Debug("Analyzer pass complete",
		log.Int("visited_code_addresses", len(w.visitedList)),
		log.Int("xref_targets", s.Xrefs.Len()),
	)
}

type walker struct {
	state       *project.State
	visited     set.Set[uint16]
	visitedList []uint16 // same addresses as visited, in discovery order
	queue       []uint16
}

func (w *walker) enqueue(addr uint16) {
	if w.visited.Contains(addr) {
		return
	}
	w.queue = append(w.queue, addr)
}

// seedFromCodeRuns seeds the walk with the start of every run currently
// classified Code.
func (w *walker) seedFromCodeRuns() {
	for _, r := range w.state.Blocks.AllRuns() {
		if r.Type == block.Code {
			w.enqueue(r.Start)
		}
	}
}

// drain processes the BFS worklist, decoding one instruction per address and
// following its control-flow successors. Each address is visited at most
// once, and the address space is bounded, so the walk always terminates.
func (w *walker) drain() {
	for len(w.queue) > 0 {
		addr := w.queue[0]
		w.queue = w.queue[1:]

		if w.visited.Contains(addr) {
			continue
		}
		typ, ok := w.state.Blocks.Get(addr)
		if !ok || typ != block.Code {
			continue // not (yet) classified as code: nothing to decode
		}
		w.visited.Add(addr)
		w.visitedList = append(w.visitedList, addr)
		w.step(addr)
	}
}

// step decodes the instruction at addr and enqueues its control-flow
// successors, recording cross-references along the way.
func (w *walker) step(addr uint16) {
	s := w.state
	opByte := s.ReadByte(addr)
	op := cpu.Decode(opByte)
	length := cpu.InstructionLength(op, s.Settings.BrkSingleByte)

	if int(addr)+length > s.End() || int(addr)+length > 0x10000 {
		return // truncated at steady state the pipeline already handled; nothing further to walk
	}

	target, hasTarget := operandTarget(op, addr, s)
	if hasTarget {
		w.recordInstructionXref(addr, op, target)
	}

	fallthroughAddr := addr + uint16(length)
	// BRK never falls through, regardless of whether it is decoded as a one
	// or two byte instruction.
	hasFallthrough := !(op.IsJump || op.IsReturn || op.IsBreak)

	switch {
	case op.IsCall:
		if hasTarget {
			w.enqueue(target)
		}
		w.enqueue(fallthroughAddr)
	case op.IsJump:
		if op.Addressing == cpu.Absolute && hasTarget {
			w.enqueue(target)
		}
		// JMP (indirect): no target followed, only the xref above was recorded.
	case op.IsBranch:
		if hasTarget {
			w.enqueue(target)
		}
		w.enqueue(fallthroughAddr)
	default:
		if hasFallthrough {
			w.enqueue(fallthroughAddr)
		}
	}
}

func (w *walker) recordInstructionXref(addr uint16, op cpu.Opcode, target uint16) {
	var rel xref.Relation
	switch {
	case op.IsCall:
		rel = xref.Call
	case op.IsJump && op.Addressing == cpu.Indirect:
		rel = xref.Indirect
	case op.IsJump:
		rel = xref.Jump
	case op.IsBranch:
		rel = xref.Branch
	default:
		rel = xref.LoadStore
	}
	w.state.Xrefs.Add(target, addr, rel)
}

// seedFromDataBlocks builds cross-references for every Address/LoHiAddress/
// HiLoAddress run and, when a synthesized target falls inside an already Code-classified
// run, seeds the walk with it too.
func (w *walker) seedFromDataBlocks() {
	for _, r := range w.state.Blocks.AllRuns() {
		for _, entry := range dataBlockTargets(w.state, r) {
			w.state.Xrefs.Add(entry.target, entry.referrer, xref.SplitTableEntry)
			if typ, ok := w.state.Blocks.Get(entry.target); ok && typ == block.Code {
				w.enqueue(entry.target)
			}
		}
	}
}
