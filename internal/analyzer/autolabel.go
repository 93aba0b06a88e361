package analyzer

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/c64disasm/internal/xref"
)

// labelAutoKind is the one label.Kind this package ever writes.
const labelAutoKind = label.Auto

// assignAutoLabels names every cross-referenced address that has no User or
// External label yet, using the strongest relation pointing at it, and, when
// Settings.GenerateAllLabels is set, also every address the walk reached as
// code (an unreferenced one is named "l_XXXX"). A name that collides with an existing
// User or External label at a different address is skipped rather than
// raised as an error: auto-labeling is a background process, not a user
// command, and one naming clash must not abort the whole pass.
func assignAutoLabels(s *project.State, visitedCode []uint16) {
	if !s.Settings.GenerateAllLabels {
		assignReferencedOnly(s)
		return
	}

	for _, addr := range visitedCode {
		assignOne(s, addr)
	}
	for _, target := range s.Xrefs.Targets() {
		assignOne(s, target)
	}
}

// assignReferencedOnly labels only addresses that actually have at least one
// cross-reference, the default when Settings.GenerateAllLabels is false.
func assignReferencedOnly(s *project.State) {
	for _, target := range s.Xrefs.Targets() {
		assignOne(s, target)
	}
}

func assignOne(s *project.State, addr uint16) {
	if _, ok := s.Labels.GetPrimary(addr); ok {
		return // User, Auto (already assigned this pass) or External label present
	}

	prefix := namePrefix(xref.Jump) // unreferenced code reached by the walk
	if refs := s.Xrefs.Of(addr); len(refs) > 0 {
		prefix = namePrefix(strongestRelation(refs))
	}

	name := fmt.Sprintf("%s_%04x", prefix, addr)
	if _, ok := s.Labels.GetByName(name); ok {
		return // name taken by an unrelated label; leave addr unnamed rather than fail the pass
	}
	_, _, _ = s.Labels.Set(addr, 0, name, labelAutoKind)
}

// strongestRelation picks one relation to name addr after, in priority order
// Call > Jump > Branch > SplitTableEntry > Indirect > LoadStore: a subroutine
// entry point deserves "sub_" even if it is also, incidentally, jumped to or
// peeked at as data.
func strongestRelation(refs []xref.Reference) xref.Relation {
	best := refs[0].Relation
	for _, r := range refs[1:] {
		if relationRank(r.Relation) < relationRank(best) {
			best = r.Relation
		}
	}
	return best
}

func relationRank(r xref.Relation) int {
	switch r {
	case xref.Call:
		return 0
	case xref.Jump:
		return 1
	case xref.Branch:
		return 2
	case xref.SplitTableEntry:
		return 3
	case xref.Indirect:
		return 4
	case xref.LoadStore:
		return 5
	default:
		return 6
	}
}

func namePrefix(r xref.Relation) string {
	switch r {
	case xref.Call:
		return "sub"
	case xref.Jump:
		return "l"
	case xref.Branch:
		return "b"
	case xref.SplitTableEntry:
		return "a"
	case xref.Indirect:
		return "p"
	default:
		return "d"
	}
}
