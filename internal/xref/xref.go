// Package xref implements the cross-reference index: address -> ordered list
// of referrer addresses with a relation kind.
package xref

import "sort"

// Relation identifies how a referrer refers to a target address.
type Relation uint8

const (
	Call Relation = iota
	Jump
	Branch
	LoadStore
	Indirect
	SplitTableEntry
)

func (r Relation) String() string {
	switch r {
	case Call:
		return "call"
	case Jump:
		return "jump"
	case Branch:
		return "branch"
	case LoadStore:
		return "load_store"
	case Indirect:
		return "indirect"
	case SplitTableEntry:
		return "split_table_entry"
	default:
		return "unknown"
	}
}

// Reference is one referrer -> target entry.
type Reference struct {
	Referrer uint16
	Relation Relation
}

// Index maps a target address to its ordered, de-duplicated referrers.
type Index struct {
	byTarget map[uint16][]Reference
}

// New creates an empty index.
func New() *Index {
	return &Index{byTarget: make(map[uint16][]Reference)}
}

// Add records that referrer refers to target with the given relation. Each
// referrer is recorded at most once per target, keeping the first-seen
// relation if called again for the same pair.
func (idx *Index) Add(target, referrer uint16, relation Relation) {
	refs := idx.byTarget[target]
	for _, r := range refs {
		if r.Referrer == referrer {
			return
		}
	}
	refs = append(refs, Reference{Referrer: referrer, Relation: relation})
	sort.Slice(refs, func(i, j int) bool { return refs[i].Referrer < refs[j].Referrer })
	idx.byTarget[target] = refs
}

// Of returns the referrers of target in address order.
func (idx *Index) Of(target uint16) []Reference {
	return idx.byTarget[target]
}

// Targets returns every address that has at least one referrer, sorted.
func (idx *Index) Targets() []uint16 {
	out := make([]uint16, 0, len(idx.byTarget))
	for t := range idx.byTarget {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of targets referenced at all.
func (idx *Index) Len() int {
	return len(idx.byTarget)
}
