package block

import (
	"sort"

	"github.com/retroenv/c64disasm/internal/errs"
)

// Run is a maximal contiguous range of bytes sharing one classification.
// SplitterBefore reports whether a splitter sits at Start, which is what
// stopped this run from merging with its predecessor.
type Run struct {
	Start          uint16
	Length         int
	Type           Type
	SplitterBefore bool
	Collapsed      bool
}

func (r Run) End() uint16 {
	return r.Start + uint16(r.Length)
}

// Map is the per-byte classification model for one binary image: a
// run-length sequence of same-type ranges plus an auxiliary splitter set.
type Map struct {
	origin uint16
	length int

	runs      []*Run
	splitters map[uint16]bool
}

// New creates a block map for a binary of the given origin and length,
// entirely Undefined.
func New(origin uint16, length int) *Map {
	m := &Map{
		origin:    origin,
		length:    length,
		splitters: make(map[uint16]bool),
	}
	if length > 0 {
		m.runs = []*Run{{Start: origin, Length: length, Type: Undefined}}
	}
	return m
}

func (m *Map) Origin() uint16 { return m.origin }
func (m *Map) Length() int    { return m.length }

func (m *Map) end() int {
	return int(m.origin) + m.length
}

func (m *Map) inBounds(start uint16, length int) bool {
	if length <= 0 {
		return false
	}
	s := int(start)
	e := s + length
	return s >= int(m.origin) && e <= m.end() && e <= 0x10000
}

// Get resolves the run containing address a and returns its type. The
// second return value is false if a is outside the binary.
func (m *Map) Get(a uint16) (Type, bool) {
	i := m.runIndexContaining(a)
	if i < 0 {
		return Undefined, false
	}
	return m.runs[i].Type, true
}

// runIndexContaining returns the index of the run containing address a, or
// -1 if a is outside every run.
func (m *Map) runIndexContaining(a uint16) int {
	i := sort.Search(len(m.runs), func(i int) bool {
		return m.runs[i].End() > a
	})
	if i >= len(m.runs) || m.runs[i].Start > a {
		return -1
	}
	return i
}

// validateSplitSize checks the split-table well-formedness invariant (spec
// §3): even length for byte-pair tables, divisible by 4 for word tables.
func validateSplitSize(typ Type, length int) error {
	if !typ.IsSplitTable() {
		return nil
	}
	if typ.IsSplitWordTable() {
		if length%4 != 0 {
			return errs.New(errs.KindSplitSizeInvalid, "word split table length must be divisible by 4")
		}
		return nil
	}
	if length%2 != 0 {
		return errs.New(errs.KindSplitSizeInvalid, "address split table length must be even")
	}
	return nil
}

// Assign classifies [start, start+length) as typ. On success the range is
// exactly typ, and adjacent runs of the same type with no splitter between
// them are merged.
func (m *Map) Assign(start uint16, length int, typ Type) error {
	if !m.inBounds(start, length) {
		return errs.New(errs.KindInvalidRange, "range is empty or outside the binary")
	}
	if err := validateSplitSize(typ, length); err != nil {
		return err
	}

	end := start + uint16(length)

	var newRuns []*Run
	for _, r := range m.runs {
		switch {
		case r.End() <= start || r.Start >= end:
			// entirely outside the assigned range, kept as-is
			newRuns = append(newRuns, r)
		default:
			// overlaps the assigned range: keep the surviving left/right slivers
			if r.Start < start {
				newRuns = append(newRuns, &Run{
					Start: r.Start, Length: int(start - r.Start), Type: r.Type,
					SplitterBefore: r.SplitterBefore,
				})
			}
			if r.End() > end {
				newRuns = append(newRuns, &Run{
					Start: end, Length: int(r.End() - end), Type: r.Type,
					SplitterBefore: m.splitters[end],
				})
			}
		}
	}

	newRuns = append(newRuns, &Run{
		Start: start, Length: length, Type: typ,
		SplitterBefore: m.splitters[start],
	})

	sort.Slice(newRuns, func(i, j int) bool { return newRuns[i].Start < newRuns[j].Start })
	m.runs = newRuns
	m.mergeAll()
	return nil
}

// ToggleSplitter inverts the splitter state at address a. When the splitter
// is newly present it forcibly splits the run containing a (if a falls
// strictly inside one) so the invariant "no two adjacent same-type runs
// without a splitter between them" continues to describe reality. When
// removed it re-runs the merge check at that boundary. Returns the new
// splitter state.
func (m *Map) ToggleSplitter(a uint16) bool {
	if m.splitters[a] {
		delete(m.splitters, a)
		m.updateSplitterBeforeFlags()
		m.mergeAll()
		return false
	}

	m.splitters[a] = true
	m.splitRunAt(a)
	m.updateSplitterBeforeFlags()
	return true
}

// HasSplitter reports whether a splitter is present at address a.
func (m *Map) HasSplitter(a uint16) bool {
	return m.splitters[a]
}

// splitRunAt breaks the run containing a into two runs at a, if a is
// strictly inside a run (not already a run boundary).
func (m *Map) splitRunAt(a uint16) {
	i := m.runIndexContaining(a)
	if i < 0 {
		return
	}
	r := m.runs[i]
	if r.Start == a {
		return // already a boundary
	}
	left := &Run{Start: r.Start, Length: int(a - r.Start), Type: r.Type, SplitterBefore: r.SplitterBefore}
	right := &Run{Start: a, Length: int(r.End() - a), Type: r.Type, SplitterBefore: true}

	replacement := make([]*Run, 0, len(m.runs)+1)
	replacement = append(replacement, m.runs[:i]...)
	replacement = append(replacement, left, right)
	replacement = append(replacement, m.runs[i+1:]...)
	m.runs = replacement
}

func (m *Map) updateSplitterBeforeFlags() {
	for _, r := range m.runs {
		r.SplitterBefore = m.splitters[r.Start]
	}
}

// mergeAll collapses adjacent runs of the same type that have no splitter
// between them.
func (m *Map) mergeAll() {
	if len(m.runs) == 0 {
		return
	}
	merged := make([]*Run, 0, len(m.runs))
	cur := m.runs[0]
	cur.SplitterBefore = m.splitters[cur.Start]
	for _, next := range m.runs[1:] {
		next.SplitterBefore = m.splitters[next.Start]
		if cur.End() == next.Start && cur.Type == next.Type && !next.SplitterBefore {
			cur = &Run{
				Start: cur.Start, Length: int(next.End() - cur.Start), Type: cur.Type,
				SplitterBefore: cur.SplitterBefore,
				Collapsed:      cur.Collapsed && next.Collapsed,
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	m.runs = merged
}

// IterRuns returns the maximal runs overlapping [a, b) in address order.
// The returned slice is a snapshot; mutating the map afterward does not
// affect it.
func (m *Map) IterRuns(a, b uint16) []Run {
	var out []Run
	for _, r := range m.runs {
		if r.End() <= a || r.Start >= b {
			continue
		}
		out = append(out, *r)
	}
	return out
}

// AllRuns returns every run of the map in address order.
func (m *Map) AllRuns() []Run {
	out := make([]Run, len(m.runs))
	for i, r := range m.runs {
		out[i] = *r
	}
	return out
}

// SetCollapsed marks the run starting exactly at a as collapsed/expanded.
// It returns errs.NotApplicable if no run starts at a.
func (m *Map) SetCollapsed(a uint16, collapsed bool) error {
	for _, r := range m.runs {
		if r.Start == a {
			r.Collapsed = collapsed
			return nil
		}
	}
	return errs.NotApplicable
}

// Splitters returns a copy of the splitter address set.
func (m *Map) Splitters() []uint16 {
	out := make([]uint16, 0, len(m.splitters))
	for a := range m.splitters {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy of the map, used by the command layer to snapshot
// state for undo.
func (m *Map) Clone() *Map {
	clone := &Map{
		origin:    m.origin,
		length:    m.length,
		splitters: make(map[uint16]bool, len(m.splitters)),
	}
	for a := range m.splitters {
		clone.splitters[a] = true
	}
	clone.runs = make([]*Run, len(m.runs))
	for i, r := range m.runs {
		cp := *r
		clone.runs[i] = &cp
	}
	return clone
}
