// Package label implements the label table: user, auto and external symbols
// keyed by address (and sub-index for interior instruction bytes), with
// names unique across all kinds.
package label

import (
	"regexp"
	"sort"

	"github.com/retroenv/c64disasm/internal/errs"
)

// Kind identifies who owns a label definition.
type Kind uint8

const (
	User Kind = iota
	Auto
	External
)

func (k Kind) String() string {
	switch k {
	case User:
		return "user"
	case Auto:
		return "auto"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Label is a symbol bound to an address, and optionally to a sub-index for
// the internal bytes of a multi-byte instruction's operand.
type Label struct {
	Address  uint16
	SubIndex int
	Name     string
	Kind     Kind
}

// identifierPattern is the baseline identifier shape all four dialects
// accept; per-dialect reserved-word rejection happens in the formatter's
// ValidateLabel.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Table holds every label of a project, indexed by address+sub-index and by
// name.
type Table struct {
	byAddress map[uint16]map[int]*Label
	byName    map[string]*Label
}

// New creates an empty label table.
func New() *Table {
	return &Table{
		byAddress: make(map[uint16]map[int]*Label),
		byName:    make(map[string]*Label),
	}
}

// Get returns the label at address/subIndex, if any.
func (t *Table) Get(address uint16, subIndex int) (Label, bool) {
	sub, ok := t.byAddress[address]
	if !ok {
		return Label{}, false
	}
	l, ok := sub[subIndex]
	if !ok {
		return Label{}, false
	}
	return *l, true
}

// GetPrimary returns the sub-index 0 label at address, User label shadowing
// Auto.
func (t *Table) GetPrimary(address uint16) (Label, bool) {
	return t.Get(address, 0)
}

// GetByName returns the label with the given name.
func (t *Table) GetByName(name string) (Label, bool) {
	l, ok := t.byName[name]
	if !ok {
		return Label{}, false
	}
	return *l, true
}

func validateName(name string) error {
	if name == "" || !identifierPattern.MatchString(name) {
		return errs.New(errs.KindLabelNameInvalid, "label name must be a valid identifier")
	}
	return nil
}

// Set installs a label, replacing any existing label at the same
// address/subIndex, whatever its kind. It returns the previous label at that
// slot (ok=false if there was none), for the command layer's undo snapshot.
func (t *Table) Set(address uint16, subIndex int, name string, kind Kind) (previous Label, hadPrevious bool, err error) {
	if err := validateName(name); err != nil {
		return Label{}, false, err
	}
	if existing, ok := t.byName[name]; ok && !(existing.Address == address && existing.SubIndex == subIndex) {
		return Label{}, false, errs.New(errs.KindLabelCollision, "name '"+name+"' already used at a different address")
	}

	sub, ok := t.byAddress[address]
	if !ok {
		sub = make(map[int]*Label)
		t.byAddress[address] = sub
	}
	if prev, ok := sub[subIndex]; ok {
		previous = *prev
		hadPrevious = true
		delete(t.byName, prev.Name)
	}

	l := &Label{Address: address, SubIndex: subIndex, Name: name, Kind: kind}
	sub[subIndex] = l
	t.byName[name] = l
	return previous, hadPrevious, nil
}

// Remove deletes the label at address/subIndex, returning it (ok=false if
// there was none).
func (t *Table) Remove(address uint16, subIndex int) (Label, bool) {
	sub, ok := t.byAddress[address]
	if !ok {
		return Label{}, false
	}
	prev, ok := sub[subIndex]
	if !ok {
		return Label{}, false
	}
	delete(sub, subIndex)
	if len(sub) == 0 {
		delete(t.byAddress, address)
	}
	delete(t.byName, prev.Name)
	return *prev, true
}

// ClearKind removes every label of the given kind, used by the analyzer
// before regenerating Auto labels each pass.
func (t *Table) ClearKind(kind Kind) {
	for addr, sub := range t.byAddress {
		for idx, l := range sub {
			if l.Kind == kind {
				delete(sub, idx)
				delete(t.byName, l.Name)
			}
		}
		if len(sub) == 0 {
			delete(t.byAddress, addr)
		}
	}
}

// All returns every label sorted by address then sub-index, for
// deterministic serialization and iteration.
func (t *Table) All() []Label {
	out := make([]Label, 0, len(t.byName))
	for _, sub := range t.byAddress {
		for _, l := range sub {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Address != out[j].Address {
			return out[i].Address < out[j].Address
		}
		return out[i].SubIndex < out[j].SubIndex
	})
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	clone := New()
	for _, l := range t.All() {
		copyLabel := l
		sub, ok := clone.byAddress[l.Address]
		if !ok {
			sub = make(map[int]*Label)
			clone.byAddress[l.Address] = sub
		}
		sub[l.SubIndex] = &copyLabel
		clone.byName[l.Name] = &copyLabel
	}
	return clone
}
