// Package symbolquery is the read-only label/xref lookup surface a UI drives
// its symbol dialogs from: label-by-address, label-by-name, list-all, and
// cross-refs-of-address.
package symbolquery

import (
	"github.com/retroenv/c64disasm/internal/label"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/c64disasm/internal/xref"
)

// ByAddress returns the primary (sub-index 0) label at address, if any.
func ByAddress(s *project.State, address uint16) (label.Label, bool) {
	return s.Labels.GetPrimary(address)
}

// ByAddressSub returns the label at address/subIndex, if any.
func ByAddressSub(s *project.State, address uint16, subIndex int) (label.Label, bool) {
	return s.Labels.Get(address, subIndex)
}

// ByName returns the label with the given name, if any.
func ByName(s *project.State, name string) (label.Label, bool) {
	return s.Labels.GetByName(name)
}

// All returns every label in the project, sorted by address then sub-index.
func All(s *project.State) []label.Label {
	return s.Labels.All()
}

// XrefsOf returns every reference to address, in referrer order.
func XrefsOf(s *project.State, address uint16) []xref.Reference {
	return s.Xrefs.Of(address)
}
