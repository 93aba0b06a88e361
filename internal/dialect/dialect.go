// Package dialect selects the concrete Formatter for a project's configured
// assembler dialect.
package dialect

import (
	"fmt"

	"github.com/retroenv/c64disasm/internal/formatter"
	"github.com/retroenv/c64disasm/internal/formatter/acme"
	"github.com/retroenv/c64disasm/internal/formatter/ca65"
	"github.com/retroenv/c64disasm/internal/formatter/kickasm"
	"github.com/retroenv/c64disasm/internal/formatter/tass"
	"github.com/retroenv/c64disasm/internal/options"
)

// New returns the Formatter for the given assembler dialect.
func New(a options.Assembler) (formatter.Formatter, error) {
	switch a {
	case options.CA65:
		return ca65.New(), nil
	case options.ACME:
		return acme.New(), nil
	case options.KickAssembler:
		return kickasm.New(), nil
	case options.Tass64:
		return tass.New(), nil
	default:
		return nil, fmt.Errorf("unsupported assembler dialect %q", a)
	}
}
