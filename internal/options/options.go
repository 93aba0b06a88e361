// Package options defines the per-project document settings.
package options

// Assembler identifies which Formatter dialect the pipeline drives.
type Assembler string

const (
	CA65          Assembler = "ca65"
	ACME          Assembler = "acme"
	KickAssembler Assembler = "kickasm"
	Tass64        Assembler = "tass"
)

// Platform identifies the target 8-bit system, which selects the External
// label table loaded at project creation.
type Platform string

const (
	C64       Platform = "c64"
	C128      Platform = "c128"
	VIC20     Platform = "vic20"
	Plus4     Platform = "plus4"
	PET       Platform = "pet"
	Drive1541 Platform = "1541"
)

// Settings are the per-project document settings.
type Settings struct {
	Assembler Assembler
	Platform  Platform

	GenerateAllLabels bool
	PreserveLongBytes bool
	BrkSingleByte     bool
	PatchBrk          bool
	UseIllegalOpcodes bool

	MaxXrefs     int
	ArrowColumns int

	TextLineLimit int
	WordsPerLine  int
	BytesPerLine  int
}

// Default returns the settings a newly created project starts with.
func Default() Settings {
	return Settings{
		Assembler:     CA65,
		Platform:      C64,
		MaxXrefs:      8,
		ArrowColumns:  4,
		TextLineLimit: 40,
		WordsPerLine:  4,
		BytesPerLine:  8,
	}
}

// Program holds the CLI-facing flags, as opposed to Settings which holds the
// core-facing, project-serialized document settings.
type Program struct {
	Input string

	ImportLabels string
	ExportLabels string
	ExportAsm    string

	Headless    bool
	Server      bool
	ServerStdio bool
	Help        bool
	Version     bool
	Quiet       bool
	Debug       bool

	Assembler string
	Platform  string
}

// NewSettings builds the document settings a freshly loaded project starts
// with, applying the CLI's assembler/platform overrides on top of Default.
func NewSettings(assembler, platform string) Settings {
	s := Default()
	if assembler != "" {
		s.Assembler = Assembler(assembler)
	}
	if platform != "" {
		s.Platform = Platform(platform)
	}
	return s
}
