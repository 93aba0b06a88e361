// Package fileprocessor handles file loading and headless processing:
// load an image, run the analyzer, and export assembly and/or labels.
// Interactive and server modes are boundary concerns outside the core
// engine's test surface; ProcessFile covers --headless.
package fileprocessor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/c64disasm/internal/block"
	"github.com/retroenv/c64disasm/internal/command"
	"github.com/retroenv/c64disasm/internal/dialect"
	"github.com/retroenv/c64disasm/internal/export"
	"github.com/retroenv/c64disasm/internal/loader"
	"github.com/retroenv/c64disasm/internal/options"
	"github.com/retroenv/c64disasm/internal/pipeline"
	"github.com/retroenv/c64disasm/internal/project"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads opts.Input, classifies the whole image as code, runs the
// analyzer, applies an imported label
// file if given, and writes the assembly and/or label exports opts asked
// for.
func ProcessFile(logger *log.Logger, opts options.Program) error {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	format := loader.PRG
	if strings.EqualFold(filepath.Ext(opts.Input), ".bin") {
		format = loader.Raw
	}
	origin, bytes, err := loader.Load(data, format, 0)
	if err != nil {
		return fmt.Errorf("loading %s: %w", opts.Input, err)
	}

	settings := options.NewSettings(opts.Assembler, opts.Platform)
	state := project.New(origin, bytes, settings)
	if len(bytes) > 0 {
		if err := state.Blocks.Assign(origin, len(bytes), block.Code); err != nil {
			return fmt.Errorf("classifying %s as code: %w", opts.Input, err)
		}
	}
	mgr := command.New(logger, state)
	mgr.Analyze("initial load")

	if opts.ImportLabels != "" {
		if err := importLabels(mgr, opts.ImportLabels); err != nil {
			return fmt.Errorf("importing labels: %w", err)
		}
	}

	f, err := dialect.New(settings.Assembler)
	if err != nil {
		return fmt.Errorf("selecting dialect: %w", err)
	}

	if opts.ExportAsm != "" {
		lines := pipeline.Generate(mgr.State(), f)
		if err := writeTo(opts.ExportAsm, func(w *os.File) error {
			return export.WriteAsm(w, lines, f)
		}); err != nil {
			return fmt.Errorf("exporting assembly: %w", err)
		}
		logger.Info("Exported assembly", log.String("file", opts.ExportAsm), log.Int("lines", len(lines)))
	}

	if opts.ExportLabels != "" {
		labels := mgr.State().Labels.All()
		if err := writeTo(opts.ExportLabels, func(w *os.File) error {
			return export.WriteLabels(w, labels)
		}); err != nil {
			return fmt.Errorf("exporting labels: %w", err)
		}
		logger.Info("Exported labels", log.String("file", opts.ExportLabels), log.Int("count", len(labels)))
	}

	return nil
}

func importLabels(mgr *command.Manager, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening label file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := export.ReadLabels(f)
	if err != nil {
		return err
	}

	return mgr.Batch("ImportLabels", func(m *command.Manager) error {
		for _, e := range entries {
			if err := m.SetLabel(e.Address, 0, e.Name); err != nil {
				return fmt.Errorf("setting label %s at $%04x: %w", e.Name, e.Address, err)
			}
		}
		return nil
	})
}

func writeTo(path string, fn func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()
	return fn(file)
}

// PrintBanner prints application version information, unless opts.Quiet.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("c64disasm", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
