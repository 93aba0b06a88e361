// Package cli handles command line flag parsing.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/c64disasm/internal/options"
)

// ParseFlags parses command line flags and returns the program options. The
// positional input file, when given, must come last.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags}
	}

	if opts.Help {
		return opts, &UsageError{flags: flags}
	}
	if opts.Version {
		return opts, nil
	}
	if opts.Server || opts.ServerStdio {
		return opts, nil
	}

	args := flags.Args()
	if len(args) > 0 {
		if err := validateArgs(args); err != nil {
			return opts, err
		}
		opts.Input = args[0]
	}
	if opts.Input == "" {
		return opts, &UsageError{flags: flags, msg: "no input file given"}
	}

	return opts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return "usage error"
}

// ShowUsage prints a usage line to stdout and the flag defaults to the flag
// set's output (stderr unless changed).
func (e *UsageError) ShowUsage() {
	fmt.Println("usage: c64disasm [options] <file to disassemble>")
	fmt.Println()
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs rejects a flag-looking argument found after the positional
// input file.
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{msg: fmt.Sprintf(
				"argument %s found after the file to disassemble, pass flags before the file", arg)}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Help, "help", false, "show usage information")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")

	flags.StringVar(&opts.ImportLabels, "import-labels", "", "path to a label file to import before disassembling")
	flags.StringVar(&opts.ExportLabels, "export-labels", "", "path to write the current label table to")
	flags.StringVar(&opts.ExportAsm, "export-asm", "", "path to write the rendered assembly to")

	flags.BoolVar(&opts.Headless, "headless", false, "run without the interactive UI: load, analyze, export, exit")
	flags.BoolVar(&opts.Server, "server", false, "run as a TCP-connected command server")
	flags.BoolVar(&opts.ServerStdio, "server-stdio", false, "run as a stdio-connected command server")

	flags.StringVar(&opts.Assembler, "a", "", "assembler dialect (ca65/acme/kickasm/tass)")
	flags.StringVar(&opts.Platform, "s", "", "target platform (c64/c128/vic20/plus4/pet/1541)")
	flags.StringVar(&opts.ExportAsm, "o", "", "name of the output .asm file, same as -export-asm; no assembly is written if empty")
	flags.StringVar(&opts.Input, "i", "", "name of the input file, alternative to the positional argument")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
}
