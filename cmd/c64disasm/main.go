// Package main implements the command line entry point for the C64/C128/
// VIC-20/Plus-4/PET/1541 disassembler engine.
package main

import (
	"errors"
	"os"

	"github.com/retroenv/c64disasm/internal/cli"
	"github.com/retroenv/c64disasm/internal/config"
	"github.com/retroenv/c64disasm/internal/fileprocessor"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if opts.Version {
		return
	}

	if opts.Server || opts.ServerStdio {
		logger.Fatal("server mode is a boundary concern outside this engine build; run --headless instead")
	}

	if !opts.Headless {
		logger.Fatal("interactive mode is a boundary concern outside this engine build; run --headless instead")
	}

	if err := fileprocessor.ProcessFile(logger, opts); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}
