// Package runner handles loading and running a program file
package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/listing"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// RunFile handles the complete program run workflow. The final
// framebuffer of a headless run is written to out.
func RunFile(ctx context.Context, logger *log.Logger, opts options.Program, out io.Writer) error {
	if opts.List {
		return ListFile(logger, opts, out)
	}

	mem := memory.New()
	if _, err := loader.New(logger).Load(opts.Input, mem); err != nil {
		return err
	}

	session, err := config.CreateSession(logger, opts)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("Closing devices failed", log.Err(err))
		}
	}()

	interpreter := vm.New(logger, mem, session.Devices(), config.InterpreterOptions(opts))
	err = interpreter.Run(ctx)

	logger.Debug("Program stopped",
		log.Int("cycles", int(interpreter.Cycles())),
		log.Stringer("registers", interpreter.Registers()))
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if session.Headless != nil {
		if err := session.Headless.Dump(out); err != nil {
			return fmt.Errorf("dumping framebuffer: %w", err)
		}
	}
	return nil
}

// ListFile writes an instruction listing of the program file to out.
func ListFile(logger *log.Logger, opts options.Program, out io.Writer) error {
	data, err := loader.New(logger).Read(opts.Input)
	if err != nil {
		return err
	}

	w := listing.New(out, listing.Options{OffsetComments: true})
	if err := w.Write(data); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
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

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
