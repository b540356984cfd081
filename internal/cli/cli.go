// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args[0], os.Args[1:])
}

func parseArgs(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if len(args) == 0 {
		return opts, &UsageError{flags: flags, msg: "missing program file"}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("Only one program file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if !slices.Contains(options.Frontends, opts.Frontend) {
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(options.Frontends, ", "))
	}

	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Frontend, "frontend", options.FrontendSDL, "frontend to run the program with (sdl/terminal/headless)")
	flags.StringVar(&opts.Wav, "wav", "", "record the tone to this WAV file")
	flags.IntVar(&opts.Rate, "rate", 500, "instructions per second, 0 or less runs unthrottled")
	flags.IntVar(&opts.Scale, "scale", 20, "window pixel size of a display pixel for the sdl frontend")
	flags.Uint64Var(&opts.Cycles, "cycles", 10000, "instruction budget of the headless frontend, 0 for unlimited")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random seed for the RND instruction, 0 for time based")
	flags.BoolVar(&opts.List, "list", false, "print an instruction listing of the program instead of running it")
	flags.BoolVar(&opts.Mute, "mute", false, "disable audio playback")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
