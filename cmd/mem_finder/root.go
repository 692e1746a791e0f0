package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"memfinder/pattern"
	"memfinder/procfind"
	"memfinder/process"
	"memfinder/render"
	"memfinder/scanner"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultMaxResults = 100

// errAttach marks a failure that has already been reported with hints
var errAttach = errors.New("attach failed")

type options struct {
	maxResults int
	name       string
	noColor    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mem_finder [pid] <pattern>",
		Short: "search a running process's memory for a byte signature",
		Long: `Search every readable region of a running process for a byte pattern.

Pattern tokens are two hex digits or a wildcard ("xx" or "?"), separated by
whitespace. The pattern may be passed as one quoted argument or as several.`,
		Example: `  mem_finder 1234 "48 8B xx 48 89 xx"
  mem_finder --name game.exe 48 8B ? 48 89 ?`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.name != "" {
				return cobra.MinimumNArgs(1)(cmd, args)
			}
			return cobra.MinimumNArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.IntVarP(&opts.maxResults, "max", "m", defaultMaxResults, "maximum number of results")
	flags.StringVarP(&opts.name, "name", "n", "", "attach to the first process with this name instead of a pid")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func run(opts *options, args []string, stdout, stderr io.Writer) error {
	var pid process.ProcessID
	if opts.name != "" {
		found, err := procfind.FirstByName(opts.name)
		if err != nil {
			return err
		}
		pid = found
	} else {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid pid %q", args[0])
		}
		pid = process.ProcessID(n)
		args = args[1:]
	}

	patternText := strings.Join(args, " ")
	pat, err := pattern.Compile(patternText)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}

	fmt.Fprintln(stdout, "=== Memory Pattern Scanner ===")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Pattern: %s\n", pat)
	fmt.Fprintf(stdout, "Attaching to PID: %d\n\n", pid)

	s, err := scanner.Attach(pid)
	if err != nil {
		render.AttachFailure(stderr, err, pid, patternText)
		return errAttach
	}
	defer s.Close()

	fmt.Fprintln(stdout, "Scanning...")
	fmt.Fprintln(stdout)

	results := s.Scan(pat, opts.maxResults)
	return render.Results(stdout, results, pat, render.Options{Color: !opts.noColor && isTerminal(stdout)})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errAttach) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	return 0
}
