// Package render formats scan results and attach failure hints for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"memfinder/pattern"
	"memfinder/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/s-hammon/p"
)

// Options controls result formatting
type Options struct {
	// Color enables ANSI colors: addresses in cyan, bytes absorbed by wildcards in orange
	Color bool
}

// Line formats one result as "[i] 0x<address> - AA BB ..." with a 1-based index.
func Line(index int, result process.ScanResult, pat pattern.Pattern, opts Options) string {
	addr := result.Address.ToString()
	if opts.Color {
		addr = coloransi.Foreground(coloransi.Cyan, addr)
	}

	tokens := pat.Tokens()
	parts := make([]string, len(result.MatchedBytes))
	for i, b := range result.MatchedBytes {
		hex := p.Format("%02X", b)
		if opts.Color && i < len(tokens) && tokens[i].Wildcard {
			hex = coloransi.Foreground(coloransi.ColorOrange, hex)
		}
		parts[i] = hex
	}

	return fmt.Sprintf("  [%d] %s - %s", index, addr, strings.Join(parts, " "))
}

// Results writes the result count followed by one line per result.
func Results(w io.Writer, results []process.ScanResult, pat pattern.Pattern, opts Options) error {
	if _, err := fmt.Fprintf(w, "Found %d result(s):\n", len(results)); err != nil {
		return err
	}

	for i, result := range results {
		if _, err := fmt.Fprintln(w, Line(i+1, result, pat, opts)); err != nil {
			return err
		}
	}

	return nil
}

// AttachFailure writes the attach error and the privilege hints for this OS.
func AttachFailure(w io.Writer, err error, pid process.ProcessID, patternText string) {
	fmt.Fprintf(w, "Error: %v\n", err)

	hints := Hints(pid, patternText)
	if len(hints) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Possible solutions:")
	for _, hint := range hints {
		fmt.Fprintf(w, "   - %s\n", hint)
	}
}
