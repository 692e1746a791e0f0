//go:build darwin

package render

import (
	"memfinder/process"

	"github.com/s-hammon/p"
)

// Hints lists ways to get the privileges needed to obtain a task port
func Hints(pid process.ProcessID, patternText string) []string {
	return []string{
		p.Format("sudo mem_finder %d \"%s\"", pid, patternText),
	}
}
