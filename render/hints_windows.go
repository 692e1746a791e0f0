//go:build windows

package render

import "memfinder/process"

// Hints lists ways to get the privileges needed to open another process
func Hints(pid process.ProcessID, patternText string) []string {
	return []string{"run mem_finder from an administrator prompt"}
}
