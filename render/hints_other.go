//go:build !linux && !darwin && !windows

package render

import "memfinder/process"

func Hints(pid process.ProcessID, patternText string) []string {
	return nil
}
