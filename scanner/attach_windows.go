//go:build windows

package scanner

import (
	"memfinder/process"
	"memfinder/process_windows"
)

func attachPlatform(pid process.ProcessID) (process.Platform, error) {
	proc, err := process_windows.Attach(pid)
	if err != nil {
		return nil, err
	}
	return proc, nil
}
