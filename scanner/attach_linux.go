//go:build linux

package scanner

import (
	"memfinder/process"
	"memfinder/process_linux"
)

func attachPlatform(pid process.ProcessID) (process.Platform, error) {
	proc, err := process_linux.Attach(pid)
	if err != nil {
		return nil, err
	}
	return proc, nil
}
