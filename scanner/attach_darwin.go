//go:build darwin

package scanner

import (
	"memfinder/process"
	"memfinder/process_darwin"
)

func attachPlatform(pid process.ProcessID) (process.Platform, error) {
	proc, err := process_darwin.Attach(pid)
	if err != nil {
		return nil, err
	}
	return proc, nil
}
