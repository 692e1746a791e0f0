//go:build !linux && !darwin && !windows

package scanner

import (
	"fmt"
	"runtime"

	"memfinder/process"
)

func attachPlatform(pid process.ProcessID) (process.Platform, error) {
	return nil, fmt.Errorf("%w: %s is not supported", process.ErrProcessAttach, runtime.GOOS)
}
