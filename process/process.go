// Package process holds the platform independent types shared by the
// per-OS backends and the scanner.
package process

import "errors"

var (
	// ErrProcessAttach is returned when the OS resources needed to read a
	// process's memory could not be acquired. The wrapping error carries the
	// most specific cause the OS reported.
	ErrProcessAttach = errors.New("process attach failed")

	// ErrProcessNotOpen is returned when an operation requiring an attached
	// process is attempted after the process has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	// ErrRegionTooLarge is returned when a read would need a buffer larger
	// than MaxRegionSize.
	ErrRegionTooLarge = errors.New("region too large")
)
