package process

// Platform is the capability every OS backend provides over an attached
// process. An instance exclusively owns its OS handle until Close.
type Platform interface {
	// Regions returns the readable regions of the process in the order the
	// OS enumerates them. Entries that cannot be classified are left out.
	Regions() []MemoryRegion

	// ReadRegion reads the contents of region. It returns false instead of
	// an error when nothing could be read.
	ReadRegion(region MemoryRegion) ([]byte, bool)

	// Close releases the OS handle. Calling it more than once is a no-op.
	Close() error
}

// AttachFunc acquires a Platform for the given process.
type AttachFunc func(pid ProcessID) (Platform, error)
