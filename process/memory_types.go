package process

import (
	"fmt"
	"math"
)

// ProcessMemoryAddress represents a virtual address within a process
type ProcessMemoryAddress uint64

func (pma ProcessMemoryAddress) ToString() string {
	return fmt.Sprintf("0x%016X", uint64(pma))
}

// ProcessMemorySize represents a size of memory region
type ProcessMemorySize uint64

// MaxRegionSize caps the buffer allocated for a single region read.
// Larger regions are skipped rather than read.
const MaxRegionSize ProcessMemorySize = 1 << 32

// MemoryRegion is one contiguous readable span of a process's address space
// as observed at enumeration time. The target may change its mappings at any
// point afterwards, so a region can be stale by the time it is read.
type MemoryRegion struct {
	Start ProcessMemoryAddress
	Size  ProcessMemorySize
}

// End returns the first address past the region. It wraps for regions that
// touch the top of the address space.
func (r MemoryRegion) End() ProcessMemoryAddress {
	return r.Start + ProcessMemoryAddress(r.Size)
}

// TooLarge reports whether the region cannot be read into one buffer.
func (r MemoryRegion) TooLarge() bool {
	return r.Size > MaxRegionSize || uint64(r.Size) > math.MaxInt
}

func (r MemoryRegion) String() string {
	return fmt.Sprintf("Address: %x, Size: %d", uint64(r.Start), uint64(r.Size))
}

// ScanResult is a single pattern match.
type ScanResult struct {
	Address      ProcessMemoryAddress // absolute address of the first matched byte
	MatchedBytes []byte               // bytes read at Address, wildcard positions included
}

