package memory_map

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"memfinder/process"
)

// MemoryMapItem represents one line of a process memory map
type MemoryMapItem struct {
	Address uint64 // The starting address of the memory region
	Size    uint64 // The size of the memory region in bytes
	Perms   string // Permissions (e.g., "r-xp" for read, execute, private)
}

// String returns a string representation of the memory map item
func (mmItem MemoryMapItem) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s", mmItem.Address, mmItem.Size, mmItem.Perms)
}

func (mmItem MemoryMapItem) IsReadable() bool {
	return IsReadablePerms(mmItem.Perms)
}

// Region converts the item into the platform independent region type
func (mmItem MemoryMapItem) Region() process.MemoryRegion {
	return process.MemoryRegion{
		Start: process.ProcessMemoryAddress(mmItem.Address),
		Size:  process.ProcessMemorySize(mmItem.Size),
	}
}

// Parse reads a memory map in the /proc/[pid]/maps text format.
// Lines that do not carry an address range and a permission field are skipped.
func Parse(r io.Reader) ([]MemoryMapItem, error) {
	var memoryMap []MemoryMapItem
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		// Parse address range (e.g., "00400000-0040b000")
		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}

		startAddr, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}

		endAddr, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil || endAddr < startAddr {
			continue
		}

		memoryMap = append(memoryMap, MemoryMapItem{
			Address: startAddr,
			Size:    endAddr - startAddr,
			Perms:   fields[1],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return memoryMap, nil
}

// Readable filters the map down to regions whose permissions start with the read flag
func Readable(memoryMap []MemoryMapItem) []process.MemoryRegion {
	var regions []process.MemoryRegion
	for _, item := range memoryMap {
		if item.IsReadable() {
			regions = append(regions, item.Region())
		}
	}
	return regions
}

func IsReadablePerms(perms string) bool {
	return len(perms) > 0 && perms[0] == 'r'
}
