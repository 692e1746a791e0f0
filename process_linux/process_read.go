//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"io"

	"memfinder/process"

	"golang.org/x/sys/unix"
)

// pread fills buf from fd at off, retrying short reads until the buffer is
// full or the kernel reports an error or end of data.
func pread(fd int, buf []byte, off process.ProcessMemoryAddress) error {
	for n := 0; n < len(buf); {
		m, err := unix.Pread(fd, buf[n:], int64(off)+int64(n))
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return fmt.Errorf("pread at 0x%x: %w", uint64(off)+uint64(n), err)
		}
		if m == 0 {
			return fmt.Errorf("partial read: %d of %d bytes: %w", n, len(buf), io.ErrUnexpectedEOF)
		}
		n += m
	}
	return nil
}

// ReadMemory reads size bytes at addr from /proc/[pid]/mem
func (p *LinuxProcess) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	p.mu.Lock()
	mem := p.mem
	p.mu.Unlock()

	if mem == nil {
		return nil, process.ErrProcessNotOpen
	}
	if (process.MemoryRegion{Start: addr, Size: size}).TooLarge() {
		return nil, fmt.Errorf("%w: %d bytes", process.ErrRegionTooLarge, uint64(size))
	}

	buf := make([]byte, size)
	if err := pread(int(mem.Fd()), buf, addr); err != nil {
		return nil, err
	}

	return buf, nil
}

// ReadRegion reads a whole region. Unreadable or partially readable regions yield no data.
func (p *LinuxProcess) ReadRegion(region process.MemoryRegion) ([]byte, bool) {
	data, err := p.ReadMemory(region.Start, region.Size)
	if err != nil {
		p.log.Debugln("Failed to read memory region", region.String(), err)
		return nil, false
	}

	return data, true
}
