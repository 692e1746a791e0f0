//go:build windows

package process_windows

import (
	"fmt"
	"sync"
	"unsafe"

	"memfinder/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"golang.org/x/sys/windows"
)

const desiredAccess = windows.PROCESS_QUERY_INFORMATION | windows.PROCESS_VM_READ

// WindowsProcess implements process.Platform with a process handle
type WindowsProcess struct {
	handle windows.Handle
	log    *logger.Logger
	mu     sync.Mutex
}

var _ process.Platform = (*WindowsProcess)(nil)

// Attach opens the target with query and read access only
func Attach(pid process.ProcessID) (*WindowsProcess, error) {
	handle, err := windows.OpenProcess(desiredAccess, false, uint32(pid))
	if err != nil || handle == 0 {
		return nil, fmt.Errorf("%w: OpenProcess(%d): %v", process.ErrProcessAttach, pid, err)
	}

	p := &WindowsProcess{
		handle: handle,
		log:    logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid))),
	}

	p.log.Infoln("Process opened")
	return p, nil
}

func (p *WindowsProcess) getHandle() windows.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle
}

// Regions walks the address space with VirtualQueryEx and keeps committed
// pages that are neither guard nor no-access pages.
func (p *WindowsProcess) Regions() []process.MemoryRegion {
	handle := p.getHandle()
	if handle == 0 {
		return nil
	}

	var regions []process.MemoryRegion
	var addr uintptr
	for {
		var mbi windows.MemoryBasicInformation
		if err := windows.VirtualQueryEx(handle, addr, &mbi, unsafe.Sizeof(mbi)); err != nil {
			break
		}

		if mbi.State == windows.MEM_COMMIT &&
			mbi.Protect&windows.PAGE_GUARD == 0 &&
			mbi.Protect&windows.PAGE_NOACCESS == 0 {
			regions = append(regions, process.MemoryRegion{
				Start: process.ProcessMemoryAddress(mbi.BaseAddress),
				Size:  process.ProcessMemorySize(mbi.RegionSize),
			})
		}

		// Besides a failed query, a next address that wraps to zero ends the walk.
		addr = mbi.BaseAddress + mbi.RegionSize
		if addr == 0 {
			break
		}
	}

	return regions
}

// ReadRegion reads up to region.Size bytes and truncates to what was copied
func (p *WindowsProcess) ReadRegion(region process.MemoryRegion) ([]byte, bool) {
	handle := p.getHandle()
	if handle == 0 || region.Size == 0 {
		return nil, false
	}
	if region.TooLarge() {
		p.log.Debugln("Skipping oversized memory region", region.String())
		return nil, false
	}

	buf := make([]byte, region.Size)
	var bytesRead uintptr
	err := windows.ReadProcessMemory(handle, uintptr(region.Start), &buf[0], uintptr(region.Size), &bytesRead)
	if err != nil || bytesRead == 0 {
		p.log.Debugln("Failed to read memory region", region.String(), err)
		return nil, false
	}

	return buf[:bytesRead], true
}

// Close closes the process handle
func (p *WindowsProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return nil
	}

	err := windows.CloseHandle(p.handle)
	p.handle = 0
	if err != nil {
		p.log.Warn("CloseHandle failed: ", err)
		return fmt.Errorf("CloseHandle failed: %w", err)
	}

	p.log.Infoln("Process closed")
	return nil
}
