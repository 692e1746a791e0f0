//go:build darwin

package process_darwin

/*
#include <stdint.h>
#include <mach/mach.h>
#include <mach/mach_error.h>
#include <mach/mach_vm.h>

static kern_return_t mf_task_for_pid(int pid, mach_port_t *task) {
	return task_for_pid(mach_task_self(), pid, task);
}

static kern_return_t mf_region(mach_port_t task, mach_vm_address_t *address, mach_vm_size_t *size, int *protection) {
	vm_region_basic_info_data_64_t info;
	mach_msg_type_number_t count = VM_REGION_BASIC_INFO_COUNT_64;
	mach_port_t object_name = MACH_PORT_NULL;
	kern_return_t kr = mach_vm_region(task, address, size, VM_REGION_BASIC_INFO_64,
		(vm_region_info_t)&info, &count, &object_name);
	if (kr == KERN_SUCCESS) {
		*protection = info.protection;
	}
	return kr;
}

static kern_return_t mf_read(mach_port_t task, mach_vm_address_t address, mach_vm_size_t size, void *buf, mach_vm_size_t *out) {
	return mach_vm_read_overwrite(task, address, size, (mach_vm_address_t)(uintptr_t)buf, out);
}

static kern_return_t mf_release(mach_port_t task) {
	return mach_port_deallocate(mach_task_self(), task);
}
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"memfinder/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const (
	kernSuccess = 0
	vmProtRead  = 0x01
)

// DarwinProcess implements process.Platform with a mach task port
type DarwinProcess struct {
	task C.mach_port_t
	log  *logger.Logger
	mu   sync.Mutex
}

var _ process.Platform = (*DarwinProcess)(nil)

// Attach obtains a send right to the target task. This needs root or the
// com.apple.security.cs.debugger entitlement for anything but the caller itself.
func Attach(pid process.ProcessID) (*DarwinProcess, error) {
	var task C.mach_port_t
	kr := C.mf_task_for_pid(C.int(pid), &task)
	if kr != kernSuccess {
		return nil, fmt.Errorf("%w: task_for_pid(%d) failed: code %d (%s)",
			process.ErrProcessAttach, pid, int(kr), C.GoString(C.mach_error_string(C.mach_error_t(kr))))
	}

	p := &DarwinProcess{
		task: task,
		log:  logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid))),
	}

	p.log.Infoln("Process opened")
	return p, nil
}

func (p *DarwinProcess) getTask() C.mach_port_t {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.task
}

// Regions walks the task with mach_vm_region and keeps regions with VM_PROT_READ
func (p *DarwinProcess) Regions() []process.MemoryRegion {
	task := p.getTask()
	if task == 0 {
		return nil
	}

	var regions []process.MemoryRegion
	var addr C.mach_vm_address_t
	for {
		var size C.mach_vm_size_t
		var prot C.int
		if kr := C.mf_region(task, &addr, &size, &prot); kr != kernSuccess {
			break
		}

		if prot&vmProtRead != 0 {
			regions = append(regions, process.MemoryRegion{
				Start: process.ProcessMemoryAddress(addr),
				Size:  process.ProcessMemorySize(size),
			})
		}

		// Besides KERN_INVALID_ADDRESS, a next address that wraps to zero ends the walk.
		addr += size
		if addr == 0 {
			break
		}
	}

	return regions
}

// ReadRegion copies the region with mach_vm_read_overwrite, truncated to the bytes copied
func (p *DarwinProcess) ReadRegion(region process.MemoryRegion) ([]byte, bool) {
	task := p.getTask()
	if task == 0 || region.Size == 0 {
		return nil, false
	}
	if region.TooLarge() {
		p.log.Debugln("Skipping oversized memory region", region.String())
		return nil, false
	}

	buf := make([]byte, region.Size)
	var outSize C.mach_vm_size_t
	kr := C.mf_read(task, C.mach_vm_address_t(region.Start), C.mach_vm_size_t(region.Size),
		unsafe.Pointer(&buf[0]), &outSize)
	if kr != kernSuccess || outSize == 0 {
		p.log.Debugln("Failed to read memory region", region.String(), "code", int(kr))
		return nil, false
	}

	return buf[:outSize], true
}

// Close deallocates the task port right
func (p *DarwinProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.task == 0 {
		return nil
	}

	kr := C.mf_release(p.task)
	p.task = 0
	if kr != kernSuccess {
		p.log.Warn("mach_port_deallocate failed: ", int(kr))
		return fmt.Errorf("mach_port_deallocate failed: code %d", int(kr))
	}

	p.log.Infoln("Process closed")
	return nil
}
