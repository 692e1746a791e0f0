//go:build linux

package process_linux

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"memfinder/process"
	"memfinder/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	sp "github.com/s-hammon/p"
)

// LinuxProcess implements process.Platform on top of /proc/[pid]/maps and /proc/[pid]/mem
type LinuxProcess struct {
	pid process.ProcessID
	log *logger.Logger
	mem *os.File
	mu  sync.Mutex
}

var _ process.Platform = (*LinuxProcess)(nil)

// Attach opens /proc/[pid]/mem for reading. The open file is owned by the
// returned LinuxProcess until Close.
func Attach(pid process.ProcessID) (*LinuxProcess, error) {
	memPath := sp.Format("/proc/%d/mem", pid)
	if _, err := os.Stat(memPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: process %d not found", process.ErrProcessAttach, pid)
	}

	mem, err := os.OpenFile(memPath, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", process.ErrProcessAttach, err)
	}

	proc := &LinuxProcess{
		pid: pid,
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("process-%d", pid))),
		mem: mem,
	}

	proc.log.Infoln("Process opened")

	return proc, nil
}

// Regions returns the readable entries of /proc/[pid]/maps in file order.
// A map that can no longer be read yields no regions.
func (p *LinuxProcess) Regions() []process.MemoryRegion {
	mm, err := memory_map.ReadMemoryMap(int(p.pid))
	if err != nil {
		p.log.Debugln("Failed to read memory map:", err)
		return nil
	}

	return memory_map.Readable(mm)
}

// Close releases the /proc/[pid]/mem file
func (p *LinuxProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mem == nil {
		return nil
	}

	err := p.mem.Close()
	p.mem = nil

	p.log.Infoln("Process closed")
	p.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "process-not-open"))

	return err
}
