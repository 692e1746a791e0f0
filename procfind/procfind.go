// Package procfind resolves process names to process IDs.
package procfind

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"memfinder/process"

	ps "github.com/shirou/gopsutil/v4/process"
)

// ErrNotFound is returned when no running process carries the requested name.
var ErrNotFound = errors.New("no process found")

// Match is a running process whose name or executable matched.
type Match struct {
	PID  process.ProcessID
	Name string
}

// ListByName returns all processes whose name or executable basename equals
// name, ordered by PID. Matching is case-sensitive, like pidof.
func ListByName(name string) ([]Match, error) {
	if name == "" {
		return nil, errors.New("empty name")
	}

	procs, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	var out []Match
	for _, proc := range procs {
		// Processes may exit or deny access while we look at them
		if comm, err := proc.Name(); err == nil && comm == name {
			out = append(out, Match{PID: process.ProcessID(proc.Pid), Name: comm})
			continue
		}

		if exe, err := proc.Exe(); err == nil && exe != "" && filepath.Base(exe) == name {
			out = append(out, Match{PID: process.ProcessID(proc.Pid), Name: filepath.Base(exe)})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].PID < out[j].PID
	})

	return out, nil
}

// FirstByName returns the lowest PID whose process matches name.
func FirstByName(name string) (process.ProcessID, error) {
	matches, err := ListByName(name)
	if err != nil {
		return 0, err
	}

	if len(matches) == 0 {
		return 0, fmt.Errorf("%w with name '%s'", ErrNotFound, name)
	}

	return matches[0].PID, nil
}
