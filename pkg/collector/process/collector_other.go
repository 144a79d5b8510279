//go:build !linux
// +build !linux

package process

import (
	gopsproc "github.com/shirou/gopsutil/v4/process"

	"github.com/srodi/procmon/pkg/types"
)

// listPIDs allows tests to stub the platform process listing.
var listPIDs = gopsproc.Pids

// NewCollector returns a gopsutil-backed collector, or the procfs collector
// when a proc root is configured explicitly.
func NewCollector(opts Options) Collector {
	if opts.ProcRoot != "" {
		return NewProcFS(opts.ProcRoot, opts.Capacity)
	}
	return &gopsutilCollector{capacity: opts.Capacity}
}

// gopsutilCollector applies the procfs collector's defaults, memory filter and
// capacity on platforms without /proc.
type gopsutilCollector struct {
	capacity int
}

func (c *gopsutilCollector) Collect() (*types.Snapshot, error) {
	pids, err := listPIDs()
	if err != nil {
		return nil, &ListingError{Root: "gopsutil", Err: err}
	}

	snap := types.NewSnapshot(c.capacity)
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		if !admit(snap, int(pid), readGopsutil) {
			break
		}
	}
	return snap, nil
}

func readGopsutil(pid int) types.Process {
	proc := types.NewProcess(pid)
	p, err := gopsproc.NewProcess(int32(pid))
	if err != nil {
		return proc
	}
	if name, err := p.Name(); err == nil && name != "" {
		proc.Name = truncate(name, types.NameCapacity)
	}
	if username, err := p.Username(); err == nil && username != "" {
		proc.Username = truncate(username, types.UsernameCapacity)
	}
	if mem, err := p.MemoryInfo(); err == nil && mem != nil {
		proc.MemoryKB = mem.RSS / 1024
	}
	return proc
}
