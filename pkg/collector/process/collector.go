package process

import (
	"errors"
	"fmt"

	"github.com/srodi/procmon/pkg/types"
)

// ErrListingUnavailable matches any ListingError.
var ErrListingUnavailable = errors.New("process listing unavailable")

// Collector produces one snapshot per call.
type Collector interface {
	Collect() (*types.Snapshot, error)
}

// Options selects the collector backend and its capacity.
type Options struct {
	// ProcRoot forces the procfs collector rooted here. Empty selects the platform default.
	ProcRoot string
	// Capacity bounds the snapshot; non-positive means types.MaxProcesses.
	Capacity int
}

// ListingError reports that the process listing itself could not be opened.
// Per-process read failures never produce it.
type ListingError struct {
	Root string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("opening process listing %s: %v", e.Root, e.Err)
}

func (e *ListingError) Unwrap() error { return e.Err }

func (e *ListingError) Is(target error) bool { return target == ErrListingUnavailable }

// admit reads pid and keeps it in snap when resident memory was found.
// It returns false, marking the snapshot truncated, once snap is full.
func admit(snap *types.Snapshot, pid int, read func(int) types.Process) bool {
	if snap.Full() {
		snap.Stats.Truncated = true
		return false
	}
	snap.Stats.Scanned++
	proc := read(pid)
	if proc.MemoryKB == 0 {
		snap.Stats.Excluded++
		return true
	}
	snap.Add(proc)
	return true
}
