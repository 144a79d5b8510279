//go:build !linux

package process

import (
	"errors"
	"os"
	"testing"

	gopsproc "github.com/shirou/gopsutil/v4/process"
)

func TestGopsutilCollectorListingError(t *testing.T) {
	t.Cleanup(func() { listPIDs = gopsproc.Pids })
	listPIDs = func() ([]int32, error) { return nil, errors.New("sysctl failed") }

	snap, err := NewCollector(Options{}).Collect()
	if snap != nil || !errors.Is(err, ErrListingUnavailable) {
		t.Fatalf("expected listing error, got snap=%v err=%v", snap, err)
	}
}

func TestGopsutilCollectorTruncatesAndFilters(t *testing.T) {
	t.Cleanup(func() { listPIDs = gopsproc.Pids })
	self := int32(os.Getpid())
	listPIDs = func() ([]int32, error) { return []int32{0, -1, 1 << 30, self, self}, nil }

	snap, err := NewCollector(Options{Capacity: 1}).Collect()
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if snap.Len() != 1 || snap.At(0).PID != int(self) {
		t.Fatalf("expected only own pid, got %+v", snap.Entries())
	}
	if snap.At(0).MemoryKB == 0 {
		t.Fatalf("own process should report resident memory")
	}
	if snap.Stats.Excluded != 1 || !snap.Stats.Truncated {
		t.Fatalf("unexpected stats: %+v", snap.Stats)
	}
}

func TestNewCollectorUsesProcFSWhenRootSet(t *testing.T) {
	root := t.TempDir()
	if _, ok := NewCollector(Options{ProcRoot: root}).(*ProcFS); !ok {
		t.Fatalf("expected procfs collector for explicit root")
	}
}
