//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srodi/procmon/pkg/collector/process"
	"github.com/srodi/procmon/pkg/metrics"
	"github.com/srodi/procmon/pkg/types"
)

type fakeCollector struct {
	snap *types.Snapshot
	err  error
}

func (f fakeCollector) Collect() (*types.Snapshot, error) { return f.snap, f.err }

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func fileScreen(t *testing.T) (*screen, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create frame file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return &screen{out: f}, path
}

func TestReadKeysForwardsBytesAndCloses(t *testing.T) {
	keys := readKeys(strings.NewReader("xq"))
	var got []byte
	for b := range keys {
		got = append(got, b)
	}
	if string(got) != "xq" {
		t.Fatalf("expected xq, got %q", got)
	}
}

func TestRefreshDrawsSnapshot(t *testing.T) {
	snap := types.NewSnapshot(4)
	snap.Add(types.Process{PID: 31, Name: "sshd", Username: "root", MemoryKB: 5120})
	rec, err := metrics.NewRecorder(nil)
	if err != nil {
		t.Fatal(err)
	}
	view, path := fileScreen(t)

	if err := refresh(fakeCollector{snap: snap}, rec, view, discardLogger()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "\033[") {
		t.Fatalf("non-interactive output must not contain escapes: %q", out)
	}
	if !strings.Contains(out, "Process Monitor | Press 'q' to quit") || !strings.Contains(out, "sshd") {
		t.Fatalf("frame missing content: %q", out)
	}
}

func TestRefreshReturnsListingError(t *testing.T) {
	rec, err := metrics.NewRecorder(nil)
	if err != nil {
		t.Fatal(err)
	}
	view, path := fileScreen(t)
	listingErr := &process.ListingError{Root: "/proc", Err: os.ErrPermission}

	err = refresh(fakeCollector{err: listingErr}, rec, view, discardLogger())
	if !errors.Is(err, process.ErrListingUnavailable) {
		t.Fatalf("expected listing error, got %v", err)
	}
	if data, _ := os.ReadFile(path); len(data) != 0 {
		t.Fatalf("nothing should be drawn on failure, got %q", data)
	}
}
