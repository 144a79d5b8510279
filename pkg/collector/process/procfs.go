package process

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/srodi/procmon/pkg/types"
)

// DefaultProcRoot is where the kernel exposes per-process records.
const DefaultProcRoot = "/proc"

const readDirBatch = 128

// ProcFS collects snapshots by walking a procfs mount.
type ProcFS struct {
	root     string
	capacity int
}

// NewProcFS returns a collector rooted at root (DefaultProcRoot when empty).
func NewProcFS(root string, capacity int) *ProcFS {
	if root == "" {
		root = DefaultProcRoot
	}
	return &ProcFS{root: root, capacity: capacity}
}

// Root returns the procfs mount the collector reads.
func (c *ProcFS) Root() string { return c.root }

// Collect walks the listing in the order the kernel returns it and keeps every
// process with non-zero resident memory, stopping silently at capacity.
// Only a failure to open the listing is returned.
func (c *ProcFS) Collect() (*types.Snapshot, error) {
	dir, err := os.Open(c.root)
	if err != nil {
		return nil, &ListingError{Root: c.root, Err: err}
	}
	defer dir.Close()

	snap := types.NewSnapshot(c.capacity)
	for {
		// File.ReadDir keeps directory order; os.ReadDir would sort by name.
		entries, err := dir.ReadDir(readDirBatch)
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			pid, ok := leadingPID(entry.Name())
			if !ok {
				continue
			}
			if !admit(snap, pid, c.ReadAttributes) {
				return snap, nil
			}
		}
		if err != nil {
			// io.EOF, or the listing went away mid-scan: keep what was gathered.
			return snap, nil
		}
	}
}

// ReadAttributes returns the best-effort attributes of pid. Every field starts
// at its default and unreadable or malformed records leave it there, so a
// process that exited before or during the call yields a default entry.
func (c *ProcFS) ReadAttributes(pid int) types.Process {
	proc := types.NewProcess(pid)
	base := filepath.Join(c.root, strconv.Itoa(pid))

	if data, err := procReadFile(filepath.Join(base, "comm")); err == nil {
		if name := firstLine(data); name != "" {
			proc.Name = truncate(name, types.NameCapacity)
		}
	}

	if data, err := procReadFile(filepath.Join(base, "status")); err == nil {
		parseStatus(data, &proc)
	}
	return proc
}

// parseStatus applies the Uid and VmRSS lines of a status record. Line order
// is not assumed; for repeated keys the last usable line wins.
func parseStatus(data []byte, proc *types.Process) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Uid:"):
			uid, ok := firstField(line[len("Uid:"):])
			if !ok {
				continue
			}
			if _, err := strconv.ParseUint(uid, 10, 32); err != nil {
				continue
			}
			if name, err := lookupUsername(uid); err == nil && name != "" {
				proc.Username = truncate(name, types.UsernameCapacity)
			}
		case strings.HasPrefix(line, "VmRSS:"):
			// Already in kB.
			value, ok := firstField(line[len("VmRSS:"):])
			if !ok {
				continue
			}
			if kb, err := strconv.ParseUint(value, 10, 64); err == nil {
				proc.MemoryKB = kb
			}
		}
	}
}
