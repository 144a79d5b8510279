package types

// MaxProcesses is the default number of entries a snapshot can hold.
const MaxProcesses = 1024

// Sentinels used when a process attribute cannot be read.
const (
	UnknownName  = "unknown"
	UnknownUser  = "unknown"
	UnknownState = '?'
)

// Field capacities in bytes; longer values are truncated.
const (
	NameCapacity     = 255
	UsernameCapacity = 31
)

// Process holds the attributes observed for one PID at collection time.
type Process struct {
	PID      int
	Name     string
	Username string
	// State is reserved. It is always UnknownState.
	State byte
	// CPUUsage is reserved. It is always zero.
	CPUUsage float64
	// MemoryKB is the resident set size in kilobytes.
	MemoryKB uint64
}

// NewProcess returns an entry for pid with every field at its default.
func NewProcess(pid int) Process {
	return Process{
		PID:      pid,
		Name:     UnknownName,
		Username: UnknownUser,
		State:    UnknownState,
	}
}

// Stats records what happened while a snapshot was filled.
type Stats struct {
	Scanned   int  // candidate PIDs whose attributes were read
	Excluded  int  // candidates dropped because no resident memory was read
	Truncated bool // capacity was reached while candidates remained
}

// Snapshot is a bounded, discovery-ordered list of processes.
// A new one is built on every collection; entries are never mutated once added.
type Snapshot struct {
	entries  []Process
	capacity int
	Stats    Stats
}

// NewSnapshot allocates an empty snapshot. A non-positive capacity selects MaxProcesses.
func NewSnapshot(capacity int) *Snapshot {
	if capacity <= 0 {
		capacity = MaxProcesses
	}
	return &Snapshot{
		entries:  make([]Process, 0, capacity),
		capacity: capacity,
	}
}

// Add appends p and reports whether it was kept. Nothing is added once the snapshot is full.
func (s *Snapshot) Add(p Process) bool {
	if s.Full() {
		return false
	}
	s.entries = append(s.entries, p)
	return true
}

// Full reports whether the snapshot reached its capacity.
func (s *Snapshot) Full() bool { return len(s.entries) >= s.capacity }

// Len returns the number of entries.
func (s *Snapshot) Len() int { return len(s.entries) }

// Cap returns the fixed capacity.
func (s *Snapshot) Cap() int { return s.capacity }

// At returns the i-th entry in discovery order.
func (s *Snapshot) At(i int) Process { return s.entries[i] }

// Entries returns a copy of the entries.
func (s *Snapshot) Entries() []Process {
	out := make([]Process, len(s.entries))
	copy(out, s.entries)
	return out
}
