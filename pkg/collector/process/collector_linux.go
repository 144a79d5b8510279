//go:build linux
// +build linux

package process

// NewCollector returns the procfs collector.
func NewCollector(opts Options) Collector {
	return NewProcFS(opts.ProcRoot, opts.Capacity)
}
