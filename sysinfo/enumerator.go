// Package sysinfo - Memory/swap/disk enumerator contract
package sysinfo

// SwapCounters holds the kernel's swap accounting as seen by this
// process, in bytes.
type SwapCounters struct {
	TotalBytes uint64
	UsedBytes  uint64
}

// MountEntry describes one mounted filesystem: its mount-point path and
// capacity counters in bytes.
type MountEntry struct {
	Path       string
	TotalBytes uint64
	AvailBytes uint64
}

// Enumerator is the capability set for global memory counters and the
// mounted filesystem list. Like Sources, it exists so tests can inject
// fakes.
type Enumerator interface {
	// MemorySnapshot samples the swap counters atomically from the
	// process's view of the kernel.
	MemorySnapshot() (SwapCounters, error)

	// Mounts returns the mounted filesystems in no particular order.
	// Pseudo-filesystems may or may not appear.
	Mounts() ([]MountEntry, error)
}
