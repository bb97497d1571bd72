// Package sysinfo - Linux-specific enumerator implementation
package sysinfo

import (
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/unix"
)

// hostEnumerator queries the live kernel through gopsutil, with a raw
// sysinfo(2) fallback for the swap counters.
type hostEnumerator struct{}

// NewHostEnumerator returns an Enumerator backed by the running host.
func NewHostEnumerator() Enumerator {
	return hostEnumerator{}
}

func (hostEnumerator) MemorySnapshot() (SwapCounters, error) {
	if swap, err := mem.SwapMemory(); err == nil {
		return SwapCounters{TotalBytes: swap.Total, UsedBytes: swap.Used}, nil
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return SwapCounters{}, err
	}
	unit := uint64(si.Unit)
	total := uint64(si.Totalswap) * unit
	free := uint64(si.Freeswap) * unit
	return SwapCounters{TotalBytes: total, UsedBytes: total - free}, nil
}

func (hostEnumerator) Mounts() ([]MountEntry, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, err
	}

	entries := make([]MountEntry, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			// An unstatable mount (stale NFS, restricted path) just
			// drops out of the candidate list.
			continue
		}
		entries = append(entries, MountEntry{
			Path:       p.Mountpoint,
			TotalBytes: usage.Total,
			AvailBytes: usage.Free,
		})
	}
	return entries, nil
}
