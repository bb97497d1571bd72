// Package sysinfo - Probes
//
// Each probe samples one piece of host state through the Sources or
// Enumerator capability set and returns a single-line display string.
// Probes are independent, are invoked once each, and never fail: every
// internal error is absorbed into the probe's literal fallback.
package sysinfo

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// User returns the current user's name from $USER.
func User(src Sources) string {
	user, ok := src.Env("USER")
	if !ok || user == "" {
		return unknownField
	}
	return user
}

// Hostname returns the trimmed contents of /etc/hostname.
func Hostname(src Sources) string {
	host, err := src.ReadText("/etc/hostname")
	if err != nil || host == "" {
		return unknownField
	}
	return host
}

// OS returns the PRETTY_NAME value from /etc/os-release, with
// surrounding double quotes stripped.
func OS(src Sources) string {
	content, err := src.ReadText("/etc/os-release")
	if err != nil {
		return unknownField
	}
	for _, line := range strings.Split(content, "\n") {
		if name, found := strings.CutPrefix(line, "PRETTY_NAME="); found {
			if name = strings.Trim(name, `"`); name != "" {
				return name
			}
			return unknownField
		}
	}
	return unknownField
}

// Kernel returns the trimmed output of `uname -r`.
func Kernel(src Sources) string {
	out, err := src.Run("uname", "-r")
	if err != nil {
		return unknownField
	}
	release := strings.TrimSpace(out)
	if release == "" {
		return unknownField
	}
	return release
}

// Uptime reads /proc/uptime and renders the elapsed time as "{H}h {M}m".
func Uptime(src Sources) string {
	content, err := src.ReadText("/proc/uptime")
	if err != nil {
		return unknownField
	}
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return unknownField
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return unknownField
	}
	return formatUptime(seconds)
}

// Shell returns the final path component of $SHELL.
func Shell(src Sources) string {
	shell, ok := src.Env("SHELL")
	if !ok || shell == "" {
		return unknownField
	}
	return filepath.Base(shell)
}

// Memory reads /proc/meminfo and renders used/total RAM in binary
// gibibytes, where used = MemTotal - MemAvailable.
func Memory(src Sources) string {
	content, err := src.ReadText("/proc/meminfo")
	if err != nil {
		return unknownField
	}

	var total, available uint64
	for _, line := range strings.Split(content, "\n") {
		// The key match is deliberately asymmetric: MemTotal as a bare
		// prefix, MemAvailable with the trailing space. Both forms are
		// produced by contemporary kernels and the output must stay
		// byte-compatible with either.
		if strings.HasPrefix(line, "MemTotal:") {
			total = extractKB(line)
		} else if strings.HasPrefix(line, "MemAvailable: ") {
			available = extractKB(line)
		}
	}

	if total == 0 {
		return unknownField
	}
	if available > total {
		available = total
	}
	return formatRatio(kibToGiB(total-available), kibToGiB(total))
}

// extractKB pulls the kibibyte count out of a meminfo line such as
// "MemTotal:  8192000 kB". Unparseable lines count as zero.
func extractKB(line string) uint64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	kb, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return kb
}

// Swap renders used/total swap in decimal gigabytes. A host with no
// swap configured reads "0.0 GiB / 0.0 GiB", not "unknown"; a failed
// snapshot is treated the same way.
func Swap(enum Enumerator) string {
	counters, err := enum.MemorySnapshot()
	if err != nil {
		counters = SwapCounters{}
	}
	return formatRatio(bytesToGB(counters.UsedBytes), bytesToGB(counters.TotalBytes))
}

// Storage renders used/total space in decimal gigabytes for the
// filesystem holding path, chosen by longest-prefix match over the
// mount list. Ties keep the first-seen entry. With no matching mount
// the result is "N/A ({path})".
func Storage(enum Enumerator, path string) string {
	mounts, err := enum.Mounts()
	if err != nil {
		return fmt.Sprintf("N/A (%s)", path)
	}

	var best *MountEntry
	for i := range mounts {
		m := &mounts[i]
		if !strings.HasPrefix(path, m.Path) {
			continue
		}
		if best == nil || len(m.Path) > len(best.Path) {
			best = m
		}
	}
	if best == nil {
		return fmt.Sprintf("N/A (%s)", path)
	}

	avail := best.AvailBytes
	if avail > best.TotalBytes {
		avail = best.TotalBytes
	}
	used := best.TotalBytes - avail
	return fmt.Sprintf("%s (%s)", formatRatio(bytesToGB(used), bytesToGB(best.TotalBytes)), path)
}
