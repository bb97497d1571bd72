// Package sysinfo collects and formats a compact summary of the host:
// identity, operating system, init system, kernel, uptime, shell,
// memory and swap usage, and filesystem capacity for a fixed set of
// mount points. All host access goes through the Sources and
// Enumerator capability sets so every probe is testable in isolation.
package sysinfo

// StoragePaths are the mount points reported in the storage section,
// in display order.
var StoragePaths = [3]string{"/boot", "/", "/home"}

// Report holds one display string per field, ready for rendering.
// Every field is non-empty: probes substitute literal fallbacks for
// anything they cannot read.
type Report struct {
	// User is the current user's name
	User string

	// Hostname is the computer's network name
	Hostname string

	// OS is the full operating system name and version
	OS string

	// Init is the detected init system
	Init string

	// Kernel is the operating system kernel release
	Kernel string

	// Uptime is the formatted system uptime duration
	Uptime string

	// Shell is the current command shell being used
	Shell string

	// Memory shows used/total RAM
	Memory string

	// Swap shows used/total swap space
	Swap string

	// Storage shows used/total disk space, one entry per StoragePaths
	// element
	Storage [3]string
}

// Collect runs every probe once, in display order, and returns the
// assembled report. Probes sample independently, so the snapshot is
// not atomic across fields; that is fine for a human display.
func Collect(src Sources, enum Enumerator) Report {
	r := Report{
		User:     User(src),
		Hostname: Hostname(src),
		OS:       OS(src),
		Init:     Init(src),
		Kernel:   Kernel(src),
		Uptime:   Uptime(src),
		Shell:    Shell(src),
		Memory:   Memory(src),
		Swap:     Swap(enum),
	}
	for i, path := range StoragePaths {
		r.Storage[i] = Storage(enum, path)
	}
	return r
}
