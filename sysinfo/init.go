// Package sysinfo - Init system detection
package sysinfo

import (
	"fmt"
	"strings"
)

// InitKind tags the detected init system. The zero value is
// InitUnknown, which carries the observed process-1 command in its
// display form.
type InitKind int

const (
	InitUnknown InitKind = iota
	InitSystemd
	InitRunit
	InitS6
	InitOpenRC
	InitSysvinit
	InitSystemdFallback
)

// label returns the display form of a known kind. InitUnknown has no
// fixed label; Init composes it from the observed command.
func (k InitKind) label() string {
	switch k {
	case InitSystemd:
		return "systemd"
	case InitRunit:
		return "runit"
	case InitS6:
		return "s6"
	case InitOpenRC:
		return "openrc"
	case InitSysvinit:
		return "sysvinit"
	case InitSystemdFallback:
		return "systemd (fallback)"
	}
	return unknownField
}

// classifyInit maps the process-1 command name and executable target to
// an InitKind. The decision table is closed: every input falls into
// exactly one row, with the systemd run-directory check as the only
// condition outside comm/exe.
//
//	comm                exe               result
//	systemd             -                 systemd
//	runit, runsvinit    -                 runit
//	s6-svscan           -                 s6
//	init                contains openrc   openrc
//	init                otherwise         sysvinit
//	anything else       -                 systemd-fallback if /run/systemd/systemd exists,
//	                                      else unknown
func classifyInit(comm, exe string, systemdRunDir bool) InitKind {
	switch comm {
	case "systemd":
		return InitSystemd
	case "runit", "runsvinit":
		return InitRunit
	case "s6-svscan":
		return InitS6
	case "init":
		if strings.Contains(exe, "openrc") {
			return InitOpenRC
		}
		return InitSysvinit
	default:
		if systemdRunDir {
			return InitSystemdFallback
		}
		return InitUnknown
	}
}

// Init detects the host's init system from /proc/1. Unreadable inputs
// are treated as empty, so a fully absent /proc still lands in a table
// row and yields "unknown ()".
func Init(src Sources) string {
	comm, err := src.ReadText("/proc/1/comm")
	if err != nil {
		comm = ""
	}
	exe, err := src.ReadLink("/proc/1/exe")
	if err != nil {
		exe = ""
	}

	kind := classifyInit(comm, exe, src.PathExists("/run/systemd/systemd"))
	if kind == InitUnknown {
		return fmt.Sprintf("unknown (%s)", comm)
	}
	return kind.label()
}
