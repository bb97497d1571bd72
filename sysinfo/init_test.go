package sysinfo

import "testing"

// Every row of the init decision table, including the fallback rows.
func TestInitDecisionTable(t *testing.T) {
	tests := []struct {
		name          string
		comm          string
		exe           string
		systemdRunDir bool
		want          string
	}{
		{"systemd", "systemd", "/usr/lib/systemd/systemd", false, "systemd"},
		{"runit", "runit", "/sbin/runit", false, "runit"},
		{"runsvinit", "runsvinit", "/sbin/runsvinit", false, "runit"},
		{"s6", "s6-svscan", "/bin/s6-svscan", false, "s6"},
		{"openrc", "init", "/lib/rc/sh/openrc-run", false, "openrc"},
		{"sysvinit", "init", "/sbin/init", false, "sysvinit"},
		{"systemd fallback", "mystery", "/opt/mystery", true, "systemd (fallback)"},
		{"unknown", "mystery", "/opt/mystery", false, "unknown (mystery)"},
	}
	for _, tc := range tests {
		src := fakeSources{
			files:  map[string]string{"/proc/1/comm": tc.comm + "\n"},
			links:  map[string]string{"/proc/1/exe": tc.exe},
			exists: map[string]bool{"/run/systemd/systemd": tc.systemdRunDir},
		}
		if got := Init(src); got != tc.want {
			t.Fatalf("%s: Init = %q; want %q", tc.name, got, tc.want)
		}
	}
}

// An unreadable /proc/1 still lands in the table: empty comm falls to
// the default row.
func TestInitUnreadableProc(t *testing.T) {
	if got := Init(fakeSources{}); got != "unknown ()" {
		t.Fatalf("Init with absent /proc/1 = %q; want %q", got, "unknown ()")
	}

	src := fakeSources{exists: map[string]bool{"/run/systemd/systemd": true}}
	if got := Init(src); got != "systemd (fallback)" {
		t.Fatalf("Init with absent /proc/1 but systemd run dir = %q; want %q",
			got, "systemd (fallback)")
	}
}

func TestClassifyInitOpenRCSubstring(t *testing.T) {
	// The openrc row keys on a substring of the exe target, wherever it
	// appears in the path.
	if got := classifyInit("init", "/usr/libexec/openrc/init", false); got != InitOpenRC {
		t.Fatalf("classifyInit openrc substring = %v; want InitOpenRC", got)
	}
	if got := classifyInit("init", "", false); got != InitSysvinit {
		t.Fatalf("classifyInit empty exe = %v; want InitSysvinit", got)
	}
}
