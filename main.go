// Package main provides the gofetch command-line tool: a terminal
// fetch utility that prints a compact summary of the host it runs on.
package main

import (
	"os"

	"gofetch/sysinfo"
)

// main gathers every field once and prints the report. There are no
// flags or arguments; anything on the command line is ignored. The
// process exits 0 regardless of how many probes fell back, and never
// writes to standard error.
func main() {
	src := sysinfo.NewHostSources()
	enum := sysinfo.NewHostEnumerator()

	report := sysinfo.Collect(src, enum)
	sysinfo.Render(os.Stdout, report)
}
