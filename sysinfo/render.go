// Package sysinfo - Report rendering
package sysinfo

import (
	"fmt"
	"io"
	"strings"
)

// labelWidth is the padded width of the label column; every colon
// lands in the same column.
const labelWidth = 8

// separator is the line under the user@host heading.
const separator = "----------"

// Render writes the report to w in the fixed fetch layout:
//
//	user@host
//	----------
//	OS      : ...
//	...
//	Storage : ... (/boot)
//	          ... (/)
//	          ... (/home)
//
// The layout is exactly twelve lines; continuation lines of the
// storage section are indented to align with the first storage value.
// Render never trims or rewrites probe output.
func Render(w io.Writer, r Report) {
	fmt.Fprintf(w, "%s@%s\n", r.User, r.Hostname)
	fmt.Fprintln(w, separator)

	rows := []struct {
		label string
		value string
	}{
		{"OS", r.OS},
		{"Init", r.Init},
		{"Kernel", r.Kernel},
		{"Uptime", r.Uptime},
		{"Shell", r.Shell},
		{"Memory", r.Memory},
		{"Swap", r.Swap},
		{"Storage", r.Storage[0]},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%s: %s\n", PadRight(row.label, labelWidth), row.value)
	}

	indent := strings.Repeat(" ", labelWidth+2)
	for _, entry := range r.Storage[1:] {
		fmt.Fprintf(w, "%s%s\n", indent, entry)
	}
}
