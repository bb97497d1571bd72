// Package sysinfo - Host-info source accessors
package sysinfo

import (
	"os"
	"os/exec"
	"strings"
)

// Sources is the capability set through which probes touch the host.
// Every probe reads files, links, environment variables, and command
// output exclusively through this interface, so tests can substitute
// in-memory fakes.
//
// Each operation is total: it never panics, and every failure is
// reported as an error (or false/ok) that the caller must handle.
type Sources interface {
	// ReadText reads a small text file in full and trims trailing
	// whitespace and newlines from the result.
	ReadText(path string) (string, error)

	// ReadLink resolves one level of a symbolic link and returns its
	// target.
	ReadLink(path string) (string, error)

	// PathExists reports whether the path exists.
	PathExists(path string) bool

	// Env looks up an environment variable.
	Env(name string) (string, bool)

	// Run executes a command, blocks until it exits, and returns its
	// captured standard output. A non-zero exit is an error; standard
	// error is not captured.
	Run(name string, args ...string) (string, error)
}

// hostSources reads the live host: files under /proc and /etc, the
// process environment, and external utilities.
type hostSources struct{}

// NewHostSources returns a Sources backed by the running host.
func NewHostSources() Sources {
	return hostSources{}
}

func (hostSources) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), " \t\r\n"), nil
}

func (hostSources) ReadLink(path string) (string, error) {
	return os.Readlink(path)
}

func (hostSources) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (hostSources) Env(name string) (string, bool) {
	return os.LookupEnv(name)
}

func (hostSources) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
