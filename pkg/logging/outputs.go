package logging

import (
	"os"
	"sync"
)

// Output is a destination for fully composed log lines. Write receives
// one complete line at a time, trailing newline included; Sync flushes
// whatever the destination buffers so lines survive an abrupt exit.
type Output interface {
	Write(line []byte) error
	Sync() error
}

// ConsoleOutput writes lines to the process's standard output stream.
// The mutex is held for the whole line so concurrent callers never
// interleave partial lines.
type ConsoleOutput struct {
	mu sync.Mutex
	f  *os.File
}

// NewConsoleOutput creates an Output backed by stdout, or stderr when
// useStderr is set.
func NewConsoleOutput(useStderr bool) *ConsoleOutput {
	f := os.Stdout
	if useStderr {
		f = os.Stderr
	}
	return &ConsoleOutput{f: f}
}

func (o *ConsoleOutput) Write(line []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.f.Write(line)
	return err
}

// Sync flushes the underlying file. Stdout attached to a terminal or
// pipe reports ENOTTY/EINVAL here; callers treat that as success.
func (o *ConsoleOutput) Sync() error {
	return o.f.Sync()
}
