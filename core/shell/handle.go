package shell

import (
	"io"
	"os"
	"os/exec"
)

// Source is where a started stage reads its input from.
type Source int

const (
	SourceTerminal Source = iota
	SourcePipe
)

func (s Source) String() string {
	if s == SourcePipe {
		return "pipe"
	}
	return "terminal"
}

// Sink is where a started stage writes its output to.
type Sink int

const (
	SinkTerminal Sink = iota
	SinkPipe
	SinkFile
)

func (s Sink) String() string {
	switch s {
	case SinkPipe:
		return "pipe"
	case SinkFile:
		return "file"
	default:
		return "terminal"
	}
}

// Handle owns a started process and, if its output was piped, the unread end
// of that pipe. A Handle has a single owner at a time and must end with
// exactly one call to Wait, Finish or Discard.
type Handle struct {
	Stage  Stage
	Source Source
	Sink   Sink

	cmd            *exec.Cmd
	stdout         *os.File
	closeAfterWait []io.Closer
}

// Pid returns the process ID of the stage.
func (h *Handle) Pid() int {
	return h.cmd.Process.Pid
}

// Path returns the resolved executable of the stage.
func (h *Handle) Path() string {
	return h.cmd.Path
}

// TakeStdout moves the read end of the stage's output pipe to the caller.
// Later calls return nil.
func (h *Handle) TakeStdout() *os.File {
	r := h.stdout
	h.stdout = nil
	return r
}

// Wait blocks until the process exits. The exit status is discarded, only
// failures to wait are returned.
func (h *Handle) Wait() error {
	err := h.cmd.Wait()
	for _, c := range h.closeAfterWait {
		c.Close()
	}
	h.closeAfterWait = nil

	if _, ok := err.(*exec.ExitError); ok {
		return nil
	}
	return err
}

// Finish closes any output nobody is going to read and waits for the process.
func (h *Handle) Finish() error {
	h.closeStdout()
	return h.Wait()
}

// Discard closes any output nobody is going to read and reaps the process in
// the background.
func (h *Handle) Discard() {
	h.closeStdout()
	go h.Wait()
}

func (h *Handle) closeStdout() {
	if r := h.TakeStdout(); r != nil {
		r.Close()
	}
}
