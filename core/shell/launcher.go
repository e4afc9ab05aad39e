package shell

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Terminal holds the streams a stage inherits when it isn't piped or
// redirected.
type Terminal struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// EnvPath is the variable searched for commands.
const EnvPath = "PATH"

// Launcher starts pipeline stages as child processes.
type Launcher struct {
	Session  *Session
	Terminal Terminal
	// Env is the environment of started processes, nil inherits the shell's.
	Env []string
}

// Launch starts stage. Its input is taken from prev when prev is non-nil,
// otherwise it reads the terminal. Its output goes to outFile if set, to a new
// pipe if hasNext is true, and to the terminal otherwise.
//
// Launch takes ownership of outFile and of prev's output pipe, both are closed
// if the stage fails to start. prev itself stays with the caller.
func (l *Launcher) Launch(stage Stage, prev *Handle, hasNext bool, outFile io.WriteCloser) (*Handle, error) {
	h := &Handle{Stage: stage}

	cmd := &exec.Cmd{
		Args:   stage.Args,
		Dir:    l.Session.Getwd(),
		Env:    l.Env,
		Stdin:  l.Terminal.Stdin,
		Stderr: l.Terminal.Stderr,
	}
	h.cmd = cmd

	// Copies held by the shell that must be closed once the child has its own.
	var parentCopies []io.Closer
	fail := func(err error) (*Handle, error) {
		closeAll(parentCopies)
		closeAll(h.closeAfterWait)
		h.closeStdout()
		return nil, err
	}

	if prev != nil {
		if r := prev.TakeStdout(); r != nil {
			cmd.Stdin = r
			h.Source = SourcePipe
			parentCopies = append(parentCopies, r)
		}
	}

	switch {
	case outFile != nil:
		cmd.Stdout = outFile
		h.Sink = SinkFile
		if _, ok := outFile.(*os.File); ok {
			parentCopies = append(parentCopies, outFile)
		} else {
			// exec copies non-file writers until the process exits.
			h.closeAfterWait = append(h.closeAfterWait, outFile)
		}

	case hasNext:
		r, w, err := os.Pipe()
		if err != nil {
			return fail(errors.Wrap(err, "creating pipe"))
		}
		cmd.Stdout = w
		h.Sink = SinkPipe
		h.stdout = r
		parentCopies = append(parentCopies, w)

	default:
		cmd.Stdout = l.Terminal.Stdout
	}

	path, err := l.Session.LookPath(stage.Name(), l.pathEnv())
	if err != nil {
		return fail(err)
	}
	cmd.Path = path

	if err := cmd.Start(); err != nil {
		return fail(err)
	}

	closeAll(parentCopies)
	return h, nil
}

func (l *Launcher) pathEnv() string {
	if l.Env == nil {
		return os.Getenv(EnvPath)
	}
	for _, kv := range l.Env {
		if strings.HasPrefix(kv, EnvPath+"=") {
			return strings.TrimPrefix(kv, EnvPath+"=")
		}
	}
	return ""
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
