package shell

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pborman/getopt/v2"
	"github.com/pipeshell/psh/core/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Name prefixes messages the shell writes to stderr.
const Name = "psh"

// EventRecorder receives an event for each stage the engine handles.
type EventRecorder interface {
	Record(event logger.LogType) error
}

// Engine runs lines of input as pipelines.
type Engine struct {
	Session  *Session
	Terminal Terminal
	Launcher *Launcher
	Events   EventRecorder

	// Farewell is printed by exit.
	Farewell string
	// CdDefault is the target of cd without arguments.
	CdDefault string
	// WaitBeforeBuiltin waits for a pending stage before a builtin later in
	// the same pipeline runs, otherwise the stage is left running.
	WaitBeforeBuiltin bool
}

// NewEngine creates an engine for the session that reads and writes term.
func NewEngine(session *Session, term Terminal) *Engine {
	return &Engine{
		Session:  session,
		Terminal: term,
		Launcher: &Launcher{
			Session:  session,
			Terminal: term,
		},
		Events:            logger.NewNopLogger().Sessionless(),
		Farewell:          "Goodbye",
		CdDefault:         "/",
		WaitBeforeBuiltin: true,
	}
}

// RunLine executes one line of input and returns once the last stage of its
// pipeline has exited.
func (e *Engine) RunLine(line string) {
	pipeline, err := Parse(line)
	if err != nil {
		e.errorf("syntax error: %v", err)
		e.record(&logger.InvalidInvocation{Line: line, Error: err.Error()})
		return
	}

	// The redirect target is opened before anything runs so a bad path stops
	// the whole line.
	var outFile afero.File
	if name := pipeline.OutFile(); name != "" {
		outFile, err = e.Session.Fs().OpenFile(e.Session.Resolve(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			e.errorf("%v", err)
			e.record(&logger.InvalidInvocation{Line: line, Error: err.Error()})
			return
		}
	}

	var prev *Handle
	for i, stage := range pipeline.Stages {
		last := i == len(pipeline.Stages)-1

		if builtin := LookupBuiltin(stage.Name()); builtin != External {
			e.settle(prev)
			prev = nil

			e.runBuiltin(builtin, stage)
			if e.Session.ExitRequested() {
				break
			}
			continue
		}

		var sink afero.File
		if last {
			sink, outFile = outFile, nil
		}

		h, err := e.Launcher.Launch(stage, prev, !last, sink)
		if prev != nil {
			prev.Discard()
		}
		prev = h

		if err != nil {
			e.reportStartFailure(stage, err)
			continue
		}

		e.record(&logger.RunCommand{
			Command:             stage.Args,
			ResolvedCommandPath: h.Path(),
			Pid:                 h.Pid(),
			Stage:               i + 1,
			Stdin:               h.Source.String(),
			Stdout:              h.Sink.String(),
		})
	}

	// Left over when the last stage was a builtin.
	if outFile != nil {
		outFile.Close()
	}

	if prev != nil {
		prev.Wait()
	}
}

func (e *Engine) settle(h *Handle) {
	switch {
	case h == nil:
	case e.WaitBeforeBuiltin:
		h.Finish()
	default:
		h.Discard()
	}
}

func (e *Engine) runBuiltin(builtin Builtin, stage Stage) {
	var err error
	switch builtin {
	case Exit:
		fmt.Fprintln(e.Terminal.Stdout, e.Farewell)
		e.Session.RequestExit()
	case Clear:
		err = ClearScreen(e.Terminal.Stdout)
	case Cd:
		err = e.cd(stage.Args)
	}

	event := &logger.BuiltinCommand{Command: stage.Args}
	if err != nil {
		event.Error = err.Error()
	}
	e.record(event)
}

var errTooManyArgs = errors.New("too many arguments")

func (e *Engine) cd(args []string) error {
	// A lone - is an operand, not an option.
	if len(args) == 2 && args[1] == "-" {
		return e.chdir(args[0], "-")
	}

	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 0, "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := e.Terminal.Stdout
		if err != nil {
			w = e.Terminal.Stderr
			fmt.Fprintf(w, "%s: %v\n", args[0], err)
		}
		fmt.Fprintln(w, "usage: cd [DIR|-]")
		fmt.Fprintln(w, "Change the shell working directory, - returns to the previous one.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return err
	}

	switch operands := opts.Args(); len(operands) {
	case 0:
		return e.chdir(args[0], "")
	case 1:
		return e.chdir(args[0], operands[0])
	default:
		fmt.Fprintf(e.Terminal.Stderr, "%s: %v\n", args[0], errTooManyArgs)
		return errTooManyArgs
	}
}

func (e *Engine) chdir(name, dir string) error {
	if err := e.Session.ChangeDirectory(dir, e.CdDefault); err != nil {
		fmt.Fprintf(e.Terminal.Stderr, "%s: %v\n", name, err)
		return err
	}
	return nil
}

func (e *Engine) reportStartFailure(stage Stage, err error) {
	if errors.Is(err, exec.ErrNotFound) {
		e.errorf("%s: command not found", stage.Name())
	} else {
		e.errorf("%s: %v", stage.Name(), err)
	}

	e.record(&logger.UnknownCommand{Command: stage.Args, ErrorMessage: err.Error()})
}

func (e *Engine) errorf(format string, a ...interface{}) {
	fmt.Fprintf(e.Terminal.Stderr, "%s: %s\n", Name, fmt.Sprintf(format, a...))
}

func (e *Engine) record(event logger.LogType) {
	if e.Events == nil {
		return
	}
	_ = e.Events.Record(event)
}
