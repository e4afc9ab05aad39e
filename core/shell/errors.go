package shell

import "github.com/pkg/errors"

var (
	// ErrEmptyStage is returned when a pipeline stage has no command.
	ErrEmptyStage = errors.New("empty command")
	// ErrMissingRedirectTarget is returned when > isn't followed by a filename.
	ErrMissingRedirectTarget = errors.New("expected filename after " + RedirectOut)
	// ErrRedirectNotLast is returned when a stage other than the last
	// redirects its output.
	ErrRedirectNotLast = errors.New("only the last command may redirect output")
)
