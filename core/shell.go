package core

import (
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/pipeshell/psh/core/prompt"
	"github.com/pipeshell/psh/core/shell"
)

// LineReader reads lines of user input.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

// Shell reads lines and runs them on an engine until exit or end of input.
type Shell struct {
	Engine *shell.Engine
	Prompt *prompt.Prompt
	Reader LineReader

	// ClearOnStart clears the terminal before the first prompt.
	ClearOnStart bool
}

func NewShell(engine *shell.Engine, p *prompt.Prompt, reader LineReader) *Shell {
	return &Shell{
		Engine: engine,
		Prompt: p,
		Reader: reader,
	}
}

// NewReadline creates a line editor on the terminal. History is persisted to
// historyFile unless it's empty.
func NewReadline(term shell.Terminal, historyFile string, isTerminal bool) (*readline.Instance, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(term.Stdin),
		Stdout:      term.Stdout,
		Stderr:      term.Stderr,
		HistoryFile: historyFile,

		FuncIsTerminal: func() bool {
			return isTerminal
		},
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	return readline.NewEx(cfg)
}

// Run executes the read loop.
func (s *Shell) Run() {
	if s.ClearOnStart {
		_ = shell.ClearScreen(s.Engine.Terminal.Stdout)
	}

	for !s.Engine.Session.ExitRequested() {
		s.Reader.SetPrompt(s.Prompt.Render(s.Engine.Session.Getwd()))
		line, err := s.Reader.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.Engine.RunLine(line)
	}
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.Reader.Close()
}
