package shell

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// PipeDelimiter separates pipeline stages. A | without the surrounding
	// spaces is an ordinary argument.
	PipeDelimiter = " | "
	// RedirectOut sends the output of the last stage to a file.
	RedirectOut = ">"
)

// Stage is one command of a pipeline.
type Stage struct {
	// Args holds the command as Args[0] followed by its arguments.
	Args []string
	// OutFile is the redirect target, empty if the output isn't redirected.
	OutFile string
}

// Name returns the command name of the stage.
func (s Stage) Name() string {
	return s.Args[0]
}

// Pipeline is the sequence of stages parsed from one line.
type Pipeline struct {
	Stages []Stage
}

// OutFile returns the redirect target of the pipeline, if any.
func (p *Pipeline) OutFile() string {
	if len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[len(p.Stages)-1].OutFile
}

// Parse splits a line into pipeline stages and resolves output redirection.
func Parse(line string) (*Pipeline, error) {
	segments := strings.Split(line, PipeDelimiter)

	p := &Pipeline{}
	for i, segment := range segments {
		stage, err := parseStage(strings.Fields(segment))
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", i+1)
		}

		if stage.OutFile != "" && i != len(segments)-1 {
			return nil, errors.Wrapf(ErrRedirectNotLast, "stage %d", i+1)
		}

		p.Stages = append(p.Stages, stage)
	}

	return p, nil
}

func parseStage(tokens []string) (Stage, error) {
	var stage Stage
	for i, tok := range tokens {
		if tok != RedirectOut {
			continue
		}

		if i+1 >= len(tokens) {
			return Stage{}, ErrMissingRedirectTarget
		}
		stage.OutFile = tokens[i+1]
		tokens = tokens[:i]
		break
	}

	if len(tokens) == 0 {
		return Stage{}, ErrEmptyStage
	}
	stage.Args = tokens
	return stage, nil
}
