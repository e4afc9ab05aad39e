package shell

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		line   string
		stages []Stage
	}{
		"single command": {
			line:   "ls",
			stages: []Stage{{Args: []string{"ls"}}},
		},
		"arguments split on whitespace": {
			line:   "ls   -l \t /tmp",
			stages: []Stage{{Args: []string{"ls", "-l", "/tmp"}}},
		},
		"pipeline": {
			line: "echo hello | wc -c",
			stages: []Stage{
				{Args: []string{"echo", "hello"}},
				{Args: []string{"wc", "-c"}},
			},
		},
		"bare pipe is an argument": {
			line:   "echo a|b |c",
			stages: []Stage{{Args: []string{"echo", "a|b", "|c"}}},
		},
		"redirect": {
			line:   "ls > out.txt",
			stages: []Stage{{Args: []string{"ls"}, OutFile: "out.txt"}},
		},
		"redirect truncates arguments": {
			line:   "echo a > out.txt b c",
			stages: []Stage{{Args: []string{"echo", "a"}, OutFile: "out.txt"}},
		},
		"first redirect wins": {
			line:   "echo a > one > two",
			stages: []Stage{{Args: []string{"echo", "a"}, OutFile: "one"}},
		},
		"attached marker isn't a redirect": {
			line:   "echo a>b",
			stages: []Stage{{Args: []string{"echo", "a>b"}}},
		},
		"redirect on last stage": {
			line: "cat /etc/hosts | sort > sorted.txt",
			stages: []Stage{
				{Args: []string{"cat", "/etc/hosts"}},
				{Args: []string{"sort"}, OutFile: "sorted.txt"},
			},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			p, err := Parse(tc.line)

			assert.Nil(t, err)
			assert.Equal(t, tc.stages, p.Stages)
		})
	}
}

func TestParse_errors(t *testing.T) {
	cases := map[string]struct {
		line    string
		wantErr error
		wantMsg string
	}{
		"empty line":             {"", ErrEmptyStage, "stage 1: empty command"},
		"whitespace line":        {"   ", ErrEmptyStage, "stage 1: empty command"},
		"empty middle stage":     {"ls |  | wc", ErrEmptyStage, "stage 2: empty command"},
		"empty leading stage":    {" | wc", ErrEmptyStage, "stage 1: empty command"},
		"no command":             {"> out.txt", ErrEmptyStage, "stage 1: empty command"},
		"missing target":         {"ls >", ErrMissingRedirectTarget, "stage 1: expected filename after >"},
		"missing target piped":   {"ls | wc >", ErrMissingRedirectTarget, "stage 2: expected filename after >"},
		"redirect in the middle": {"ls > a | wc", ErrRedirectNotLast, "stage 1: only the last command may redirect output"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			p, err := Parse(tc.line)

			assert.Nil(t, p)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			assert.EqualError(t, err, tc.wantMsg)
		})
	}
}

func TestPipeline_OutFile(t *testing.T) {
	p, err := Parse("ls | sort > out.txt")
	assert.Nil(t, err)
	assert.Equal(t, "out.txt", p.OutFile())

	assert.Equal(t, "", (&Pipeline{}).OutFile())
}
