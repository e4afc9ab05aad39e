package core

import (
	"fmt"
	"io"
	"strings"
)

// plainReader reads lines from input that isn't a terminal. It reads a byte at
// a time so input past the current line is left for the commands it runs.
type plainReader struct {
	prompt string
	in     io.Reader
	out    io.Writer
}

var _ LineReader = (*plainReader)(nil)

// NewPlainReader creates a LineReader without line editing or history.
func NewPlainReader(in io.Reader, out io.Writer) LineReader {
	return &plainReader{in: in, out: out}
}

func (r *plainReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *plainReader) Readline() (string, error) {
	fmt.Fprint(r.out, r.prompt)

	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.in.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return strings.TrimSuffix(line.String(), "\r"), nil
			}
			line.WriteByte(buf[0])
			continue
		}

		switch {
		case err == io.EOF && line.Len() > 0:
			return line.String(), nil
		case err != nil:
			return "", err
		}
	}
}

func (r *plainReader) Close() error {
	return nil
}
