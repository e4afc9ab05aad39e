package shell

import (
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

func (s *Session) findExecutable(file string) error {
	d, err := s.fs.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// pathEnv. If file contains a slash, it is tried directly and pathEnv is not
// consulted. Relative paths are resolved against the working directory so the
// result is always absolute.
//
// Errors are *exec.Error so callers can match exec.ErrNotFound.
func (s *Session) LookPath(file, pathEnv string) (string, error) {
	if strings.Contains(file, "/") {
		path := s.Resolve(file)
		if err := s.findExecutable(path); err != nil {
			return "", &exec.Error{Name: file, Err: err}
		}
		return path, nil
	}

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := s.Resolve(filepath.Join(dir, file))
		if err := s.findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}
