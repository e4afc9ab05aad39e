package shell

import (
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// Session holds the state a shell keeps between lines.
type Session struct {
	fs afero.Fs

	wd     string
	prevWd string
	exit   bool
}

// NewSession creates a session rooted at wd that resolves paths on fsys.
func NewSession(fsys afero.Fs, wd string) *Session {
	wd = filepath.Clean(wd)
	return &Session{
		fs:     fsys,
		wd:     wd,
		prevWd: wd,
	}
}

// Fs returns the filesystem backing the session.
func (s *Session) Fs() afero.Fs {
	return s.fs
}

// Getwd returns the working directory.
func (s *Session) Getwd() string {
	return s.wd
}

// PrevWd returns the directory recorded by the last cd.
func (s *Session) PrevWd() string {
	return s.prevWd
}

// Resolve makes path absolute relative to the working directory.
func (s *Session) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.wd, path)
}

// Chdir changes the working directory. The directory is unchanged on error.
func (s *Session) Chdir(dir string) error {
	target := s.Resolve(dir)

	info, err := s.fs.Stat(target)
	if err != nil {
		if pe, ok := err.(*fs.PathError); ok {
			return &fs.PathError{Op: "chdir", Path: dir, Err: pe.Err}
		}
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	if err := s.searchable(target, info); err != nil {
		return &fs.PathError{Op: "chdir", Path: dir, Err: err}
	}

	s.wd = target
	return nil
}

// searchable checks the directory can be entered. On the OS filesystem that
// is an access check for the current user, elsewhere any execute bit counts.
func (s *Session) searchable(dir string, info fs.FileInfo) error {
	if _, ok := s.fs.(*afero.OsFs); ok {
		return unix.Access(dir, unix.X_OK)
	}
	if info.Mode().Perm()&0111 == 0 {
		return syscall.EACCES
	}
	return nil
}

// ChangeDirectory implements cd. The current directory is recorded before
// the change so "-" can return to it, then dir is resolved: "-" is the
// previously recorded directory and "" is defaultDir.
func (s *Session) ChangeDirectory(dir, defaultDir string) error {
	back := s.prevWd
	s.prevWd = s.wd

	switch dir {
	case "-":
		dir = back
	case "":
		dir = defaultDir
	}

	return s.Chdir(dir)
}

// RequestExit asks the shell to stop after the current line.
func (s *Session) RequestExit() {
	s.exit = true
}

// ExitRequested reports whether exit was called.
func (s *Session) ExitRequested() bool {
	return s.exit
}
