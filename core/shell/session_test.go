package shell

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemSession(t *testing.T) *Session {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.Nil(t, fs.MkdirAll("/home/user/src", 0755))
	require.Nil(t, fs.MkdirAll("/tmp", 0755))
	require.Nil(t, fs.Mkdir("/home/user/locked", 0600))
	require.Nil(t, afero.WriteFile(fs, "/home/user/notes.txt", []byte("hi"), 0644))

	return NewSession(fs, "/home/user")
}

func TestSession_Chdir(t *testing.T) {
	cases := map[string]struct {
		dir    string
		wantWd string
		errMsg string
	}{
		"absolute":       {dir: "/tmp", wantWd: "/tmp"},
		"relative":       {dir: "src", wantWd: "/home/user/src"},
		"parent":         {dir: "..", wantWd: "/home"},
		"unclean":        {dir: "./src/../src/", wantWd: "/home/user/src"},
		"missing":        {dir: "nope", wantWd: "/home/user", errMsg: "chdir nope: file does not exist"},
		"not directory":  {dir: "notes.txt", wantWd: "/home/user", errMsg: "chdir notes.txt: not a directory"},
		"not searchable": {dir: "locked", wantWd: "/home/user", errMsg: "chdir locked: permission denied"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			s := newMemSession(t)

			err := s.Chdir(tc.dir)
			if tc.errMsg == "" {
				assert.Nil(t, err)
			} else {
				assert.EqualError(t, err, tc.errMsg)
			}
			assert.Equal(t, tc.wantWd, s.Getwd())
		})
	}
}

func TestSession_ChangeDirectory(t *testing.T) {
	s := newMemSession(t)

	// cd /tmp; cd - returns to where the first cd started.
	assert.Nil(t, s.ChangeDirectory("/tmp", "/"))
	assert.Equal(t, "/tmp", s.Getwd())
	assert.Nil(t, s.ChangeDirectory("-", "/"))
	assert.Equal(t, "/home/user", s.Getwd())

	// - is a single slot, so repeating it toggles.
	assert.Nil(t, s.ChangeDirectory("-", "/"))
	assert.Equal(t, "/tmp", s.Getwd())

	// No argument goes to the default.
	assert.Nil(t, s.ChangeDirectory("", "/"))
	assert.Equal(t, "/", s.Getwd())
	assert.Equal(t, "/tmp", s.PrevWd())
}

func TestSession_ChangeDirectory_failure(t *testing.T) {
	s := newMemSession(t)

	assert.NotNil(t, s.ChangeDirectory("/does/not/exist", "/"))
	assert.Equal(t, "/home/user", s.Getwd())

	// The slot is recorded at the start of every cd, even failed ones.
	assert.Equal(t, "/home/user", s.PrevWd())
}

func TestSession_dashBeforeAnyCd(t *testing.T) {
	s := newMemSession(t)

	assert.Nil(t, s.ChangeDirectory("-", "/"))
	assert.Equal(t, "/home/user", s.Getwd())
}

func TestSession_Resolve(t *testing.T) {
	s := newMemSession(t)

	assert.Equal(t, "/etc/hosts", s.Resolve("/etc/hosts"))
	assert.Equal(t, "/home/user/out.txt", s.Resolve("out.txt"))
	assert.Equal(t, "/home/out.txt", s.Resolve("../out.txt"))
}

func TestSession_exit(t *testing.T) {
	s := newMemSession(t)

	assert.False(t, s.ExitRequested())
	s.RequestExit()
	assert.True(t, s.ExitRequested())
}
