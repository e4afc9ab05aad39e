package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitBranch(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0755))

	assert.Equal(t, "master", GitBranch(dir))
	assert.Equal(t, "master", GitBranch(sub))
}

func TestGitBranch_notRepository(t *testing.T) {
	assert.Equal(t, "", GitBranch(t.TempDir()))
}
