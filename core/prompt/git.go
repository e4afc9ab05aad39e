package prompt

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GitBranch returns the checked out branch of the repository containing dir,
// the abbreviated commit if HEAD is detached, or an empty string outside a
// repository.
func GitBranch(dir string) string {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return ""
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short()
	}
	return head.Hash().String()[:7]
}
