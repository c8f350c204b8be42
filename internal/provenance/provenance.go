// Package provenance records where generated artifacts came from.
package provenance

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

const shortHashLen = 7

// Stamp identifies the source revision of a generation run.
type Stamp struct {
	Commit string
	Branch string
	Dirty  bool
}

// IsZero reports whether no revision information was found.
func (s Stamp) IsZero() bool {
	return s.Commit == ""
}

// Revision renders the commit with a -dirty suffix when the worktree has changes.
func (s Stamp) Revision() string {
	if s.IsZero() {
		return ""
	}
	if s.Dirty {
		return s.Commit + "-dirty"
	}
	return s.Commit
}

// Header renders the do-not-edit banner placed at the top of generated files.
func (s Stamp) Header(version string) string {
	if s.IsZero() {
		return fmt.Sprintf("Generated by brandkit %s. Do not edit.", version)
	}
	return fmt.Sprintf("Generated by brandkit %s from %s. Do not edit.", version, s.Revision())
}

// Detect inspects the git repository enclosing dir. Outside a repository, or
// in a repository without commits, it returns a zero Stamp and no error.
func Detect(dir string) (Stamp, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Stamp{}, nil
		}
		return Stamp{}, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Stamp{}, nil
		}
		return Stamp{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	stamp := Stamp{Commit: head.Hash().String()[:shortHashLen]}
	if head.Name().IsBranch() {
		stamp.Branch = head.Name().Short()
	}

	worktree, err := repo.Worktree()
	if err != nil {
		// bare repositories have no worktree to be dirty
		if errors.Is(err, git.ErrIsBareRepository) {
			return stamp, nil
		}
		return Stamp{}, fmt.Errorf("open worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return Stamp{}, fmt.Errorf("worktree status: %w", err)
	}
	stamp.Dirty = !status.IsClean()

	return stamp, nil
}
