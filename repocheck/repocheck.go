// Package repocheck inspects a git worktree for uncommitted changes. It backs
// the repocheck CLI, which CI runs as a gate before cloud operations.
package repocheck

import (
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// Report classifies the paths git considers dirty.
type Report struct {
	// Staged paths have index changes waiting for a commit.
	Staged []string
	// Modified paths are tracked files changed (or deleted) in the
	// worktree without being staged.
	Modified []string
	// Untracked paths are unknown to git. They only make the repo dirty
	// under strict mode, but are always reported.
	Untracked []string
}

// Dirty reports whether the worktree should block a cloud operation.
// Untracked files count only when strict is set.
func (r Report) Dirty(strict bool) bool {
	if len(r.Staged) > 0 || len(r.Modified) > 0 {
		return true
	}
	return strict && len(r.Untracked) > 0
}

// Clean is the inverse of Dirty with strict mode off, kept for readable call
// sites.
func (r Report) Clean() bool {
	return !r.Dirty(false)
}

// Check opens the repository at or above path and classifies its status. Any
// failure to open the repository or read its status is a tool error, distinct
// from a dirty worktree.
func Check(path string) (Report, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Report{}, fmt.Errorf("repocheck.Check: open %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return Report{}, fmt.Errorf("repocheck.Check: worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return Report{}, fmt.Errorf("repocheck.Check: status: %w", err)
	}

	var rep Report
	for file, fs := range status {
		switch {
		case fs.Staging == git.Untracked || fs.Worktree == git.Untracked:
			rep.Untracked = append(rep.Untracked, file)
		case isStagedCode(fs.Staging):
			rep.Staged = append(rep.Staged, file)
		case fs.Worktree == git.Modified || fs.Worktree == git.Deleted:
			rep.Modified = append(rep.Modified, file)
		}
	}

	// Status iteration order is map order; make reports stable.
	sort.Strings(rep.Staged)
	sort.Strings(rep.Modified)
	sort.Strings(rep.Untracked)
	return rep, nil
}

func isStagedCode(c git.StatusCode) bool {
	switch c {
	case git.Modified, git.Added, git.Deleted, git.Renamed, git.Copied:
		return true
	default:
		return false
	}
}
