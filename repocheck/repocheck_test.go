package repocheck_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueroa/finlib/repocheck"
)

func initRepo(t *testing.T) (string, *git.Worktree) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	return dir, wt
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func commitAll(t *testing.T, wt *git.Worktree, msg string) {
	t.Helper()
	_, err := wt.Add(".")
	require.NoError(t, err)
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestCheck_CleanRepo(t *testing.T) {
	dir, wt := initRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	commitAll(t, wt, "initial")

	rep, err := repocheck.Check(dir)
	require.NoError(t, err)
	assert.True(t, rep.Clean())
	assert.False(t, rep.Dirty(true))
	assert.Empty(t, rep.Staged)
	assert.Empty(t, rep.Modified)
	assert.Empty(t, rep.Untracked)
}

func TestCheck_UntrackedOnlyCountsUnderStrict(t *testing.T) {
	dir, wt := initRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	commitAll(t, wt, "initial")
	writeFile(t, dir, "new.txt", "scratch\n")

	rep, err := repocheck.Check(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"new.txt"}, rep.Untracked)
	assert.False(t, rep.Dirty(false))
	assert.True(t, rep.Dirty(true))
}

func TestCheck_StagedFile(t *testing.T) {
	dir, wt := initRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	commitAll(t, wt, "initial")

	writeFile(t, dir, "b.txt", "staged\n")
	_, err := wt.Add("b.txt")
	require.NoError(t, err)

	rep, err := repocheck.Check(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, rep.Staged)
	assert.True(t, rep.Dirty(false))
}

func TestCheck_ModifiedTrackedFile(t *testing.T) {
	dir, wt := initRepo(t)
	writeFile(t, dir, "a.txt", "hello\n")
	commitAll(t, wt, "initial")

	writeFile(t, dir, "a.txt", "changed\n")

	rep, err := repocheck.Check(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, rep.Modified)
	assert.Empty(t, rep.Staged)
	assert.True(t, rep.Dirty(false))
}

func TestCheck_NotARepository(t *testing.T) {
	_, err := repocheck.Check(t.TempDir())
	assert.Error(t, err)
}
