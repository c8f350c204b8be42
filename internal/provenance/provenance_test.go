package provenance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "brandkit.yaml"), []byte("version: \"1.0\"\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("brandkit.yaml")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Brand Bot", Email: "bot@example.com", When: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)

	return dir, hash.String()
}

func TestDetectOutsideRepository(t *testing.T) {
	t.Parallel()

	stamp, err := Detect(t.TempDir())
	require.NoError(t, err)
	require.True(t, stamp.IsZero())
	require.Equal(t, "Generated by brandkit dev. Do not edit.", stamp.Header("dev"))
}

func TestDetectEmptyRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	stamp, err := Detect(dir)
	require.NoError(t, err)
	require.True(t, stamp.IsZero())
}

func TestDetectCleanRepository(t *testing.T) {
	t.Parallel()

	dir, hash := initRepoWithCommit(t)

	sub := filepath.Join(dir, "dist")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	stamp, err := Detect(sub)
	require.NoError(t, err)
	require.Equal(t, hash[:7], stamp.Commit)
	require.Equal(t, "master", stamp.Branch)
	require.False(t, stamp.Dirty)
	require.Equal(t, "Generated by brandkit 1.0.0 from "+hash[:7]+". Do not edit.", stamp.Header("1.0.0"))
}

func TestDetectDirtyRepository(t *testing.T) {
	t.Parallel()

	dir, hash := initRepoWithCommit(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brandkit.yaml"), []byte("version: \"2.0\"\n"), 0o644))

	stamp, err := Detect(dir)
	require.NoError(t, err)
	require.True(t, stamp.Dirty)
	require.Equal(t, hash[:7]+"-dirty", stamp.Revision())
}
