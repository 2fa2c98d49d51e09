package ossthis

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstaller_ContinueOnErrorAttemptsEveryFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	destDir := t.TempDir()
	blocked := filepath.Join(destDir, "CONTRIBUTING.md")
	require.NoError(t, os.Mkdir(blocked, 0o755))

	var seen []string
	in, err := New(Options{
		DestDir:         destDir,
		ContinueOnError: true,
		OnResult: func(r Result) {
			seen = append(seen, r.Dest)
		},
	})
	require.NoError(t, err)

	// --- Act ---
	results, err := in.Install(Contributing, License)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{
		blocked,
		filepath.Join(destDir, "CONTRIBUTORS.md"),
		filepath.Join(destDir, "LICENSE"),
	}, seen)

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, blocked, failed[0].Dest)
	assert.False(t, failed[0].Success)

	assert.True(t, results[1].Success)
	assert.True(t, results[2].Success)
	assert.FileExists(t, filepath.Join(destDir, "CONTRIBUTORS.md"))
	assert.FileExists(t, filepath.Join(destDir, "LICENSE"))
}

func TestInstaller_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	destDir := t.TempDir()
	blocked := filepath.Join(destDir, "CONTRIBUTING.md")
	require.NoError(t, os.Mkdir(blocked, 0o755))

	in, err := New(Options{DestDir: destDir})
	require.NoError(t, err)

	results, err := in.Install(Contributing, License)

	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Error)
	assert.NoFileExists(t, filepath.Join(destDir, "CONTRIBUTORS.md"))
	assert.NoFileExists(t, filepath.Join(destDir, "LICENSE"))
}

func TestInstaller_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	destDir := t.TempDir()
	in, err := New(Options{DestDir: destDir, DryRun: true})
	require.NoError(t, err)

	results, err := in.Install(AllCategories()...)

	require.NoError(t, err)
	require.Len(t, results, 8)
	for _, r := range results {
		assert.True(t, r.Skipped, r.Dest)
		assert.False(t, r.Success, r.Dest)
	}
	assert.Empty(t, listFiles(t, destDir))
	assert.NoDirExists(t, filepath.Join(destDir, ".github"))
}

func TestInstaller_CanonicalOrderWithoutDuplicates(t *testing.T) {
	t.Parallel()

	destDir := t.TempDir()
	in, err := New(Options{DestDir: destDir, DryRun: true})
	require.NoError(t, err)

	results, err := in.Install(License, GitHub, License, Changelog)

	require.NoError(t, err)
	var got []Category
	for _, r := range results {
		got = append(got, r.Category)
	}
	assert.Equal(t, []Category{GitHub, GitHub, GitHub, Changelog, License}, got)
}

func TestInstaller_CustomTemplateRoot(t *testing.T) {
	t.Parallel()

	destDir := t.TempDir()
	in, err := New(Options{
		DestDir: destDir,
		TemplateFS: fstest.MapFS{
			"docs/LICENSE":      {Data: []byte("Apache-2.0\n")},
			"docs/CHANGELOG.md": {Data: []byte("# Changes\n")},
		},
	})
	require.NoError(t, err)

	_, err = in.Install(License, Changelog)

	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(destDir, "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, "Apache-2.0\n", string(got))
}

func TestInstaller_MissingTemplateIsACopyFailure(t *testing.T) {
	t.Parallel()

	destDir := t.TempDir()
	in, err := New(Options{
		DestDir:         destDir,
		TemplateFS:      fstest.MapFS{"docs/CONTRIBUTORS.md": {Data: []byte("- me\n")}},
		ContinueOnError: true,
	})
	require.NoError(t, err)

	results, err := in.Install(Contributing)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Error(t, results[0].Error)
	assert.True(t, results[1].Success)
	assert.Equal(t, []string{"CONTRIBUTORS.md"}, listFiles(t, destDir))
}

func TestInstaller_UnknownCategory(t *testing.T) {
	t.Parallel()

	destDir := t.TempDir()
	in, err := New(Options{DestDir: destDir})
	require.NoError(t, err)

	results, err := in.Install(Category("readme"))

	require.Error(t, err)
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "readme")
}

func TestNew_ResolvesRelativeDestination(t *testing.T) {
	t.Parallel()

	in, err := New(Options{})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, in.DestDir())
}
