package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile), false)

	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Destination)
	assert.Equal(t, "error", cfg.LogLevel)
	require.NotNil(t, cfg.ContinueOnError)
	assert.True(t, *cfg.ContinueOnError)
	assert.Nil(t, cfg.TemplateFS())
	assert.Equal(t, slog.LevelError, cfg.Level())
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ParsesValues(t *testing.T) {
	t.Parallel()
	templateDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(templateDir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, "docs", "LICENSE"), []byte("custom"), 0o644))

	path := writeConfig(t, "template_dir: "+templateDir+"\n"+
		"destination: ../project\n"+
		"continue_on_error: false\n"+
		"log_level: debug\n")

	cfg, err := Load(path, true)

	require.NoError(t, err)
	assert.Equal(t, templateDir, cfg.TemplateDir)
	assert.Equal(t, "../project", cfg.Destination)
	assert.False(t, *cfg.ContinueOnError)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	fsys := cfg.TemplateFS()
	require.NotNil(t, fsys)
	f, err := fsys.Open("docs/LICENSE")
	require.NoError(t, err)
	f.Close()
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "log_level: [", wantErr: "failed to parse config file"},
		{name: "bad log level", content: "log_level: loud\n", wantErr: "unknown log_level"},
		{name: "missing template dir", content: "template_dir: /definitely/not/here\n", wantErr: "template_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tt.content)

			_, err := Load(path, true)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
