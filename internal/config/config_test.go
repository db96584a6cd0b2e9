package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestFindConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	if err := os.WriteFile(filepath.Join(tempDir, FileName), []byte("ci: true\n"), 0o600); err != nil {
		t.Fatalf("failed to write local config: %v", err)
	}

	got := FindConfigPath()
	if got != FileName {
		t.Fatalf("expected local config path, got %q", got)
	}
}

func TestFindConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	xdgRoot := filepath.Join(tempDir, "xdg")
	configHome := filepath.Join(xdgRoot, "verdict")
	if err := os.MkdirAll(configHome, 0o755); err != nil {
		t.Fatalf("failed to create XDG config directory: %v", err)
	}
	configPath := filepath.Join(configHome, FileName)
	if err := os.WriteFile(configPath, []byte("theme: mono\n"), 0o600); err != nil {
		t.Fatalf("failed to write XDG config: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", xdgRoot)
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	got := FindConfigPath()
	if got != configPath {
		t.Fatalf("expected XDG config path %q, got %q", configPath, got)
	}
}

func TestFindConfigPath_ReturnsEmpty_When_NoConfigExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	assert.Empty(t, FindConfigPath())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("empty path yields empty config", func(t *testing.T) {
		t.Parallel()
		fc, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, &FileConfig{}, fc)
	})

	t.Run("missing file yields empty config", func(t *testing.T) {
		t.Parallel()
		fc, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, &FileConfig{}, fc)
	})

	t.Run("parses every key", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), FileName)
		body := "no_color: true\nci: false\ndebug: true\nverbose: true\nmax_depth: 8\ntheme: mono\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		fc, err := LoadFile(path)
		require.NoError(t, err)
		require.NotNil(t, fc.NoColor)
		assert.True(t, *fc.NoColor)
		require.NotNil(t, fc.CI)
		assert.False(t, *fc.CI)
		require.NotNil(t, fc.Debug)
		assert.True(t, *fc.Debug)
		require.NotNil(t, fc.Verbose)
		assert.True(t, *fc.Verbose)
		require.NotNil(t, fc.MaxDepth)
		assert.Equal(t, 8, *fc.MaxDepth)
		assert.Equal(t, ThemeMono, fc.Theme)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("max_depth: [oops\n"), 0o600))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestLoad_ReadsLocalFileAndEnvironment(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, FileName), []byte("theme: mono\nverbose: true\n"), 0o600))

	for _, key := range []string{"VERDICT_NO_COLOR", "NO_COLOR", "VERDICT_CI", "CI", "VERDICT_DEBUG", "VERDICT_MAX_DEPTH", "VERDICT_THEME"} {
		t.Setenv(key, "")
	}
	t.Setenv("VERDICT_VERBOSE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeMono, cfg.Theme)
	assert.Equal(t, SourceFile, cfg.ThemeSource)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, SourceEnv, cfg.VerboseSource)
}
