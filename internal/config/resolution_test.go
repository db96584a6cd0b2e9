package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func ptr[T any](v T) *T { return &v }

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		file              *FileConfig
		env               map[string]string
		wantNoColor       bool
		wantNoColorSource string
		wantTheme         string
		wantThemeSource   string
	}{
		{
			name:              "defaults when nothing is set",
			wantNoColorSource: SourceDefault,
			wantTheme:         ThemeDefault,
			wantThemeSource:   SourceDefault,
		},
		{
			name:              "file overrides defaults",
			file:              &FileConfig{NoColor: ptr(true), Theme: ThemeMono},
			wantNoColor:       true,
			wantNoColorSource: SourceFile,
			wantTheme:         ThemeMono,
			wantThemeSource:   SourceFile,
		},
		{
			name:              "env overrides file",
			file:              &FileConfig{NoColor: ptr(true), Theme: ThemeMono},
			env:               map[string]string{"VERDICT_NO_COLOR": "false", "VERDICT_THEME": ThemeDefault},
			wantNoColorSource: SourceEnv,
			wantTheme:         ThemeDefault,
			wantThemeSource:   SourceEnv,
		},
		{
			name:              "generic NO_COLOR is honoured",
			env:               map[string]string{"NO_COLOR": "1"},
			wantNoColor:       true,
			wantNoColorSource: SourceEnv,
			wantTheme:         ThemeDefault,
			wantThemeSource:   SourceDefault,
		},
		{
			name:              "prefixed variable wins over generic one",
			env:               map[string]string{"VERDICT_NO_COLOR": "false", "NO_COLOR": "true"},
			wantNoColorSource: SourceEnv,
			wantTheme:         ThemeDefault,
			wantThemeSource:   SourceDefault,
		},
		{
			name:              "unparseable boolean is ignored",
			file:              &FileConfig{NoColor: ptr(true)},
			env:               map[string]string{"VERDICT_NO_COLOR": "maybe"},
			wantNoColor:       true,
			wantNoColorSource: SourceFile,
			wantTheme:         ThemeDefault,
			wantThemeSource:   SourceDefault,
		},
		{
			name:              "explicit false in file is kept",
			file:              &FileConfig{NoColor: ptr(false)},
			wantNoColorSource: SourceFile,
			wantTheme:         ThemeDefault,
			wantThemeSource:   SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Resolve(tt.file, envOf(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNoColor, cfg.NoColor)
			assert.Equal(t, tt.wantNoColorSource, cfg.NoColorSource)
			assert.Equal(t, tt.wantTheme, cfg.Theme)
			assert.Equal(t, tt.wantThemeSource, cfg.ThemeSource)
		})
	}
}

func TestResolve_CIImpliesNoColor(t *testing.T) {
	t.Parallel()

	cfg, err := Resolve(nil, envOf(map[string]string{"CI": "true", "VERDICT_NO_COLOR": "false"}))
	require.NoError(t, err)
	assert.True(t, cfg.CI)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, SourceEnv, cfg.CISource)
}

func TestResolve_MaxDepth(t *testing.T) {
	t.Parallel()

	cfg, err := Resolve(&FileConfig{MaxDepth: ptr(4)}, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, SourceFile, cfg.MaxDepthSource)

	cfg, err = Resolve(&FileConfig{MaxDepth: ptr(4)}, envOf(map[string]string{"VERDICT_MAX_DEPTH": "12"}))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.Equal(t, SourceEnv, cfg.MaxDepthSource)
}

func TestResolve_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    *FileConfig
		env     map[string]string
		wantErr string
	}{
		{
			name:    "negative max depth",
			file:    &FileConfig{MaxDepth: ptr(-1)},
			wantErr: "max_depth must not be negative",
		},
		{
			name:    "non-numeric max depth",
			env:     map[string]string{"VERDICT_MAX_DEPTH": "deep"},
			wantErr: "invalid VERDICT_MAX_DEPTH",
		},
		{
			name:    "unknown theme",
			file:    &FileConfig{Theme: "neon"},
			wantErr: "invalid theme value: neon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Resolve(tt.file, envOf(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCurrent_IsStable(t *testing.T) {
	assert.Same(t, Current(), Current())
}
