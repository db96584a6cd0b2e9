package magetasks

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	previous := out
	out = &buf
	t.Cleanup(func() { out = previous })
	fn()
	return buf.String()
}

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  []string
	}{
		{name: "h1 header", print: func() { PrintH1Header("Test Title") }, want: []string{"Test Title", "===="}},
		{name: "h2 header", print: func() { PrintH2Header("Test Section") }, want: []string{"=== Test Section ==="}},
		{name: "success", print: func() { PrintSuccess("Operation completed") }, want: []string{"Operation completed"}},
		{name: "warning", print: func() { PrintWarning("Warning message") }, want: []string{"Warning message"}},
		{name: "error", print: func() { PrintError("Error message") }, want: []string{"Error message"}},
		{name: "info", print: func() { PrintInfo("Info message") }, want: []string{"Info message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.print)
			for _, w := range tt.want {
				assert.Contains(t, output, w)
			}
		})
	}
}

func TestRun(t *testing.T) {
	output := captureOutput(t, func() {
		err := Run("Missing Tool", "verdict-no-such-tool-xyz")
		assert.Error(t, err)
		assert.True(t, IsCommandNotFound(err))
		assert.Contains(t, err.Error(), "Missing Tool")
	})
	assert.Contains(t, output, "▸ Missing Tool")
}
