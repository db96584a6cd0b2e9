package magetasks

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitialize(t *testing.T) {
	// Save original working directory
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if err := Initialize(); err != nil {
		t.Errorf("Initialize() returned error: %v", err)
	}

	// Verify ProjectRoot is set (use filepath.EvalSymlinks to handle symlinks)
	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	if actualRoot != expectedRoot {
		t.Errorf("ProjectRoot = %s, want %s", actualRoot, expectedRoot)
	}
}

func TestModulePath(t *testing.T) {
	if ModulePath != "github.com/dkoosis/verdict" {
		t.Errorf("ModulePath = %s, want github.com/dkoosis/verdict", ModulePath)
	}
}
