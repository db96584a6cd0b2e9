package magetasks

import (
	"os"
	"os/exec"
)

// BuildAll compiles every package, test binaries included.
func BuildAll() error {
	PrintH2Header("Build")

	if err := Run("Go Build", "go", "build", "./..."); err != nil {
		PrintError("Build failed")
		return err
	}
	if err := Run("Go Test Build", "go", "test", "-run=^$", "./..."); err != nil {
		PrintError("Test build failed")
		return err
	}

	PrintSuccess("Build complete")
	return nil
}

// Clean removes build artifacts
func Clean() error {
	PrintH2Header("Clean")

	_ = os.Remove(CoverProfile)
	cmd := exec.Command("go", "clean", "-testcache")
	_ = cmd.Run()

	PrintSuccess("Cleaned build artifacts")
	return nil
}
