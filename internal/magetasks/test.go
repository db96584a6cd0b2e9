package magetasks

import (
	"os"
	"os/exec"
)

// IsolationPackages are the packages whose tests spawn child processes.
var IsolationPackages = []string{"./pkg/isolate/...", "./pkg/match/..."}

func goTest(env []string, args ...string) error {
	cmd := exec.Command("go", append([]string{"test"}, args...)...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// TestAll runs all tests.
func TestAll() error {
	PrintH2Header("Tests")

	PrintInfo("Running tests...")
	if err := goTest(nil, "-v", "./..."); err != nil {
		PrintError("Tests failed")
		return err
	}

	PrintSuccess("All tests passed")
	return nil
}

// TestCoverage runs tests with coverage.
func TestCoverage() error {
	PrintH2Header("Test Coverage")

	PrintInfo("Running tests with coverage...")
	if err := goTest(nil, "-coverprofile="+CoverProfile, "./..."); err != nil {
		PrintError("Tests failed")
		return err
	}

	// Show coverage report
	cmd := exec.Command("go", "tool", "cover", "-func="+CoverProfile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	_ = cmd.Run() // Ignore error for coverage display

	PrintSuccess("Coverage report generated")
	return nil
}

// TestRace runs tests with race detector.
func TestRace() error {
	PrintH2Header("Race Detector")

	PrintInfo("Running tests with race detector...")
	if err := goTest(nil, "-race", "./..."); err != nil {
		PrintError("Race detector found issues")
		return err
	}

	PrintSuccess("No race conditions detected")
	return nil
}

// TestIsolation runs the child-process tests uncached with debug logging,
// so every spawned child and its captured output is shown.
func TestIsolation() error {
	PrintH2Header("Isolated Execution")

	args := append([]string{"-count=1", "-v"}, IsolationPackages...)
	if err := goTest([]string{"VERDICT_DEBUG=1"}, args...); err != nil {
		PrintError("Isolation tests failed")
		return err
	}

	PrintSuccess("Isolation tests passed")
	return nil
}
