//go:build !unix

package isolate

import "os"

// outcomeOf classifies a finished child on platforms without signals. Uses
// ProcessState.ExitCode() which is available cross-platform.
func outcomeOf(ps *os.ProcessState) Outcome {
	return Outcome{Kind: Exited, Value: ps.ExitCode()}
}

func closeOnExec(int) {}
