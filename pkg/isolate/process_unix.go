//go:build unix

package isolate

import (
	"os"
	"syscall"
)

// outcomeOf classifies a finished child from its wait status.
func outcomeOf(ps *os.ProcessState) Outcome {
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok {
		if ws.Signaled() {
			return Outcome{Kind: Signaled, Value: int(ws.Signal())}
		}
		return Outcome{Kind: Exited, Value: ws.ExitStatus()}
	}
	return Outcome{Kind: Exited, Value: ps.ExitCode()}
}

// closeOnExec keeps fd out of processes the isolated func starts.
func closeOnExec(fd int) { syscall.CloseOnExec(fd) }
