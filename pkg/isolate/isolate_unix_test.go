//go:build unix

package isolate

import (
	"context"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selfKill = Register("self-kill", func() {
		_ = syscall.Kill(os.Getpid(), syscall.SIGKILL)
		time.Sleep(time.Minute)
	})
	panicker = Register("panicker", func() { panic("boom") })

	// Descendants that outlive the isolated func while holding its pipes.
	outputHolder = Register("output-holder", func() {
		cmd := exec.Command("sleep", "5")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		_ = cmd.Start()
	})
	statusHolder = Register("status-holder", func() {
		cmd := exec.Command("sleep", "5")
		cmd.ExtraFiles = []*os.File{os.NewFile(statusFD, "status")}
		_ = cmd.Start()
	})
	inheritor = Register("inheritor", func() {
		_ = exec.Command("sleep", "5").Start()
	})
)

func TestRun_Signals(t *testing.T) {
	t.Parallel()

	got, err := selfKill.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Outcome{Kind: Signaled, Value: int(syscall.SIGKILL)}, got)
}

func TestRun_PanicAborts(t *testing.T) {
	t.Parallel()

	got, err := panicker.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Outcome{Kind: Signaled, Value: int(syscall.SIGABRT)}, got)
}

func TestRun_DescendantHoldingPipes(t *testing.T) {
	t.Parallel()

	for _, f := range []Func{outputHolder, statusHolder, inheritor} {
		t.Run(f.Name(), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			got, err := f.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, Outcome{Kind: Returned}, got)
			assert.Less(t, time.Since(start), 4*time.Second, "Run waited for the descendant")
		})
	}
}
