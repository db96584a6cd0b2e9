package isolate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkoosis/verdict/internal/logging"
)

// DefaultArgs select no tests in a re-executed test binary.
var DefaultArgs = []string{"-test.run=^$"}

// drainDelay bounds how long Run keeps reading the child's output and status
// after the child has exited. Descendants that inherited those pipes can hold
// them open indefinitely.
const drainDelay = 500 * time.Millisecond

// ExecRunner runs functions by re-executing a binary that calls Main.
type ExecRunner struct {
	// Path is the binary to execute. Empty means the running executable.
	Path string
	// Args are passed to the binary. Nil means DefaultArgs.
	Args []string
}

func (r *ExecRunner) command(ctx context.Context) (*exec.Cmd, error) {
	path := r.Path
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("isolate: locating executable: %w", err)
		}
		path = exe
	}
	args := r.Args
	if args == nil {
		args = DefaultArgs
	}
	return exec.CommandContext(ctx, path, args...), nil
}

// Run starts a child process for f, waits for it, and classifies how it
// terminated.
func (r *ExecRunner) Run(ctx context.Context, f Func) (Outcome, error) {
	if f.name == "" {
		return Outcome{}, fmt.Errorf("%w: zero Func", ErrUnregistered)
	}
	log := logging.GetLogger()

	cmd, err := r.command(ctx)
	if err != nil {
		return Outcome{}, err
	}

	statusR, statusW, err := os.Pipe()
	if err != nil {
		return Outcome{}, fmt.Errorf("isolate: creating status pipe: %w", err)
	}
	defer statusR.Close()

	token := uuid.NewString()
	var stdout, stderr bytes.Buffer
	cmd.Env = append(os.Environ(),
		envName+"="+f.name,
		envToken+"="+token,
		"GOTRACEBACK=crash",
	)
	cmd.ExtraFiles = []*os.File{statusW}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = drainDelay

	log.Debug().Str("func", f.name).Str("path", cmd.Path).Msg("starting isolated run")
	if err := cmd.Start(); err != nil {
		statusW.Close()
		return Outcome{}, fmt.Errorf("isolate: starting %q: %w", f.name, err)
	}
	// The child holds its own copy; closing ours lets the read see EOF.
	statusW.Close()

	reports := make(chan statusRead, 1)
	go func() {
		b, err := io.ReadAll(statusR)
		reports <- statusRead{report: b, err: err}
	}()

	waitErr := cmd.Wait()
	if errors.Is(waitErr, exec.ErrWaitDelay) {
		log.Debug().Str("func", f.name).Msg("output pipes still held by a descendant")
		waitErr = nil
	}
	_ = statusR.SetReadDeadline(time.Now().Add(drainDelay))
	sr := <-reports
	report, readErr := sr.report, sr.err
	if errors.Is(readErr, os.ErrDeadlineExceeded) {
		log.Debug().Str("func", f.name).Msg("status pipe still held by a descendant")
		readErr = nil
	}

	log.Debug().
		Str("func", f.name).
		Str("stdout", stdout.String()).
		Str("stderr", stderr.String()).
		Msg("isolated run finished")

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Outcome{}, ctxErr
	}
	if readErr != nil {
		return Outcome{}, fmt.Errorf("isolate: reading status of %q: %w", f.name, readErr)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return Outcome{}, fmt.Errorf("isolate: running %q: %w", f.name, waitErr)
	}

	st := parseStatus(string(report), token)
	switch {
	case st.unregistered:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnregistered, f.name)
	case st.returned:
		log.Debug().Str("func", f.name).Msg("isolated func returned")
		return Outcome{Kind: Returned}, nil
	}

	outcome := outcomeOf(cmd.ProcessState)
	if !st.started {
		return Outcome{}, fmt.Errorf("isolate: child for %q %s before running it; is isolate.Main called from TestMain?", f.name, outcome)
	}
	log.Debug().Str("func", f.name).Stringer("outcome", outcome).Msg("isolated func terminated")
	return outcome, nil
}

type statusRead struct {
	report []byte
	err    error
}

type status struct {
	started      bool
	returned     bool
	unregistered bool
}

// parseStatus reads the lines the child wrote under token. Lines carrying
// another token are ignored.
func parseStatus(report, token string) status {
	var st status
	for _, line := range strings.Split(report, "\n") {
		rest, ok := strings.CutPrefix(line, token+":")
		if !ok {
			continue
		}
		switch rest {
		case statusStart:
			st.started = true
		case statusReturn:
			st.returned = true
		case statusUnregistered:
			st.unregistered = true
		}
	}
	return st
}
