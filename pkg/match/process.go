package match

import (
	"context"
	"fmt"
	"syscall"

	"github.com/dkoosis/verdict/pkg/isolate"
)

// ProcessOption configures Killed and Exited matchers.
type ProcessOption func(*processConfig)

type processConfig struct {
	runner isolate.Runner
}

// WithRunner runs subjects with r instead of isolate.Default.
func WithRunner(r isolate.Runner) ProcessOption {
	return func(c *processConfig) { c.runner = r }
}

func newProcessConfig(opts []ProcessOption) processConfig {
	var c processConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c processConfig) run(f isolate.Func) (isolate.Outcome, error) {
	if c.runner != nil {
		return c.runner.Run(context.Background(), f)
	}
	return isolate.Run(context.Background(), f)
}

// outcomeMatcher matches isolate.Func subjects by how their child process
// terminated.
type outcomeMatcher struct {
	desc     string
	kind     isolate.Kind
	value    int
	anyValue bool // any value of kind matches
	returned string
	cfg      processConfig
}

func (m outcomeMatcher) Description() string { return m.desc }

func (m outcomeMatcher) Match(subject any) Result {
	f, ok := subject.(isolate.Func)
	if !ok {
		return notA(subject, "an isolate.Func")
	}
	out, err := m.cfg.run(f)
	if err != nil {
		return Result{Message: "isolation failed: " + err.Error()}
	}
	if out.Kind == isolate.Returned {
		return Result{Message: m.returned}
	}
	return Result{
		Matched: out.Kind == m.kind && (m.anyValue || out.Value == m.value),
		Message: out.String(),
	}
}

// Killed matches isolate.Func subjects whose process is terminated by any
// signal.
func Killed(opts ...ProcessOption) Matcher {
	return outcomeMatcher{
		desc:     "killed",
		kind:     isolate.Signaled,
		anyValue: true,
		returned: "wasn't killed",
		cfg:      newProcessConfig(opts),
	}
}

// KilledWith matches isolate.Func subjects whose process is terminated by
// sig.
func KilledWith(sig syscall.Signal, opts ...ProcessOption) Matcher {
	if sig <= 0 {
		invalid("KilledWith", "signal must be positive, got %d", int(sig))
	}
	return outcomeMatcher{
		desc:     fmt.Sprintf("killed with signal %d", int(sig)),
		kind:     isolate.Signaled,
		value:    int(sig),
		returned: "wasn't killed",
		cfg:      newProcessConfig(opts),
	}
}

// Exited matches isolate.Func subjects whose process exits with any status.
func Exited(opts ...ProcessOption) Matcher {
	return outcomeMatcher{
		desc:     "exited",
		kind:     isolate.Exited,
		anyValue: true,
		returned: "didn't exit",
		cfg:      newProcessConfig(opts),
	}
}

// ExitedWith matches isolate.Func subjects whose process exits with status.
func ExitedWith(status int, opts ...ProcessOption) Matcher {
	if status < 0 {
		invalid("ExitedWith", "status must not be negative, got %d", status)
	}
	return outcomeMatcher{
		desc:     fmt.Sprintf("exited with status %d", status),
		kind:     isolate.Exited,
		value:    status,
		returned: "didn't exit",
		cfg:      newProcessConfig(opts),
	}
}
