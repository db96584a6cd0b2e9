// Package isolate runs registered functions in a child copy of the current
// test binary and reports how the child terminated.
//
// Functions cannot cross a process boundary, so they are registered by name
// at package initialisation, which runs identically in parent and child:
//
//	var abort = isolate.Register("abort", func() { panic("boom") })
//
//	func TestMain(m *testing.M) {
//		isolate.Main()
//		os.Exit(m.Run())
//	}
//
// Run re-executes the binary with no tests selected. In the child, Main
// looks up the function named in the environment, runs it, reports a normal
// return over a status pipe and exits. Children run with GOTRACEBACK=crash,
// so an unrecovered panic terminates the child with SIGABRT.
package isolate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
)

const (
	envName  = "VERDICT_ISOLATE"
	envToken = "VERDICT_ISOLATE_TOKEN"

	// statusFD is the child's descriptor for the status pipe: the first
	// entry of exec.Cmd.ExtraFiles.
	statusFD = 3
)

// Status lines the child writes, each prefixed by the run token and ":".
const (
	statusStart        = "start"
	statusReturn       = "return"
	statusUnregistered = "unregistered"
)

// ErrUnregistered is returned when the child process has no function
// registered under the requested name.
var ErrUnregistered = errors.New("isolate: function not registered")

// Kind classifies how an isolated function terminated.
type Kind int

const (
	// Returned means the function returned normally; the process would have
	// carried on running.
	Returned Kind = iota
	// Exited means the process exited with a status.
	Exited
	// Signaled means the process was terminated by a signal.
	Signaled
)

func (k Kind) String() string {
	switch k {
	case Returned:
		return "returned"
	case Exited:
		return "exited"
	case Signaled:
		return "signaled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the termination of one isolated run. Value is the exit status
// for Exited and the signal number for Signaled.
type Outcome struct {
	Kind  Kind
	Value int
}

func (o Outcome) String() string {
	switch o.Kind {
	case Exited:
		return fmt.Sprintf("exited with status %d", o.Value)
	case Signaled:
		return fmt.Sprintf("killed with signal %d", o.Value)
	default:
		return o.Kind.String()
	}
}

// Func is a function registered for isolated execution.
type Func struct {
	name string
	fn   func()
}

// Name returns the name f was registered under.
func (f Func) Name() string { return f.name }

func (f Func) String() string { return "isolate.Func(" + f.name + ")" }

// Run executes f in a child process with the default runner.
func (f Func) Run(ctx context.Context) (Outcome, error) {
	return Run(ctx, f)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func(){}
)

// Register makes fn runnable in isolation under name. It must be called
// during package initialisation so the child process registers the same
// functions. Empty and duplicate names panic.
func Register(name string, fn func()) Func {
	if name == "" {
		panic("isolate: Register with empty name")
	}
	if fn == nil {
		panic(fmt.Sprintf("isolate: Register %q with nil func", name))
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("isolate: %q registered twice", name))
	}
	registry[name] = fn
	return Func{name: name, fn: fn}
}

func lookup(name string) (func(), bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Main must be called at the start of TestMain. In the parent process it
// returns immediately. In a child started by Run it executes the requested
// function and exits without returning.
func Main() {
	name := os.Getenv(envName)
	if name == "" {
		return
	}
	token := os.Getenv(envToken)
	status := os.NewFile(statusFD, "verdict-status")
	closeOnExec(statusFD)

	report := func(line string) {
		if status != nil {
			fmt.Fprintf(status, "%s:%s\n", token, line)
		}
	}

	fn, ok := lookup(name)
	if !ok {
		report(statusUnregistered)
		os.Exit(2)
	}
	report(statusStart)
	fn()
	report(statusReturn)
	os.Exit(0)
}

// Runner executes registered functions in isolation.
type Runner interface {
	Run(ctx context.Context, f Func) (Outcome, error)
}

// Default is the runner used by Run.
var Default Runner = &ExecRunner{}

// Run executes f in isolation with the Default runner.
func Run(ctx context.Context, f Func) (Outcome, error) {
	return Default.Run(ctx, f)
}
