// Package expect checks subjects against matchers and reports failures as
// errors or through a testing.T.
//
//	expect.That(t, got, match.Array(1, 2, 3))
//	expect.ThatDesc(t, "retries", n, match.LessEqual(3))
//
// Values given in place of a matcher are compared with match.EqualTo.
package expect

import (
	"path/filepath"
	"runtime"
	"sync"

	"github.com/dkoosis/verdict/internal/config"
	"github.com/dkoosis/verdict/pkg/format"
	"github.com/dkoosis/verdict/pkg/match"
)

// T is the subset of testing.TB used to report failures.
type T interface {
	Helper()
	Fatal(args ...any)
	Error(args ...any)
}

var setupOnce sync.Once

// setup applies process configuration to the formatter.
func setup() {
	setupOnce.Do(func() {
		if depth := config.Current().MaxDepth; depth > 0 {
			format.SetMaxDepth(depth)
		}
	})
}

func check(desc string, loc *Location, subject, m any) error {
	setup()
	matcher := match.Ensure(m)
	r := matcher.Match(subject)
	if r.Matched {
		return nil
	}
	return &ExpectationError{
		Description: desc,
		Location:    loc,
		Expected:    matcher.Description(),
		Actual:      format.Value(subject),
		Message:     r.Message,
		Subject:     subject,
	}
}

// caller returns the location skip frames above its own caller.
func caller(skip int) *Location {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return nil
	}
	return &Location{File: filepath.Base(file), Line: line}
}

// Check returns nil when subject satisfies m and an *ExpectationError
// otherwise.
func Check(subject, m any) error {
	return check("", nil, subject, m)
}

// CheckDesc is Check with desc as the failure header.
func CheckDesc(desc string, subject, m any) error {
	return check(desc, nil, subject, m)
}

// CheckHere is Check with the caller's file:line as the failure header.
func CheckHere(subject, m any) error {
	return check("", caller(0), subject, m)
}

// CheckHereDesc is CheckDesc with the caller's location appended to the
// header as "desc (file:line)".
func CheckHereDesc(desc string, subject, m any) error {
	return check(desc, caller(0), subject, m)
}

func report(err error) string {
	cfg := config.Current()
	return Render(err, themeFor(cfg), cfg.Verbose)
}

// That stops the test with t.Fatal when subject does not satisfy m.
func That(t T, subject, m any) {
	t.Helper()
	if err := check("", nil, subject, m); err != nil {
		t.Fatal(report(err))
	}
}

// ThatDesc is That with desc as the failure header.
func ThatDesc(t T, desc string, subject, m any) {
	t.Helper()
	if err := check(desc, nil, subject, m); err != nil {
		t.Fatal(report(err))
	}
}

// Want records a failure with t.Error when subject does not satisfy m and
// lets the test continue. It reports whether the check passed.
func Want(t T, subject, m any) bool {
	t.Helper()
	if err := check("", nil, subject, m); err != nil {
		t.Error(report(err))
		return false
	}
	return true
}

// WantDesc is Want with desc as the failure header.
func WantDesc(t T, desc string, subject, m any) bool {
	t.Helper()
	if err := check(desc, nil, subject, m); err != nil {
		t.Error(report(err))
		return false
	}
	return true
}
