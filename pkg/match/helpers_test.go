package match_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/verdict/pkg/format"
	"github.com/dkoosis/verdict/pkg/match"
)

func matches(t *testing.T, m match.Matcher, subject any) {
	t.Helper()
	r := m.Match(subject)
	assert.Truef(t, r.Matched, "%q should match %s (message %q)", m.Description(), format.Value(subject), r.Message)
}

func rejects(t *testing.T, m match.Matcher, subject any) {
	t.Helper()
	r := m.Match(subject)
	assert.Falsef(t, r.Matched, "%q should not match %s (message %q)", m.Description(), format.Value(subject), r.Message)
}

// configError runs build and returns the ConfigError it panicked with.
func configError(t *testing.T, build func()) (cerr *match.ConfigError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.As(err, &cerr), "panic value %v is not a *match.ConfigError", err)
	}()
	build()
	return nil
}

// fixed returns a matcher with a constant result.
func fixed(matched bool, message string) match.Matcher {
	return match.New("", func(any) match.Result {
		return match.Result{Matched: matched, Message: message}
	})
}
