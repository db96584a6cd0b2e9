package isolate

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	returner = Register("returner", func() {})
	exiter   = Register("exiter", func() { os.Exit(3) })
	zeroExit = Register("zero-exit", func() { os.Exit(0) })
	sleeper  = Register("sleeper", func() { time.Sleep(time.Minute) })
)

func TestMain(m *testing.M) {
	Main()
	os.Exit(m.Run())
}

func TestRun_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Func
		want Outcome
	}{
		{name: "normal return", f: returner, want: Outcome{Kind: Returned}},
		{name: "exit with status", f: exiter, want: Outcome{Kind: Exited, Value: 3}},
		{name: "exit zero is not a return", f: zeroExit, want: Outcome{Kind: Exited, Value: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.f.Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Unregistered(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Func{name: "never-registered"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnregistered))
	assert.Contains(t, err.Error(), "never-registered")
}

func TestRun_ZeroFunc(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), Func{})
	assert.ErrorIs(t, err, ErrUnregistered)
}

func TestRun_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := sleeper.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_ChildWithoutMain(t *testing.T) {
	t.Parallel()

	r := &ExecRunner{Path: "/bin/true", Args: []string{}}
	if _, err := os.Stat(r.Path); err != nil {
		t.Skip("/bin/true not available")
	}
	_, err := r.Run(context.Background(), returner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "isolate.Main")
}

func TestRegister_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Register("", func() {}) })
	assert.Panics(t, func() { Register("nil-func", nil) })

	name := "dup-" + uuid.NewString()
	f := Register(name, func() {})
	assert.Equal(t, name, f.Name())
	assert.Panics(t, func() { Register(name, func() {}) })
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "returned", Outcome{Kind: Returned}.String())
	assert.Equal(t, "exited with status 2", Outcome{Kind: Exited, Value: 2}.String())
	assert.Equal(t, "killed with signal 9", Outcome{Kind: Signaled, Value: 9}.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	token := "tok"
	assert.Equal(t, status{}, parseStatus("", token))
	assert.Equal(t, status{started: true}, parseStatus("tok:start\n", token))
	assert.Equal(t, status{started: true, returned: true}, parseStatus("tok:start\ntok:return\n", token))
	assert.Equal(t, status{unregistered: true}, parseStatus("tok:unregistered\n", token))
	assert.Equal(t, status{}, parseStatus("other:start\nother:return\n", token))
}
