package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/ein-lang/einrt/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover(t *testing.T) {
	for _, tc := range []struct {
		name      string
		err       string
		wraps     string
		fun       func() error
		haveStack bool
		exitCode  int
		isExit    bool
	}{
		{
			name:      "",
			err:       "paniced: shrug",
			wraps:     "shrug",
			haveStack: true,
			fun:       func() error { panic(errors.New("shrug")) },
		},
		{
			name:     "",
			err:      "runtime.Goexit called",
			fun:      func() error { runtime.Goexit(); return nil },
			isExit:   true,
			exitCode: -1,
		},
		{
			name: "normal",
			err:  "",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errors.New("bang") },
		},
		{
			name:      "hello panic",
			err:       "hello panic paniced: hello",
			haveStack: true,
			fun:       func() error { panic("hello") },
		},
		{
			name:     "match failure",
			err:      "match failure called exit(1)",
			fun:      func() error { panicerr.Exit(1); return nil },
			isExit:   true,
			exitCode: 1,
		},
		{
			name:     "deferred exit",
			err:      "deferred exit called exit(3)",
			isExit:   true,
			exitCode: 3,
			fun: func() error {
				defer panicerr.Exit(3)
				return errors.New("overridden")
			},
		},
		{
			name:      "index panic",
			err:       "index panic paniced: runtime error: index out of range [1] with length 0",
			haveStack: true,
			fun:       func() error { _ = ([]int)(nil)[1]; return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
				if tc.wraps != "" {
					assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
				}
			}

			assert.Equal(t, tc.isExit, panicerr.IsExit(err), "expected IsExit")
			code, isExit := panicerr.ExitCode(err)
			assert.Equal(t, tc.isExit, isExit, "expected ExitCode ok")
			if tc.isExit {
				assert.Equal(t, tc.exitCode, code, "expected exit code")
			}

			stack := panicerr.PanicStack(err)
			if tc.haveStack {
				assert.True(t, panicerr.IsPanic(err), "expected IsPanic")
				assert.NotEqual(t, "", stack, "expected a stack trace")
			} else {
				assert.False(t, panicerr.IsPanic(err), "expected !IsPanic")
				assert.Equal(t, "", stack, "expected no stack trace")
			}
			if t.Failed() && stack != "" {
				t.Logf("panic stack: %v", stack)
			}
		})
	}
}

func Test_Recover_stacktrace(t *testing.T) {
	err := panicerr.Recover("", func() error {
		panic("nope")
	})
	require.Error(t, err, "must have a recovered error")

	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.PanicStack(err)),
		"expected verbose format to end with a stack trace")

	val, ok := panicerr.PanicValue(err)
	require.True(t, ok, "expected a panic value")
	assert.Equal(t, "nope", val)
}
