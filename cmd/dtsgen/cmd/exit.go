package cmd

import "github.com/teranos/dtsgen/errors"

// Exit codes shared by all commands
const (
	ExitOK       = 0
	ExitFailure  = 1 // generation failed, or check found drift
	ExitCheckErr = 2 // check could not run
)

// exitError carries a process exit code through cobra's error return.
// silent errors have already been reported to the user.
type exitError struct {
	code   int
	silent bool
	err    error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func silentExit(err error, code int) error {
	return &exitError{code: code, silent: true, err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}

// IsSilent reports whether the error was already shown to the user.
func IsSilent(err error) bool {
	var ee *exitError
	return errors.As(err, &ee) && ee.silent
}
