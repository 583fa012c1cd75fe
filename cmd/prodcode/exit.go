package main

import (
	"errors"
	"fmt"

	"github.com/amonks/prodcode/productcode"
)

const (
	exitInvalidName = 2
	exitExhausted   = 3
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit %d", e.code)
}

func (e exitError) ExitCode() int {
	return e.code
}

func (e exitError) Unwrap() error {
	return e.err
}

// classifyError attaches the exit code for core failures.
func classifyError(err error) error {
	switch {
	case err == nil:
		return nil
	case productcode.IsInvalidName(err):
		return exitError{code: exitInvalidName, err: err}
	case errors.Is(err, productcode.ErrCodeSpaceExhausted):
		return exitError{code: exitExhausted, err: err}
	default:
		return err
	}
}
