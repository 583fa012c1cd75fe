// Package productcode derives short, traceable product codes from free-form
// product names.
//
// A code has the shape
//
//	<fingerprint>-<start><runs><end>[-<n>]
//
// where fingerprint is the first seven hex characters of the sha256 of the
// raw name, runs is the concatenation of the longest strictly increasing
// letter runs of the normalized name, start is the first selected run's
// start index and end is the last selected run's end index. The optional
// -<n> suffix disambiguates codes that a Checker reports as already taken.
//
// Resolution is check-then-report: a returned code was free when it was
// checked, but callers must still persist it behind a unique constraint
// and retry generation when the insert conflicts.
package productcode

import (
	"context"
	"fmt"
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// MaxAttempts bounds the number of existence checks.
	// Defaults to DefaultMaxAttempts if zero or negative.
	MaxAttempts int

	// Logger receives one entry per existence check. May be nil.
	Logger Logger
}

// Candidate computes the pre-uniqueness code for name.
func Candidate(name string) (string, error) {
	runs, err := ExtractRuns(Normalize(name))
	if err != nil {
		return "", err
	}
	return Assemble(Fingerprint(name), SelectRuns(runs)), nil
}

// Generate computes the candidate for name and resolves it against checker.
func Generate(ctx context.Context, name string, checker Checker, opts GenerateOptions) (string, error) {
	candidate, err := Candidate(name)
	if err != nil {
		return "", err
	}

	resolver := Resolver{
		Checker:     checker,
		MaxAttempts: opts.MaxAttempts,
		Logger:      opts.Logger,
	}
	code, err := resolver.Resolve(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", candidate, err)
	}
	return code, nil
}
