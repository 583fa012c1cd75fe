package productcode

import (
	"context"
	"fmt"
)

// DefaultMaxAttempts bounds uniqueness resolution when no bound is configured.
const DefaultMaxAttempts = 1000

// Checker reports whether a code is already taken in durable storage.
type Checker interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, code string) (bool, error)

// Exists calls fn.
func (fn CheckerFunc) Exists(ctx context.Context, code string) (bool, error) {
	return fn(ctx, code)
}

// Resolver finds the first untaken variant of a candidate code.
type Resolver struct {
	Checker Checker

	// MaxAttempts bounds the number of existence checks.
	// Defaults to DefaultMaxAttempts if zero or negative.
	MaxAttempts int

	// Logger receives one entry per existence check. May be nil.
	Logger Logger
}

// Resolve tries candidate, then candidate-1, candidate-2, and so on, and
// returns the first variant the Checker reports as free. Nothing is
// reserved; the code may be taken again before the caller persists it.
//
// Context cancellation is observed between checks, never during one.
func (r Resolver) Resolve(ctx context.Context, candidate string) (string, error) {
	if r.Checker == nil {
		return "", ErrNilChecker
	}
	limit := r.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	logger := r.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	for attempt := 0; attempt < limit; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("check attempt %d: %w", attempt+1, err)
		}

		code := WithSuffix(candidate, attempt)
		taken, err := r.Checker.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", code, err)
		}
		logger.Attempt(AttemptLog{Candidate: candidate, Code: code, Attempt: attempt + 1, Taken: taken})
		if !taken {
			return code, nil
		}
	}

	logger.Exhausted(ExhaustedLog{Candidate: candidate, Attempts: limit})
	return "", fmt.Errorf("%w: %d variants of %s taken", ErrCodeSpaceExhausted, limit, candidate)
}
