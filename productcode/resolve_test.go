package productcode

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestResolveReturnsBareCandidateWhenFree(t *testing.T) {
	checker := newTakenSet()
	code, err := Resolver{Checker: checker}.Resolve(context.Background(), "ba7816b-0abc2")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if code != "ba7816b-0abc2" {
		t.Fatalf("expected bare candidate, got %q", code)
	}
	if len(checker.checks) != 1 {
		t.Fatalf("expected 1 check, got %d", len(checker.checks))
	}
}

func TestResolveAppendsSuffixes(t *testing.T) {
	checker := newTakenSet("ba7816b-0abc2", "ba7816b-0abc2-1")
	logger := &captureLogger{}

	code, err := Resolver{Checker: checker, Logger: logger}.Resolve(context.Background(), "ba7816b-0abc2")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if code != "ba7816b-0abc2-2" {
		t.Fatalf("expected %q, got %q", "ba7816b-0abc2-2", code)
	}

	wantChecks := []string{"ba7816b-0abc2", "ba7816b-0abc2-1", "ba7816b-0abc2-2"}
	if !reflect.DeepEqual(checker.checks, wantChecks) {
		t.Fatalf("expected checks %v, got %v", wantChecks, checker.checks)
	}
	if len(logger.attempts) != 3 {
		t.Fatalf("expected 3 attempt logs, got %d", len(logger.attempts))
	}
	if !logger.attempts[0].Taken || !logger.attempts[1].Taken || logger.attempts[2].Taken {
		t.Fatalf("unexpected taken flags: %+v", logger.attempts)
	}
	if logger.attempts[2].Attempt != 3 {
		t.Fatalf("expected attempt number 3, got %d", logger.attempts[2].Attempt)
	}
}

func TestResolveExhaustsAtBound(t *testing.T) {
	calls := 0
	always := CheckerFunc(func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})
	logger := &captureLogger{}

	code, err := Resolver{Checker: always, MaxAttempts: 5, Logger: logger}.Resolve(context.Background(), "ba7816b-0abc2")
	if !errors.Is(err, ErrCodeSpaceExhausted) {
		t.Fatalf("expected ErrCodeSpaceExhausted, got %v", err)
	}
	if code != "" {
		t.Fatalf("expected no code, got %q", code)
	}
	if calls != 5 {
		t.Fatalf("expected 5 checks, got %d", calls)
	}
	if len(logger.exhausted) != 1 || logger.exhausted[0].Attempts != 5 {
		t.Fatalf("expected one exhausted log with 5 attempts, got %+v", logger.exhausted)
	}
}

func TestResolveDefaultBound(t *testing.T) {
	calls := 0
	always := CheckerFunc(func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})

	_, err := Resolver{Checker: always}.Resolve(context.Background(), "ba7816b-0abc2")
	if !errors.Is(err, ErrCodeSpaceExhausted) {
		t.Fatalf("expected ErrCodeSpaceExhausted, got %v", err)
	}
	if calls != DefaultMaxAttempts {
		t.Fatalf("expected %d checks, got %d", DefaultMaxAttempts, calls)
	}
}

func TestResolvePropagatesCheckerErrors(t *testing.T) {
	boom := errors.New("store unavailable")
	calls := 0
	failing := CheckerFunc(func(context.Context, string) (bool, error) {
		calls++
		return false, boom
	})

	_, err := Resolver{Checker: failing}.Resolve(context.Background(), "ba7816b-0abc2")
	if !errors.Is(err, boom) {
		t.Fatalf("expected checker error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected checker errors not to be retried, got %d calls", calls)
	}
}

func TestResolveStopsBetweenAttemptsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	cancelling := CheckerFunc(func(context.Context, string) (bool, error) {
		calls++
		cancel()
		return true, nil
	})

	_, err := Resolver{Checker: cancelling}.Resolve(ctx, "ba7816b-0abc2")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected the in-flight check to complete and no more, got %d calls", calls)
	}
}

func TestResolveRequiresChecker(t *testing.T) {
	if _, err := (Resolver{}).Resolve(context.Background(), "ba7816b-0abc2"); !errors.Is(err, ErrNilChecker) {
		t.Fatalf("expected ErrNilChecker, got %v", err)
	}
}
