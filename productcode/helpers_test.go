package productcode

import (
	"context"
	"fmt"
	"sync"
)

func fmtWrap(err error) error {
	return fmt.Errorf("generate: %w", err)
}

// takenSet is a Checker backed by a fixed set of taken codes.
type takenSet struct {
	mu     sync.Mutex
	taken  map[string]bool
	checks []string
}

func newTakenSet(codes ...string) *takenSet {
	taken := make(map[string]bool, len(codes))
	for _, code := range codes {
		taken[code] = true
	}
	return &takenSet{taken: taken}
}

func (s *takenSet) Exists(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks = append(s.checks, code)
	return s.taken[code], nil
}

type captureLogger struct {
	attempts  []AttemptLog
	exhausted []ExhaustedLog
}

func (logger *captureLogger) Attempt(entry AttemptLog) {
	logger.attempts = append(logger.attempts, entry)
}

func (logger *captureLogger) Exhausted(entry ExhaustedLog) {
	logger.exhausted = append(logger.exhausted, entry)
}
