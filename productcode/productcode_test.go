package productcode

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

var productCodePattern = regexp.MustCompile(`^[0-9a-f]{7}-\d+[a-z]+\d+(-\d+)?$`)

func TestGenerateDeterministic(t *testing.T) {
	ctx := context.Background()
	first, err := Generate(ctx, "Wireless Mouse", newTakenSet(), GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Generate(ctx, "Wireless Mouse", newTakenSet(), GenerateOptions{})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if again != first {
			t.Fatalf("expected %q, got %q", first, again)
		}
	}
}

func TestGenerateFormat(t *testing.T) {
	names := []string{
		"ab",
		"Red Shoe",
		"Gaming Chair",
		"USB-C Cable (2m)",
		"The Quick Brown Fox Jumps Over The Lazy Dog",
		"ZZZ top",
	}
	taken := newTakenSet()
	for _, name := range names {
		code, err := Generate(context.Background(), name, taken, GenerateOptions{})
		if err != nil {
			t.Fatalf("generate %q: %v", name, err)
		}
		if !productCodePattern.MatchString(code) {
			t.Fatalf("code %q for %q does not match the product code pattern", code, name)
		}
	}
}

func TestGenerateResolvesCollisions(t *testing.T) {
	checker := newTakenSet("67cf716-8mou10", "67cf716-8mou10-1")

	code, err := Generate(context.Background(), "Wireless Mouse", checker, GenerateOptions{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if code != "67cf716-8mou10-2" {
		t.Fatalf("expected %q, got %q", "67cf716-8mou10-2", code)
	}
	if len(checker.checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checker.checks))
	}
	if !productCodePattern.MatchString(code) {
		t.Fatalf("code %q does not match the product code pattern", code)
	}
}

func TestGenerateInvalidNamesSkipTheStore(t *testing.T) {
	cases := []struct {
		name string
		want error
	}{
		{name: "A1!", want: ErrNameTooShort},
		{name: "", want: ErrNameTooShort},
		{name: "zyx", want: ErrNoIncreasingSubstring},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checker := newTakenSet()
			_, err := Generate(context.Background(), tc.name, checker, GenerateOptions{})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(checker.checks) != 0 {
				t.Fatalf("expected no store checks, got %v", checker.checks)
			}
		})
	}
}

func TestGenerateExhaustion(t *testing.T) {
	calls := 0
	always := CheckerFunc(func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})

	code, err := Generate(context.Background(), "abc", always, GenerateOptions{MaxAttempts: 3})
	if !errors.Is(err, ErrCodeSpaceExhausted) {
		t.Fatalf("expected ErrCodeSpaceExhausted, got %v", err)
	}
	if code != "" {
		t.Fatalf("expected no code, got %q", code)
	}
	if calls != 3 {
		t.Fatalf("expected 3 checks, got %d", calls)
	}
}
