package ui

import (
	"strings"
	"testing"
)

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		code   string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"ba7816b-0abc2": 4},
			code:   "BA7816B-0abc2",
			want:   4,
		},
		{
			name:   "missing code",
			length: map[string]int{"ba7816b-0abc2": 4},
			code:   "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			code:   "ba7816b-0abc2",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.code); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHighlightCodeWithoutTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got := HighlightCode("ba7816b-0abc2", 3); got != "ba7816b-0abc2" {
		t.Fatalf("expected plain code, got %q", got)
	}
}

func TestHighlightPrefixKeepsText(t *testing.T) {
	got := highlightPrefix("ba7816b-0abc2", 3)
	if !strings.HasSuffix(got, "7816b-0abc2") || !strings.Contains(got, "ba7") {
		t.Fatalf("expected highlighted code to keep its text, got %q", got)
	}
	if got := highlightPrefix("abc", 0); got != "abc" {
		t.Fatalf("expected no highlight for zero prefix, got %q", got)
	}
	if got := highlightPrefix("abc", 10); got != "abc" {
		t.Fatalf("expected no highlight for oversized prefix, got %q", got)
	}
}

func TestCodePrefixLengths(t *testing.T) {
	lengths := CodePrefixLengths([]string{"ba7816b-0abc2", "bb00000-0ab1"})
	if got := lengths["ba7816b-0abc2"]; got != 2 {
		t.Fatalf("expected prefix length 2, got %d", got)
	}
}
