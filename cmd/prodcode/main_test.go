package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/amonks/prodcode/productcode"
	"github.com/amonks/prodcode/registry"
	"github.com/spf13/pflag"
)

func TestClassifyErrorExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"too short", fmt.Errorf("add %q: %w", "a", productcode.ErrNameTooShort), exitInvalidName},
		{"no increasing", productcode.ErrNoIncreasingSubstring, exitInvalidName},
		{"exhausted", fmt.Errorf("resolve x: %w", productcode.ErrCodeSpaceExhausted), exitExhausted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyError(tc.err)
			var exitErr exitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("expected exitError, got %T", err)
			}
			if exitErr.ExitCode() != tc.want {
				t.Fatalf("expected exit %d, got %d", tc.want, exitErr.ExitCode())
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected wrapped error to be preserved")
			}
		})
	}
}

func TestClassifyErrorPassesThroughOthers(t *testing.T) {
	if classifyError(nil) != nil {
		t.Fatalf("expected nil for nil")
	}

	plain := errors.New("disk full")
	if got := classifyError(plain); got != plain {
		t.Fatalf("expected plain error unchanged, got %v", got)
	}
}

func TestExitErrorMessage(t *testing.T) {
	if got := (exitError{code: 1}).Error(); got != "exit 1" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (exitError{code: 2, err: productcode.ErrNameTooShort}).Error(); got != productcode.ErrNameTooShort.Error() {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFlagAliasNormalizer(t *testing.T) {
	normalize := flagAliasNormalizer(globalFlagAliases)

	if got := normalize(nil, "dir"); got != pflag.NormalizedName("state-dir") {
		t.Fatalf("expected dir to map to state-dir, got %q", got)
	}
	if got := normalize(nil, "attempts"); got != pflag.NormalizedName("max-attempts") {
		t.Fatalf("expected attempts to map to max-attempts, got %q", got)
	}
	if got := normalize(nil, "backend"); got != pflag.NormalizedName("backend") {
		t.Fatalf("expected backend unchanged, got %q", got)
	}
}

func TestBreakdownMarkdownMarksSelectedRuns(t *testing.T) {
	breakdown, err := productcode.Explain("Wireless Mouse")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}

	out := breakdownMarkdown(breakdown, nil)

	for _, want := range []string{
		"# Wireless Mouse\n",
		"- Normalized: `wirelessmouse`\n",
		"| mou | 8 | 10 | yes |\n",
		"- Candidate: `67cf716-8mou10`\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "| Run | Start | End | Selected |") {
		t.Fatalf("expected runs table header:\n%s", out)
	}
}

func TestBreakdownMarkdownExplainsFailure(t *testing.T) {
	breakdown, err := productcode.Explain("!")
	if !errors.Is(err, productcode.ErrNameTooShort) {
		t.Fatalf("expected ErrNameTooShort, got %v", err)
	}

	out := breakdownMarkdown(breakdown, err)

	if strings.Contains(out, "## Runs") {
		t.Fatalf("expected no runs table on failure:\n%s", out)
	}
	if !strings.Contains(out, "- Normalized: ` `\n") {
		t.Fatalf("expected empty normalized span:\n%s", out)
	}
	if !strings.Contains(out, "fewer than two letters") {
		t.Fatalf("expected hint:\n%s", out)
	}
}

func TestFormatRecordTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	records := []registry.Record{
		{Code: "ba7816b-0abc2", Name: "abc", CreatedAt: now.Add(-3 * time.Hour)},
		{Code: "ba7816b-0abc2-1", Name: "abc", CreatedAt: now.Add(-90 * time.Second)},
	}

	out := formatRecordTable(records, now)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "CODE") || !strings.HasSuffix(lines[0], "CREATED") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ba7816b-0abc2  ") || !strings.HasSuffix(lines[1], "3h ago") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "ba7816b-0abc2-1  ") || !strings.HasSuffix(lines[2], "1m ago") {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestVersionString(t *testing.T) {
	if got := versionString(); got != "prodcode dev (commit unknown)" {
		t.Fatalf("unexpected version %q", got)
	}
}
