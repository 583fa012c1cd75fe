package productcode

import (
	"fmt"
	"strings"
)

// Run is a maximal strictly increasing substring of a normalized name.
// Start and End are inclusive byte offsets into the normalized name.
type Run struct {
	Text  string `json:"text" yaml:"text"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Len returns the number of letters in the run.
func (r Run) Len() int {
	return r.End - r.Start + 1
}

// ExtractRuns returns every maximal strictly increasing run of at least two
// letters in normalized, in scan order.
func ExtractRuns(normalized string) ([]Run, error) {
	if len(normalized) < MinNameLength {
		return nil, fmt.Errorf("%w: %q has %d letters, need %d", ErrNameTooShort, normalized, len(normalized), MinNameLength)
	}

	var runs []Run
	start := 0
	emit := func(end int) {
		if end-start+1 >= 2 {
			runs = append(runs, Run{Text: normalized[start : end+1], Start: start, End: end})
		}
	}
	for i := 1; i < len(normalized); i++ {
		if normalized[i] <= normalized[i-1] {
			emit(i - 1)
			start = i
		}
	}
	emit(len(normalized) - 1)

	if len(runs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoIncreasingSubstring, normalized)
	}
	return runs, nil
}

// Selection is the set of runs sharing the maximum length.
type Selection struct {
	Runs []Run `json:"runs" yaml:"runs"`
	// Start is the first selected run's start index.
	Start int `json:"start" yaml:"start"`
	// End is the last selected run's end index.
	End int `json:"end" yaml:"end"`
	// Concat joins the selected runs' text in start order.
	Concat string `json:"concat" yaml:"concat"`
}

// SelectRuns keeps every run of maximum length, in ascending start order.
// It returns the zero Selection when runs is empty.
func SelectRuns(runs []Run) Selection {
	if len(runs) == 0 {
		return Selection{}
	}

	longest := 0
	for _, run := range runs {
		longest = max(longest, run.Len())
	}

	// Runs arrive in scan order, which is already ascending by start.
	var selected []Run
	var concat strings.Builder
	for _, run := range runs {
		if run.Len() != longest {
			continue
		}
		selected = append(selected, run)
		concat.WriteString(run.Text)
	}

	return Selection{
		Runs:   selected,
		Start:  selected[0].Start,
		End:    selected[len(selected)-1].End,
		Concat: concat.String(),
	}
}
