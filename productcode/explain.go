package productcode

// Breakdown holds every intermediate value of the code pipeline for a name.
type Breakdown struct {
	Name        string    `json:"name" yaml:"name"`
	Normalized  string    `json:"normalized" yaml:"normalized"`
	Runs        []Run     `json:"runs" yaml:"runs"`
	Selection   Selection `json:"selection" yaml:"selection"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Candidate   string    `json:"candidate" yaml:"candidate"`
}

// Explain runs the pure stages of the pipeline and reports each result.
// On error the breakdown is filled as far as the pipeline got.
func Explain(name string) (Breakdown, error) {
	breakdown := Breakdown{
		Name:        name,
		Normalized:  Normalize(name),
		Fingerprint: Fingerprint(name),
	}

	runs, err := ExtractRuns(breakdown.Normalized)
	if err != nil {
		return breakdown, err
	}
	breakdown.Runs = runs
	breakdown.Selection = SelectRuns(runs)
	breakdown.Candidate = Assemble(breakdown.Fingerprint, breakdown.Selection)
	return breakdown, nil
}
