package ids

import (
	"sort"
	"strings"
)

// UniquePrefixLengths returns, for each distinct lowercased value, the length
// of the shortest prefix no other value shares. Empty values are skipped.
func UniquePrefixLengths(values []string) map[string]int {
	seen := make(map[string]bool, len(values))
	sorted := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.ToLower(value)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		sorted = append(sorted, value)
	}
	sort.Strings(sorted)

	// In sorted order the longest shared prefix is always with a neighbour.
	lengths := make(map[string]int, len(sorted))
	for i, value := range sorted {
		shared := 0
		if i > 0 {
			shared = max(shared, commonPrefixLen(value, sorted[i-1]))
		}
		if i+1 < len(sorted) {
			shared = max(shared, commonPrefixLen(value, sorted[i+1]))
		}
		lengths[value] = min(shared+1, len(value))
	}
	return lengths
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
