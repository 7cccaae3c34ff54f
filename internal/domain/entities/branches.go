package entities

import (
	"slices"
	"strings"
)

// preferredBaseBranches lists well-known base branch names, most preferred first.
var preferredBaseBranches = map[string]int{ //nolint:gochecknoglobals // read-only lookup table
	"develop": 0,
	"main":    1,
	"master":  1,
}

// SortBaseBranches returns a sorted copy of branches suitable for picking a
// base branch: "develop" first, then "main" and "master", then every other
// branch in lexicographic order.
func SortBaseBranches(branches []string) []string {
	sorted := slices.Clone(branches)
	slices.SortStableFunc(sorted, compareBaseBranches)
	return sorted
}

func compareBaseBranches(a, b string) int {
	rankA, preferredA := preferredBaseBranches[a]
	rankB, preferredB := preferredBaseBranches[b]

	switch {
	case preferredA && preferredB:
		if rankA != rankB {
			return rankA - rankB
		}
		return strings.Compare(a, b)
	case preferredA:
		return -1
	case preferredB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
