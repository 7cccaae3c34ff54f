package entities

import (
	"strings"
	"unicode"
)

const branchNameSeparator = '-'

// ToBranchName turns arbitrary text into a string usable as a Git ref name.
//
// Every rune is lower-cased. ASCII lowercase letters and digits are kept,
// everything else (spaces, punctuation, non-Latin scripts, emoji) becomes a
// separator. A run of separators collapses into a single hyphen. Leading and
// trailing runs are kept as one hyphen, they are not trimmed.
func ToBranchName(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))

	lastWasSeparator := false
	for _, r := range text {
		lower := unicode.ToLower(r)
		if isBranchNameRune(lower) {
			builder.WriteRune(lower)
			lastWasSeparator = false
			continue
		}
		if !lastWasSeparator {
			builder.WriteRune(branchNameSeparator)
			lastWasSeparator = true
		}
	}

	return builder.String()
}

func isBranchNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
