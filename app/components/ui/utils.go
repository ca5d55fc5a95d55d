package ui

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// CN merges class lists. Later classes override earlier ones they conflict
// with ("px-4 px-2" keeps px-2, "p-2 px-4" keeps both, "px-4 p-2" keeps
// p-2), per variant prefix. Empty inputs are skipped.
func CN(inputs ...string) string {
	var tokens []string
	for _, input := range inputs {
		tokens = append(tokens, strings.Fields(input)...)
	}
	if len(tokens) == 0 {
		return ""
	}
	return twmerge.Merge(tokens...)
}
