package treet

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultCategories are offered first; any other non-empty category is accepted as-is.
var DefaultCategories = []string{
	"Wellness Shot",
	"Smoothie",
	"Juice",
	"Dessert",
	"Snack",
	"Other",
}

var folder = cases.Fold()

func foldKey(s string) string {
	return folder.String(strings.Join(strings.Fields(s), " "))
}

// NormalizeCategory trims c and maps a case-insensitive match of a default to its canonical spelling.
func NormalizeCategory(c string) string {
	c = strings.Join(strings.Fields(c), " ")
	key := folder.String(c)
	for _, d := range DefaultCategories {
		if folder.String(d) == key {
			return d
		}
	}
	return c
}

// MergeCategories returns the defaults followed by the distinct custom categories from used.
func MergeCategories(used []string) []string {
	out := make([]string, 0, len(DefaultCategories)+len(used))
	seen := make(map[string]bool, cap(out))
	for _, c := range DefaultCategories {
		seen[foldKey(c)] = true
		out = append(out, c)
	}
	for _, c := range used {
		c = strings.TrimSpace(c)
		k := foldKey(c)
		if c == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}
