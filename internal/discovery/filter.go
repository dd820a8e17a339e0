package discovery

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"uts2ctrf/internal/domain"
)

// Filter filters test cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test cases by name pattern using wildcard matching.
// Supports patterns like "MATH_*" or "*Div*"
func (f *Filter) FilterByName(tests []domain.TestCase, pattern string) []domain.TestCase {
	if pattern == "" {
		return tests
	}

	var filtered []domain.TestCase
	for _, tc := range tests {
		if f.Matches(tc.Name, pattern) {
			filtered = append(filtered, tc)
		}
	}
	return filtered
}

// Matches reports whether a single test name matches pattern
func (f *Filter) Matches(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	if matched, err := doublestar.Match(pattern, name); err == nil && matched {
		return true
	}

	// No wildcards: plain substring match
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*Div*" style: every non-empty fragment must appear in the name
	if strings.Contains(pattern, "*") {
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	return false
}
