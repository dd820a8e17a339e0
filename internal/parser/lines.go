package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind tags what a log line announces
type LineKind int

const (
	NoMatch LineKind = iota
	Passed
	FailedHeader
)

var (
	passedPattern = regexp.MustCompile(`^TESTING : Passed :(.*)`)
	failedPattern = regexp.MustCompile(`^FATAL : (.*) failed:`)
	// file:line: message, the file part is greedy so it may contain colons
	detailPattern = regexp.MustCompile(`^(.*):(\d+): (.*)`)
)

// Match is the result of matching a single announcement line
type Match struct {
	Kind LineKind
	Name string
}

// Detail is a parsed failure detail line
type Detail struct {
	File    string
	Line    int
	Message string
	Raw     string
}

// MatchLine classifies a log line as a passed announcement, a failure header or neither.
// The returned name is trimmed.
func MatchLine(line string) Match {
	if m := passedPattern.FindStringSubmatch(line); m != nil {
		return Match{Kind: Passed, Name: strings.TrimSpace(m[1])}
	}
	if m := failedPattern.FindStringSubmatch(line); m != nil {
		return Match{Kind: FailedHeader, Name: strings.TrimSpace(m[1])}
	}
	return Match{Kind: NoMatch}
}

// MatchDetail parses the line following a failure header.
// ok is false when the line is not of the form file:line: message
// or the line number does not fit an int.
func MatchDetail(line string) (Detail, bool) {
	raw := strings.TrimSpace(line)
	m := detailPattern.FindStringSubmatch(raw)
	if m == nil {
		return Detail{}, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Detail{}, false
	}
	return Detail{
		File:    strings.TrimSpace(m[1]),
		Line:    n,
		Message: strings.TrimSpace(m[3]),
		Raw:     raw,
	}, true
}

// Classname returns the part of a test name before its first underscore
func Classname(name string) string {
	before, _, _ := strings.Cut(name, "_")
	return before
}

// SplitLines splits log content into lines the way a text-mode reader does:
// \r\n, \r and \n all end a line and a final terminator adds no empty line.
func SplitLines(data string) []string {
	if data == "" {
		return []string{}
	}
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.ReplaceAll(data, "\r", "\n")
	data = strings.TrimSuffix(data, "\n")
	return strings.Split(data, "\n")
}
