package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"uts2ctrf/internal/domain"
	"uts2ctrf/internal/parser"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
	err io.Writer
}

// NewFormatter creates a new Formatter writing to stdout and stderr
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output, err: color.Error}
}

// NewFormatterTo creates a Formatter writing to the given writers
func NewFormatterTo(out, err io.Writer) *Formatter {
	return &Formatter{out: out, err: err}
}

// PrintConfirmation prints the one-line conversion confirmation
func (f *Formatter) PrintConfirmation(outputPath string) {
	fmt.Fprintf(f.out, "Conversion complete. JSON report saved to %s\n", outputPath)
}

// PrintDiagnostics prints dropped failure announcements as warnings
func (f *Formatter) PrintDiagnostics(logPath string, diags []parser.Diagnostic) {
	yellow := color.New(color.FgYellow)
	for _, d := range diags {
		yellow.Fprintf(f.err, "warning: %s:%d: failure %q not recorded: %s\n", logPath, d.Line, d.Name, d.Reason)
	}
}

// PrintSummary prints a statistics table, per-suite counts and a tree of failures
func (f *Formatter) PrintSummary(report *domain.Report) {
	s := report.Results.Summary
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	white := color.New(color.FgWhite)

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintf(f.out, "║ %-61s ║\n", center(s.Name, 61))
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Tests", white, s.Tests)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Passed", green, s.Passed)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Failed", red, s.Failed)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Skipped", white, s.Skipped)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	f.row("Suites", white, len(s.Suites))
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	if len(s.Suites) > 0 {
		fmt.Fprintln(f.out)
		cyan.Fprintln(f.out, "Suites:")
		for _, name := range sortedKeys(s.Suites) {
			label := name
			if label == "" {
				label = "(unnamed)"
			}
			fmt.Fprintf(f.out, "  %-31s %d\n", label, s.Suites[name])
		}
	}

	fmt.Fprintln(f.out)
	if s.Failed == 0 {
		green.Fprintln(f.out, "✓ All tests passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d of %d test(s) failed\n", s.Failed, s.Tests)
	fmt.Fprintln(f.out)
	f.printFailedTestsTree(report.Failures())
}

func (f *Formatter) row(label string, c *color.Color, value int) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27d │\n", value)
}

// TreeNode represents a node in the source file tree of failures
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.TestCase
	IsFile   bool
}

// printFailedTestsTree prints failures grouped by the source file they were reported in
func (f *Formatter) printFailedTestsTree(failures []domain.TestCase) {
	if len(failures) == 0 {
		return
	}

	root := buildFailureTree(failures)
	f.printTreeNode(root, "", true)
}

func buildFailureTree(failures []domain.TestCase) *TreeNode {
	root := &TreeNode{Children: make(map[string]*TreeNode)}

	for _, failure := range failures {
		parts := strings.Split(strings.TrimPrefix(filepathSlash(failure.Detail().FilePath), "./"), "/")
		var kept []string
		for _, p := range parts {
			if p != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			kept = []string{"(unknown file)"}
		}

		current := root
		for i, part := range kept {
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
				}
			}
			current = current.Children[part]
			if i == len(kept)-1 {
				current.IsFile = true
				current.Failures = append(current.Failures, failure)
			}
		}
	}
	return root
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, isRoot bool) {
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		last := i == len(keys)-1

		connector := prefix + "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = prefix + "└── "
			childPrefix = prefix + "    "
		}
		if isRoot {
			connector = ""
			childPrefix = ""
		}

		if child.IsFile {
			color.New(color.FgYellow).Fprintf(f.out, "%s%s\n", connector, child.Name)
		} else {
			color.New(color.FgCyan).Fprintf(f.out, "%s%s\n", connector, child.Name)
		}

		hasChildren := len(child.Children) > 0
		for j, failure := range child.Failures {
			branch := "├── "
			if j == len(child.Failures)-1 && !hasChildren {
				branch = "└── "
			}
			d := failure.Detail()
			color.New(color.FgRed).Fprintf(f.out, "%s%s%s (line %d): %s\n",
				childPrefix, branch, failure.Name, d.Line, d.Message)
		}

		f.printTreeNode(child, childPrefix, false)
	}
}

// PrintNoFailures prints the message shown when a report has nothing to view
func (f *Formatter) PrintNoFailures() {
	color.New(color.FgGreen).Fprintln(f.out, "✓ No test failures found!")
}

// PrintFailureList prints failed tests one per line, used when there is no terminal for the viewer
func (f *Formatter) PrintFailureList(failures []domain.TestCase) {
	red := color.New(color.FgRed)
	for i, failure := range failures {
		red.Fprintf(f.out, "%d. %s\n", i+1, failure.Name)
		if failure.FailureDetail != nil {
			fmt.Fprintf(f.out, "   %s:%d: %s\n", failure.FilePath, failure.Line, failure.Message)
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// IsTerminal reports whether standard output is an interactive terminal
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
