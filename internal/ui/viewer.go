package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"uts2ctrf/internal/domain"
)

// FailureViewer displays failed tests in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View displays the given failures. title is shown in the header.
func (fv *FailureViewer) View(title string, failures []domain.TestCase) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(listItemText(i, failure), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(title, len(failures)))

	updateDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		statsView.SetText(FormatFailureStats(failures[index]))
		detailsView.SetText(FormatFailureDetails(failures[index]))
		detailsView.ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		updateDetails(index)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(title string, count int) string {
	return fmt.Sprintf(" %s: %d failure(s) | ↑↓ navigate, → details, ← back, q to exit ", tview.Escape(title), count)
}

func listItemText(index int, failure domain.TestCase) string {
	name := failure.Name
	if name == "" {
		name = fmt.Sprintf("Test %d", index+1)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(name))
}

// FormatFailureStats formats the header line for a failure using tview color tags
func FormatFailureStats(failure domain.TestCase) string {
	path := "Unknown file"
	line := 0
	if failure.FailureDetail != nil && failure.FilePath != "" {
		path = failure.FilePath
		line = failure.Line
	}
	suite := failure.Suite
	if suite == "" {
		suite = "-"
	}
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white]  [cyan]at:[white] [yellow]%s:%d[white]\n",
		tview.Escape(suite), tview.Escape(path), line)
}

// FormatFailureDetails formats a failure for display using tview color tags
func FormatFailureDetails(failure domain.TestCase) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.Name))
	fmt.Fprintf(&b, "[cyan]Suite: %s[white]\n", tview.Escape(failure.Suite))
	if failure.FailureDetail == nil {
		return b.String()
	}

	fmt.Fprintf(&b, "[yellow]Location: %s:%d[white]\n\n", tview.Escape(failure.FilePath), failure.Line)
	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n\n", tview.Escape(failure.Message))
	}
	if failure.Trace != "" {
		fmt.Fprintf(&b, "[yellow]Trace:[white]\n  %s\n", tview.Escape(failure.Trace))
	}
	return b.String()
}
