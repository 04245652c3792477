package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"stp/internal/config"
	"stp/internal/domain"
	"stp/internal/storage"
)

// FailureViewer displays failed test units in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays unit failures in an interactive TUI. Failures can be marked
// resolved; the marks persist back into the results JSON.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	if len(output.Details) == 0 {
		color.Green("✓ No unit failures found!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range output.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range output.Details {
			output.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		failure := output.Details[index]
		name := failure.UnitName
		if name == "" {
			name = fmt.Sprintf("Unit %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	for i := range output.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for i := range output.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Unit Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] toggle resolved, → details, ← back, Ctrl+C exit ",
			len(output.Details), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Details) {
			detailsView.SetText(fv.formatFailure(output.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, itemText(index), "")
					updateHeader()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
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

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(list, 0, 1, true).
			AddItem(detailsView, 0, 2, false), 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailure formats a unit failure for display using tview color tags
func (fv *FailureViewer) formatFailure(failure domain.UnitFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n", failure.UnitName)
	if failure.MethodName != "" {
		fmt.Fprintf(&b, "[gray]%s[white]\n", failure.MethodName)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "[cyan]Input:[white] %s\n", failure.FilePath)
	if failure.Manifest != "" {
		fmt.Fprintf(&b, "[cyan]Directive:[white] %s:%d\n", failure.Manifest, failure.Line)
	}
	fmt.Fprintf(&b, "[cyan]Expected errors:[white] %d\n\n", failure.ExpectErrors)

	if failure.Message != "" {
		fmt.Fprintf(&b, "[yellow]Failure:[white]\n%s\n", failure.Message)
	}
	return b.String()
}
