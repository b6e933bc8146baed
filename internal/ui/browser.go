package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"ptr/internal/config"
	"ptr/internal/domain"
)

// Browser is an interactive test inventory viewer: node identifiers on the
// left, file detail on the right. Enter closes the TUI and prints the
// highlighted node id to stdout so the selection can feed `ptr run`.
type Browser struct {
	config *config.Config
}

// NewBrowser creates a new Browser
func NewBrowser(cfg *config.Config) *Browser {
	return &Browser{config: cfg}
}

type browserEntry struct {
	node domain.NodeID
	file *domain.TestFile
}

// Browse displays the inventory and returns after the user quits or selects
// a node.
func (b *Browser) Browse(inventory []*domain.TestFile) error {
	var entries []browserEntry
	for _, tf := range inventory {
		entries = append(entries, browserEntry{node: domain.NodeID{File: tf.Path}, file: tf})
		for _, fn := range tf.Functions {
			entries = append(entries, browserEntry{
				node: domain.NodeID{File: tf.Path, Class: fn.Class, Function: fn.Name},
				file: tf,
			})
		}
	}
	if len(entries) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(" Tests ")

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Detail ")

	for _, e := range entries {
		list.AddItem(b.itemText(e), "", 0, nil)
	}

	showDetails := func(index int) {
		if index < 0 || index >= len(entries) {
			return
		}
		e := entries[index]
		var sb strings.Builder
		fmt.Fprintf(&sb, "[yellow]File:[white] %s\n", e.file.Path)
		if e.node.Class != "" {
			fmt.Fprintf(&sb, "[yellow]Class:[white] %s\n", e.node.Class)
		}
		if e.node.Function != "" {
			fmt.Fprintf(&sb, "[yellow]Function:[white] %s\n", e.node.Function)
		}
		fmt.Fprintf(&sb, "\n[yellow]Node id:[white]\n%s\n", e.node.String())
		fmt.Fprintf(&sb, "\n[yellow]File inventory:[white] %d class(es), %d case(s)\n",
			len(e.file.Classes), len(e.file.Functions))
		detailsView.SetText(sb.String())
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	var selected string
	list.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		selected = entries[index].node.String()
		app.Stop()
	})

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	frame := tview.NewFrame(flex).
		SetBorders(0, 0, 0, 1, 0, 0).
		AddText("Enter: print node id │ q/Esc: quit", false, tview.AlignLeft, tcell.ColorGray)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(frame, true).Run(); err != nil {
		return err
	}

	if selected != "" {
		fmt.Println(selected)
	}
	return nil
}

func (b *Browser) itemText(e browserEntry) string {
	name := filepath.Base(e.file.Path)
	if e.node.Function == "" {
		return fmt.Sprintf("[aqua]%s[white]", name)
	}
	if e.node.Class != "" {
		return fmt.Sprintf("  [fuchsia]%s[white]::%s", e.node.Class, e.node.Function)
	}
	return fmt.Sprintf("  %s", e.node.Function)
}
