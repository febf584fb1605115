// internal/tui/browser.go
// Package tui renders comparison datasets in the terminal: lipgloss tables for
// one-shot output and a Bubble Tea browser that re-renders on selection.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/logging"
	"github.com/mwiater/allocview/internal/report"
	"github.com/mwiater/allocview/internal/util"
)

// item represents a dataset in the selector list.
type item struct {
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

func describe(ds dataset.Dataset) string {
	axes := fmt.Sprintf("%s × %s", util.UpperFirst(ds.Axes.RowsName), util.UpperFirst(ds.Axes.ColsName))
	if !ds.HasComment() {
		return axes
	}
	return axes + " · " + util.TruncateRunes(ds.Comment, 40)
}

// model is the Bubble Tea model of the dataset browser. The selected index
// lives here and nowhere else.
type model struct {
	datasets      []dataset.Dataset
	opts          report.Options
	list          list.Model
	viewport      viewport.Model
	selected      int
	rendered      string
	err           error
	width, height int
}

var listStyle = lipgloss.NewStyle().MarginRight(2)

// newModel creates a browser showing datasets[selected].
func newModel(datasets []dataset.Dataset, selected int, opts report.Options) *model {
	items := make([]list.Item, len(datasets))
	for i, ds := range datasets {
		items[i] = item{title: ds.Name, desc: describe(ds)}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Datasets"
	l.SetShowHelp(false)

	m := &model{
		datasets: datasets,
		opts:     opts,
		list:     l,
		viewport: viewport.New(80, 20),
		selected: -1,
	}
	if selected >= 0 && selected < len(datasets) {
		m.list.Select(selected)
	}
	m.syncSelection()
	return m
}

// syncSelection re-renders the detail pane when the list cursor moved.
func (m *model) syncSelection() {
	idx := m.list.Index()
	if idx == m.selected || idx < 0 || idx >= len(m.datasets) {
		return
	}
	m.selected = idx
	ds := m.datasets[idx]
	m.rendered, m.err = RenderDataset(ds, m.opts)
	if m.err == nil {
		logging.LogRender(ds.Name, "", "terminal", len(m.rendered))
	}
	m.viewport.SetContent(m.rendered)
	m.viewport.GotoTop()
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "pgdown", "pgup":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listWidth := util.Max(30, msg.Width/3)
		m.list.SetSize(listWidth, msg.Height-1)
		m.viewport.Width = util.Max(20, msg.Width-listWidth-2)
		m.viewport.Height = util.Max(5, msg.Height-1)
	}

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.syncSelection()

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *model) View() string {
	detail := m.viewport.View()
	if m.err != nil {
		detail = fmt.Sprintf("Error: %v", m.err)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(m.list.View()), detail)
}

// Browse runs the interactive dataset browser until the user quits.
func Browse(datasets []dataset.Dataset, selected int, opts report.Options) error {
	if len(datasets) == 0 {
		return fmt.Errorf("no datasets to browse")
	}
	p := tea.NewProgram(newModel(datasets, selected, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
