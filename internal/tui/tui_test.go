// internal/tui/tui_test.go
package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/allocview/internal/dataset"
	"github.com/mwiater/allocview/internal/report"
)

// TestRenderTable verifies the terminal table carries labels, cell values,
// margins with quotas and the grand total.
func TestRenderTable(t *testing.T) {
	ds := dataset.Builtin()[0]
	out, err := RenderTable(ds, dataset.Diversimax)
	if err != nil {
		t.Fatalf("RenderTable error: %v", err)
	}
	for _, want := range []string{"Neighborhood ↓ / Gender →", "North East", "Female", "20 (19-22)", "30 (28-32)", "60"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}

	again, _ := RenderTable(ds, dataset.Diversimax)
	if again != out {
		t.Fatal("terminal rendering is not deterministic")
	}

	if _, err := RenderTable(ds, "greedy"); !errors.Is(err, dataset.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestRenderStats(t *testing.T) {
	ds := dataset.Builtin()[6]
	out, err := RenderStats(ds, dataset.Diversimax, report.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Gini: 0.04", "No representation: 0", "Low (1-2): 0"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in stats: %s", want, out)
		}
	}

	out, err = RenderStats(ds, dataset.Diversimax, report.Options{ComputeDispersion: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "(computed)") {
		t.Fatalf("expected computed marker: %s", out)
	}
}

func TestRenderDataset(t *testing.T) {
	out, err := RenderDataset(dataset.Builtin()[3], report.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Age × Gender - Kfar Saba", "underrepresented", "Diversimax", "Leximin", "70+"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "Diversimax") > strings.Index(out, "Leximin") {
		t.Fatal("variants must follow the configured order")
	}
}

// TestBrowserSelection drives the browser model with synthesized messages and
// checks that moving the cursor re-renders the detail pane.
func TestBrowserSelection(t *testing.T) {
	datasets := dataset.Builtin()
	m := newModel(datasets, dataset.DefaultIndex, report.Options{})
	if m.selected != dataset.DefaultIndex {
		t.Fatalf("expected initial selection %d, got %d", dataset.DefaultIndex, m.selected)
	}
	if !strings.Contains(m.rendered, "Age × Gender - Kfar Saba") {
		t.Fatalf("expected default dataset rendered, got:\n%s", m.rendered)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	m = next.(*model)
	if m.width != 160 || m.height != 60 {
		t.Fatalf("expected size 160x60, got %dx%d", m.width, m.height)
	}

	m.list.Select(0)
	m.syncSelection()
	if m.selected != 0 {
		t.Fatalf("expected selection 0, got %d", m.selected)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(*model)
	if m.selected != 1 {
		t.Fatalf("expected selection 1 after moving down, got %d", m.selected)
	}
	if !strings.Contains(m.rendered, datasets[1].Name) {
		t.Fatalf("expected %q rendered, got:\n%s", datasets[1].Name, m.rendered)
	}
	if !strings.Contains(m.View(), "Datasets") {
		t.Fatal("expected the selector title in the view")
	}
}

func TestBrowserQuit(t *testing.T) {
	m := newModel(dataset.Builtin(), 0, report.Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestBrowserRenderError(t *testing.T) {
	m := newModel(dataset.Builtin(), 0, report.Options{Variants: []string{"greedy"}})
	if m.err == nil {
		t.Fatal("expected render error for unknown variant")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Fatal("expected error in view")
	}
}

func TestBrowseRejectsEmptyCatalog(t *testing.T) {
	if err := Browse(nil, 0, report.Options{}); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
