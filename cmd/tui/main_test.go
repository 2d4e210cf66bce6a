package main

import (
	"strings"
	"testing"

	"github.com/RomuloAS/TBFSBS/internal/tbfsbs"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func testRecords() []tbfsbs.Record {
	return []tbfsbs.Record{
		{Identifier: "seq1", Target: tbfsbs.FloatTarget(3.5), Description: "Example sequence", Sequence: "ACGTTTGC"},
		{Identifier: "seq2", Description: "No target", Sequence: "AAAA"},
	}
}

func TestModeKeys(t *testing.T) {
	m := newModel(testRecords())
	if m.currentMode != modeSequence {
		t.Fatalf("expected initial mode sequence, got %v", m.currentMode)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(model)
	if m.currentMode != modeWrapped {
		t.Fatalf("expected wrapped, got %v", m.currentMode)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = next.(model)
	if m.currentMode != modeHeader {
		t.Fatalf("expected header, got %v", m.currentMode)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = next.(model)
	if m.currentMode != modeSequence {
		t.Fatalf("expected sequence, got %v", m.currentMode)
	}
}

func TestModeKeysIgnoredWhileFiltering(t *testing.T) {
	m := newModel(testRecords())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = next.(model)
	if m.list.FilterState() != list.Filtering {
		t.Fatalf("expected filter input to be active, got %v", m.list.FilterState())
	}
	// typing a mode key into the filter must not switch modes or open help
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(model)
	if m.currentMode != modeSequence {
		t.Fatalf("expected mode sequence while filtering, got %v", m.currentMode)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = next.(model)
	if m.showHelp {
		t.Fatalf("expected help to stay closed while filtering")
	}
}

func TestListItemMetadata(t *testing.T) {
	recs := testRecords()
	item := listItem{record: recs[1]}
	if item.Title() != "seq2" {
		t.Fatalf("unexpected title: %q", item.Title())
	}
	desc := item.Description()
	if !strings.Contains(desc, "null") || !strings.Contains(desc, "Length: 4") {
		t.Fatalf("unexpected metadata line: %q", desc)
	}
}

func TestRightPanelWrappedMode(t *testing.T) {
	m := newModel(testRecords())
	m.width = 120
	m.height = 40
	m.currentMode = modeWrapped
	out := m.renderRightPanel()
	if out == "" {
		t.Fatalf("expected rendered panel, got empty string")
	}
}
