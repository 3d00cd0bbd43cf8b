package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/gauntlet/internal/game"
	"github.com/abhisek/gauntlet/internal/store"
)

func testSummary() *game.SetSummary {
	return &game.SetSummary{
		SetID:         uuid.New(),
		Tier:          "junior",
		Status:        string(store.StatusCompleted),
		NextIndex:     21,
		BossUnlocked:  true,
		Score:         17,
		Attempted:     20,
		Correct:       17,
		CorrectMain:   9,
		CorrectRandom: 4,
		CorrectBoss:   4,
	}
}

func loadedScreen() *SummaryScreen {
	s := New(nil, uuid.New(), "ada")
	s.summary = testSummary()
	return s
}

func TestSummaryScreen_Title(t *testing.T) {
	s := loadedScreen()
	if s.Title() != "Run Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Run Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := loadedScreen()
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Gauntlet complete!") {
		t.Error("expected completed title in view")
	}
	if !strings.Contains(view, "SCORE 17") {
		t.Error("expected score line in view")
	}
}

func TestSummaryScreen_OpenSetTitle(t *testing.T) {
	s := loadedScreen()
	s.summary.Status = string(store.StatusOpen)
	view := s.View(80, 24)
	if !strings.Contains(view, "Run in progress") {
		t.Error("expected in-progress title for an open set")
	}
	if !strings.Contains(view, "gate stands open") {
		t.Error("expected open-gate note for an unlocked open set")
	}
}

func TestSummaryScreen_LoadingBeforeData(t *testing.T) {
	s := New(nil, uuid.New(), "ada")
	view := s.View(80, 24)
	if !strings.Contains(view, "Tallying") {
		t.Error("expected loading view before summary arrives")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := loadedScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := loadedScreen()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := loadedScreen()
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
