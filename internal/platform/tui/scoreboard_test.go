package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shmup/internal/storage"
)

func TestScoreboardFiltersByMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	for _, r := range []storage.Run{
		{Mode: "easy", Score: 100, Wave: 1},
		{Mode: "normal", Score: 400, Wave: 4},
		{Mode: "easy", Score: 250, Wave: 2},
	} {
		if _, err := store.SaveRun("shmup", r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, "shmup", 100, 30)
	if got := len(m.Scores()); got != 3 {
		t.Fatalf("all modes list %d runs, expected 3", got)
	}
	if m.Scores()[0].Score != 400 {
		t.Errorf("top run = %+v", m.Scores()[0])
	}
	if !strings.Contains(m.View(), "3 runs") {
		t.Error("stats line missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := len(m.Scores()); got != 2 {
		t.Fatalf("easy lists %d runs, expected 2", got)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - easy") {
		t.Error("title does not name the mode")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if len(m.Scores()) != 0 {
		t.Errorf("fixed lists %d runs, expected none", len(m.Scores()))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "shmup", 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(ScoreboardModel)
	if !m.showSidebar {
		t.Error("wide terminal should show the sidebar")
	}

	next, _ = m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b did not leave the scoreboard")
	}
}
