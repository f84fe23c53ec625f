package tui

import "testing"

func TestScoresButtonHitTest(t *testing.T) {
	m := Model{width: 80}

	x0, x1 := m.scoresButtonZone()
	if x1 != 78 || x1-x0 != len(scoresButtonLabel) {
		t.Fatalf("Unexpected button zone [%d, %d)", x0, x1)
	}

	if !m.overScoresButton(x0, 0) {
		t.Error("Left edge of the button should hit")
	}
	if !m.overScoresButton(x1-1, 0) {
		t.Error("Right edge of the button should hit")
	}
	if m.overScoresButton(x0-1, 0) {
		t.Error("Left of the button should miss")
	}
	if m.overScoresButton(x1, 0) {
		t.Error("Past the button should miss")
	}
	if m.overScoresButton(x0, 1) {
		t.Error("Other rows should miss")
	}
}

func TestScoresButtonZoneNarrowScreen(t *testing.T) {
	m := Model{width: 4}
	x0, _ := m.scoresButtonZone()
	if x0 < 0 {
		t.Errorf("Zone start must not go negative, got %d", x0)
	}
}
