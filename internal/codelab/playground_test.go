package codelab

import "testing"

func TestSolutionGate(t *testing.T) {
	p := NewPlayground("Reverse a linked list")

	for want := 0; want < SolutionUnlockAttempts; want++ {
		if p.Attempts() != want {
			t.Fatalf("attempts = %d, want %d", p.Attempts(), want)
		}
		if !p.SolutionLocked() {
			t.Fatalf("solution unlocked at %d attempts", p.Attempts())
		}
		p.RecordAttempt()
	}

	if p.SolutionLocked() {
		t.Error("solution still locked after three attempts")
	}
}

func TestLanguageSwitchKeepsAttempts(t *testing.T) {
	p := NewPlayground("problem")
	p.RecordAttempt()
	p.RecordAttempt()
	p.CacheSolution("def solve(): pass")

	p.SetLanguage("JavaScript")

	if p.Attempts() != 2 {
		t.Errorf("attempts = %d, want 2 after language switch", p.Attempts())
	}
	if _, ok := p.CachedSolution(); ok {
		t.Error("cached solution should not survive a language switch")
	}
	if p.SolutionVisible() {
		t.Error("solution pane should close on language switch")
	}
	if p.Code != StarterCode("JavaScript") {
		t.Errorf("editor not reset to scaffold: %q", p.Code)
	}
}

func TestToggleSolution(t *testing.T) {
	p := NewPlayground("problem")

	// Locked: toggle does nothing and requests no fetch.
	if p.ToggleSolution() {
		t.Error("locked toggle should not request a fetch")
	}
	if p.SolutionVisible() {
		t.Error("locked toggle should not reveal")
	}

	p.RecordAttempt()
	p.RecordAttempt()
	p.RecordAttempt()

	// Unlocked but uncached: caller must fetch.
	if !p.ToggleSolution() {
		t.Fatal("unlocked uncached toggle should request a fetch")
	}

	p.CacheSolution("solution code")
	if !p.SolutionVisible() {
		t.Error("caching should reveal the solution")
	}

	// Hide, then re-show from cache without the fetch.
	if p.ToggleSolution() {
		t.Error("hiding should not request a fetch")
	}
	if p.ToggleSolution() {
		t.Error("cached re-show should not request a fetch")
	}
	if !p.SolutionVisible() {
		t.Error("cached toggle should reveal")
	}
}

func TestStarterCode(t *testing.T) {
	for _, lang := range Languages {
		if StarterCode(lang) == "" {
			t.Errorf("no scaffold for %s", lang)
		}
	}
	if StarterCode("COBOL") != "" {
		t.Error("unknown language should have empty scaffold")
	}
}
