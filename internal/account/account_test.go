package account

import (
	"testing"
	"time"
)

func freshAccount(joined time.Time) *Account {
	return &Account{Name: "Ada", Email: "ada@example.com", JoinedAt: joined}
}

func TestTrialWindow(t *testing.T) {
	joined := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		now           time.Time
		wantActive    bool
		wantRemaining int
	}{
		{"just joined", joined, true, 3},
		{"half a day in", joined.Add(12 * time.Hour), true, 3},
		{"two days in", joined.Add(48 * time.Hour), true, 1},
		{"exactly three days", joined.Add(72 * time.Hour), true, 0},
		{"just past three days", joined.Add(72*time.Hour + time.Minute), false, 0},
		{"a week later", joined.Add(7 * 24 * time.Hour), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := freshAccount(joined).Trial(tt.now)
			if got.Active != tt.wantActive {
				t.Errorf("Active = %v, want %v", got.Active, tt.wantActive)
			}
			if got.RemainingDays != tt.wantRemaining {
				t.Errorf("RemainingDays = %d, want %d", got.RemainingDays, tt.wantRemaining)
			}
		})
	}
}

func TestCanGeneratePlan(t *testing.T) {
	joined := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	inTrial := joined.Add(24 * time.Hour)
	expired := joined.Add(96 * time.Hour)

	tests := []struct {
		name      string
		premium   bool
		completed bool
		now       time.Time
		want      bool
	}{
		{"free within trial", false, false, inTrial, true},
		{"free after trial", false, false, expired, false},
		{"free completed within trial", false, true, inTrial, false},
		{"premium after trial", true, false, expired, true},
		{"premium completed", true, true, expired, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := freshAccount(joined)
			a.IsPremium = tt.premium
			a.PlanCompleted = tt.completed
			if got := a.CanGeneratePlan(tt.now); got != tt.want {
				t.Errorf("CanGeneratePlan = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletePlanDropsPremium(t *testing.T) {
	joined := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	a := freshAccount(joined)
	a.IsPremium = true
	a.HasPaymentMethod = true

	a.CompletePlan()

	if !a.PlanCompleted {
		t.Error("PlanCompleted not set")
	}
	if a.IsPremium {
		t.Error("completion must drop premium")
	}
	if !a.HasPaymentMethod {
		t.Error("payment method should survive completion")
	}
	if a.CanGeneratePlan(joined.Add(time.Hour)) {
		t.Error("completed free account should not generate a new plan")
	}
}

func TestActivatePremiumRestoresGeneration(t *testing.T) {
	joined := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	a := freshAccount(joined)
	a.CompletePlan()

	a.ActivatePremium()

	if !a.IsPremium || !a.HasPaymentMethod {
		t.Error("upgrade did not mark premium with payment method")
	}
	if a.PlanCompleted {
		t.Error("upgrade should clear plan completion")
	}
	if !a.CanGeneratePlan(joined.Add(30 * 24 * time.Hour)) {
		t.Error("premium account should generate plans past the trial")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	joined := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	a := freshAccount(joined)
	a.IsPremium = true

	back := FromRecord(a.Record())
	if *back != *a {
		t.Errorf("round trip mismatch: %+v != %+v", back, a)
	}

	if FromRecord(nil) != nil {
		t.Error("FromRecord(nil) should be nil")
	}
}
