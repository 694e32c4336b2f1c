package account

import (
	"math"
	"time"

	"github.com/abhisek/studygen/internal/store"
)

// TrialDays is the length of the free trial.
const TrialDays = 3

// Account is the in-memory learner profile. All entitlement decisions
// derive from these fields plus the clock.
type Account struct {
	Name             string
	Email            string
	JoinedAt         time.Time
	IsPremium        bool
	HasPaymentMethod bool
	PlanCompleted    bool
}

// FromRecord converts a persisted record into a domain account.
func FromRecord(rec *store.AccountRecord) *Account {
	if rec == nil {
		return nil
	}
	return &Account{
		Name:             rec.Name,
		Email:            rec.Email,
		JoinedAt:         rec.JoinedAt,
		IsPremium:        rec.IsPremium,
		HasPaymentMethod: rec.HasPaymentMethod,
		PlanCompleted:    rec.PlanCompleted,
	}
}

// Record converts the account back into its persisted form.
func (a *Account) Record() *store.AccountRecord {
	return &store.AccountRecord{
		Name:             a.Name,
		Email:            a.Email,
		JoinedAt:         a.JoinedAt,
		IsPremium:        a.IsPremium,
		HasPaymentMethod: a.HasPaymentMethod,
		PlanCompleted:    a.PlanCompleted,
	}
}

// TrialStatus is the trial window evaluated at a point in time.
type TrialStatus struct {
	Active        bool
	RemainingDays int
}

// Trial evaluates the free trial against now. Elapsed time is measured
// in fractional days, so the trial expires mid-day exactly TrialDays
// after joining, not at a midnight boundary. RemainingDays rounds up:
// 2.1 days left displays as 3.
func (a *Account) Trial(now time.Time) TrialStatus {
	elapsed := now.Sub(a.JoinedAt).Hours() / 24
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := int(math.Ceil(TrialDays - elapsed))
	if remaining < 0 {
		remaining = 0
	}
	return TrialStatus{
		Active:        elapsed <= TrialDays,
		RemainingDays: remaining,
	}
}

// CanGeneratePlan reports whether the account may generate a new study
// plan. Premium accounts always can. Free accounts are blocked once the
// trial lapses, and also after completing a plan: the free tier carries
// a single plan-generation privilege which completion consumes.
func (a *Account) CanGeneratePlan(now time.Time) bool {
	if a.IsPremium {
		return true
	}
	if !a.Trial(now).Active {
		return false
	}
	return !a.PlanCompleted
}

// CompletePlan marks the current plan finished. Completion always drops
// premium: continued access after finishing a plan requires re-upgrading,
// regardless of how the account reached completion.
func (a *Account) CompletePlan() {
	a.PlanCompleted = true
	a.IsPremium = false
}

// ActivatePremium upgrades the account after a verified payment and
// restores the generation privilege.
func (a *Account) ActivatePremium() {
	a.HasPaymentMethod = true
	a.IsPremium = true
	a.PlanCompleted = false
}
