package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAccountRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AccountRepo()
	ctx := context.Background()

	// No account yet.
	rec, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record before first save")
	}

	joined := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &AccountRecord{
		Name:     "Priya",
		Email:    "priya@example.com",
		JoinedAt: joined,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record after save")
	}
	if rec.Name != "Priya" || rec.Email != "priya@example.com" {
		t.Errorf("loaded %q/%q, want Priya/priya@example.com", rec.Name, rec.Email)
	}
	if !rec.JoinedAt.Equal(joined) {
		t.Errorf("joined at %v, want %v", rec.JoinedAt, joined)
	}

	// Saving again upserts rather than inserting a second row.
	rec.IsPremium = true
	rec.HasPaymentMethod = true
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !rec.IsPremium || !rec.HasPaymentMethod {
		t.Error("expected premium flags to persist")
	}

	if err := repo.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record after delete")
	}
}

func TestCooldownRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CooldownRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "Day1Variables")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no cooldown before set")
	}

	expires := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Second)
	if err := repo.Set(ctx, "Day1Variables", expires); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := repo.Get(ctx, "Day1Variables")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected cooldown after set")
	}
	if !got.Equal(expires) {
		t.Errorf("expiry %v, want %v", got, expires)
	}

	// Each day key is independent.
	_, ok, err = repo.Get(ctx, "Day2Loops")
	if err != nil {
		t.Fatalf("get other key: %v", err)
	}
	if ok {
		t.Fatal("unexpected cooldown for untouched key")
	}

	if err := repo.Remove(ctx, "Day1Variables"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, ok, err = repo.Get(ctx, "Day1Variables")
	if err != nil {
		t.Fatalf("get after remove: %v", err)
	}
	if ok {
		t.Fatal("expected cooldown gone after remove")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "plan", InputTokens: 900, OutputTokens: 2100, LatencyMs: 4200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "quiz", InputTokens: 300, OutputTokens: 800, LatencyMs: 1800, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "quiz", InputTokens: 280, OutputTokens: 0, LatencyMs: 900, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2 (limit)", len(got))
	}

	rec, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if rec == nil {
		t.Fatal("expected event by ID")
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown ID")
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	byPurpose := make(map[string]LLMUsageStat, len(stats))
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	if st := byPurpose["quiz"]; st.Calls != 2 || st.InputTokens != 580 {
		t.Errorf("quiz usage = %+v, want 2 calls / 580 input tokens", st)
	}
	if st := byPurpose["plan"]; st.Calls != 1 || st.OutputTokens != 2100 {
		t.Errorf("plan usage = %+v, want 1 call / 2100 output tokens", st)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("got %d models, want 1", len(models))
	}
	if models[0].Calls != 3 || models[0].InputTokens != 1480 {
		t.Errorf("model usage = %+v, want 3 calls / 1480 input tokens", models[0])
	}
}
