package store

import (
	"context"
	"time"
)

// AccountRecord is the persisted learner record. The app is single-user:
// Load returns the one row or nil, Save upserts it, Delete signs out.
type AccountRecord struct {
	Name             string
	Email            string
	JoinedAt         time.Time
	IsPremium        bool
	HasPaymentMethod bool
	PlanCompleted    bool
}

// AccountRepo manages the local account record.
type AccountRepo interface {
	Load(ctx context.Context) (*AccountRecord, error)
	Save(ctx context.Context, rec *AccountRecord) error
	Delete(ctx context.Context) error
}

// SettingsRepo is a small key/value bag for device-local preferences.
type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Setting keys in use.
const (
	SettingTheme = "theme"
)

// CooldownRepo persists per-day quiz cooldown expiries. Get returns the
// zero time and false when no row exists for the key. Callers are expected
// to Remove rows they observe as expired rather than ignore them.
type CooldownRepo interface {
	Get(ctx context.Context, dayKey string) (time.Time, bool, error)
	Set(ctx context.Context, dayKey string, expiresAt time.Time) error
	Remove(ctx context.Context, dayKey string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
