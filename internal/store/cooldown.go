package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/studygen/ent"
	"github.com/abhisek/studygen/ent/quizcooldown"
)

// cooldownRepo implements CooldownRepo using the ent client.
type cooldownRepo struct {
	client *ent.Client
}

func (r *cooldownRepo) Get(ctx context.Context, dayKey string) (time.Time, bool, error) {
	c, err := r.client.QuizCooldown.Query().
		Where(quizcooldown.DayKeyEQ(dayKey)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("query cooldown %q: %w", dayKey, err)
	}
	return c.ExpiresAt, true, nil
}

func (r *cooldownRepo) Set(ctx context.Context, dayKey string, expiresAt time.Time) error {
	n, err := r.client.QuizCooldown.Update().
		Where(quizcooldown.DayKeyEQ(dayKey)).
		SetExpiresAt(expiresAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update cooldown %q: %w", dayKey, err)
	}
	if n == 0 {
		_, err = r.client.QuizCooldown.Create().
			SetDayKey(dayKey).
			SetExpiresAt(expiresAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create cooldown %q: %w", dayKey, err)
		}
	}
	return nil
}

func (r *cooldownRepo) Remove(ctx context.Context, dayKey string) error {
	_, err := r.client.QuizCooldown.Delete().
		Where(quizcooldown.DayKeyEQ(dayKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete cooldown %q: %w", dayKey, err)
	}
	return nil
}
