package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studygen/ent"
	"github.com/abhisek/studygen/ent/setting"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, error) {
	s, err := r.client.Setting.Query().
		Where(setting.KeyEQ(key)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %q: %w", key, err)
	}
	return s.Value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.Setting.Update().
		Where(setting.KeyEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	if n == 0 {
		_, err = r.client.Setting.Create().
			SetKey(key).
			SetValue(value).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create setting %q: %w", key, err)
		}
	}
	return nil
}
