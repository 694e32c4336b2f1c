package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studygen/ent"
)

// accountRepo implements AccountRepo using the ent client.
type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) Load(ctx context.Context) (*AccountRecord, error) {
	a, err := r.client.Account.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query account: %w", err)
	}
	return &AccountRecord{
		Name:             a.Name,
		Email:            a.Email,
		JoinedAt:         a.JoinedAt,
		IsPremium:        a.IsPremium,
		HasPaymentMethod: a.HasPaymentMethod,
		PlanCompleted:    a.PlanCompleted,
	}, nil
}

func (r *accountRepo) Save(ctx context.Context, rec *AccountRecord) error {
	existing, err := r.client.Account.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query account: %w", err)
	}

	if existing == nil {
		_, err = r.client.Account.Create().
			SetName(rec.Name).
			SetEmail(rec.Email).
			SetJoinedAt(rec.JoinedAt).
			SetIsPremium(rec.IsPremium).
			SetHasPaymentMethod(rec.HasPaymentMethod).
			SetPlanCompleted(rec.PlanCompleted).
			Save(ctx)
	} else {
		// joined_at is immutable; everything else follows the record.
		_, err = existing.Update().
			SetName(rec.Name).
			SetEmail(rec.Email).
			SetIsPremium(rec.IsPremium).
			SetHasPaymentMethod(rec.HasPaymentMethod).
			SetPlanCompleted(rec.PlanCompleted).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func (r *accountRepo) Delete(ctx context.Context) error {
	if _, err := r.client.Account.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
