package repository

import (
	"context"

	"github.com/spst-logistics/spst-backend/internal/store"
)

type ProfileRepository interface {
	// FindFirst returns the first record matching the formula, or (nil, nil).
	FindFirst(ctx context.Context, formula string) (*Record, error)
	Create(ctx context.Context, fields map[string]interface{}) (*Record, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type profileRepository struct {
	profiles table
}

func NewProfileRepository(c *store.Client, profilesTable string) ProfileRepository {
	return &profileRepository{profiles: table{t: c.Table(profilesTable)}}
}

func (r *profileRepository) FindFirst(ctx context.Context, formula string) (*Record, error) {
	recs, err := r.profiles.list(ctx, formula)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (r *profileRepository) Create(ctx context.Context, fields map[string]interface{}) (*Record, error) {
	return r.profiles.create(ctx, fields)
}

func (r *profileRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.profiles.update(ctx, id, fields)
}
