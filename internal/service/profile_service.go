package service

import (
	"context"
	"strings"

	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/repository"
	"github.com/spst-logistics/spst-backend/internal/store"
)

// ProfileService manages the sender profile keyed by the caller's verified
// email. Handlers enforce authentication before calling in.
type ProfileService interface {
	Get(ctx context.Context, email string) (*model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) error
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

var profileEmailAliases = []string{fProfileEmail, "Mail", "Email Cliente"}

func profileFormula(email string) string {
	parts := make([]string, 0, len(profileEmailAliases))
	for _, alias := range profileEmailAliases {
		parts = append(parts, store.EqualsFold(alias, email))
	}
	return store.Or(parts...)
}

func (s *profileService) Get(ctx context.Context, email string) (*model.Profile, error) {
	rec, err := s.repo.FindFirst(ctx, profileFormula(email))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	profile := projectProfile(rec)
	if profile.Email == "" {
		profile.Email = email
	}
	return &profile, nil
}

func (s *profileService) Upsert(ctx context.Context, p *model.Profile) error {
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return ErrValidation
	}
	fields := map[string]interface{}{fProfileEmail: email}
	setStr(fields, fProfileName, p.Name)
	setStr(fields, fProfileCompany, p.Company)
	setStr(fields, fProfileCountry, p.Country)
	setStr(fields, fProfileCity, p.City)
	setStr(fields, fProfileZip, p.Zip)
	setStr(fields, fProfileAddress, p.Address)
	setStr(fields, fProfilePhone, p.Phone)
	setStr(fields, fProfileTaxID, p.TaxID)

	existing, err := s.repo.FindFirst(ctx, profileFormula(email))
	if err != nil {
		return err
	}
	if existing != nil {
		return s.repo.Update(ctx, existing.ID, fields)
	}
	_, err = s.repo.Create(ctx, fields)
	return err
}
