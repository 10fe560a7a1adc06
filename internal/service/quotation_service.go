package service

import (
	"context"
	"log"
	"sort"

	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/repository"
	"github.com/spst-logistics/spst-backend/internal/store"
)

type QuotationService interface {
	// Create shares ShipmentService.Create's two-phase, non-atomic,
	// non-idempotent write semantics.
	Create(ctx context.Context, in *model.QuotationInput, ownerEmail string) (*CreateResult, error)
	Get(ctx context.Context, id string) (*model.Quotation, error)
	List(ctx context.Context, filter ListFilter) ([]model.Quotation, error)
}

type quotationService struct {
	repo repository.QuotationRepository
}

func NewQuotationService(repo repository.QuotationRepository) QuotationService {
	return &quotationService{repo: repo}
}

func (s *quotationService) Create(ctx context.Context, in *model.QuotationInput, ownerEmail string) (*CreateResult, error) {
	if err := validateParty("sender", in.Sender); err != nil {
		return nil, err
	}
	if err := validateParty("recipient", in.Recipient); err != nil {
		return nil, err
	}

	displayID := newDisplayID("PR")
	parent, err := s.repo.Create(ctx, composeQuotationFields(in, ownerEmail, displayID))
	if err != nil {
		return nil, err
	}

	if len(in.Parcels) > 0 {
		rows := make([]map[string]interface{}, 0, len(in.Parcels))
		for _, p := range in.Parcels {
			rows = append(rows, composeParcelFields(p, parent.ID, fQuoteLink, fQuoteRef))
		}
		batches := chunk(rows, store.BatchLimit)
		for i, batch := range batches {
			if err := s.repo.AddParcels(ctx, batch); err != nil {
				log.Printf("quotation %s: parcel batch %d/%d failed, parent kept: %v", parent.ID, i+1, len(batches), err)
			}
		}
	}

	return &CreateResult{ID: parent.ID, DisplayID: displayID}, nil
}

func (s *quotationService) Get(ctx context.Context, id string) (*model.Quotation, error) {
	rec, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	quote := projectQuotation(rec)
	children, err := s.repo.Parcels(ctx, childFormula(quoteRefAliases, rec.ID))
	if err != nil {
		return nil, err
	}
	for i := range children {
		quote.Parcels = append(quote.Parcels, projectParcel(&children[i]))
	}
	return &quote, nil
}

func (s *quotationService) List(ctx context.Context, filter ListFilter) ([]model.Quotation, error) {
	recs, err := s.repo.List(ctx, ownerFormula(filter.OwnerEmail))
	if err != nil {
		return nil, err
	}
	out := make([]model.Quotation, 0, len(recs))
	for i := range recs {
		row := projectQuotation(&recs[i])
		if !matchesSearch(filter.Search, row.DisplayID, row.ID, row.Recipient.Name, row.Recipient.City, row.Recipient.Country) {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}
