package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/spst-logistics/spst-backend/internal/carrier"
	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/repository"
	"github.com/spst-logistics/spst-backend/internal/store"
)

// CreateResult is what a successful submission returns.
type CreateResult struct {
	ID        string `json:"id"`
	DisplayID string `json:"displayId"`
}

// ListFilter narrows a listing. OwnerEmail filters server-side across the
// email alias set; Search filters client-side after the fetch.
type ListFilter struct {
	OwnerEmail string
	Search     string
}

type ShipmentService interface {
	// Create validates the payload, writes the parent record, then writes
	// parcel and packing-list children in batches of store.BatchLimit,
	// sequentially, each linked to the parent. The two phases are not
	// atomic: a child-batch failure after a successful parent write leaves
	// the parent with fewer children than submitted; that is logged and the
	// request still succeeds with the parent id. Creation is not
	// idempotent — a client retry produces a second parent record, as no
	// deduplication key exists in the store schema.
	Create(ctx context.Context, in *model.ShipmentInput, ownerEmail string) (*CreateResult, error)
	Get(ctx context.Context, id string) (*model.Shipment, error)
	List(ctx context.Context, filter ListFilter) ([]model.Shipment, error)
	Parcels(ctx context.Context, id string) ([]model.Parcel, error)
	// SetTracking computes the tracking URL for the carrier and code and
	// backfills it on the record. Unrecognized carriers produce no URL and
	// no store write; recomputing an unchanged URL writes nothing.
	SetTracking(ctx context.Context, id, carrierName, trackingCode string) (string, error)
}

type shipmentService struct {
	repo repository.ShipmentRepository
}

func NewShipmentService(repo repository.ShipmentRepository) ShipmentService {
	return &shipmentService{repo: repo}
}

func (s *shipmentService) Create(ctx context.Context, in *model.ShipmentInput, ownerEmail string) (*CreateResult, error) {
	if err := validateParty("sender", in.Sender); err != nil {
		return nil, err
	}
	if err := validateParty("recipient", in.Recipient); err != nil {
		return nil, err
	}

	displayID := newDisplayID("SP")
	parent, err := s.repo.Create(ctx, composeShipmentFields(in, ownerEmail, displayID))
	if err != nil {
		return nil, err
	}

	if len(in.Parcels) > 0 {
		rows := make([]map[string]interface{}, 0, len(in.Parcels))
		for _, p := range in.Parcels {
			rows = append(rows, composeParcelFields(p, parent.ID, fParentLink, fParentRef))
		}
		batches := chunk(rows, store.BatchLimit)
		for i, batch := range batches {
			if err := s.repo.AddParcels(ctx, batch); err != nil {
				log.Printf("shipment %s: parcel batch %d/%d failed, parent kept: %v", parent.ID, i+1, len(batches), err)
			}
		}
	}

	if len(in.PackingList) > 0 {
		rows := make([]map[string]interface{}, 0, len(in.PackingList))
		for _, l := range in.PackingList {
			rows = append(rows, composePackingLineFields(l, parent.ID))
		}
		batches := chunk(rows, store.BatchLimit)
		for i, batch := range batches {
			if err := s.repo.AddPackingLines(ctx, batch); err != nil {
				log.Printf("shipment %s: packing batch %d/%d failed, parent kept: %v", parent.ID, i+1, len(batches), err)
			}
		}
	}

	s.backfillOwnerEmail(ctx, parent.ID, ownerEmail)

	return &CreateResult{ID: parent.ID, DisplayID: displayID}, nil
}

// backfillOwnerEmail retries the creator-email write under the alternate
// attribute names the store schema has carried over time. Each attempt is
// independent and swallowed on failure; at least one column accepting the
// value is all that matters.
func (s *shipmentService) backfillOwnerEmail(ctx context.Context, id, email string) {
	if email == "" {
		return
	}
	for _, alias := range ownerEmailAliases[1:] {
		_ = s.repo.Update(ctx, id, map[string]interface{}{alias: email})
	}
}

func (s *shipmentService) Get(ctx context.Context, id string) (*model.Shipment, error) {
	rec, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	shipment := projectShipment(rec)

	children, err := s.repo.Parcels(ctx, childFormula(parentRefAliases, rec.ID))
	if err != nil {
		return nil, err
	}
	for i := range children {
		shipment.Parcels = append(shipment.Parcels, projectParcel(&children[i]))
	}
	lines, err := s.repo.PackingLines(ctx, childFormula(parentRefAliases, rec.ID))
	if err != nil {
		return nil, err
	}
	for i := range lines {
		shipment.PackingList = append(shipment.PackingList, projectPackingLine(&lines[i]))
	}
	return &shipment, nil
}

func (s *shipmentService) List(ctx context.Context, filter ListFilter) ([]model.Shipment, error) {
	recs, err := s.repo.List(ctx, ownerFormula(filter.OwnerEmail))
	if err != nil {
		return nil, err
	}
	out := make([]model.Shipment, 0, len(recs))
	for i := range recs {
		row := projectShipment(&recs[i])
		if !matchesSearch(filter.Search, row.DisplayID, row.ID, row.Recipient.Name, row.Recipient.City, row.Recipient.Country) {
			continue
		}
		out = append(out, row)
	}
	sortByCreatedDesc(out)
	return out, nil
}

func (s *shipmentService) Parcels(ctx context.Context, id string) ([]model.Parcel, error) {
	rec, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	children, err := s.repo.Parcels(ctx, childFormula(parentRefAliases, rec.ID))
	if err != nil {
		return nil, err
	}
	parcels := make([]model.Parcel, 0, len(children))
	for i := range children {
		parcels = append(parcels, projectParcel(&children[i]))
	}
	return parcels, nil
}

func (s *shipmentService) SetTracking(ctx context.Context, id, carrierName, trackingCode string) (string, error) {
	url := carrier.TrackingURL(carrierName, trackingCode)
	if url == "" {
		return "", nil
	}
	rec, err := s.repo.Find(ctx, id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrNotFound
	}
	current := projectShipment(rec)
	if current.TrackingURL == url {
		return url, nil
	}
	fields := map[string]interface{}{
		fCarrier:        strings.TrimSpace(carrierName),
		fTrackingNumber: strings.TrimSpace(trackingCode),
		fTrackingURL:    url,
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return "", err
	}
	return url, nil
}

// ownerFormula matches the owner email case-insensitively across the whole
// alias set, OR-combined, so filtering tolerates the same schema drift the
// read path does.
func ownerFormula(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	parts := make([]string, 0, len(ownerEmailAliases))
	for _, alias := range ownerEmailAliases {
		parts = append(parts, store.EqualsFold(alias, email))
	}
	return store.Or(parts...)
}

func childFormula(refAliases []string, parentID string) string {
	parts := make([]string, 0, len(refAliases))
	for _, alias := range refAliases {
		parts = append(parts, store.Equals(alias, parentID))
	}
	return store.Or(parts...)
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// sortByCreatedDesc orders newest first. Created times are RFC3339 strings,
// so a lexical comparison is chronological; records without one keep the
// store-returned order at the end.
func sortByCreatedDesc(rows []model.Shipment) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt > rows[j].CreatedAt
	})
}
