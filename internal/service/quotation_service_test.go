package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spst-logistics/spst-backend/internal/repository"
)

type fakeQuotationRepo struct {
	parcelBatches [][]map[string]interface{}
	findRecord    *repository.Record
	findErr       error
	childErr      error
}

func (f *fakeQuotationRepo) Create(_ context.Context, fields map[string]interface{}) (*repository.Record, error) {
	return &repository.Record{ID: "recQUOTE", Fields: fields}, nil
}

func (f *fakeQuotationRepo) AddParcels(_ context.Context, batch []map[string]interface{}) error {
	f.parcelBatches = append(f.parcelBatches, batch)
	return nil
}

func (f *fakeQuotationRepo) Find(_ context.Context, _ string) (*repository.Record, error) {
	return f.findRecord, f.findErr
}

func (f *fakeQuotationRepo) List(_ context.Context, _ string) ([]repository.Record, error) {
	return nil, nil
}

func (f *fakeQuotationRepo) Parcels(_ context.Context, _ string) ([]repository.Record, error) {
	return nil, f.childErr
}

func TestQuotationGetNotFound(t *testing.T) {
	svc := NewQuotationService(&fakeQuotationRepo{})
	if _, err := svc.Get(context.Background(), "recMISSING"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestQuotationGetChildFetchFailureSurfaces(t *testing.T) {
	repo := &fakeQuotationRepo{
		findRecord: &repository.Record{ID: "recQUOTE", Fields: map[string]interface{}{}},
		childErr:   errors.New("store unreachable: connection refused"),
	}
	svc := NewQuotationService(repo)
	quote, err := svc.Get(context.Background(), "recQUOTE")
	if err == nil {
		t.Fatalf("parcel fetch failure must surface, got quotation %+v", quote)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("store failure must not look like not-found, got %v", err)
	}
}
