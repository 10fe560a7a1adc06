package repository

import (
	"context"

	"github.com/spst-logistics/spst-backend/internal/store"
)

type QuotationRepository interface {
	Create(ctx context.Context, fields map[string]interface{}) (*Record, error)
	AddParcels(ctx context.Context, batch []map[string]interface{}) error
	Find(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, formula string) ([]Record, error)
	Parcels(ctx context.Context, formula string) ([]Record, error)
}

type quotationRepository struct {
	quotations table
	parcels    table
}

func NewQuotationRepository(c *store.Client, quotationsTable, parcelsTable string) QuotationRepository {
	return &quotationRepository{
		quotations: table{t: c.Table(quotationsTable)},
		parcels:    table{t: c.Table(parcelsTable)},
	}
}

func (r *quotationRepository) Create(ctx context.Context, fields map[string]interface{}) (*Record, error) {
	return r.quotations.create(ctx, fields)
}

func (r *quotationRepository) AddParcels(ctx context.Context, batch []map[string]interface{}) error {
	return r.parcels.createMany(ctx, batch)
}

func (r *quotationRepository) Find(ctx context.Context, id string) (*Record, error) {
	return r.quotations.find(ctx, id)
}

func (r *quotationRepository) List(ctx context.Context, formula string) ([]Record, error) {
	return r.quotations.list(ctx, formula)
}

func (r *quotationRepository) Parcels(ctx context.Context, formula string) ([]Record, error) {
	return r.parcels.list(ctx, formula)
}
