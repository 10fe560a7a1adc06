package repository

import (
	"context"

	"github.com/spst-logistics/spst-backend/internal/store"
)

// ShipmentRepository is the store access used by the shipment service.
// Create and child creation are separate calls against a non-transactional
// store: a child failure after a successful Create leaves the parent in
// place with fewer children than submitted.
type ShipmentRepository interface {
	Create(ctx context.Context, fields map[string]interface{}) (*Record, error)
	AddParcels(ctx context.Context, batch []map[string]interface{}) error
	AddPackingLines(ctx context.Context, batch []map[string]interface{}) error
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Find(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, formula string) ([]Record, error)
	Parcels(ctx context.Context, formula string) ([]Record, error)
	PackingLines(ctx context.Context, formula string) ([]Record, error)
}

type shipmentRepository struct {
	shipments    table
	parcels      table
	packingLines table
}

func NewShipmentRepository(c *store.Client, shipmentsTable, parcelsTable, packingTable string) ShipmentRepository {
	return &shipmentRepository{
		shipments:    table{t: c.Table(shipmentsTable)},
		parcels:      table{t: c.Table(parcelsTable)},
		packingLines: table{t: c.Table(packingTable)},
	}
}

func (r *shipmentRepository) Create(ctx context.Context, fields map[string]interface{}) (*Record, error) {
	return r.shipments.create(ctx, fields)
}

func (r *shipmentRepository) AddParcels(ctx context.Context, batch []map[string]interface{}) error {
	return r.parcels.createMany(ctx, batch)
}

func (r *shipmentRepository) AddPackingLines(ctx context.Context, batch []map[string]interface{}) error {
	return r.packingLines.createMany(ctx, batch)
}

func (r *shipmentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.shipments.update(ctx, id, fields)
}

func (r *shipmentRepository) Find(ctx context.Context, id string) (*Record, error) {
	return r.shipments.find(ctx, id)
}

func (r *shipmentRepository) List(ctx context.Context, formula string) ([]Record, error) {
	return r.shipments.list(ctx, formula)
}

func (r *shipmentRepository) Parcels(ctx context.Context, formula string) ([]Record, error) {
	return r.parcels.list(ctx, formula)
}

func (r *shipmentRepository) PackingLines(ctx context.Context, formula string) ([]Record, error) {
	return r.packingLines.list(ctx, formula)
}
