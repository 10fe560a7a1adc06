package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spst-logistics/spst-backend/internal/model"
	"github.com/spst-logistics/spst-backend/internal/repository"
)

type fakeShipmentRepo struct {
	createdFields map[string]interface{}
	createErr     error
	parcelBatches [][]map[string]interface{}
	packingBatch  [][]map[string]interface{}
	batchErr      error
	updates       []map[string]interface{}
	updateErr     error
	findRecord    *repository.Record
	findErr       error
	listRecords   []repository.Record
	listFormula   string
	childRecords  []repository.Record
	childErr      error
	calls         int
}

func (f *fakeShipmentRepo) Create(_ context.Context, fields map[string]interface{}) (*repository.Record, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdFields = fields
	return &repository.Record{ID: "recPARENT", Fields: fields}, nil
}

func (f *fakeShipmentRepo) AddParcels(_ context.Context, batch []map[string]interface{}) error {
	f.calls++
	f.parcelBatches = append(f.parcelBatches, batch)
	return f.batchErr
}

func (f *fakeShipmentRepo) AddPackingLines(_ context.Context, batch []map[string]interface{}) error {
	f.calls++
	f.packingBatch = append(f.packingBatch, batch)
	return f.batchErr
}

func (f *fakeShipmentRepo) Update(_ context.Context, _ string, fields map[string]interface{}) error {
	f.calls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, fields)
	return nil
}

func (f *fakeShipmentRepo) Find(_ context.Context, _ string) (*repository.Record, error) {
	f.calls++
	return f.findRecord, f.findErr
}

func (f *fakeShipmentRepo) List(_ context.Context, formula string) ([]repository.Record, error) {
	f.calls++
	f.listFormula = formula
	return f.listRecords, nil
}

func (f *fakeShipmentRepo) Parcels(_ context.Context, _ string) ([]repository.Record, error) {
	return f.childRecords, f.childErr
}

func (f *fakeShipmentRepo) PackingLines(_ context.Context, _ string) ([]repository.Record, error) {
	return f.childRecords, f.childErr
}

func validInput(parcels int) *model.ShipmentInput {
	in := &model.ShipmentInput{
		Type:     "B2B",
		Incoterm: "DAP",
		Currency: "EUR",
		Sender: model.Party{
			Name: "Cantina Rossi", Country: "Italia", City: "Alba", Address: "Via Roma 1",
		},
		Recipient: model.Party{
			Name: "Wine Imports Ltd", Country: "Regno Unito", City: "Londra", Address: "10 Vine St",
		},
	}
	for i := 0; i < parcels; i++ {
		w := 5.0
		in.Parcels = append(in.Parcels, model.Parcel{Quantity: 1, WeightKg: &w})
	}
	return in
}

func TestCreateBatchesParcels(t *testing.T) {
	repo := &fakeShipmentRepo{}
	svc := NewShipmentService(repo)

	res, err := svc.Create(context.Background(), validInput(23), "user@spst.it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "recPARENT" {
		t.Fatalf("got id %q", res.ID)
	}
	if !strings.HasPrefix(res.DisplayID, "SP-") {
		t.Fatalf("display id %q", res.DisplayID)
	}

	sizes := []int{}
	for _, b := range repo.parcelBatches {
		sizes = append(sizes, len(b))
	}
	if len(sizes) != 3 || sizes[0] != 10 || sizes[1] != 10 || sizes[2] != 3 {
		t.Fatalf("batch sizes %v, want [10 10 3]", sizes)
	}
	for _, batch := range repo.parcelBatches {
		for _, row := range batch {
			link, _ := row[fParentLink].([]string)
			if len(link) != 1 || link[0] != "recPARENT" {
				t.Fatalf("child missing parent link: %+v", row)
			}
			if row[fParentRef] != "recPARENT" {
				t.Fatalf("child missing parent ref: %+v", row)
			}
		}
	}
}

func TestCreateRejectsBeforeAnyStoreCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ShipmentInput)
	}{
		{"missing recipient city", func(in *model.ShipmentInput) { in.Recipient.City = "" }},
		{"missing recipient country", func(in *model.ShipmentInput) { in.Recipient.Country = "" }},
		{"missing recipient address", func(in *model.ShipmentInput) { in.Recipient.Address = "  " }},
		{"missing sender name", func(in *model.ShipmentInput) { in.Sender.Name = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeShipmentRepo{}
			svc := NewShipmentService(repo)
			in := validInput(2)
			tt.mutate(in)
			_, err := svc.Create(context.Background(), in, "user@spst.it")
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			if repo.calls != 0 {
				t.Fatalf("store was called %d times before validation", repo.calls)
			}
		})
	}
}

func TestCreateChildBatchFailureKeepsParent(t *testing.T) {
	repo := &fakeShipmentRepo{batchErr: errors.New("rate limited")}
	svc := NewShipmentService(repo)

	res, err := svc.Create(context.Background(), validInput(5), "user@spst.it")
	if err != nil {
		t.Fatalf("partial write must still succeed, got %v", err)
	}
	if res.ID != "recPARENT" {
		t.Fatalf("parent id %q", res.ID)
	}
}

func TestCreateParentFailureAborts(t *testing.T) {
	repo := &fakeShipmentRepo{createErr: errors.New("store down")}
	svc := NewShipmentService(repo)
	if _, err := svc.Create(context.Background(), validInput(2), "user@spst.it"); err == nil {
		t.Fatal("want error on parent-create failure")
	}
	if len(repo.parcelBatches) != 0 {
		t.Fatal("no child batch may be issued after parent failure")
	}
}

func TestCreateBackfillsOwnerEmailAliases(t *testing.T) {
	repo := &fakeShipmentRepo{}
	svc := NewShipmentService(repo)
	if _, err := svc.Create(context.Background(), validInput(0), "user@spst.it"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updates) != len(ownerEmailAliases)-1 {
		t.Fatalf("got %d backfill writes, want %d", len(repo.updates), len(ownerEmailAliases)-1)
	}
	for i, alias := range ownerEmailAliases[1:] {
		if repo.updates[i][alias] != "user@spst.it" {
			t.Fatalf("backfill %d missing alias %q: %+v", i, alias, repo.updates[i])
		}
	}
}

func TestCreateBackfillFailuresAreSwallowed(t *testing.T) {
	repo := &fakeShipmentRepo{updateErr: errors.New("unknown field")}
	svc := NewShipmentService(repo)
	if _, err := svc.Create(context.Background(), validInput(0), "user@spst.it"); err != nil {
		t.Fatalf("backfill failure must not surface: %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewShipmentService(&fakeShipmentRepo{})
	if _, err := svc.Get(context.Background(), "recMISSING"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetDistinguishesStoreFailure(t *testing.T) {
	svc := NewShipmentService(&fakeShipmentRepo{findErr: errors.New("connection refused")})
	_, err := svc.Get(context.Background(), "recX")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("store failure must not look like not-found, got %v", err)
	}
}

func TestGetChildFetchFailureSurfaces(t *testing.T) {
	repo := &fakeShipmentRepo{
		findRecord: &repository.Record{ID: "recX", Fields: map[string]interface{}{}},
		childErr:   errors.New("store unreachable: connection refused"),
	}
	svc := NewShipmentService(repo)
	shipment, err := svc.Get(context.Background(), "recX")
	if err == nil {
		t.Fatalf("parcel fetch failure must surface, got shipment %+v", shipment)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("store failure must not look like not-found, got %v", err)
	}
}

func TestSetTrackingUnknownCarrierWritesNothing(t *testing.T) {
	repo := &fakeShipmentRepo{}
	svc := NewShipmentService(repo)
	url, err := svc.SetTracking(context.Background(), "recX", "Corriere Ignoto", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "" {
		t.Fatalf("got url %q", url)
	}
	if repo.calls != 0 {
		t.Fatal("no store call may be issued for an unrecognized carrier")
	}
}

func TestSetTrackingIdempotent(t *testing.T) {
	known := "https://www.dhl.com/it-it/home/tracciabilita/tracciabilita-express.html?submit=1&tracking-id=123"
	repo := &fakeShipmentRepo{findRecord: &repository.Record{
		ID:     "recX",
		Fields: map[string]interface{}{"Tracking URL": known},
	}}
	svc := NewShipmentService(repo)
	url, err := svc.SetTracking(context.Background(), "recX", "DHL Express", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != known {
		t.Fatalf("got %q", url)
	}
	if len(repo.updates) != 0 {
		t.Fatal("unchanged tracking URL must not be rewritten")
	}
}

func TestSetTrackingBackfillsChangedURL(t *testing.T) {
	repo := &fakeShipmentRepo{findRecord: &repository.Record{
		ID:     "recX",
		Fields: map[string]interface{}{"Tracking URL": "https://old.example/1"},
	}}
	svc := NewShipmentService(repo)
	url, err := svc.SetTracking(context.Background(), "recX", "DHL Express", "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("want one update, got %d", len(repo.updates))
	}
	if repo.updates[0][fTrackingURL] != url {
		t.Fatalf("update %+v does not carry %q", repo.updates[0], url)
	}
}

func TestListOwnerFilterSpansAliases(t *testing.T) {
	repo := &fakeShipmentRepo{}
	svc := NewShipmentService(repo)
	if _, err := svc.List(context.Background(), ListFilter{OwnerEmail: "User@SPST.it"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, alias := range ownerEmailAliases {
		if !strings.Contains(repo.listFormula, "{"+alias+"}") {
			t.Fatalf("formula %q misses alias %q", repo.listFormula, alias)
		}
	}
	if !strings.Contains(repo.listFormula, `"user@spst.it"`) {
		t.Fatalf("formula %q should lowercase the email", repo.listFormula)
	}
}

func TestListSearchAndSort(t *testing.T) {
	repo := &fakeShipmentRepo{listRecords: []repository.Record{
		{ID: "rec1", CreatedTime: "2026-01-01T10:00:00.000Z", Fields: map[string]interface{}{
			"Destinatario": "Wine Imports", "Città Destinatario": "Londra", "Paese Destinatario": "Regno Unito",
		}},
		{ID: "rec2", CreatedTime: "2026-02-01T10:00:00.000Z", Fields: map[string]interface{}{
			"Destinatario": "Cave de Vin", "Città Destinatario": "Parigi", "Paese Destinatario": "Francia",
		}},
	}}
	svc := NewShipmentService(repo)

	all, err := svc.List(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].ID != "rec2" {
		t.Fatalf("want newest first, got %+v", all)
	}

	hits, err := svc.List(context.Background(), ListFilter{Search: "londra"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != "rec1" {
		t.Fatalf("search: got %+v", hits)
	}
}
