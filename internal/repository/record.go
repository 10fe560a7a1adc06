package repository

import (
	"context"
	"errors"

	"github.com/mehanizm/airtable"

	"github.com/spst-logistics/spst-backend/internal/store"
)

// Record is a raw store record: id, creation timestamp (RFC3339 string as
// returned by the store) and the unprojected attribute map.
type Record struct {
	ID          string
	CreatedTime string
	Fields      map[string]interface{}
}

// table wraps one store table with the small call surface the repositories
// need. The underlying client manages its own HTTP timeouts; ctx is accepted
// on every method to keep the repository contracts uniform.
type table struct {
	t *airtable.Table
}

func (a *table) create(_ context.Context, fields map[string]interface{}) (*Record, error) {
	res, err := a.t.AddRecords(&airtable.Records{
		Records: []*airtable.Record{{Fields: fields}},
	})
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Records) == 0 {
		return nil, errors.New("store returned no created record")
	}
	return fromAirtable(res.Records[0]), nil
}

// createMany issues a single create call for a batch. Callers must respect
// store.BatchLimit; this method does not re-partition.
func (a *table) createMany(_ context.Context, batch []map[string]interface{}) error {
	recs := make([]*airtable.Record, 0, len(batch))
	for _, fields := range batch {
		recs = append(recs, &airtable.Record{Fields: fields})
	}
	_, err := a.t.AddRecords(&airtable.Records{Records: recs})
	return err
}

// find returns (nil, nil) when the record does not exist, so callers can
// distinguish "absent" from "store unreachable". Lookup goes through a
// RECORD_ID() formula rather than a direct get: a missing id is then an empty
// result set instead of an error that would need string matching to classify.
func (a *table) find(ctx context.Context, id string) (*Record, error) {
	recs, err := a.list(ctx, store.RecordIDEquals(id))
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (a *table) list(_ context.Context, formula string) ([]Record, error) {
	var out []Record
	offset := ""
	for {
		cfg := a.t.GetRecords().PageSize(100)
		if formula != "" {
			cfg = cfg.WithFilterFormula(formula)
		}
		if offset != "" {
			cfg = cfg.WithOffset(offset)
		}
		page, err := cfg.Do()
		if err != nil {
			return nil, err
		}
		for _, rec := range page.Records {
			out = append(out, *fromAirtable(rec))
		}
		if page.Offset == "" {
			break
		}
		offset = page.Offset
	}
	return out, nil
}

func (a *table) update(_ context.Context, id string, fields map[string]interface{}) error {
	rec, err := a.t.GetRecord(id)
	if err != nil {
		return err
	}
	_, err = rec.UpdateRecordPartial(fields)
	return err
}

func fromAirtable(rec *airtable.Record) *Record {
	return &Record{ID: rec.ID, CreatedTime: rec.CreatedTime, Fields: rec.Fields}
}
