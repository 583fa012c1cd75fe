package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/amonks/prodcode/internal/state"
)

// JSONBackend stores records in a JSON file guarded by a lock file.
type JSONBackend struct {
	store *state.Store
}

// NewJSONBackend returns a backend storing codes.json in dir.
func NewJSONBackend(dir string) *JSONBackend {
	return &JSONBackend{store: state.NewStore(dir)}
}

// Exists reports whether code is recorded.
func (b *JSONBackend) Exists(ctx context.Context, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	st, err := b.store.Load()
	if err != nil {
		return false, err
	}
	_, ok := st.Codes[code]
	return ok, nil
}

// Insert records rec under the state lock.
func (b *JSONBackend) Insert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.store.Update(func(st *state.State) error {
		if _, ok := st.Codes[rec.Code]; ok {
			return fmt.Errorf("%w: %s", ErrCodeTaken, rec.Code)
		}
		st.Codes[rec.Code] = state.CodeEntry{
			ID:        rec.ID,
			Name:      rec.Name,
			CreatedAt: rec.CreatedAt,
		}
		return nil
	})
}

// Get returns the record for code.
func (b *JSONBackend) Get(ctx context.Context, code string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	st, err := b.store.Load()
	if err != nil {
		return Record{}, err
	}
	entry, ok := st.Codes[code]
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return recordFromEntry(code, entry), nil
}

// List returns all records ordered by creation time, then code.
func (b *JSONBackend) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	st, err := b.store.Load()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(st.Codes))
	for code, entry := range st.Codes {
		records = append(records, recordFromEntry(code, entry))
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].Code < records[j].Code
	})
	return records, nil
}

// Close is a no-op; the file is not held open between calls.
func (b *JSONBackend) Close() error {
	return nil
}

func recordFromEntry(code string, entry state.CodeEntry) Record {
	return Record{
		ID:        entry.ID,
		Name:      entry.Name,
		Code:      code,
		CreatedAt: entry.CreatedAt,
	}
}
