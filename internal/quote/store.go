package quote

import (
	"context"
	"fmt"

	"github.com/luna-panel/luna/internal/platform/httpx"
	"github.com/luna-panel/luna/internal/platform/kv"
)

const recordsKey = "luna:quote:records"

// Repository persists the record log. The whole list is the unit of storage;
// mutations are read-modify-write (the service serializes writers).
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Replace(ctx context.Context, records []Record) error
}

type kvRepository struct {
	store *kv.Store
}

// NewRepository builds a Repository on the flat key-value store.
func NewRepository(store *kv.Store) Repository {
	return &kvRepository{store: store}
}

func (r *kvRepository) List(ctx context.Context) ([]Record, error) {
	var records []Record
	found, err := r.store.Get(ctx, recordsKey, &records)
	if err != nil {
		return nil, fmt.Errorf("list quote records: %w: %w", httpx.ErrStorage, err)
	}
	if !found {
		return []Record{}, nil
	}
	return records, nil
}

func (r *kvRepository) Replace(ctx context.Context, records []Record) error {
	if len(records) == 0 {
		if err := r.store.Remove(ctx, recordsKey); err != nil {
			return fmt.Errorf("clear quote records: %w: %w", httpx.ErrStorage, err)
		}
		return nil
	}
	if err := r.store.Set(ctx, recordsKey, records); err != nil {
		return fmt.Errorf("replace quote records: %w: %w", httpx.ErrStorage, err)
	}
	return nil
}
