package quote

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/luna-panel/luna/internal/money"
	"github.com/luna-panel/luna/internal/platform/httpx"
)

// Service owns the record-log lifecycle. The host store has no transactions,
// so list mutations go through a single mutex to keep read-modify-write
// sequences from losing updates.
type Service struct {
	repo Repository

	mu sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Preview computes the quote outputs without persisting anything.
func (s *Service) Preview(in Input) Output {
	return Calculate(in)
}

// Complete computes the quote, snapshots inputs and outputs into a new record
// and prepends it to the stored list.
func (s *Service) Complete(ctx context.Context, in Input) (*Record, error) {
	out := Calculate(in)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new record id: %w", err)
	}
	rec := Record{
		ID:                id.String(),
		Timestamp:         money.Timestamp(false),
		FilenameTimestamp: money.Timestamp(true),
		Input:             in,
		Output:            out,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	records = append([]Record{rec}, records...)
	if err := s.repo.Replace(ctx, records); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// Get returns the record with the given id.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("quote record %s: %w", id, httpx.ErrNotFound)
}

// Delete removes exactly the record with the given id, preserving the order
// of the rest. Unknown ids leave the list untouched and return ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := records[:0:0]
	removed := false
	for _, rec := range records {
		if !removed && rec.ID == id {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	if !removed {
		return fmt.Errorf("quote record %s: %w", id, httpx.ErrNotFound)
	}
	return s.repo.Replace(ctx, kept)
}
