package quote

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luna-panel/luna/internal/platform/httpx"
	"github.com/luna-panel/luna/internal/platform/kv"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(NewRepository(kv.NewStore(client)))
}

func testInput(company string) Input {
	return Input{
		CompanyName:     company,
		LastYearPrice:   100,
		MSRPTotal:       1000,
		Mode:            ModeIncrease,
		IncreasePercent: 10,
	}
}

func TestCompletePrependsNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Complete(ctx, testInput("first"))
	require.NoError(t, err)
	second, err := svc.Complete(ctx, testInput("second"))
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Input.CompanyName)
	assert.Equal(t, "first", records[1].Input.CompanyName)

	// Outputs are snapshotted with the record.
	assert.InDelta(t, 110.0, records[0].Output.TotalEndPrice, 1e-9)
}

func TestCompleteRecordIDsAreSortable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var prev string
	for i := 0; i < 5; i++ {
		rec, err := svc.Complete(ctx, testInput("acme"))
		require.NoError(t, err)
		if prev != "" {
			assert.Less(t, prev, rec.ID)
		}
		prev = rec.ID
	}
}

func TestGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Complete(ctx, testInput("acme"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.Complete(ctx, testInput("a"))
	require.NoError(t, err)
	b, err := svc.Complete(ctx, testInput("b"))
	require.NoError(t, err)
	c, err := svc.Complete(ctx, testInput("c"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, c.ID, records[0].ID)
	assert.Equal(t, a.ID, records[1].ID)
}

func TestDeleteUnknownIDLeavesListUnchanged(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Complete(ctx, testInput("a"))
	require.NoError(t, err)

	err = svc.Delete(ctx, "nope")
	assert.ErrorIs(t, err, httpx.ErrNotFound)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListEmpty(t *testing.T) {
	svc := newTestService(t)

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

type failingRepository struct {
	listErr    error
	replaceErr error
	records    []Record
}

func (f *failingRepository) List(ctx context.Context) ([]Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *failingRepository) Replace(ctx context.Context, records []Record) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.records = records
	return nil
}

func TestCompleteStorageFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&failingRepository{listErr: boom})

	_, err := svc.Complete(context.Background(), testInput("acme"))
	assert.ErrorIs(t, err, boom)

	svc = NewService(&failingRepository{replaceErr: boom})
	_, err = svc.Complete(context.Background(), testInput("acme"))
	assert.ErrorIs(t, err, boom)
}
