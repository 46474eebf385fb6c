//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/internal/infra"
	"rentradar/internal/usecase/queries"
	"rentradar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDeposit  = 50.0
	testRadiusKm = 10.0
)

type stubItemStore struct {
	findByID         func(ctx context.Context, id uuid.UUID) (*queries.ItemView, error)
	findLatest       func(ctx context.Context, limit int32) ([]*queries.ItemListItem, error)
	findWithinBounds func(ctx context.Context, filter queries.BoundsFilter) ([]*queries.ItemListItem, error)
}

func (s *stubItemStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	return s.findByID(ctx, id)
}

func (s *stubItemStore) FindLatest(ctx context.Context, limit int32) ([]*queries.ItemListItem, error) {
	return s.findLatest(ctx, limit)
}

func (s *stubItemStore) FindWithinBounds(ctx context.Context, filter queries.BoundsFilter) ([]*queries.ItemListItem, error) {
	return s.findWithinBounds(ctx, filter)
}

func newItemQueries(store *stubItemStore) queries.ItemQueries {
	return queries.NewItemQueries(store, booking.NewQuoteCalculator(testDeposit), testRadiusKm)
}

func TestSearch(t *testing.T) {
	// Search center: lower Manhattan.
	const centerLat, centerLng = 40.7128, -74.0060

	listItem := func(lat, lng float64) *queries.ItemListItem {
		return builder.NewItemBuilder().WithCoordinates(lat, lng).BuildListItem()
	}

	t.Run("sorts nearest first and sets distances", func(t *testing.T) {
		far := listItem(40.7580, -73.9855)   // ~5.3km
		near := listItem(40.7200, -74.0000)  // ~1km
		store := &stubItemStore{
			findWithinBounds: func(_ context.Context, _ queries.BoundsFilter) ([]*queries.ItemListItem, error) {
				return []*queries.ItemListItem{far, near}, nil
			},
		}

		results, err := newItemQueries(store).Search(context.Background(), queries.SearchParams{
			Lat: centerLat, Lng: centerLng, RadiusKm: testRadiusKm,
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, near.ID, results[0].ID)
		assert.Equal(t, far.ID, results[1].ID)
		require.NotNil(t, results[0].DistanceKm)
		require.NotNil(t, results[1].DistanceKm)
		assert.Less(t, *results[0].DistanceKm, *results[1].DistanceKm)
	})

	t.Run("drops items beyond the exact radius", func(t *testing.T) {
		// Inside the bounding box corner but outside the circle.
		corner := listItem(centerLat+0.088, centerLng+0.117)
		inside := listItem(centerLat+0.01, centerLng)
		store := &stubItemStore{
			findWithinBounds: func(_ context.Context, _ queries.BoundsFilter) ([]*queries.ItemListItem, error) {
				return []*queries.ItemListItem{corner, inside}, nil
			},
		}

		results, err := newItemQueries(store).Search(context.Background(), queries.SearchParams{
			Lat: centerLat, Lng: centerLng, RadiusKm: testRadiusKm,
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, inside.ID, results[0].ID)
	})

	t.Run("skips items without coordinates", func(t *testing.T) {
		noCoords := builder.NewItemBuilder().WithoutCoordinates().BuildListItem()
		store := &stubItemStore{
			findWithinBounds: func(_ context.Context, _ queries.BoundsFilter) ([]*queries.ItemListItem, error) {
				return []*queries.ItemListItem{noCoords}, nil
			},
		}

		results, err := newItemQueries(store).Search(context.Background(), queries.SearchParams{
			Lat: centerLat, Lng: centerLng, RadiusKm: testRadiusKm,
		})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("zero radius falls back to the default", func(t *testing.T) {
		var captured queries.BoundsFilter
		store := &stubItemStore{
			findWithinBounds: func(_ context.Context, filter queries.BoundsFilter) ([]*queries.ItemListItem, error) {
				captured = filter
				return nil, nil
			},
		}

		_, err := newItemQueries(store).Search(context.Background(), queries.SearchParams{
			Lat: centerLat, Lng: centerLng,
		})
		require.NoError(t, err)

		assert.InDelta(t, centerLat-testRadiusKm/111.0, captured.MinLat, 1e-9)
		assert.InDelta(t, centerLat+testRadiusKm/111.0, captured.MaxLat, 1e-9)
	})

	t.Run("forwards category and price filters", func(t *testing.T) {
		category := "tools"
		minPrice, maxPrice := 1.0, 10.0
		var captured queries.BoundsFilter
		store := &stubItemStore{
			findWithinBounds: func(_ context.Context, filter queries.BoundsFilter) ([]*queries.ItemListItem, error) {
				captured = filter
				return nil, nil
			},
		}

		_, err := newItemQueries(store).Search(context.Background(), queries.SearchParams{
			Lat: centerLat, Lng: centerLng, RadiusKm: testRadiusKm,
			Category: &category, MinPrice: &minPrice, MaxPrice: &maxPrice,
		})
		require.NoError(t, err)

		require.NotNil(t, captured.Category)
		assert.Equal(t, "tools", *captured.Category)
		assert.Equal(t, &minPrice, captured.MinPrice)
		assert.Equal(t, &maxPrice, captured.MaxPrice)
	})
}

func TestQuote(t *testing.T) {
	view := builder.NewItemBuilder().BuildView()
	store := &stubItemStore{
		findByID: func(_ context.Context, _ uuid.UUID) (*queries.ItemView, error) {
			return view, nil
		},
	}
	q := newItemQueries(store)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	t.Run("rounds the breakdown to cents", func(t *testing.T) {
		// 10h at $3/h vs $20/day: the daily proration 8.333... wins.
		out, err := q.Quote(context.Background(), view.ID, start, start.Add(10*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, 30.0, out.HourlyTotal)
		assert.Equal(t, 8.33, out.RentalFee)
		assert.Equal(t, testDeposit, out.DepositHold)
		assert.Equal(t, 58.33, out.TotalAuthorization)
		assert.True(t, out.DailyRateApplied)
		require.NotNil(t, out.DailyTotal)
		assert.Equal(t, 8.33, *out.DailyTotal)
	})

	t.Run("incomplete window yields an empty summary", func(t *testing.T) {
		out, err := q.Quote(context.Background(), view.ID, start, time.Time{})
		require.NoError(t, err)

		assert.Zero(t, out.RentalFee)
		assert.Zero(t, out.DepositHold)
		assert.Zero(t, out.TotalAuthorization)
		assert.Nil(t, out.DailyTotal)
	})

	t.Run("unknown item", func(t *testing.T) {
		missing := &stubItemStore{
			findByID: func(_ context.Context, _ uuid.UUID) (*queries.ItemView, error) {
				return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
			},
		}

		_, err := newItemQueries(missing).Quote(context.Background(), uuid.New(), start, start.Add(time.Hour))
		require.ErrorIs(t, err, queries.ErrItemNotFound)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("db failures are not masked as not found", func(t *testing.T) {
		store := &stubItemStore{
			findByID: func(_ context.Context, _ uuid.UUID) (*queries.ItemView, error) {
				return nil, infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure)
			},
		}

		_, err := newItemQueries(store).GetByID(context.Background(), uuid.New())
		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrItemNotFound)
	})
}
