package queries

import (
	"context"
	"sort"
	"time"

	"rentradar/internal/domain/booking"
	"rentradar/internal/domain/item"
	"rentradar/internal/infra"
	"rentradar/internal/pkg/errs"
	"rentradar/internal/pkg/geo"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

// SearchParams carries the map-search filters. Lat/Lng are required by
// the handler; RadiusKm falls back to the policy default when zero.
type SearchParams struct {
	Lat      float64
	Lng      float64
	RadiusKm float64
	Category *string
	MinPrice *float64
	MaxPrice *float64
}

// BoundsFilter is the SQL-side prefilter derived from SearchParams.
type BoundsFilter struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	Category       *string
	MinPrice       *float64
	MaxPrice       *float64
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindLatest(ctx context.Context, limit int32) ([]*ItemListItem, error)
	FindWithinBounds(ctx context.Context, filter BoundsFilter) ([]*ItemListItem, error)
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context, limit int) ([]*ItemListItem, error)
	Search(ctx context.Context, params SearchParams) ([]*ItemListItem, error)
	Categories() []CategoryView
	Quote(ctx context.Context, itemID uuid.UUID, start, end time.Time) (*QuoteView, error)
}

type itemQueriesImpl struct {
	store         ItemReadStore
	calculator    *booking.QuoteCalculator
	defaultRadius float64
}

func NewItemQueries(store ItemReadStore, calculator *booking.QuoteCalculator, defaultRadiusKm float64) ItemQueries {
	return &itemQueriesImpl{
		store:         store,
		calculator:    calculator,
		defaultRadius: defaultRadiusKm,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) List(ctx context.Context, limit int) ([]*ItemListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.store.FindLatest(ctx, int32(limit))
}

// Search runs a bounding-box SQL prefilter, then the exact Haversine pass
// in memory, and returns matches sorted nearest-first.
func (q *itemQueriesImpl) Search(ctx context.Context, params SearchParams) ([]*ItemListItem, error) {
	radius := params.RadiusKm
	if radius <= 0 {
		radius = q.defaultRadius
	}

	minLat, maxLat, minLng, maxLng := geo.BoundingBox(params.Lat, params.Lng, radius)
	candidates, err := q.store.FindWithinBounds(ctx, BoundsFilter{
		MinLat:   minLat,
		MaxLat:   maxLat,
		MinLng:   minLng,
		MaxLng:   maxLng,
		Category: params.Category,
		MinPrice: params.MinPrice,
		MaxPrice: params.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	results := make([]*ItemListItem, 0, len(candidates))
	for _, it := range candidates {
		if it.Lat == nil || it.Lng == nil {
			continue
		}
		distance := geo.DistanceKm(params.Lat, params.Lng, *it.Lat, *it.Lng)
		if distance > radius {
			continue
		}
		d := distance
		it.DistanceKm = &d
		results = append(results, it)
	}

	sort.Slice(results, func(i, j int) bool {
		return *results[i].DistanceKm < *results[j].DistanceKm
	})

	return results, nil
}

func (q *itemQueriesImpl) Categories() []CategoryView {
	cats := item.Categories()
	views := make([]CategoryView, len(cats))
	for i, c := range cats {
		views[i] = CategoryView{Value: c.Value, Label: c.Label}
	}
	return views
}

// Quote prices a window against an item. An incomplete window is not an
// error: the zero breakdown comes back and the caller renders an empty
// summary.
func (q *itemQueriesImpl) Quote(ctx context.Context, itemID uuid.UUID, start, end time.Time) (*QuoteView, error) {
	view, err := q.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	rates, err := item.NewRateCard(view.PricePerHour, view.PricePerDay, view.Deposit)
	if err != nil {
		return nil, errs.Wrap(err, "stored item has an invalid rate card")
	}

	quote := q.calculator.Quote(rates, start, end)

	out := &QuoteView{
		ItemID:             view.ID,
		DurationHours:      quote.DurationHours,
		HourlyTotal:        booking.RoundCents(quote.HourlyTotal),
		RentalFee:          booking.RoundCents(quote.RentalFee),
		DepositHold:        booking.RoundCents(quote.DepositHold),
		TotalAuthorization: booking.RoundCents(quote.TotalAuthorization),
		DailyRateApplied:   quote.DailyRateApplied(),
	}
	if !quote.Computable() {
		// Deposit is only shown once a window is selected.
		out.DepositHold = 0
		out.TotalAuthorization = 0
	}
	if view.PricePerDay != nil && quote.Computable() {
		daily := booking.RoundCents(quote.DailyTotal)
		out.DailyTotal = &daily
	}
	return out, nil
}
