//go:build unit || e2e

package builder

import (
	"time"

	"rentradar/internal/domain/item"
	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Category     string
	PricePerHour float64
	PricePerDay  *float64
	Deposit      *float64
	Lat          *float64
	Lng          *float64
	IsAvailable  bool
}

func NewItemBuilder() *ItemBuilder {
	daily := 20.0
	lat := 40.7128
	lng := -74.0060
	return &ItemBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Title:        "Cordless Drill",
		Category:     "tools",
		PricePerHour: 3.0,
		PricePerDay:  &daily,
		Lat:          &lat,
		Lng:          &lng,
		IsAvailable:  true,
	}
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	title, err := item.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	category, err := item.NewCategory(b.Category)
	if err != nil {
		return nil, err
	}
	rates, err := item.NewRateCard(b.PricePerHour, b.PricePerDay, b.Deposit)
	if err != nil {
		return nil, err
	}
	location, err := item.NewLocation("123 Main St", b.Lat, b.Lng)
	if err != nil {
		return nil, err
	}
	return item.NewItem(b.OwnerID, title, "A sturdy drill", category, rates, location, ""), nil
}

func (b *ItemBuilder) BuildRateCard() (item.RateCard, error) {
	return item.NewRateCard(b.PricePerHour, b.PricePerDay, b.Deposit)
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	now := time.Now()
	return &queries.ItemView{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		OwnerUsername: "testowner",
		Title:         b.Title,
		Description:   "A sturdy drill",
		Category:      b.Category,
		PricePerHour:  b.PricePerHour,
		PricePerDay:   b.PricePerDay,
		Deposit:       b.Deposit,
		AddressText:   "123 Main St",
		Lat:           b.Lat,
		Lng:           b.Lng,
		IsAvailable:   b.IsAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ItemBuilder) BuildListItem() *queries.ItemListItem {
	return &queries.ItemListItem{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		OwnerUsername: "testowner",
		Title:         b.Title,
		Category:      b.Category,
		PricePerHour:  b.PricePerHour,
		PricePerDay:   b.PricePerDay,
		AddressText:   "123 Main St",
		Lat:           b.Lat,
		Lng:           b.Lng,
		IsAvailable:   b.IsAvailable,
		CreatedAt:     time.Now(),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithPricePerHour(rate float64) *ItemBuilder {
	b.PricePerHour = rate
	return b
}

func (b *ItemBuilder) WithPricePerDay(rate *float64) *ItemBuilder {
	b.PricePerDay = rate
	return b
}

func (b *ItemBuilder) WithDeposit(deposit *float64) *ItemBuilder {
	b.Deposit = deposit
	return b
}

func (b *ItemBuilder) WithCoordinates(lat, lng float64) *ItemBuilder {
	b.Lat = &lat
	b.Lng = &lng
	return b
}

func (b *ItemBuilder) WithoutCoordinates() *ItemBuilder {
	b.Lat = nil
	b.Lng = nil
	return b
}
