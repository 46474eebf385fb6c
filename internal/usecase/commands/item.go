package commands

import (
	"context"

	"rentradar/internal/domain/item"
	"rentradar/internal/infra"
	"rentradar/internal/pkg/errs"
	"rentradar/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errs.New("item not found")
	ErrNotItemOwner    = errs.New("only the item owner may modify this listing")
	ErrItemHasBookings = errs.New("item has bookings and cannot be deleted")
)

type CreateItemInput struct {
	Title        string
	Description  string
	Category     string
	PricePerHour float64
	PricePerDay  *float64
	Deposit      *float64
	AddressText  string
	Lat          *float64
	Lng          *float64
	PhotoURL     string
}

// UpdateItemInput is a partial update: nil fields keep their stored value.
type UpdateItemInput struct {
	Title        *string
	Description  *string
	Category     *string
	PricePerHour *float64
	PricePerDay  *float64
	Deposit      *float64
	AddressText  *string
	Lat          *float64
	Lng          *float64
	PhotoURL     *string
	IsAvailable  *bool
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, itemID uuid.UUID, in UpdateItemInput) error
	Delete(ctx context.Context, actorID, itemID uuid.UUID) error
}

type itemCommandsImpl struct {
	items ItemRepository
}

func NewItemCommands(items ItemRepository) ItemCommands {
	return &itemCommandsImpl{items: items}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in CreateItemInput) (uuid.UUID, error) {
	title, err := item.NewTitle(in.Title)
	if err != nil {
		return uuid.Nil, err
	}
	category, err := item.NewCategory(in.Category)
	if err != nil {
		return uuid.Nil, err
	}
	rates, err := item.NewRateCard(in.PricePerHour, in.PricePerDay, in.Deposit)
	if err != nil {
		return uuid.Nil, err
	}
	location, err := item.NewLocation(in.AddressText, in.Lat, in.Lng)
	if err != nil {
		return uuid.Nil, err
	}

	it := item.NewItem(ownerID, title, in.Description, category, rates, location, in.PhotoURL)
	if err := c.items.Create(ctx, it); err != nil {
		return uuid.Nil, err
	}
	return it.ID(), nil
}

func (c *itemCommandsImpl) Update(ctx context.Context, actorID, itemID uuid.UUID, in UpdateItemInput) error {
	it, err := c.loadOwned(ctx, actorID, itemID)
	if err != nil {
		return err
	}

	title, err := item.NewTitle(patch.Coalesce(in.Title, it.Title().Value()))
	if err != nil {
		return err
	}
	category, err := item.NewCategory(patch.Coalesce(in.Category, it.Category().String()))
	if err != nil {
		return err
	}

	pricePerDay := it.Rates().PricePerDay()
	if in.PricePerDay != nil {
		pricePerDay = in.PricePerDay
	}
	deposit := it.Rates().Deposit()
	if in.Deposit != nil {
		deposit = in.Deposit
	}
	rates, err := item.NewRateCard(patch.Coalesce(in.PricePerHour, it.Rates().PricePerHour()), pricePerDay, deposit)
	if err != nil {
		return err
	}

	lat := it.Location().Lat()
	if in.Lat != nil {
		lat = in.Lat
	}
	lng := it.Location().Lng()
	if in.Lng != nil {
		lng = in.Lng
	}
	location, err := item.NewLocation(patch.Coalesce(in.AddressText, it.Location().AddressText()), lat, lng)
	if err != nil {
		return err
	}

	it.Revise(
		title,
		patch.Coalesce(in.Description, it.Description()),
		category,
		rates,
		location,
		patch.Coalesce(in.PhotoURL, it.PhotoURL()),
		patch.Coalesce(in.IsAvailable, it.IsAvailable()),
	)

	return c.items.Update(ctx, it)
}

func (c *itemCommandsImpl) Delete(ctx context.Context, actorID, itemID uuid.UUID) error {
	if _, err := c.loadOwned(ctx, actorID, itemID); err != nil {
		return err
	}

	if err := c.items.Delete(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrItemHasBookings)
		}
		return err
	}
	return nil
}

func (c *itemCommandsImpl) loadOwned(ctx context.Context, actorID, itemID uuid.UUID) (*item.Item, error) {
	it, err := c.items.FindDomainByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, err
	}
	if !it.IsOwnedBy(actorID) {
		return nil, ErrNotItemOwner
	}
	return it, nil
}
