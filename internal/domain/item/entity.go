package item

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       Title
	description string
	category    Category
	rates       RateCard
	location    Location
	photoURL    string
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(
	ownerID uuid.UUID,
	title Title,
	description string,
	category Category,
	rates RateCard,
	location Location,
	photoURL string,
) *Item {
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		category:    category,
		rates:       rates,
		location:    location,
		photoURL:    photoURL,
		isAvailable: true,
	}
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	title Title,
	description string,
	category Category,
	rates RateCard,
	location Location,
	photoURL string,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		category:    category,
		rates:       rates,
		location:    location,
		photoURL:    photoURL,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID       { return i.id }
func (i *Item) OwnerID() uuid.UUID  { return i.ownerID }
func (i *Item) Title() Title        { return i.title }
func (i *Item) Description() string { return i.description }
func (i *Item) Category() Category  { return i.category }
func (i *Item) Rates() RateCard     { return i.rates }
func (i *Item) Location() Location  { return i.location }
func (i *Item) PhotoURL() string    { return i.photoURL }
func (i *Item) IsAvailable() bool   { return i.isAvailable }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

// Revise replaces the listing's editable fields. Rate changes affect future
// quotes only; existing bookings keep the price they were created with.
func (i *Item) Revise(
	title Title,
	description string,
	category Category,
	rates RateCard,
	location Location,
	photoURL string,
	isAvailable bool,
) {
	i.title = title
	i.description = description
	i.category = category
	i.rates = rates
	i.location = location
	i.photoURL = photoURL
	i.isAvailable = isAvailable
}
