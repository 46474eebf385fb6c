package item

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title must be at most 200 characters")
	ErrInvalidHourlyRate = errors.New("price per hour must be positive")
	ErrInvalidDailyRate  = errors.New("price per day must be positive when set")
	ErrNegativeDeposit   = errors.New("deposit cannot be negative")
	ErrInvalidLatitude   = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude  = errors.New("longitude must be between -180 and 180")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if len(s) > 200 {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}

// RateCard is an item's pricing surface: an hourly rate that is always
// present, an optional daily rate, and an optional security deposit.
// The daily rate never hurts the renter: the pricing calculator picks
// whichever candidate is cheaper.
type RateCard struct {
	pricePerHour float64
	pricePerDay  *float64
	deposit      *float64
}

func NewRateCard(pricePerHour float64, pricePerDay, deposit *float64) (RateCard, error) {
	if pricePerHour <= 0 {
		return RateCard{}, ErrInvalidHourlyRate
	}
	if pricePerDay != nil && *pricePerDay <= 0 {
		return RateCard{}, ErrInvalidDailyRate
	}
	if deposit != nil && *deposit < 0 {
		return RateCard{}, ErrNegativeDeposit
	}
	return RateCard{
		pricePerHour: pricePerHour,
		pricePerDay:  pricePerDay,
		deposit:      deposit,
	}, nil
}

func (r RateCard) PricePerHour() float64 { return r.pricePerHour }
func (r RateCard) PricePerDay() *float64 { return r.pricePerDay }
func (r RateCard) Deposit() *float64     { return r.deposit }

// DepositOr returns the item deposit, or fallback when the item omits one.
func (r RateCard) DepositOr(fallback float64) float64 {
	if r.deposit != nil {
		return *r.deposit
	}
	return fallback
}

type Location struct {
	addressText string
	lat         *float64
	lng         *float64
}

func NewLocation(addressText string, lat, lng *float64) (Location, error) {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return Location{}, ErrInvalidLatitude
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return Location{}, ErrInvalidLongitude
	}
	return Location{
		addressText: strings.TrimSpace(addressText),
		lat:         lat,
		lng:         lng,
	}, nil
}

func (l Location) AddressText() string { return l.addressText }
func (l Location) Lat() *float64       { return l.lat }
func (l Location) Lng() *float64       { return l.lng }

func (l Location) HasCoordinates() bool {
	return l.lat != nil && l.lng != nil
}
