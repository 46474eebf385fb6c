package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Identity and public profile for both renters and owners;
// the marketplace has no separate roles, any user may list and book.
type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	phone        string
	lat          *float64
	lng          *float64
	addressText  string
	ratingAvg    float64
	totalRatings int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, profile Profile) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		phone:        profile.Phone(),
		lat:          profile.Lat(),
		lng:          profile.Lng(),
		addressText:  profile.AddressText(),
		ratingAvg:    5.0,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash string,
	phone string,
	lat, lng *float64,
	addressText string,
	ratingAvg float64,
	totalRatings int,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		phone:        phone,
		lat:          lat,
		lng:          lng,
		addressText:  addressText,
		ratingAvg:    ratingAvg,
		totalRatings: totalRatings,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) Lat() *float64        { return u.lat }
func (u *User) Lng() *float64        { return u.lng }
func (u *User) AddressText() string  { return u.addressText }
func (u *User) RatingAvg() float64   { return u.ratingAvg }
func (u *User) TotalRatings() int    { return u.totalRatings }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
