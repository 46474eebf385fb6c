package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidUsername  = errors.New("username must be 3-30 characters of letters, digits, . _ or -")
	ErrPasswordTooWeak  = errors.New("password must be at least 8 characters long")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,30}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Profile holds the optional contact and home-location fields a user may
// supply at registration. All of it may be empty.
type Profile struct {
	phone       string
	addressText string
	lat         *float64
	lng         *float64
}

func NewProfile(phone, addressText string, lat, lng *float64) (Profile, error) {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return Profile{}, ErrInvalidLatitude
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return Profile{}, ErrInvalidLongitude
	}
	return Profile{
		phone:       strings.TrimSpace(phone),
		addressText: strings.TrimSpace(addressText),
		lat:         lat,
		lng:         lng,
	}, nil
}

func (p Profile) Phone() string       { return p.phone }
func (p Profile) AddressText() string { return p.addressText }
func (p Profile) Lat() *float64       { return p.lat }
func (p Profile) Lng() *float64       { return p.lng }

func (p Profile) HasCoordinates() bool {
	return p.lat != nil && p.lng != nil
}
