//go:build unit || e2e

package builder

import (
	"time"

	"rentradar/internal/domain/user"
	"rentradar/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Password    string
	Phone       string
	AddressText string
	Lat         *float64
	Lng         *float64
	IsActive    bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "testrenter",
		Email:    "renter@example.com",
		Password: "password123",
		IsActive: true,
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	profile, err := user.NewProfile(u.Phone, u.AddressText, u.Lat, u.Lng)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, "hashed_password", profile), nil
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		RatingAvg: 5.0,
		IsActive:  u.IsActive,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithProfile(phone, addressText string, lat, lng *float64) *UserBuilder {
	u.Phone = phone
	u.AddressText = addressText
	u.Lat = lat
	u.Lng = lng
	return u
}

func (u *UserBuilder) WithInactive() *UserBuilder {
	u.IsActive = false
	return u
}
