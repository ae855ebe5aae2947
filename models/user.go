package models

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Mobile       string    `json:"mobile"`
	Name         string    `json:"name"`
	NameGujarati string    `json:"nameGujarati,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Image        *string   `json:"image"`
	Address      Address   `gorm:"embedded" json:"address"`
	Location     Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	FullAddress  string    `gorm:"-" json:"fullAddress"`
}

// Address model embedded in User
type Address struct {
	Area    string `json:"area"`
	Ward    string `json:"ward"`
	PinCode string `json:"pinCode"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (a Address) String() string {
	return joinNonEmpty(a.Area, a.Ward, a.City, a.State, a.PinCode, a.Country)
}

// Render fills the derived fields before the user is sent out.
func (u *User) Render() *User {
	u.FullAddress = u.Address.String()
	return u
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
