package types

import (
	"encoding/json"
	"strings"
	"time"
)

type Address struct {
	Area    string `json:"area"`
	Ward    string `json:"ward"`
	PinCode string `json:"pinCode"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User covers both the backend account and the offline profile of the early
// app. Offline profiles have no email and no token.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	NameGujarati string     `json:"nameGujarati,omitempty"`
	Email        string     `json:"email,omitempty"`
	Mobile       string     `json:"mobile"`
	Image        *string    `json:"image,omitempty"`
	Address      Address    `json:"address"`
	Location     *Location  `json:"location,omitempty"`
	Language     Language   `json:"language,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	FullAddress  string     `json:"fullAddress,omitempty"`
}

// UnmarshalJSON also reads the offline profile layout
// (fullName, phone, address.wardName, address.pincode) and "_id".
func (u *User) UnmarshalJSON(b []byte) error {
	type user User
	var raw struct {
		user
		MongoID          string `json:"_id"`
		FullName         string `json:"fullName"`
		FullNameGujarati string `json:"fullNameGujarati"`
		Phone            string `json:"phone"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var legacy struct {
		Address struct {
			WardName string `json:"wardName"`
			Pincode  string `json:"pincode"`
		} `json:"address"`
	}
	if err := json.Unmarshal(b, &legacy); err != nil {
		return err
	}

	*u = User(raw.user)
	if u.ID == "" {
		u.ID = raw.MongoID
	}
	if u.Name == "" {
		u.Name = raw.FullName
	}
	if u.NameGujarati == "" {
		u.NameGujarati = raw.FullNameGujarati
	}
	if u.Mobile == "" {
		u.Mobile = raw.Phone
	}
	if u.Address.Ward == "" {
		u.Address.Ward = legacy.Address.WardName
	}
	if u.Address.PinCode == "" {
		u.Address.PinCode = legacy.Address.Pincode
	}
	return nil
}

func (u User) DisplayName(lang Language) string {
	return Pick(lang, u.Name, u.NameGujarati)
}

// AddressLine renders "area, ward - pin" the way the profile screen does.
func (u User) AddressLine() string {
	if u.FullAddress != "" {
		return u.FullAddress
	}
	line := strings.Trim(strings.Join([]string{u.Address.Area, u.Address.Ward}, ", "), ", ")
	if u.Address.PinCode != "" {
		line += " - " + u.Address.PinCode
	}
	return line
}

// SignupPayload is the registration form.
type SignupPayload struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Mobile   string   `json:"mobile"`
	Password string   `json:"password"`
	Address  Address  `json:"address"`
	Location Location `json:"location"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the data envelope of login and register responses.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
