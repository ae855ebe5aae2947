// Package checkout validates an address draft and assembles the order
// submission for the current cart.
package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/darshan2121/PlantApp/cart"
	"github.com/darshan2121/PlantApp/types"
)

const (
	// EstimatedDeliveryDays is how far ahead the client dates every order.
	EstimatedDeliveryDays = 3
	orderNumberPrefix     = "ORD-"
)

var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// Draft is the confirm-address form.
type Draft struct {
	Address types.DeliveryAddress
	Notes   string
}

// DraftFromUser pre-fills the form from the signed-in profile.
func DraftFromUser(u types.User) Draft {
	return Draft{Address: types.DeliveryAddress{
		Area:         u.Address.Area,
		Ward:         u.Address.Ward,
		PinCode:      u.Address.PinCode,
		City:         u.Address.City,
		State:        u.Address.State,
		Country:      u.Address.Country,
		ContactPhone: u.Mobile,
		ContactName:  u.Name,
	}}
}

// ValidationError names the offending field. Key is the i18n key of the message.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type field struct {
	name  string
	label string
	value func(types.DeliveryAddress) string
}

var requiredFields = []field{
	{"area", "Area", func(a types.DeliveryAddress) string { return a.Area }},
	{"ward", "Ward", func(a types.DeliveryAddress) string { return a.Ward }},
	{"pinCode", "Pin code", func(a types.DeliveryAddress) string { return a.PinCode }},
	{"city", "City", func(a types.DeliveryAddress) string { return a.City }},
	{"state", "State", func(a types.DeliveryAddress) string { return a.State }},
	{"country", "Country", func(a types.DeliveryAddress) string { return a.Country }},
	{"contactName", "Contact name", func(a types.DeliveryAddress) string { return a.ContactName }},
	{"contactPhone", "Contact phone", func(a types.DeliveryAddress) string { return a.ContactPhone }},
}

// Validate checks, in order: the cart, the session, every required field,
// then the phone and pin code formats. The first failure wins.
func Validate(c cart.Cart, userID string, d Draft) error {
	if c.IsEmpty() {
		return &ValidationError{Field: "cart", Key: "empty_cart_message", Message: "Please add plants to cart first"}
	}
	if strings.TrimSpace(userID) == "" {
		return &ValidationError{Field: "session", Key: "login_required", Message: "Please log in to place an order"}
	}
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(d.Address)) == "" {
			return &ValidationError{Field: f.name, Key: "required_field", Message: f.label + " is required"}
		}
	}
	if !phonePattern.MatchString(strings.TrimSpace(d.Address.ContactPhone)) {
		return &ValidationError{Field: "contactPhone", Key: "invalid_phone", Message: "Contact phone must be exactly 10 digits"}
	}
	if !pinCodePattern.MatchString(strings.TrimSpace(d.Address.PinCode)) {
		return &ValidationError{Field: "pinCode", Key: "invalid_pincode", Message: "Pin code must be exactly 6 digits"}
	}
	return nil
}

// Assembler builds submissions. Now is swappable for tests.
type Assembler struct {
	Now func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{Now: time.Now}
}

// Assemble validates and then produces the CreateOrderRequest.
func (a *Assembler) Assemble(c cart.Cart, userID string, d Draft) (types.CreateOrderRequest, error) {
	if err := Validate(c, userID, d); err != nil {
		return types.CreateOrderRequest{}, err
	}
	now := time.Now()
	if a != nil && a.Now != nil {
		now = a.Now()
	}

	items := make([]types.LineItem, 0, c.Len())
	for _, item := range c.Items() {
		items = append(items, types.LineItem{Item: item.Plant.ID, Quantity: item.Quantity, Price: 0})
	}

	addr := d.Address
	addr.ContactPhone = strings.TrimSpace(addr.ContactPhone)
	addr.PinCode = strings.TrimSpace(addr.PinCode)

	return types.CreateOrderRequest{
		OrderNumber:       OrderNumber(now),
		DeliveryAddress:   addr,
		Items:             items,
		Notes:             strings.TrimSpace(d.Notes),
		EstimatedDelivery: now.AddDate(0, 0, EstimatedDeliveryDays).UTC().Format(time.DateOnly),
		User:              userID,
		PaymentMethod:     nil,
	}, nil
}

func OrderNumber(t time.Time) string {
	return orderNumberPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}

// Describe renders a validation error through translate, with the field
// label filled in for required-field failures.
func Describe(err error, translate func(key string, params map[string]any) string) string {
	var ve *ValidationError
	if !errors.As(err, &ve) || translate == nil {
		return fmt.Sprint(err)
	}
	if ve.Key == "required_field" {
		return translate(ve.Key, map[string]any{"field": translate("field_"+ve.Field, nil)})
	}
	return translate(ve.Key, nil)
}
