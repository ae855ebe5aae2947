package checkout

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/darshan2121/PlantApp/cart"
	"github.com/darshan2121/PlantApp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	plantA = types.Plant{ID: "A", Name: "Tulsi"}
	plantB = types.Plant{ID: "B", Name: "Neem"}
)

func validDraft() Draft {
	return Draft{
		Address: types.DeliveryAddress{
			Area:         "Navrangpura",
			Ward:         "Ward 7",
			PinCode:      "380009",
			City:         "Ahmedabad",
			State:        "Gujarat",
			Country:      "India",
			ContactPhone: "9876543210",
			ContactName:  "Asha",
		},
		Notes: "  ring the bell ",
	}
}

func fixedClock() time.Time {
	return time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)
}

func TestAssembleMapsCartOneToOne(t *testing.T) {
	c := cart.New().Add(plantA).Add(plantA).Add(plantB)
	a := &Assembler{Now: fixedClock}

	req, err := a.Assemble(c, "user-1", validDraft())
	require.NoError(t, err)

	assert.Equal(t, []types.LineItem{
		{Item: "A", Quantity: 2, Price: 0},
		{Item: "B", Quantity: 1, Price: 0},
	}, req.Items)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+$`), req.OrderNumber)
	assert.Equal(t, "ORD-1735727400000", req.OrderNumber)
	assert.Equal(t, "2025-01-04", req.EstimatedDelivery)
	assert.Equal(t, "user-1", req.User)
	assert.Equal(t, "ring the bell", req.Notes)
	assert.Nil(t, req.PaymentMethod)
}

func TestAssemblePayloadEncodesNullPaymentAndZeroPrice(t *testing.T) {
	c := cart.New().Add(plantA)
	req, err := (&Assembler{Now: fixedClock}).Assemble(c, "u", validDraft())
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.Contains(t, raw, "paymentMethod")
	assert.Nil(t, raw["paymentMethod"])
	item := raw["items"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(0), item["price"])
}

func TestValidateOrder(t *testing.T) {
	full := cart.New().Add(plantA)

	cases := []struct {
		name  string
		cart  cart.Cart
		user  string
		edit  func(*Draft)
		field string
		key   string
	}{
		{"empty cart", cart.New(), "u", nil, "cart", "empty_cart_message"},
		{"empty cart beats missing session", cart.New(), "", nil, "cart", "empty_cart_message"},
		{"no session", full, "", nil, "session", "login_required"},
		{"blank area", full, "u", func(d *Draft) { d.Address.Area = "  " }, "area", "required_field"},
		{"blank ward", full, "u", func(d *Draft) { d.Address.Ward = "" }, "ward", "required_field"},
		{"blank pin", full, "u", func(d *Draft) { d.Address.PinCode = "" }, "pinCode", "required_field"},
		{"blank city", full, "u", func(d *Draft) { d.Address.City = "" }, "city", "required_field"},
		{"blank state", full, "u", func(d *Draft) { d.Address.State = "" }, "state", "required_field"},
		{"blank country", full, "u", func(d *Draft) { d.Address.Country = "" }, "country", "required_field"},
		{"blank contact name", full, "u", func(d *Draft) { d.Address.ContactName = "" }, "contactName", "required_field"},
		{"blank contact phone", full, "u", func(d *Draft) { d.Address.ContactPhone = "" }, "contactPhone", "required_field"},
		{"short phone", full, "u", func(d *Draft) { d.Address.ContactPhone = "98765" }, "contactPhone", "invalid_phone"},
		{"phone with letters", full, "u", func(d *Draft) { d.Address.ContactPhone = "98765abcde" }, "contactPhone", "invalid_phone"},
		{"long pin", full, "u", func(d *Draft) { d.Address.PinCode = "3800091" }, "pinCode", "invalid_pincode"},
		{"bad phone beats bad pin", full, "u", func(d *Draft) {
			d.Address.ContactPhone = "1"
			d.Address.PinCode = "1"
		}, "contactPhone", "invalid_phone"},
	}

	messages := map[string]string{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			if tc.edit != nil {
				tc.edit(&d)
			}
			err := Validate(tc.cart, tc.user, d)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.key, ve.Key)
			assert.NotEmpty(t, ve.Message)
			messages[ve.Field+"/"+ve.Key] = ve.Message
		})
	}

	seen := map[string]string{}
	for k, msg := range messages {
		if other, dup := seen[msg]; dup {
			t.Errorf("message %q shared by %s and %s", msg, k, other)
		}
		seen[msg] = k
	}
}

func TestAssembleRejectsWithoutPayload(t *testing.T) {
	req, err := NewAssembler().Assemble(cart.New(), "u", validDraft())
	require.Error(t, err)
	assert.Empty(t, req.OrderNumber)
	assert.Nil(t, req.Items)
}

func TestDraftFromUser(t *testing.T) {
	u := types.User{
		Name:    "Asha",
		Mobile:  "9876543210",
		Address: types.Address{Area: "Navrangpura", Ward: "7", PinCode: "380009", City: "Ahmedabad"},
	}
	d := DraftFromUser(u)
	assert.Equal(t, "Asha", d.Address.ContactName)
	assert.Equal(t, "9876543210", d.Address.ContactPhone)
	assert.Equal(t, "380009", d.Address.PinCode)
	assert.Empty(t, d.Notes)
}

func TestDescribe(t *testing.T) {
	translate := func(key string, params map[string]any) string {
		if key == "required_field" {
			return params["field"].(string) + " required"
		}
		return "[" + key + "]"
	}
	err := Validate(cart.New().Add(plantA), "u", Draft{})
	assert.Equal(t, "[field_area] required", Describe(err, translate))

	other := errors.New("boom")
	assert.Equal(t, "boom", Describe(other, translate))
}
