package types

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// LocalStatus is the status vocabulary of client-fabricated orders.
type LocalStatus string

const (
	StatusRequested      LocalStatus = "Requested"
	StatusApproved       LocalStatus = "Approved"
	StatusReadyForPickup LocalStatus = "Ready for Pickup"
	StatusDelivered      LocalStatus = "Delivered"
)

// LocalOrder is booked without any network call and never leaves the device.
type LocalOrder struct {
	ID              string      `json:"id"`
	Plants          []CartItem  `json:"plants"`
	BookingDate     time.Time   `json:"bookingDate"`
	Status          LocalStatus `json:"status"`
	PickupLocation  string      `json:"pickupLocation,omitempty"`
	DeliveryAddress string      `json:"deliveryAddress,omitempty"`
	ContactNumber   string      `json:"contactNumber"`
}

func (o LocalOrder) TotalPlants() int {
	total := 0
	for _, item := range o.Plants {
		total += item.Quantity
	}
	return total
}

type DeliveryAddress struct {
	Area         string `json:"area"`
	Ward         string `json:"ward"`
	PinCode      string `json:"pinCode"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ContactPhone string `json:"contactPhone"`
	ContactName  string `json:"contactName"`
}

// Line joins the non-empty address parts for display.
func (a DeliveryAddress) Line() string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Area, a.Ward, a.City, a.State, a.PinCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// LineItem is one entry of an order submission.
type LineItem struct {
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest is the body of POST /orders/create.
type CreateOrderRequest struct {
	OrderNumber       string          `json:"orderNumber"`
	DeliveryAddress   DeliveryAddress `json:"deliveryAddress"`
	Items             []LineItem      `json:"items"`
	Notes             string          `json:"notes,omitempty"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	User              string          `json:"user"`
	PaymentMethod     *string         `json:"paymentMethod"`
}

// ItemRef is an order line's item, which the backend sends either as an id
// string or as a populated {_id, name} object.
type ItemRef struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
}

func (r *ItemRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	if bytes.Equal(b, []byte("null")) {
		*r = ItemRef{}
		return nil
	}
	type itemRef ItemRef
	return json.Unmarshal(b, (*itemRef)(r))
}

// Label prefers the populated name, then the id.
func (r ItemRef) Label() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.ID != "":
		return r.ID
	default:
		return "Unknown"
	}
}

type OrderItem struct {
	Item     ItemRef `json:"item"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type TrackingEvent struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Order is a server-owned record. Status is whatever the last fetch returned.
type Order struct {
	ID                  string          `json:"_id"`
	OrderNumber         string          `json:"orderNumber"`
	DeliveryAddress     DeliveryAddress `json:"deliveryAddress"`
	Items               []OrderItem     `json:"items"`
	Notes               string          `json:"notes,omitempty"`
	EstimatedDelivery   string          `json:"estimatedDelivery"`
	User                string          `json:"user"`
	Status              string          `json:"status,omitempty"`
	PaymentMethod       *string         `json:"paymentMethod"`
	TrackingHistory     []TrackingEvent `json:"trackingHistory,omitempty"`
	FullDeliveryAddress string          `json:"fullDeliveryAddress,omitempty"`
	CreatedAt           *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time      `json:"updatedAt,omitempty"`
}

// UnmarshalJSON folds the detail endpoint's "orderStatus" into Status.
func (o *Order) UnmarshalJSON(b []byte) error {
	type order Order
	var raw struct {
		order
		OrderStatus string `json:"orderStatus"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*o = Order(raw.order)
	if o.Status == "" {
		o.Status = raw.OrderStatus
	}
	return nil
}

// Reference is the number shown to the user, falling back to the id.
func (o Order) Reference() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return o.ID
}

// AddressLine prefers the server-formatted address.
func (o Order) AddressLine() string {
	if o.FullDeliveryAddress != "" {
		return o.FullDeliveryAddress
	}
	return o.DeliveryAddress.Line()
}

func (o Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// EstimatedDate trims a full timestamp down to its date part.
func (o Order) EstimatedDate() string {
	if len(o.EstimatedDelivery) > 10 {
		return o.EstimatedDelivery[:10]
	}
	return o.EstimatedDelivery
}
