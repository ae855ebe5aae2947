package models

import (
	"encoding/json"
	"time"
)

const (
	// Nursery order flow. Staff move orders forward; users may only cancel.
	OrderStatusRequested      = "Requested"
	OrderStatusApproved       = "Approved"
	OrderStatusReadyForPickup = "Ready for Pickup"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCancelled      = "Cancelled"
)

type Order struct {
	ID                  string          `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	OrderNumber         string          `gorm:"uniqueIndex;not null" json:"orderNumber"`
	UserID              string          `gorm:"index;not null" json:"user"`
	DeliveryAddress     DeliveryAddress `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryAddress"`
	Items               []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Notes               string          `json:"notes"`
	EstimatedDelivery   string          `gorm:"type:VARCHAR(10)" json:"estimatedDelivery"`
	Status              string          `gorm:"type:VARCHAR(20);index" json:"status"`
	PaymentMethod       *string         `json:"paymentMethod"`
	TrackingHistory     []TrackingEvent `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"trackingHistory"`
	FullDeliveryAddress string          `gorm:"-" json:"fullDeliveryAddress"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
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

// OrderItem snapshots the plant name so the order survives catalog edits.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"index;type:varchar(36)" json:"-"`
	PlantID   string  `gorm:"type:varchar(36)" json:"-"`
	PlantName string  `json:"-"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// MarshalJSON sends the item populated as {_id, name}.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type ref struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}
	return json.Marshal(struct {
		Item     ref     `json:"item"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}{ref{i.PlantID, i.PlantName}, i.Quantity, i.Price})
}

type TrackingEvent struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	OrderID     string    `gorm:"index;type:varchar(36)" json:"-"`
	Status      string    `gorm:"type:VARCHAR(20)" json:"status"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Cancellable reports whether the user may still cancel.
func (o *Order) Cancellable() bool {
	return o.Status == OrderStatusRequested || o.Status == OrderStatusApproved
}

// Track moves the order to status and records the event.
func (o *Order) Track(status, description string, at time.Time) {
	o.Status = status
	o.TrackingHistory = append(o.TrackingHistory, TrackingEvent{
		OrderID:     o.ID,
		Status:      status,
		Description: description,
		Timestamp:   at,
	})
}

// Render fills the derived fields before the order is sent out.
func (o *Order) Render() *Order {
	a := o.DeliveryAddress
	o.FullDeliveryAddress = joinNonEmpty(a.Area, a.Ward, a.City, a.State, a.PinCode, a.Country)
	return o
}
