package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItemMarshalsPopulatedItem(t *testing.T) {
	b, err := json.Marshal(OrderItem{PlantID: "p1", PlantName: "Tulsi", Quantity: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"item":{"_id":"p1","name":"Tulsi"},"quantity":2,"price":0}`, string(b))
}

func TestTrackAndCancellable(t *testing.T) {
	o := &Order{ID: "o1"}
	o.Track(OrderStatusRequested, "Order placed", time.Unix(0, 0))
	assert.True(t, o.Cancellable())

	o.Track(OrderStatusReadyForPickup, "Ready at nursery", time.Unix(60, 0))
	assert.False(t, o.Cancellable())
	require.Len(t, o.TrackingHistory, 2)
	assert.Equal(t, "o1", o.TrackingHistory[1].OrderID)
}

func TestRenderAddresses(t *testing.T) {
	o := (&Order{DeliveryAddress: DeliveryAddress{Area: "Navrangpura", City: "Ahmedabad", PinCode: "380009"}}).Render()
	assert.Equal(t, "Navrangpura, Ahmedabad, 380009", o.FullDeliveryAddress)

	u := (&User{Address: Address{Area: "Paldi", Ward: "Ward 3"}}).Render()
	assert.Equal(t, "Paldi, Ward 3", u.FullAddress)
}
