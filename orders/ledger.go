package orders

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/darshan2121/PlantApp/cart"
	"github.com/darshan2121/PlantApp/types"
)

var ErrEmptyCart = errors.New("cart is empty")

// Ledger is the offline order book. Orders are only ever prepended.
type Ledger struct {
	mu     sync.RWMutex
	orders []types.LocalOrder
	now    func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{now: time.Now}
}

type Booking struct {
	Contact         string
	PickupLocation  string
	DeliveryAddress string
}

// Book snapshots the cart into a Requested order. The caller clears the cart.
func (l *Ledger) Book(c cart.Cart, b Booking) (types.LocalOrder, error) {
	if c.IsEmpty() {
		return types.LocalOrder{}, ErrEmptyCart
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	ms := now.UnixMilli()
	// ids stay unique when bookings land in the same millisecond
	if len(l.orders) > 0 {
		if last, err := strconv.ParseInt(l.orders[0].ID, 10, 64); err == nil && ms <= last {
			ms = last + 1
		}
	}
	o := types.LocalOrder{
		ID:              strconv.FormatInt(ms, 10),
		Plants:          c.Items(),
		BookingDate:     now,
		Status:          types.StatusRequested,
		PickupLocation:  b.PickupLocation,
		DeliveryAddress: b.DeliveryAddress,
		ContactNumber:   b.Contact,
	}
	l.orders = append([]types.LocalOrder{o}, l.orders...)
	return o, nil
}

// Orders returns newest first.
func (l *Ledger) Orders() []types.LocalOrder {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]types.LocalOrder(nil), l.orders...)
}

// TotalPlants sums quantities across every booked order.
func (l *Ledger) TotalPlants() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, o := range l.orders {
		total += o.TotalPlants()
	}
	return total
}
