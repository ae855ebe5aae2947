// Package orders reconciles the remote order list and detail view.
//
// Every fetch overwrites state when it completes. There is no dedup and no
// cancellation, so overlapping fetches are last-write-wins.
package orders

import (
	"context"
	"errors"
	"sync"

	"github.com/darshan2121/PlantApp/client"
	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
)

// DetailFailed is the message carried by the sentinel detail.
const DetailFailed = "Failed to load order details."

type API interface {
	CreateOrder(ctx context.Context, r types.CreateOrderRequest) (types.Order, error)
	MyOrders(ctx context.Context) ([]types.Order, error)
	OrderByID(ctx context.Context, id string) (types.Order, error)
	CancelOrder(ctx context.Context, id string) (types.Order, error)
}

// Detail is what the detail panel renders. Err is set only on the sentinel.
type Detail struct {
	Order types.Order
	Err   string
}

func (d Detail) Failed() bool { return d.Err != "" }

type State struct {
	Orders        []types.Order
	Current       *types.Order
	Loading       bool
	Err           string
	Detail        *Detail
	DetailLoading bool
}

type Slice struct {
	api API
	log zerolog.Logger

	mu    sync.RWMutex
	state State
}

func NewSlice(api API, log zerolog.Logger) *Slice {
	return &Slice{api: api, log: log}
}

func (s *Slice) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Orders = append([]types.Order(nil), s.state.Orders...)
	if st.Current != nil {
		o := *st.Current
		st.Current = &o
	}
	if st.Detail != nil {
		d := *st.Detail
		st.Detail = &d
	}
	return st
}

func (s *Slice) pending() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
}

// message prefers the backend's own wording.
func message(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

// settle clears Loading and records err, if any. apply runs under the lock on success.
func (s *Slice) settle(op string, err error, apply func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = message(err)
		s.log.Warn().Err(err).Str("op", op).Msg("order request failed")
		return err
	}
	apply(&s.state)
	return nil
}

// FetchMyOrders replaces the whole list.
func (s *Slice) FetchMyOrders(ctx context.Context) error {
	s.pending()
	list, err := s.api.MyOrders(ctx)
	return s.settle("my-orders", err, func(st *State) {
		st.Orders = list
	})
}

func (s *Slice) CreateOrder(ctx context.Context, r types.CreateOrderRequest) (types.Order, error) {
	s.pending()
	o, err := s.api.CreateOrder(ctx, r)
	err = s.settle("create", err, func(st *State) {
		st.Current = &o
	})
	return o, err
}

// CancelOrder stores the returned order as Current. The list keeps the
// stale row until the next FetchMyOrders.
func (s *Slice) CancelOrder(ctx context.Context, id string) (types.Order, error) {
	s.pending()
	o, err := s.api.CancelOrder(ctx, id)
	err = s.settle("cancel", err, func(st *State) {
		st.Current = &o
	})
	return o, err
}

// FetchOrderByID loads the detail panel independently of the list. A
// failure leaves the sentinel detail instead of returning an error.
func (s *Slice) FetchOrderByID(ctx context.Context, id string) Detail {
	s.mu.Lock()
	s.state.DetailLoading = true
	s.mu.Unlock()

	o, err := s.api.OrderByID(ctx, id)

	d := Detail{Order: o}
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", id).Msg("order detail failed")
		d = Detail{Err: DetailFailed}
	}

	s.mu.Lock()
	s.state.DetailLoading = false
	s.state.Detail = &d
	s.mu.Unlock()
	return d
}

// CloseDetail drops the detail panel.
func (s *Slice) CloseDetail() {
	s.mu.Lock()
	s.state.Detail = nil
	s.mu.Unlock()
}

// Reset empties the slice, used on logout.
func (s *Slice) Reset() {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
}
