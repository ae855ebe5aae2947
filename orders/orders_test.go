package orders

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/darshan2121/PlantApp/cart"
	"github.com/darshan2121/PlantApp/client"
	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	list      []types.Order
	listErr   error
	detail    types.Order
	detailErr error
	cancelled types.Order
	created   types.Order
	createErr error
}

func (f *fakeAPI) CreateOrder(context.Context, types.CreateOrderRequest) (types.Order, error) {
	return f.created, f.createErr
}
func (f *fakeAPI) MyOrders(context.Context) ([]types.Order, error) { return f.list, f.listErr }
func (f *fakeAPI) OrderByID(context.Context, string) (types.Order, error) {
	return f.detail, f.detailErr
}
func (f *fakeAPI) CancelOrder(context.Context, string) (types.Order, error) {
	return f.cancelled, nil
}

func TestFetchMyOrdersFullyReplaces(t *testing.T) {
	api := &fakeAPI{list: []types.Order{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	s := NewSlice(api, zerolog.Nop())
	require.NoError(t, s.FetchMyOrders(context.Background()))
	require.Len(t, s.State().Orders, 3)

	api.list = []types.Order{{ID: "d"}}
	require.NoError(t, s.FetchMyOrders(context.Background()))
	assert.Equal(t, []types.Order{{ID: "d"}}, s.State().Orders)
}

func TestFetchMyOrdersErrorKeepsList(t *testing.T) {
	api := &fakeAPI{list: []types.Order{{ID: "a"}}}
	s := NewSlice(api, zerolog.Nop())
	require.NoError(t, s.FetchMyOrders(context.Background()))

	api.listErr = errors.New("timeout")
	require.Error(t, s.FetchMyOrders(context.Background()))
	st := s.State()
	assert.Equal(t, "timeout", st.Err)
	assert.False(t, st.Loading)
	assert.Len(t, st.Orders, 1)
}

func TestFetchOrderByIDSentinel(t *testing.T) {
	api := &fakeAPI{detailErr: errors.New("404")}
	s := NewSlice(api, zerolog.Nop())

	d := s.FetchOrderByID(context.Background(), "x")
	assert.True(t, d.Failed())
	assert.Equal(t, DetailFailed, d.Err)

	st := s.State()
	require.NotNil(t, st.Detail)
	assert.Equal(t, DetailFailed, st.Detail.Err)
	assert.False(t, st.DetailLoading)
	assert.Empty(t, st.Err, "detail failures stay out of the list error")
}

func TestFetchOrderByIDSuccess(t *testing.T) {
	api := &fakeAPI{detail: types.Order{ID: "o1", TrackingHistory: []types.TrackingEvent{{Status: "Requested"}}}}
	s := NewSlice(api, zerolog.Nop())
	d := s.FetchOrderByID(context.Background(), "o1")
	assert.False(t, d.Failed())
	assert.Len(t, d.Order.TrackingHistory, 1)

	s.CloseDetail()
	assert.Nil(t, s.State().Detail)
}

func TestCancelUpdatesCurrentNotList(t *testing.T) {
	api := &fakeAPI{
		list:      []types.Order{{ID: "o1", Status: "Requested"}},
		cancelled: types.Order{ID: "o1", Status: "Cancelled"},
	}
	s := NewSlice(api, zerolog.Nop())
	require.NoError(t, s.FetchMyOrders(context.Background()))

	_, err := s.CancelOrder(context.Background(), "o1")
	require.NoError(t, err)

	st := s.State()
	require.NotNil(t, st.Current)
	assert.Equal(t, "Cancelled", st.Current.Status)
	assert.Equal(t, "Requested", st.Orders[0].Status)
}

func TestCreateOrderSetsCurrent(t *testing.T) {
	api := &fakeAPI{created: types.Order{ID: "new"}}
	s := NewSlice(api, zerolog.Nop())
	o, err := s.CreateOrder(context.Background(), types.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "new", o.ID)
	assert.Equal(t, "new", s.State().Current.ID)

	api.createErr = errors.New("rejected")
	_, err = s.CreateOrder(context.Background(), types.CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, "new", s.State().Current.ID)
	assert.Equal(t, "rejected", s.State().Err)

	api.createErr = &client.APIError{Status: 400, Message: "Insufficient stock for Tulsi"}
	_, err = s.CreateOrder(context.Background(), types.CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, "Insufficient stock for Tulsi", s.State().Err)
}

func TestLedgerBook(t *testing.T) {
	l := NewLedger()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return at }

	_, err := l.Book(cart.New(), Booking{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	c := cart.New().Add(types.Plant{ID: "p1"}).Add(types.Plant{ID: "p1"})
	first, err := l.Book(c, Booking{Contact: "1234567890"})
	require.NoError(t, err)
	assert.Equal(t, types.StatusRequested, first.Status)
	assert.Equal(t, "1740819600000", first.ID)

	second, err := l.Book(cart.New().Add(types.Plant{ID: "p2"}), Booking{})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got := l.Orders()
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, 3, l.TotalPlants())
}

func TestLedgerSnapshotsCart(t *testing.T) {
	l := NewLedger()
	c := cart.New().Add(types.Plant{ID: "p1"})
	o, err := l.Book(c, Booking{})
	require.NoError(t, err)

	c = c.Add(types.Plant{ID: "p1"}).Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 1, o.TotalPlants())
	assert.Equal(t, 1, l.Orders()[0].TotalPlants())
}

// gatedAPI holds each response until the test releases it.
type gatedAPI struct {
	fakeAPI
	mu      sync.Mutex
	calls   int
	lists   []chan []types.Order
	detail  chan types.Order
	started chan struct{}
}

func (g *gatedAPI) MyOrders(context.Context) ([]types.Order, error) {
	g.mu.Lock()
	ch := g.lists[g.calls]
	g.calls++
	g.mu.Unlock()
	g.started <- struct{}{}
	return <-ch, nil
}

func (g *gatedAPI) OrderByID(context.Context, string) (types.Order, error) {
	g.started <- struct{}{}
	return <-g.detail, nil
}

func TestOverlappingFetchesLastWriteWins(t *testing.T) {
	api := &gatedAPI{
		lists:   []chan []types.Order{make(chan []types.Order), make(chan []types.Order)},
		started: make(chan struct{}, 2),
	}
	s := NewSlice(api, zerolog.Nop())
	ctx := context.Background()

	first, second := make(chan error, 1), make(chan error, 1)
	go func() { first <- s.FetchMyOrders(ctx) }()
	<-api.started
	go func() { second <- s.FetchMyOrders(ctx) }()
	<-api.started
	assert.True(t, s.State().Loading)

	api.lists[1] <- []types.Order{{ID: "newer"}}
	require.NoError(t, <-second)
	st := s.State()
	assert.False(t, st.Loading)
	assert.Equal(t, []types.Order{{ID: "newer"}}, st.Orders)

	// the older request settles last and overwrites
	api.lists[0] <- []types.Order{{ID: "older"}, {ID: "older-2"}}
	require.NoError(t, <-first)
	assert.Equal(t, []types.Order{{ID: "older"}, {ID: "older-2"}}, s.State().Orders)
}

func TestDetailLoadingIsIndependentOfList(t *testing.T) {
	api := &gatedAPI{
		lists:   []chan []types.Order{make(chan []types.Order, 1)},
		detail:  make(chan types.Order),
		started: make(chan struct{}, 2),
	}
	api.lists[0] <- []types.Order{{ID: "o1", Status: "Requested"}}
	s := NewSlice(api, zerolog.Nop())
	ctx := context.Background()
	require.NoError(t, s.FetchMyOrders(ctx))
	<-api.started

	done := make(chan Detail, 1)
	go func() { done <- s.FetchOrderByID(ctx, "o1") }()
	<-api.started

	st := s.State()
	assert.True(t, st.DetailLoading)
	assert.False(t, st.Loading)
	assert.Nil(t, st.Detail)
	assert.Len(t, st.Orders, 1)

	api.detail <- types.Order{ID: "o1", Status: "Approved"}
	d := <-done
	require.False(t, d.Failed())
	st = s.State()
	assert.False(t, st.DetailLoading)
	require.NotNil(t, st.Detail)
	assert.Equal(t, "Approved", st.Detail.Order.Status)
	assert.Equal(t, "Requested", st.Orders[0].Status)
}
