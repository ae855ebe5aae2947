// Package app composes the client slices into one application state.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/darshan2121/PlantApp/cart"
	"github.com/darshan2121/PlantApp/catalog"
	"github.com/darshan2121/PlantApp/checkout"
	"github.com/darshan2121/PlantApp/client"
	"github.com/darshan2121/PlantApp/i18n"
	"github.com/darshan2121/PlantApp/orders"
	"github.com/darshan2121/PlantApp/session"
	"github.com/darshan2121/PlantApp/storage"
	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FailedToPlaceOrder is shown when the backend rejects an order without a message.
const FailedToPlaceOrder = "Failed to place order"

// Backend is the whole remote surface. *client.Client implements it.
type Backend interface {
	catalog.Source
	session.Authenticator
	orders.API
}

type tokenUser interface {
	UseToken(client.TokenSource)
}

type Deps struct {
	Backend    Backend
	Store      storage.KeyValue
	Translator *i18n.Translator
	Images     catalog.ImageResolver
	Language   types.Language
	Log        zerolog.Logger
	Now        func() time.Time
}

// OrderError is a backend rejection of a submitted order.
type OrderError struct {
	Message string
	Err     error
}

func (e *OrderError) Error() string { return e.Message }
func (e *OrderError) Unwrap() error { return e.Err }

type App struct {
	log       zerolog.Logger
	tr        *i18n.Translator
	images    catalog.ImageResolver
	assembler *checkout.Assembler

	Catalog *catalog.Catalog
	Session *session.Manager
	Orders  *orders.Slice
	Ledger  *orders.Ledger

	mu   sync.RWMutex
	cart cart.Cart
	lang types.Language
}

func New(d Deps) *App {
	if d.Store == nil {
		d.Store = storage.NewMemory()
	}
	if d.Translator == nil {
		d.Translator = i18n.New()
	}
	if !d.Language.Valid() {
		d.Language = types.English
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	sess := session.NewManager(d.Backend, d.Store, d.Log)
	if tu, ok := d.Backend.(tokenUser); ok {
		tu.UseToken(sess.Token)
	}

	return &App{
		log:       d.Log,
		tr:        d.Translator,
		images:    d.Images,
		assembler: &checkout.Assembler{Now: d.Now},
		Catalog:   catalog.New(d.Backend, d.Log),
		Session:   sess,
		Orders:    orders.NewSlice(d.Backend, d.Log),
		Ledger:    orders.NewLedger(),
		lang:      d.Language,
	}
}

// Snapshot is a read-only copy of every slice.
type Snapshot struct {
	Language    types.Language
	Cart        cart.Cart
	CartCount   int
	LocalOrders []types.LocalOrder
	Session     session.State
	Items       catalog.ItemsState
	Categories  catalog.CategoriesState
	Orders      orders.State
}

func (a *App) Snapshot() Snapshot {
	a.mu.RLock()
	c, lang := a.cart, a.lang
	a.mu.RUnlock()
	return Snapshot{
		Language:    lang,
		Cart:        c,
		CartCount:   c.Count(),
		LocalOrders: a.Ledger.Orders(),
		Session:     a.Session.State(),
		Items:       a.Catalog.Items(),
		Categories:  a.Catalog.Categories(),
		Orders:      a.Orders.State(),
	}
}

func (a *App) Language() types.Language {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lang
}

func (a *App) ToggleLanguage() types.Language {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lang = a.lang.Toggle()
	return a.lang
}

func (a *App) SetLanguage(lang types.Language) {
	if !lang.Valid() {
		return
	}
	a.mu.Lock()
	a.lang = lang
	a.mu.Unlock()
}

// T translates key in the active language.
func (a *App) T(key string, params i18n.Params) string {
	return a.tr.T(a.Language(), key, params)
}

func (a *App) TN(key string, count int, params i18n.Params) string {
	return a.tr.TN(a.Language(), key, count, params)
}

func (a *App) Translator() *i18n.Translator { return a.tr }

func (a *App) ImageURL(p types.Plant) string { return a.images.Resolve(p) }

func (a *App) updateCart(fn func(cart.Cart) cart.Cart) cart.Cart {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart = fn(a.cart)
	return a.cart
}

func (a *App) Cart() cart.Cart {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cart
}

func (a *App) AddToCart(p types.Plant) cart.Cart {
	return a.updateCart(func(c cart.Cart) cart.Cart { return c.Add(p) })
}

// AddSelection adds n of p with n bounded to the details stepper range.
func (a *App) AddSelection(p types.Plant, n int) cart.Cart {
	n = cart.ClampSelection(n)
	return a.updateCart(func(c cart.Cart) cart.Cart { return c.AddN(p, n) })
}

func (a *App) UpdateQuantity(id string, q int) cart.Cart {
	return a.updateCart(func(c cart.Cart) cart.Cart { return c.UpdateQuantity(id, q) })
}

func (a *App) RemoveFromCart(id string) cart.Cart {
	return a.updateCart(func(c cart.Cart) cart.Cart { return c.Remove(id) })
}

func (a *App) ClearCart() cart.Cart {
	return a.updateCart(func(c cart.Cart) cart.Cart { return c.Clear() })
}

// Book records an offline order from the cart and clears it.
func (a *App) Book(b orders.Booking) (types.LocalOrder, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	o, err := a.Ledger.Book(a.cart, b)
	if err != nil {
		return o, err
	}
	a.cart = a.cart.Clear()
	return o, nil
}

// PlaceOrder validates the draft, submits the cart and clears it only once
// the backend accepts. Validation failures are returned as
// *checkout.ValidationError; rejections as *OrderError. Only a session
// holding a token may order.
func (a *App) PlaceOrder(ctx context.Context, d checkout.Draft) (types.Order, error) {
	c := a.Cart()
	userID := ""
	if st := a.Session.State(); st.Authenticated() {
		userID = st.User.ID
	}
	req, err := a.assembler.Assemble(c, userID, d)
	if err != nil {
		return types.Order{}, err
	}

	o, err := a.Orders.CreateOrder(ctx, req)
	if err != nil {
		msg := FailedToPlaceOrder
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return types.Order{}, &OrderError{Message: msg, Err: err}
	}

	a.updateCart(func(cur cart.Cart) cart.Cart { return cur.Clear() })
	a.log.Info().Str("order_number", req.OrderNumber).Int("plants", c.Count()).Msg("order placed")
	return o, nil
}

// Refresh fetches the catalog and the categories concurrently. Neither
// fetch cancels the other; the first error is returned.
func (a *App) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return a.Catalog.FetchItems(ctx) })
	g.Go(func() error { return a.Catalog.FetchCategories(ctx) })
	return g.Wait()
}

// Browse filters the loaded catalog in the active language.
func (a *App) Browse(search, category string) []types.Plant {
	return catalog.Filter(a.Catalog.Items().Items, catalog.Query{
		Search:   search,
		Category: category,
		Language: a.Language(),
	})
}

func (a *App) RefreshOrders(ctx context.Context) error {
	return a.Orders.FetchMyOrders(ctx)
}

func (a *App) OrderDetail(ctx context.Context, id string) orders.Detail {
	return a.Orders.FetchOrderByID(ctx, id)
}

func (a *App) CancelOrder(ctx context.Context, id string) (types.Order, error) {
	return a.Orders.CancelOrder(ctx, id)
}

func (a *App) Login(ctx context.Context, email, password string) error {
	return a.Session.Login(ctx, email, password)
}

// Restore picks up a persisted session, if any.
func (a *App) Restore(ctx context.Context) bool {
	return a.Session.Restore(ctx)
}

func (a *App) Signup(ctx context.Context, p types.SignupPayload) error {
	return a.Session.Signup(ctx, p)
}

// Logout clears the session and the fetched orders. The cart is kept.
func (a *App) Logout(ctx context.Context) error {
	a.Orders.Reset()
	return a.Session.Logout(ctx)
}

// Draft pre-fills the checkout form from the signed-in user.
func (a *App) Draft() checkout.Draft {
	if u := a.Session.State().User; u != nil {
		return checkout.DraftFromUser(*u)
	}
	return checkout.Draft{}
}

// Describe renders err for the active language.
func (a *App) Describe(err error) string {
	var oe *OrderError
	if errors.As(err, &oe) {
		if oe.Message == FailedToPlaceOrder {
			return a.T("order_failed", nil)
		}
		return oe.Message
	}
	return checkout.Describe(err, func(key string, params map[string]any) string {
		return a.T(key, params)
	})
}
