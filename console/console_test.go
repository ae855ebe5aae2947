package console

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darshan2121/PlantApp/app"
	"github.com/darshan2121/PlantApp/client"
	"github.com/darshan2121/PlantApp/config"
	orderControllers "github.com/darshan2121/PlantApp/controllers/order"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/darshan2121/PlantApp/routes"
	"github.com/darshan2121/PlantApp/storage"
	"github.com/darshan2121/PlantApp/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repository.NewMemory()
	require.NoError(t, repository.Seed(context.Background(), store, zerolog.Nop()))

	srv := httptest.NewServer(routes.NewRouter(routes.Server{
		Config: config.Server{
			JWTSecret:   "console",
			TokenTTL:    time.Hour,
			UploadDir:   t.TempDir(),
			CORSOrigins: []string{"*"},
		},
		Store: store,
		Hub:   orderControllers.NewHub(zerolog.Nop()),
		Log:   zerolog.Nop(),
	}))
	t.Cleanup(srv.Close)

	return app.New(app.Deps{
		Backend: client.New(srv.URL + "/api"),
		Store:   storage.NewMemory(),
		Log:     zerolog.Nop(),
	})
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestShellBrowseSignupAndCheckout(t *testing.T) {
	a := newApp(t)
	var out bytes.Buffer
	in := script(
		"plants",
		"add 1 3",
		"cart",
		"signup",
		"Asha Patel", "asha@example.com", "9876543210", "tulsi123",
		"Navrangpura", "Ward 7", "380009", "Ahmedabad", "Gujarat", "India",
		"checkout",
		"", "", "", "", "", "", "", "",
		"leave at the gate",
		"orders",
		"quit",
	)

	require.NoError(t, New(a, in, &out).Run(context.Background()))
	text := out.String()

	assert.Contains(t, text, "AMC Free Plants")
	assert.Contains(t, text, "Tulsi added to cart")
	assert.Contains(t, text, "Total Plants: 3")
	assert.Contains(t, text, "Welcome back, Asha Patel")
	assert.Contains(t, text, "[380009]")
	assert.Contains(t, text, "Your Plants are Booked!")
	assert.Contains(t, text, "Order #ORD-")
	assert.Contains(t, text, "3 items")
	assert.NotContains(t, text, "Error:")
	assert.True(t, a.Cart().IsEmpty())

	list := a.Snapshot().Orders.Orders
	require.Len(t, list, 1)
	assert.Equal(t, "Requested", list[0].Status)
	assert.Equal(t, "leave at the gate", list[0].Notes)
}

func TestShellLocalizesMessages(t *testing.T) {
	a := newApp(t)
	var out bytes.Buffer
	s := New(a, strings.NewReader(""), &out)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "lang gujarati"))
	assert.Contains(t, out.String(), "ભાષા: ગુજરાતી")

	err := s.Exec(ctx, "checkout")
	require.Error(t, err)
	assert.Equal(t, "કૃપા કરીને પહેલા કાર્ટમાં છોડ ઉમેરો", err.Error())

	out.Reset()
	require.NoError(t, s.Exec(ctx, "plants તુલસી"))
	assert.Contains(t, out.String(), "તુલસી")
	assert.Contains(t, out.String(), "ઔષધીય")

	require.NoError(t, s.Exec(ctx, "add 1"))
	err = s.Exec(ctx, "checkout")
	require.Error(t, err)
	assert.Equal(t, "ઓર્ડર આપવા માટે કૃપા કરીને લોગિન કરો", err.Error())

	// offline sign-in has no token and cannot order
	_, err = a.Session.LocalSignIn("Asha", "9876543210", types.Gujarati)
	require.NoError(t, err)
	err = s.Exec(ctx, "checkout")
	require.Error(t, err)
	assert.Equal(t, "ઓર્ડર આપવા માટે કૃપા કરીને લોગિન કરો", err.Error())
	assert.Equal(t, 1, a.Cart().Count())
}

func TestShellCartCommands(t *testing.T) {
	a := newApp(t)
	var out bytes.Buffer
	s := New(a, strings.NewReader(""), &out)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "add 1 15"))
	assert.Contains(t, out.String(), "Maximum 10 plants")
	assert.Equal(t, 10, a.Cart().Count())

	require.NoError(t, s.Exec(ctx, "qty 1 4"))
	assert.Equal(t, 4, a.Cart().Count())

	require.NoError(t, s.Exec(ctx, "remove 1"))
	assert.True(t, a.Cart().IsEmpty())

	require.NoError(t, s.Exec(ctx, "add 2"))
	require.NoError(t, s.Exec(ctx, "book 9876543210"))
	assert.True(t, a.Cart().IsEmpty())
	require.Len(t, a.Snapshot().LocalOrders, 1)

	out.Reset()
	require.NoError(t, s.Exec(ctx, "bookings"))
	assert.Contains(t, out.String(), "Total Plants: 1")

	assert.Error(t, s.Exec(ctx, "show 99"))
	assert.Error(t, s.Exec(ctx, "frobnicate"))
	assert.ErrorIs(t, s.Exec(ctx, "exit"), ErrQuit)
	assert.NoError(t, s.Exec(ctx, "   "))
}

func TestShellCancelReportsBackendMessage(t *testing.T) {
	a := newApp(t)
	var out bytes.Buffer
	in := script(
		"Ravi", "ravi@example.com", "9123456780", "neem1234",
		"Paldi", "Ward 3", "380007", "Ahmedabad", "Gujarat", "India",
		"", "", "", "", "", "", "", "", "",
	)
	s := New(a, in, &out)
	ctx := context.Background()

	require.NoError(t, s.Exec(ctx, "signup"))
	require.NoError(t, s.Exec(ctx, "add 1"))
	require.NoError(t, s.Exec(ctx, "checkout"))
	require.NoError(t, s.Exec(ctx, "orders"))
	id := a.Snapshot().Orders.Orders[0].ID

	require.NoError(t, s.Exec(ctx, "cancel "+id))
	assert.Contains(t, out.String(), "cancelled")

	err := s.Exec(ctx, "cancel "+id)
	require.Error(t, err)
	assert.Equal(t, "Order can no longer be cancelled", err.Error())

	out.Reset()
	require.NoError(t, s.Exec(ctx, "order "+id))
	assert.Contains(t, out.String(), "Cancelled by user")

	assert.Error(t, s.Exec(ctx, "order missing"))
}
