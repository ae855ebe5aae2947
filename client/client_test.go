package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darshan2121/PlantApp/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, register func(r *gin.Engine)) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api")
}

func TestBearerOnlyWhenTokenPresent(t *testing.T) {
	var seen []string
	c := newServer(t, func(r *gin.Engine) {
		r.GET("/api/items", func(ctx *gin.Context) {
			seen = append(seen, ctx.GetHeader("Authorization"))
			ctx.JSON(http.StatusOK, gin.H{"data": []gin.H{}})
		})
	})

	token := ""
	c.Token = func() string { return token }

	_, err := c.Items(context.Background())
	require.NoError(t, err)
	token = "abc"
	_, err = c.Items(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer abc"}, seen)
}

func TestItemsNormalizesMongoID(t *testing.T) {
	c := newServer(t, func(r *gin.Engine) {
		r.GET("/api/items", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"data": []gin.H{{"_id": "p1", "name": "Tulsi"}}})
		})
	})
	items, err := c.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
}

func TestMyOrdersReadsOrdersKey(t *testing.T) {
	c := newServer(t, func(r *gin.Engine) {
		r.GET("/api/orders/my-orders", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{
				"data":   []gin.H{{"_id": "wrong"}},
				"orders": []gin.H{{"_id": "o1", "status": "Requested"}, {"_id": "o2"}},
			})
		})
	})
	orders, err := c.MyOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	c := newServer(t, func(r *gin.Engine) {
		r.POST("/api/user/login", func(ctx *gin.Context) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		})
		r.POST("/api/orders/create", func(ctx *gin.Context) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "items required"})
		})
		r.GET("/api/categories", func(ctx *gin.Context) {
			ctx.Status(http.StatusBadGateway)
		})
	})

	_, err := c.Login(context.Background(), types.LoginPayload{Email: "a@b.c", Password: "x"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = c.CreateOrder(context.Background(), types.CreateOrderRequest{})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "items required", apiErr.Message)

	_, err = c.Categories(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestRegisterSendsMultipartForm(t *testing.T) {
	var got map[string]string
	c := newServer(t, func(r *gin.Engine) {
		r.POST("/api/user/register", func(ctx *gin.Context) {
			got = map[string]string{}
			for _, k := range []string{"name", "email", "mobile", "password", "area", "ward", "pinCode", "city", "state", "country", "latitude", "longitude"} {
				got[k] = ctx.PostForm(k)
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"token": "t", "user": gin.H{"_id": "u1", "name": ctx.PostForm("name")}}})
		})
	})

	res, err := c.Register(context.Background(), types.SignupPayload{
		Name:     "Asha",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Password: "secret",
		Address:  types.Address{Area: "Navrangpura", Ward: "7", PinCode: "380009", City: "Ahmedabad", State: "Gujarat", Country: "India"},
		Location: types.Location{Latitude: 23.03, Longitude: 72.58},
	})
	require.NoError(t, err)
	assert.Equal(t, "t", res.Token)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, "380009", got["pinCode"])
	assert.Equal(t, "23.03", got["latitude"])
	assert.Equal(t, "7", got["ward"])
}

func TestCancelAndDetailPaths(t *testing.T) {
	c := newServer(t, func(r *gin.Engine) {
		r.GET("/api/orders/:id", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"_id": ctx.Param("id"), "orderStatus": "Approved"}})
		})
		r.PATCH("/api/orders/:id/cancel", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"_id": ctx.Param("id"), "status": "Cancelled"}})
		})
	})

	o, err := c.OrderByID(context.Background(), "o9")
	require.NoError(t, err)
	assert.Equal(t, "Approved", o.Status)

	o, err = c.CancelOrder(context.Background(), "o9")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", o.Status)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL)

	_, err := c.Items(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
