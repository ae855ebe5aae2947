package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/darshan2121/PlantApp/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the same contract against any Store.
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	u := &models.User{Email: "asha+" + suffix + "@example.com", Name: "Asha", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)
	err := s.CreateUser(ctx, &models.User{Email: u.Email, PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrDuplicate)

	byEmail, err := s.UserByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	_, err = s.UserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	renamed, err := s.UpdateUser(ctx, u.ID, func(u *models.User) error {
		u.Mobile = "9876543210"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "9876543210", renamed.Mobile)
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, users)

	c := &models.Category{Name: "Medicinal " + suffix, NameGujarati: "ઔષધીય"}
	require.NoError(t, s.CreateCategory(ctx, c))

	p := &models.Plant{Name: "Tulsi " + suffix, CategoryID: c.ID, Stock: 3, Benefits: []string{"Air"}}
	p.SyncStock()
	require.NoError(t, s.SavePlant(ctx, p))
	byName, err := s.PlantByName(ctx, p.Name)
	require.NoError(t, err)
	assert.Equal(t, []string{"Air"}, byName.Benefits)

	o := &models.Order{
		OrderNumber: "ORD-" + suffix,
		UserID:      u.ID,
		Status:      models.OrderStatusRequested,
		Items:       []models.OrderItem{{PlantID: p.ID, Quantity: 2}},
	}
	o.Track(models.OrderStatusRequested, "Order placed", time.Now())
	require.NoError(t, s.CreateOrder(ctx, o))

	stocked, err := s.PlantByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stocked.Stock)
	assert.True(t, stocked.InStock)

	tooMany := &models.Order{
		OrderNumber: "ORD-" + suffix + "-2",
		UserID:      u.ID,
		Items:       []models.OrderItem{{PlantID: p.ID, Quantity: 5}},
	}
	assert.ErrorIs(t, s.CreateOrder(ctx, tooMany), ErrOutOfStock)
	stocked, err = s.PlantByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stocked.Stock)

	mine, err := s.OrdersByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, p.Name, mine[0].Items[0].PlantName)

	updated, err := s.UpdateOrder(ctx, o.ID, func(o *models.Order) error {
		o.Track(models.OrderStatusApproved, "Approved by nursery", time.Now())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, updated.Status)

	got, err := s.OrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, got.Status)
	require.Len(t, got.TrackingHistory, 2)

	boom := errors.New("boom")
	_, err = s.UpdateOrder(ctx, o.ID, func(o *models.Order) error {
		o.Status = models.OrderStatusDelivered
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, err = s.OrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusApproved, got.Status)

	require.NoError(t, s.DeletePlant(ctx, p.ID))
	assert.ErrorIs(t, s.DeletePlant(ctx, p.ID), ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemoryOrdersNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	require.NoError(t, m.CreateOrder(ctx, &models.Order{OrderNumber: "ORD-1", UserID: "u"}))
	require.NoError(t, m.CreateOrder(ctx, &models.Order{OrderNumber: "ORD-2", UserID: "u"}))
	require.NoError(t, m.CreateOrder(ctx, &models.Order{OrderNumber: "ORD-3", UserID: "other"}))

	mine, err := m.OrdersByUser(ctx, "u")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "ORD-2", mine[0].OrderNumber)

	all, err := m.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGormStore(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	g, err := Open(dsn)
	require.NoError(t, err)
	exerciseStore(t, g)
}

func TestSeedOnlyFillsEmptyCatalog(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, m, zerolog.Nop()))

	plants, err := m.ListPlants(ctx)
	require.NoError(t, err)
	assert.Len(t, plants, len(seedPlants))
	for _, p := range plants {
		assert.Equal(t, p.Stock > 0, p.InStock, p.Name)
	}
	categories, err := m.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	require.NoError(t, Seed(ctx, m, zerolog.Nop()))
	plants, err = m.ListPlants(ctx)
	require.NoError(t, err)
	assert.Len(t, plants, len(seedPlants))
}
