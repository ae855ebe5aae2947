// Package repository persists the nursery catalog, accounts and orders.
package repository

import (
	"context"
	"errors"

	"github.com/darshan2121/PlantApp/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrOutOfStock = errors.New("insufficient stock")
)

// OrderMutation edits an order in place. Returning an error aborts the update.
type OrderMutation func(*models.Order) error

type UserMutation func(*models.User) error

type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, fn UserMutation) (*models.User, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error

	ListPlants(ctx context.Context) ([]models.Plant, error)
	PlantByID(ctx context.Context, id string) (*models.Plant, error)
	PlantByName(ctx context.Context, name string) (*models.Plant, error)
	SavePlant(ctx context.Context, p *models.Plant) error
	DeletePlant(ctx context.Context, id string) error

	// CreateOrder reserves stock for every item and creates the order atomically.
	CreateOrder(ctx context.Context, o *models.Order) error
	OrderByID(ctx context.Context, id string) (*models.Order, error)
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrder(ctx context.Context, id string, fn OrderMutation) (*models.Order, error)
}
