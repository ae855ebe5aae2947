package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/darshan2121/PlantApp/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Gorm is the postgres-backed Store.
type Gorm struct {
	db *gorm.DB
}

// Open connects to postgres and migrates every table.
func Open(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return NewGorm(db), nil
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Plant{},
		&models.Order{},
		&models.OrderItem{},
		&models.TrackingEvent{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (g *Gorm) CreateUser(ctx context.Context, u *models.User) error {
	var count int64
	if err := g.db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("user %s: %w", u.Email, ErrDuplicate)
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return g.db.WithContext(ctx).Create(u).Error
}

func (g *Gorm) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := g.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (g *Gorm) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := g.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (g *Gorm) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := g.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (g *Gorm) UpdateUser(ctx context.Context, id string, fn UserMutation) (*models.User, error) {
	var out models.User
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if err := fn(&u); err != nil {
			return err
		}
		if err := tx.Save(&u).Error; err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Gorm) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := g.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (g *Gorm) CreateCategory(ctx context.Context, c *models.Category) error {
	var count int64
	if err := g.db.WithContext(ctx).Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?)", c.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category %s: %w", c.Name, ErrDuplicate)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return g.db.WithContext(ctx).Create(c).Error
}

func (g *Gorm) ListPlants(ctx context.Context) ([]models.Plant, error) {
	var plants []models.Plant
	err := g.db.WithContext(ctx).Order("created_at ASC").Find(&plants).Error
	return plants, err
}

func (g *Gorm) PlantByID(ctx context.Context, id string) (*models.Plant, error) {
	var p models.Plant
	if err := g.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (g *Gorm) PlantByName(ctx context.Context, name string) (*models.Plant, error) {
	var p models.Plant
	if err := g.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (g *Gorm) SavePlant(ctx context.Context, p *models.Plant) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
		return g.db.WithContext(ctx).Create(p).Error
	}
	return g.db.WithContext(ctx).Save(p).Error
}

func (g *Gorm) DeletePlant(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Delete(&models.Plant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *Gorm) CreateOrder(ctx context.Context, o *models.Order) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, item := range o.Items {
			var plant models.Plant
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&plant, "id = ?", item.PlantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("plant %s: %w", item.PlantID, ErrNotFound)
				}
				return err
			}
			if plant.Stock < item.Quantity {
				return fmt.Errorf("%s: %w", plant.Name, ErrOutOfStock)
			}

			// Deduct stock
			plant.Stock -= item.Quantity
			plant.SyncStock()
			if err := tx.Save(&plant).Error; err != nil {
				return err
			}
			o.Items[i].PlantName = plant.Name
		}

		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		return tx.Create(o).Error
	})
}

func (g *Gorm) preloaded(ctx context.Context) *gorm.DB {
	return g.db.WithContext(ctx).
		Preload("Items").
		Preload("TrackingHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		})
}

func (g *Gorm) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := g.preloaded(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (g *Gorm) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := g.preloaded(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (g *Gorm) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := g.preloaded(ctx).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateOrder locks the row, applies fn, saves the order columns and
// inserts any tracking events fn appended.
func (g *Gorm) UpdateOrder(ctx context.Context, id string, fn OrderMutation) (*models.Order, error) {
	var out models.Order
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Preload("TrackingHistory", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC") }).
			First(&o, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		known := len(o.TrackingHistory)
		if err := fn(&o); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&o).Error; err != nil {
			return err
		}
		if len(o.TrackingHistory) > known {
			added := o.TrackingHistory[known:]
			for i := range added {
				added[i].OrderID = o.ID
			}
			if err := tx.Create(&added).Error; err != nil {
				return err
			}
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
