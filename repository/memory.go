package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/darshan2121/PlantApp/models"
	"github.com/google/uuid"
)

// Memory keeps everything in process. It backs the dev server when no
// database is configured, and every handler test.
type Memory struct {
	mu         sync.RWMutex
	users      map[string]models.User
	categories []models.Category
	plants     map[string]models.Plant
	plantOrder []string
	orders     map[string]models.Order
	now        func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users:  map[string]models.User{},
		plants: map[string]models.Plant{},
		orders: map[string]models.Order{},
		now:    time.Now,
	}
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	o.TrackingHistory = append([]models.TrackingEvent(nil), o.TrackingHistory...)
	return o
}

func clonePlant(p models.Plant) models.Plant {
	p.Images = append([]string(nil), p.Images...)
	p.Benefits = append([]string(nil), p.Benefits...)
	p.BenefitsGujarati = append([]string(nil), p.BenefitsGujarati...)
	return p
}

func (m *Memory) CreateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return fmt.Errorf("user %s: %w", u.Email, ErrDuplicate)
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := m.now()
	u.CreatedAt, u.UpdatedAt = now, now
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) ListUsers(context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) UpdateUser(_ context.Context, id string, fn UserMutation) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(&u); err != nil {
		return nil, err
	}
	u.UpdatedAt = m.now()
	m.users[id] = u
	return &u, nil
}

func (m *Memory) ListCategories(context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Category{}, m.categories...), nil
}

func (m *Memory) CreateCategory(_ context.Context, c *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return fmt.Errorf("category %s: %w", c.Name, ErrDuplicate)
		}
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.categories = append(m.categories, *c)
	return nil
}

func (m *Memory) ListPlants(context.Context) ([]models.Plant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Plant, 0, len(m.plantOrder))
	for _, id := range m.plantOrder {
		out = append(out, clonePlant(m.plants[id]))
	}
	return out, nil
}

func (m *Memory) PlantByID(_ context.Context, id string) (*models.Plant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plants[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePlant(p)
	return &p, nil
}

func (m *Memory) PlantByName(_ context.Context, name string) (*models.Plant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.plantOrder {
		if p := m.plants[id]; strings.EqualFold(p.Name, name) {
			p = clonePlant(p)
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) SavePlant(_ context.Context, p *models.Plant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if existing, ok := m.plants[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
		m.plantOrder = append(m.plantOrder, p.ID)
	}
	p.UpdatedAt = now
	m.plants[p.ID] = clonePlant(*p)
	return nil
}

func (m *Memory) DeletePlant(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plants[id]; !ok {
		return ErrNotFound
	}
	delete(m.plants, id)
	for i, pid := range m.plantOrder {
		if pid == id {
			m.plantOrder = append(m.plantOrder[:i], m.plantOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) CreateOrder(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.orders {
		if existing.OrderNumber == o.OrderNumber {
			return fmt.Errorf("order %s: %w", o.OrderNumber, ErrDuplicate)
		}
	}

	// check everything first so a failure leaves stock untouched
	reserved := map[string]models.Plant{}
	for i, item := range o.Items {
		p, ok := reserved[item.PlantID]
		if !ok {
			if p, ok = m.plants[item.PlantID]; !ok {
				return fmt.Errorf("plant %s: %w", item.PlantID, ErrNotFound)
			}
		}
		if p.Stock < item.Quantity {
			return fmt.Errorf("%s: %w", p.Name, ErrOutOfStock)
		}
		p.Stock -= item.Quantity
		p.SyncStock()
		reserved[item.PlantID] = p
		o.Items[i].PlantName = p.Name
	}

	now := m.now()
	for id, p := range reserved {
		p.UpdatedAt = now
		m.plants[id] = p
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	for i := range o.TrackingHistory {
		o.TrackingHistory[i].OrderID = o.ID
	}
	o.CreatedAt, o.UpdatedAt = now, now
	m.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (m *Memory) OrderByID(_ context.Context, id string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o = cloneOrder(o)
	return &o, nil
}

func (m *Memory) collect(match func(models.Order) bool) []models.Order {
	out := []models.Order{}
	for _, o := range m.orders {
		if match(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].OrderNumber > out[j].OrderNumber
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *Memory) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(o models.Order) bool { return o.UserID == userID }), nil
}

func (m *Memory) ListOrders(context.Context) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(models.Order) bool { return true }), nil
}

func (m *Memory) UpdateOrder(_ context.Context, id string, fn OrderMutation) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	o = cloneOrder(o)
	if err := fn(&o); err != nil {
		return nil, err
	}
	o.UpdatedAt = m.now()
	m.orders[id] = cloneOrder(o)
	return &o, nil
}
