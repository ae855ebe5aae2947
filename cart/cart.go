// Package cart holds the client-local cart. A Cart is an immutable value:
// every mutator returns a new Cart and leaves the receiver untouched.
package cart

import "github.com/darshan2121/PlantApp/types"

// MaxSelection is the upper bound of the plant details quantity stepper.
// The aggregator itself does not enforce it.
const MaxSelection = 10

type Cart struct {
	items []types.CartItem
}

func New(items ...types.CartItem) Cart {
	var c Cart
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		if i := c.index(item.Plant.ID); i >= 0 {
			c.items[i].Quantity = item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

func (c Cart) index(plantID string) int {
	for i, item := range c.items {
		if item.Plant.ID == plantID {
			return i
		}
	}
	return -1
}

func (c Cart) clone() []types.CartItem {
	if len(c.items) == 0 {
		return nil
	}
	out := make([]types.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add increments the plant's quantity, or inserts it with quantity 1.
func (c Cart) Add(plant types.Plant) Cart {
	items := c.clone()
	if i := c.index(plant.ID); i >= 0 {
		items[i].Quantity++
		return Cart{items: items}
	}
	return Cart{items: append(items, types.CartItem{Plant: plant, Quantity: 1})}
}

// AddN adds the plant n times, which is what confirming the details stepper does.
func (c Cart) AddN(plant types.Plant, n int) Cart {
	for i := 0; i < n; i++ {
		c = c.Add(plant)
	}
	return c
}

// UpdateQuantity replaces the quantity unconditionally. q <= 0 removes the plant.
func (c Cart) UpdateQuantity(plantID string, q int) Cart {
	if q <= 0 {
		return c.Remove(plantID)
	}
	i := c.index(plantID)
	if i < 0 {
		return c
	}
	items := c.clone()
	items[i].Quantity = q
	return Cart{items: items}
}

func (c Cart) Remove(plantID string) Cart {
	i := c.index(plantID)
	if i < 0 {
		return c
	}
	items := make([]types.CartItem, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	items = append(items, c.items[i+1:]...)
	return Cart{items: items}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

// Count is the sum of quantities, shown on the cart badge.
func (c Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Len is the number of distinct plants.
func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c Cart) Get(plantID string) (types.CartItem, bool) {
	if i := c.index(plantID); i >= 0 {
		return c.items[i], true
	}
	return types.CartItem{}, false
}

// Items returns a copy in insertion order.
func (c Cart) Items() []types.CartItem {
	return c.clone()
}

// ClampSelection bounds a stepper value to 1..MaxSelection.
func ClampSelection(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxSelection:
		return MaxSelection
	default:
		return n
	}
}
