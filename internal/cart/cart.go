package cart

import (
	"log"

	"github.com/chenmo1212/foodorder/internal/models"
)

// Store persists the full cart collection. It is written on every mutation
// and read once when the cart is created.
type Store interface {
	Load() ([]models.CartLine, error)
	Save(lines []models.CartLine) error
}

// Cart holds the order-in-progress: one line per (item, instructions) pair.
// Lines keep a display snapshot of the item taken at add time, so rendering
// never depends on the catalog still being reachable.
type Cart struct {
	store Store
	lines []models.CartLine
}

// New loads any previously persisted cart from the store. A load failure is
// not fatal: the cart starts empty, matching a fresh session.
func New(store Store) *Cart {
	c := &Cart{store: store}
	lines, err := store.Load()
	if err != nil {
		log.Printf("cart: discarding persisted state: %v", err)
		return c
	}
	c.lines = lines
	return c
}

// Add increments the quantity of the matching line, or appends a new line
// with quantity 1. Unknown items are accepted verbatim, which is what makes
// custom requests work.
func (c *Cart) Add(item models.CartItem, instructions string) {
	key := models.LineKey{ItemID: item.ID, Instructions: instructions}
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity++
			c.persist()
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		Item:         item,
		Instructions: instructions,
		Quantity:     1,
	})
	c.persist()
}

// UpdateQuantity adds delta to the line's quantity and drops the line when
// the result is zero or below. A missing key is a no-op.
func (c *Cart) UpdateQuantity(key models.LineKey, delta int) {
	for i := range c.lines {
		if c.lines[i].Key() != key {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		c.persist()
		return
	}
}

// Clear empties the cart. Called only after the order itself went through.
func (c *Cart) Clear() {
	c.lines = nil
	c.persist()
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is price times quantity over all lines; custom lines are priced
// at zero and contribute nothing.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}

func (c *Cart) persist() {
	if err := c.store.Save(c.lines); err != nil {
		log.Printf("cart: failed to persist: %v", err)
	}
}
