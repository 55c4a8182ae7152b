package models

// LineKey is the composite identity of a cart line. Two adds of the same
// dish with different special instructions produce two separate lines.
type LineKey struct {
	ItemID       string
	Instructions string
}

type CartLine struct {
	Item         CartItem `json:"item"`
	Instructions string   `json:"special_instructions"`
	Quantity     int      `json:"quantity"`
}

func (l *CartLine) Key() LineKey {
	return LineKey{ItemID: l.Item.ID, Instructions: l.Instructions}
}
