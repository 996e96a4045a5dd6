package domain

import "time"

// Line is one cart entry. Name and UnitPrice are snapshotted when the item
// is added; later catalog edits do not touch lines already in a cart.
type Line struct {
	ID        string
	ProductID int64
	Name      string
	UnitPrice int64
	Quantity  int
	Size      string
	Color     string
	AddedAt   time.Time
}

// SameIdentity reports whether two lines merge into one: identity is the
// product plus the selected variant attributes.
func (l Line) SameIdentity(other Line) bool {
	return l.ProductID == other.ProductID && l.Size == other.Size && l.Color == other.Color
}

func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is owned by exactly one browsing session; there are no concurrent
// writers for a single cart.
type Cart struct {
	ID        string
	Lines     []Line
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal is always derived, never stored.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}
