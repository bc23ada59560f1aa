package domain

import (
	"errors"
	"math/rand"
	"time"
)

var ErrNoItems = errors.New("order has no items")

// OrderItem is a line snapshot taken at checkout time. Price is the
// unit price in cents as it was when the order was placed.
type OrderItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int64  `json:"price"`
}

// ShippingInfo is the sanitized shipping block carried on an order.
type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Phone   string `json:"phone"`
}

// Order is immutable once created.
type Order struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Total     int64        `json:"total"`
	Items     []OrderItem  `json:"items"`
	Shipping  ShippingInfo `json:"shipping"`
}

// NewOrder builds an order from a cart snapshot. The total is recomputed
// from the items so a caller cannot record a mismatched amount.
func NewOrder(items []OrderItem, shipping ShippingInfo) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrNoItems
	}
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Qty)
	}
	return Order{
		ID:        rand.Int63(),
		CreatedAt: time.Now().UTC(),
		Total:     total,
		Items:     items,
		Shipping:  shipping,
	}, nil
}

func (o Order) DisplayTotal() string { return FormatCents(o.Total) }

func (i OrderItem) DisplayPrice() string { return FormatCents(i.Price) }

func (i OrderItem) DisplaySubtotal() string { return FormatCents(i.Price * int64(i.Qty)) }
