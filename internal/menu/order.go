package menu

import "iter"

// Order is an append-only collection of menu items. Insertion order is
// preserved and duplicates are allowed; there is no removal.
type Order struct {
	items []*Item
}

// NewOrder returns an empty order.
func NewOrder() *Order {
	return &Order{}
}

// AddItem appends an item to the end of the order. It always succeeds.
func (o *Order) AddItem(item *Item) {
	o.items = append(o.items, item)
}

// Size returns the number of items in the order.
func (o *Order) Size() int {
	return len(o.items)
}

// Show returns the items' names in insertion order.
func (o *Order) Show() []string {
	names := make([]string, 0, len(o.items))
	for _, item := range o.items {
		names = append(names, item.String())
	}
	return names
}

// Items yields the order's items in insertion order.
func (o *Order) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, item := range o.items {
			if !yield(item) {
				return
			}
		}
	}
}

// CalculateBill returns the sum of each item's total price, 0 for an
// empty order.
func (o *Order) CalculateBill() float64 {
	var total float64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

// ApplyDiscount returns the bill with the given fraction knocked off
// (0.1 means 10% off). Stored prices are untouched. The fraction is not
// clamped: values outside [0,1] produce a result above the bill or below
// zero.
func (o *Order) ApplyDiscount(fraction float64) float64 {
	return o.CalculateBill() * (1 - fraction)
}
