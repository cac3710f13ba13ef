package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrice is returned when an item is constructed with a
	// negative price.
	ErrInvalidPrice = errors.New("price cannot be negative")
	// ErrInvalidQuantity is returned when an item is constructed with a
	// quantity of zero or less.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// Item is a single priced, quantified line in an order.
type Item struct {
	Name     string
	Price    float64
	Quantity int
	Category Category
	// Size describes a beverage portion ("Small", "Medium", "Large");
	// empty for the other categories.
	Size string
	// Trait is the category's discriminator: for sharing (appetizer),
	// contains meat (main course), has sugar (beverage), on season
	// (dessert). When set, the category's multiplier was applied to the
	// price once, at construction.
	Trait bool
}

// NewItem builds a plain item with no category. Price must be
// non-negative and quantity positive.
func NewItem(name string, price float64, quantity int) (*Item, error) {
	if price < 0 {
		return nil, fmt.Errorf("item %q: %w", name, ErrInvalidPrice)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("item %q: %w", name, ErrInvalidQuantity)
	}
	return &Item{Name: name, Price: price, Quantity: quantity}, nil
}

// TotalPrice returns the price times the quantity.
func (i *Item) TotalPrice() float64 {
	return i.Price * float64(i.Quantity)
}

// AdjustPrice multiplies the price in place. The multiplier is not bounds
// checked; callers must not produce a negative price.
func (i *Item) AdjustPrice(multiplier float64) {
	i.Price *= multiplier
}

// Less orders items by price ascending, quantity ascending as the
// tie-break. Items with equal price and quantity are not less.
func (i *Item) Less(other *Item) bool {
	if i.Price != other.Price {
		return i.Price < other.Price
	}
	return i.Quantity < other.Quantity
}

// String returns the item's name.
func (i *Item) String() string {
	return i.Name
}
