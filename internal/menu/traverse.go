package menu

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Strategy selects how Traverse walks an order.
type Strategy int

const (
	// InsertionOrder yields items as they were added; the text of each
	// entry is the item's name.
	InsertionOrder Strategy = 1
	// PriceSorted yields items ordered by price, then quantity; the text
	// of each entry is a fixed-width table row.
	PriceSorted Strategy = 2
)

// RowHeader lines up with the columns produced by FormatRow.
var RowHeader = fmt.Sprintf("%-20s | %6s | %s", "Name", "Price", center("Qty", 5))

// Entry is one step of a traversal: the item itself plus the strategy's
// text rendering of it.
type Entry struct {
	Item *Item
	Text string
}

// Traverse returns a lazy, finite walk over the order using the given
// strategy; re-ranging the sequence starts a fresh traversal.
// Unrecognized strategies fall back to PriceSorted. Neither strategy
// mutates the order: PriceSorted sorts a copy of the item list.
func (o *Order) Traverse(s Strategy) iter.Seq[Entry] {
	if s == InsertionOrder {
		return func(yield func(Entry) bool) {
			for _, item := range o.items {
				if !yield(Entry{Item: item, Text: item.String()}) {
					return
				}
			}
		}
	}
	return func(yield func(Entry) bool) {
		sorted := slices.Clone(o.items)
		slices.SortStableFunc(sorted, func(a, b *Item) int {
			switch {
			case a.Less(b):
				return -1
			case b.Less(a):
				return 1
			default:
				return 0
			}
		})
		for _, item := range sorted {
			if !yield(Entry{Item: item, Text: FormatRow(item)}) {
				return
			}
		}
	}
}

// FormatRow renders an item as a fixed-width row: name left-justified in
// 20 columns, price right-justified with two decimals in 6, quantity
// centered in 5.
func FormatRow(item *Item) string {
	return fmt.Sprintf("%-20s | %6.2f | %s", item.Name, item.Price, center(strconv.Itoa(item.Quantity), 5))
}

func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
