package menu

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T) (*Order, []*Item) {
	t.Helper()

	order := NewOrder()
	var items []*Item
	for _, tc := range []struct {
		name     string
		price    float64
		quantity int
	}{
		{"Steak", 15.00, 1},
		{"Nachos", 5.50, 2},
		{"Latte", 4.00, 1},
	} {
		item, err := NewItem(tc.name, tc.price, tc.quantity)
		require.NoError(t, err)
		order.AddItem(item)
		items = append(items, item)
	}
	return order, items
}

func collect(seq iter.Seq[Entry]) []Entry {
	var entries []Entry
	for e := range seq {
		entries = append(entries, e)
	}
	return entries
}

func TestTraverseInsertionOrder(t *testing.T) {
	order, items := buildOrder(t)

	entries := collect(order.Traverse(InsertionOrder))
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Same(t, items[i], e.Item)
		assert.Equal(t, items[i].Name, e.Text)
	}
}

func TestTraverseIsRestartable(t *testing.T) {
	order, _ := buildOrder(t)
	seq := order.Traverse(InsertionOrder)

	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second)
}

func TestTraverseEarlyStop(t *testing.T) {
	order, items := buildOrder(t)
	seq := order.Traverse(InsertionOrder)

	for e := range seq {
		assert.Same(t, items[0], e.Item)
		break
	}

	// A broken-off walk does not affect the next one.
	assert.Len(t, collect(seq), 3)
}

func TestTraversePriceSorted(t *testing.T) {
	order, _ := buildOrder(t)

	entries := collect(order.Traverse(PriceSorted))
	require.Len(t, entries, 3)
	assert.Equal(t, "Latte", entries[0].Item.Name)
	assert.Equal(t, "Nachos", entries[1].Item.Name)
	assert.Equal(t, "Steak", entries[2].Item.Name)
}

func TestTraversePriceSortedTieBreak(t *testing.T) {
	order := NewOrder()
	big, err := NewItem("Big", 5.00, 3)
	require.NoError(t, err)
	small, err := NewItem("Small", 5.00, 1)
	require.NoError(t, err)
	order.AddItem(big)
	order.AddItem(small)

	entries := collect(order.Traverse(PriceSorted))
	require.Len(t, entries, 2)
	assert.Same(t, small, entries[0].Item)
	assert.Same(t, big, entries[1].Item)
}

func TestTraverseDoesNotMutateOrder(t *testing.T) {
	order, _ := buildOrder(t)
	before := order.Show()

	collect(order.Traverse(PriceSorted))
	assert.Equal(t, before, order.Show())
}

func TestTraverseUnknownStrategyFallsBack(t *testing.T) {
	order, _ := buildOrder(t)

	want := collect(order.Traverse(PriceSorted))
	got := collect(order.Traverse(Strategy(42)))
	assert.Equal(t, want, got)
}

func TestFormatRow(t *testing.T) {
	latte, err := NewItem("Latte", 4.00, 1)
	require.NoError(t, err)

	row := FormatRow(latte)
	require.Len(t, row, 37)
	assert.Equal(t, "Latte", strings.TrimRight(row[:20], " "))
	assert.Equal(t, " | ", row[20:23])
	assert.Equal(t, "  4.00", row[23:29])
	assert.Equal(t, " | ", row[29:32])
	assert.Equal(t, "  1  ", row[32:37])
}

func TestFormatRowCentersQuantity(t *testing.T) {
	item, err := NewItem("Nachos", 5.50, 12)
	require.NoError(t, err)

	row := FormatRow(item)
	// Odd padding leaves the extra space on the right.
	assert.Equal(t, " 12  ", row[32:37])
}

func TestRowHeaderAlignment(t *testing.T) {
	latte, err := NewItem("Latte", 4.00, 1)
	require.NoError(t, err)
	assert.Len(t, RowHeader, len(FormatRow(latte)))
}
