package receipt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"restaurant-order/internal/menu"
)

// Render writes the order as a text receipt: one row per item in
// insertion order, the bill total, and the discounted total when the
// discount fraction is positive. The order is not modified.
func Render(w io.Writer, order *menu.Order, discount float64) error {
	cfg := tablewriter.Config{
		Row: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap:  tw.WrapNormal,
				Alignment: tw.AlignLeft,
			},
			Padding: tw.CellPadding{Global: tw.Padding{Right: "    "}},
		},
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap:  tw.WrapNormal,
				Alignment: tw.AlignLeft,
			},
			Padding: tw.CellPadding{Global: tw.Padding{Right: "    "}},
		},
	}
	rendition := tw.Rendition{
		Borders: tw.BorderNone,
		Settings: tw.Settings{
			Lines:      tw.LinesNone,
			Separators: tw.SeparatorsNone,
		},
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(rendition)),
		tablewriter.WithConfig(cfg),
	)
	table.Header([]string{"Item", "Category", "Qty", "Unit", "Total"})

	var rows [][]string
	for item := range order.Items() {
		rows = append(rows, []string{
			item.Name,
			string(item.Category),
			strconv.Itoa(item.Quantity),
			fmt.Sprintf("%.2f", item.Price),
			fmt.Sprintf("%.2f", item.TotalPrice()),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add receipt rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\nTOTAL: %.2f\n", order.CalculateBill()); err != nil {
		return err
	}
	if discount > 0 {
		if _, err := fmt.Fprintf(w, "AFTER %.0f%% DISCOUNT: %.2f\n", discount*100, order.ApplyDiscount(discount)); err != nil {
			return err
		}
	}
	return nil
}
