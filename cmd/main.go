package main

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"

	"restaurant-order/internal/config"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/receipt"
)

func main() {
	log := logger.New("restaurant-order")

	app := &cli.App{
		Name:  "restaurant-order",
		Usage: "restaurant order demonstration",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "discount",
				Usage: "discount fraction applied to the bill (0.1 = 10% off)",
			},
			&cli.IntFlag{
				Name:  "strategy",
				Usage: "traversal strategy for the table section (1 insertion order, 2 price sorted)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("demo_failed", "Demo run failed", err)
		os.Exit(1)
	}

	log.Info("demo_finished", "Demo completed")
}

func run(c *cli.Context, log *logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	discount := cfg.Discount
	if c.IsSet("discount") {
		discount = c.Float64("discount")
	}
	strategy := menu.Strategy(cfg.Strategy)
	if c.IsSet("strategy") {
		strategy = menu.Strategy(c.Int("strategy"))
	}

	log.Info("demo_started", "Building the sample order")

	order, err := menu.SampleOrder()
	if err != nil {
		return fmt.Errorf("failed to build sample order: %w", err)
	}

	fmt.Println(strings.Repeat("*", 20))
	fmt.Println("ITEMS IN THE ORDER:")
	fmt.Println(order.Show())

	fmt.Println(strings.Repeat("-", len(menu.RowHeader)))
	fmt.Println(menu.RowHeader)
	fmt.Println(strings.Repeat("-", len(menu.RowHeader)))
	for entry := range order.Traverse(strategy) {
		fmt.Println(entry.Text)
	}

	fmt.Println(strings.Repeat("*", 20))
	fmt.Println("ORDER IN INSERTION ORDER:")
	for entry := range order.Traverse(menu.InsertionOrder) {
		fmt.Println(entry.Text)
	}

	fmt.Println()
	if err := receipt.Render(os.Stdout, order, discount); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}

	log.Info("bill_calculated", fmt.Sprintf("Bill total %.2f", order.CalculateBill()))
	return nil
}
