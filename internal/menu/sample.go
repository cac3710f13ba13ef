package menu

// SampleOrder builds the ten-item demonstration order used by the CLI:
// three appetizers, two main courses, three beverages and two desserts,
// with a mix of trait flags so every category multiplier shows up in the
// bill.
func SampleOrder() (*Order, error) {
	build := []func() (*Item, error){
		func() (*Item, error) { return NewAppetizer("Nachos", 5.50, 2, true) },
		func() (*Item, error) { return NewAppetizer("Spring Rolls", 4.00, 3, false) },
		func() (*Item, error) { return NewMainCourse("Steak", 15.00, 1, true) },
		func() (*Item, error) { return NewMainCourse("Vegetarian Pasta", 12.00, 2, false) },
		func() (*Item, error) { return NewBeverage("Coca Cola", 2.50, 2, "Medium", true) },
		func() (*Item, error) { return NewBeverage("Orange Juice", 3.00, 1, "Large", false) },
		func() (*Item, error) { return NewDessert("Cheesecake", 6.00, 1, true) },
		func() (*Item, error) { return NewDessert("Chocolate Cake", 5.50, 1, false) },
		func() (*Item, error) { return NewAppetizer("Garlic Bread", 3.50, 1, true) },
		func() (*Item, error) { return NewBeverage("Latte", 4.00, 1, "Small", false) },
	}

	order := NewOrder()
	for _, b := range build {
		item, err := b()
		if err != nil {
			return nil, err
		}
		order.AddItem(item)
	}
	return order, nil
}
