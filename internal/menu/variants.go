package menu

// Category tags an item with its menu section.
type Category string

const (
	Appetizer  Category = "appetizer"
	MainCourse Category = "main_course"
	Beverage   Category = "beverage"
	Dessert    Category = "dessert"
)

// traitMultiplier returns the fixed multiplier a category applies to the
// price, exactly once at construction, when its trait is set. Shared
// appetizers and seasonal desserts are discounted; meat mains and sugary
// beverages carry a surcharge.
func traitMultiplier(c Category) float64 {
	switch c {
	case Appetizer, Dessert:
		return 0.95
	case MainCourse, Beverage:
		return 1.05
	}
	return 1
}

func newVariant(name string, price float64, quantity int, c Category, size string, trait bool) (*Item, error) {
	item, err := NewItem(name, price, quantity)
	if err != nil {
		return nil, err
	}
	item.Category = c
	item.Size = size
	item.Trait = trait
	if trait {
		item.AdjustPrice(traitMultiplier(c))
	}
	return item, nil
}

// NewAppetizer builds an appetizer. Plates meant for sharing are 5% off.
func NewAppetizer(name string, price float64, quantity int, forSharing bool) (*Item, error) {
	return newVariant(name, price, quantity, Appetizer, "", forSharing)
}

// NewMainCourse builds a main course. Meat dishes cost 5% more.
func NewMainCourse(name string, price float64, quantity int, isMeat bool) (*Item, error) {
	return newVariant(name, price, quantity, MainCourse, "", isMeat)
}

// NewBeverage builds a beverage of the given size. Sugary drinks cost 5%
// more; the size is descriptive only and does not affect the price.
func NewBeverage(name string, price float64, quantity int, size string, hasSugar bool) (*Item, error) {
	return newVariant(name, price, quantity, Beverage, size, hasSugar)
}

// NewDessert builds a dessert. In-season desserts are 5% off.
func NewDessert(name string, price float64, quantity int, onSeason bool) (*Item, error) {
	return newVariant(name, price, quantity, Dessert, "", onSeason)
}
