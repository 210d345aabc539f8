package menu

// DefaultItems returns the canteen's static catalog.
func DefaultItems() []Item {
	return []Item{
		// Breakfast
		{ID: "1", Name: "Masala Dosa", Price: 50, Category: CategoryBreakfast, Image: "🌮", Description: "Crispy dosa with potato filling", Available: true},
		{ID: "2", Name: "Idli Sambar", Price: 40, Category: CategoryBreakfast, Image: "🍚", Description: "Steamed rice cakes with sambar", Available: true},
		{ID: "3", Name: "Poha", Price: 30, Category: CategoryBreakfast, Image: "🍛", Description: "Flattened rice with spices", Available: true},

		// Lunch
		{ID: "4", Name: "Thali", Price: 80, Category: CategoryLunch, Image: "🍱", Description: "Complete meal with rice, dal, sabzi", Available: true},
		{ID: "5", Name: "Biryani", Price: 100, Category: CategoryLunch, Image: "🍚", Description: "Aromatic rice with vegetables", Available: true},
		{ID: "6", Name: "Chole Bhature", Price: 70, Category: CategoryLunch, Image: "🫓", Description: "Chickpea curry with fried bread", Available: true},

		// Snacks
		{ID: "7", Name: "Samosa", Price: 20, Category: CategorySnacks, Image: "🥟", Description: "Crispy pastry with potato filling", Available: true},
		{ID: "8", Name: "Sandwich", Price: 40, Category: CategorySnacks, Image: "🥪", Description: "Grilled vegetable sandwich", Available: true},
		{ID: "9", Name: "French Fries", Price: 50, Category: CategorySnacks, Image: "🍟", Description: "Crispy golden fries", Available: true},

		// Beverages
		{ID: "10", Name: "Masala Chai", Price: 15, Category: CategoryBeverages, Image: "☕", Description: "Hot spiced tea", Available: true},
		{ID: "11", Name: "Coffee", Price: 20, Category: CategoryBeverages, Image: "☕", Description: "Fresh brewed coffee", Available: true},
		{ID: "12", Name: "Cold Coffee", Price: 50, Category: CategoryBeverages, Image: "🥤", Description: "Chilled coffee shake", Available: true},
		{ID: "13", Name: "Fresh Juice", Price: 40, Category: CategoryBeverages, Image: "🧃", Description: "Seasonal fruit juice", Available: true},

		// Desserts
		{ID: "14", Name: "Gulab Jamun", Price: 30, Category: CategoryDesserts, Image: "🍡", Description: "Sweet milk dumplings", Available: true},
		{ID: "15", Name: "Ice Cream", Price: 40, Category: CategoryDesserts, Image: "🍨", Description: "Various flavors available", Available: true},
	}
}
