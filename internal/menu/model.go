package menu

// Category is one of the canteen's fixed menu sections.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategorySnacks    Category = "snacks"
	CategoryBeverages Category = "beverages"
	CategoryDesserts  Category = "desserts"
)

// TabAll is the pseudo category that shows every item.
const TabAll = "all"

// Tab is a category tab of the menu page, in display order.
type Tab struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Tabs = []Tab{
	{Value: TabAll, Label: "All Items"},
	{Value: string(CategoryBreakfast), Label: "Breakfast"},
	{Value: string(CategoryLunch), Label: "Lunch"},
	{Value: string(CategorySnacks), Label: "Snacks"},
	{Value: string(CategoryBeverages), Label: "Beverages"},
	{Value: string(CategoryDesserts), Label: "Desserts"},
}
