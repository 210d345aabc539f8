package menu

// Item is a catalog entry. Items are defined once at startup and never
// mutated; prices are whole currency units.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
}
