package menu

// Repository defines read access to the catalog.
// Service depends ONLY on this interface.
type Repository interface {
	List() []Item
	FindByID(id string) (Item, bool)
}
