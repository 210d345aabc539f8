package menu

type InMemoryRepository struct {
	items []Item
	byID  map[string]int
}

// NewInMemoryRepository keeps its own copy of items in the given order.
func NewInMemoryRepository(items []Item) *InMemoryRepository {
	r := &InMemoryRepository{
		items: make([]Item, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(r.items, items)
	for i, item := range r.items {
		r.byID[item.ID] = i
	}
	return r
}

func (r *InMemoryRepository) List() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

func (r *InMemoryRepository) FindByID(id string) (Item, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Item{}, false
	}
	return r.items[i], true
}
