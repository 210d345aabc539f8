package menu

import "errors"

var ErrItemNotFound = errors.New("menu item not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// List items of one tab ("all" or a category)
// --------------------------------------------------
func (s *Service) ListByTab(tab string) ([]Item, error) {
	if err := ValidateTab(tab); err != nil {
		return nil, err
	}

	all := s.repo.List()
	if tab == "" || tab == TabAll {
		return all, nil
	}

	items := make([]Item, 0, len(all))
	for _, item := range all {
		if string(item.Category) == tab {
			items = append(items, item)
		}
	}
	return items, nil
}

// --------------------------------------------------
// Single item lookup (add-to-cart, item card)
// --------------------------------------------------
func (s *Service) Get(id string) (Item, error) {
	item, ok := s.repo.FindByID(id)
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

func (s *Service) Tabs() []Tab {
	out := make([]Tab, len(Tabs))
	copy(out, Tabs)
	return out
}
