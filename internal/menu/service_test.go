package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewInMemoryRepository(DefaultItems()))
}

func TestListByTab_All(t *testing.T) {
	s := newTestService()

	items, err := s.ListByTab(TabAll)
	require.NoError(t, err)
	assert.Len(t, items, 15)

	items, err = s.ListByTab("")
	require.NoError(t, err)
	assert.Len(t, items, 15)
}

func TestListByTab_Category(t *testing.T) {
	s := newTestService()

	tests := []struct {
		tab  string
		want []string
	}{
		{"breakfast", []string{"Masala Dosa", "Idli Sambar", "Poha"}},
		{"lunch", []string{"Thali", "Biryani", "Chole Bhature"}},
		{"snacks", []string{"Samosa", "Sandwich", "French Fries"}},
		{"beverages", []string{"Masala Chai", "Coffee", "Cold Coffee", "Fresh Juice"}},
		{"desserts", []string{"Gulab Jamun", "Ice Cream"}},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			items, err := s.ListByTab(tt.tab)
			require.NoError(t, err)

			var names []string
			for _, item := range items {
				names = append(names, item.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestListByTab_Unknown(t *testing.T) {
	_, err := newTestService().ListByTab("dinner")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestGet(t *testing.T) {
	s := newTestService()

	item, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Masala Dosa", item.Name)
	assert.Equal(t, int64(50), item.Price)

	_, err = s.Get("99")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRepositoryIsolatesCallers(t *testing.T) {
	repo := NewInMemoryRepository(DefaultItems())

	items := repo.List()
	items[0].Price = 1

	item, ok := repo.FindByID(items[0].ID)
	require.True(t, ok)
	assert.Equal(t, int64(50), item.Price)
}

func TestTabsOrder(t *testing.T) {
	tabs := newTestService().Tabs()
	require.Len(t, tabs, 6)
	assert.Equal(t, Tab{Value: "all", Label: "All Items"}, tabs[0])
	assert.Equal(t, "desserts", tabs[5].Value)
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range DefaultItems() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NoError(t, ValidateTab(string(item.Category)))
	}
}
