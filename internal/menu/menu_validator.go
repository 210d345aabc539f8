package menu

import "errors"

var ErrUnknownCategory = errors.New("unknown menu category")

var allowedTabs = map[string]bool{
	TabAll:                    true,
	string(CategoryBreakfast): true,
	string(CategoryLunch):     true,
	string(CategorySnacks):    true,
	string(CategoryBeverages): true,
	string(CategoryDesserts):  true,
}

// ValidateTab accepts the empty string as the default "all" tab.
func ValidateTab(tab string) error {
	if tab == "" {
		return nil
	}
	if !allowedTabs[tab] {
		return ErrUnknownCategory
	}
	return nil
}
