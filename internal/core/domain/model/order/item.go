package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// ItemType is the enumerated category of goods an order carries.
// The category is informational for matching purposes but must be one
// of the known values; free-form item descriptions are rejected.
type ItemType int

const (
	// ItemUnknown represents an invalid or undefined item type.
	ItemUnknown ItemType = iota

	ItemElectronics
	ItemBooks
	ItemDocuments
	ItemFood
	ItemClothing
)

// getItemTypeStrings returns a map of ItemType values to their string representations.
func getItemTypeStrings() map[ItemType]string {
	return map[ItemType]string{
		ItemUnknown:     "Unknown",
		ItemElectronics: "Electronics",
		ItemBooks:       "Books",
		ItemDocuments:   "Documents",
		ItemFood:        "Food",
		ItemClothing:    "Clothing",
	}
}

// getValidItemTypeStrings returns a map of only valid ItemType values.
func getValidItemTypeStrings() map[ItemType]string {
	//nolint:exhaustive // ItemUnknown is intentionally excluded as it's invalid
	return map[ItemType]string{
		ItemElectronics: "Electronics",
		ItemBooks:       "Books",
		ItemDocuments:   "Documents",
		ItemFood:        "Food",
		ItemClothing:    "Clothing",
	}
}

// Validate checks if the ItemType value is one of the known categories.
func (i ItemType) Validate() error {
	if _, ok := getValidItemTypeStrings()[i]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("item is invalid", fmt.Errorf("%d is not a valid item type", i))
	}
	return nil
}

// String returns the human-readable name of the item type.
func (i ItemType) String() string {
	if str, ok := getItemTypeStrings()[i]; ok {
		return str
	}
	return "Unknown"
}

// ItemTypeFromString parses an item category name into an ItemType value.
// Matching is case-insensitive to be forgiving of API input.
func ItemTypeFromString(value string) (ItemType, error) {
	for itemType, str := range getValidItemTypeStrings() {
		if strings.EqualFold(str, value) {
			return itemType, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item is invalid",
		fmt.Errorf("%q is not a valid item type", value),
	)
}
