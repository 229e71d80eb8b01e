package controller

// categoryOptions is the closed category → sub-category mapping the client
// renders its dropdowns from. It is enforced server-side too: an unknown
// pair is a validation error.
var categoryOptions = map[string][]string{
	"Electronics": {"Mobiles", "Laptops", "Accessories"},
	"Vehicles":    {"Cars", "Bikes", "Parts"},
	"Property":    {"Houses", "Flats", "Plots"},
}

func ValidCategoryPair(category, subCategory string) bool {
	subs, ok := categoryOptions[category]
	if !ok {
		return false
	}
	for _, s := range subs {
		if s == subCategory {
			return true
		}
	}
	return false
}
