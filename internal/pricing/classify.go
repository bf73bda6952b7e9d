package pricing

import (
	"strings"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
)

// FullPrefix marks a full-size empanada in a legacy item name.
const FullPrefix = "Full"

// Classify maps a legacy item name to a category. It is the only place
// that reads meaning out of item names.
//
// The rules, in order:
//   - a name starting with "Full" is a full-size empanada;
//   - a name containing "salsa" is a small or large salsa when it also
//     contains "small" or "large", and unclassified otherwise;
//   - anything else is a mini empanada.
//
// Matching is case-sensitive. The boolean is false when the name was not
// positively recognised: an unsized salsa, or a mini that never says
// "mini". Callers should surface those as warnings; the category is still
// the one the order is charged by.
func Classify(name string) (domain.Category, bool) {
	if strings.HasPrefix(name, FullPrefix) {
		return domain.CategoryFull, true
	}
	if strings.Contains(name, "salsa") {
		switch {
		case strings.Contains(name, "small"):
			return domain.CategorySalsaSmall, true
		case strings.Contains(name, "large"):
			return domain.CategorySalsaLarge, true
		default:
			return domain.CategoryUnclassified, false
		}
	}
	return domain.CategoryMini, strings.Contains(strings.ToLower(name), "mini")
}

// CategoryOf returns the category an item is priced by: its explicit
// category when set, otherwise the result of Classify on its name.
func CategoryOf(item domain.LineItem) (domain.Category, bool) {
	if item.Category != domain.CategoryFromName {
		return item.Category, item.Category != domain.CategoryUnclassified
	}
	return Classify(item.Name)
}
