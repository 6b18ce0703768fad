// Package category classifies items into the top-category/protein/sauce
// hierarchy using an ordered rule cascade.
package category

import (
	"strings"

	"github.com/liwesley02/order-up/internal/model"
)

// topRule pairs a predicate with the top category it resolves to. Rules
// are evaluated strictly in order; the order encodes real disambiguation
// policy (desserts before bao, bowls before everything) and must not be
// rearranged.
type topRule struct {
	matches func(string) bool
	name    string
	result  model.TopCategory
}

// topRules is the top-category cascade. Predicates receive the lowercased
// item name.
var topRules = []topRule{
	{
		name:   "rice bowl",
		result: model.TopCategoryRiceBowls,
		matches: func(name string) bool {
			if strings.Contains(name, "rice bowl") || strings.Contains(name, "ricebowl") {
				return true
			}
			// "rice" + "bowl" also counts, but an urban bowl with a rice
			// substitution in its name is not a rice bowl.
			return strings.Contains(name, "rice") &&
				strings.Contains(name, "bowl") &&
				!strings.Contains(name, "urban bowl")
		},
	},
	{
		name:   "urban bowl",
		result: model.TopCategoryUrbanBowls,
		matches: func(name string) bool {
			return strings.Contains(name, "urban bowl") || strings.Contains(name, "urbanbowl")
		},
	},
	{
		name:   "fried rice",
		result: model.TopCategoryFriedRice,
		matches: func(name string) bool {
			return strings.Contains(name, "fried rice")
		},
	},
	{
		name:   "noodles",
		result: model.TopCategoryNoodles,
		matches: func(name string) bool {
			return strings.Contains(name, "noodle") ||
				strings.Contains(name, "ramen") ||
				strings.Contains(name, "udon") ||
				strings.Contains(name, "lo mein")
		},
	},
	{
		name:   "dumplings",
		result: model.TopCategoryDumplings,
		matches: func(name string) bool {
			return strings.Contains(name, "dumpling") || strings.Contains(name, "potsticker")
		},
	},
	{
		// Checked before bao so a "Bao-Nut" never lands in the bao bucket.
		name:   "desserts",
		result: model.TopCategoryDesserts,
		matches: func(name string) bool {
			return strings.Contains(name, "bao-nut") ||
				strings.Contains(name, "baonut") ||
				strings.Contains(name, "ice cream") ||
				strings.Contains(name, "sundae") ||
				strings.Contains(name, "mochi") ||
				strings.Contains(name, "cheesecake")
		},
	},
	{
		// Requires a standalone "bao" token; "bao out" branding and
		// bao-nut variants are explicitly not bao.
		name:   "bao",
		result: model.TopCategoryBao,
		matches: func(name string) bool {
			if !containsToken(name, "bao") {
				return false
			}
			return !strings.Contains(name, "bao out") &&
				!strings.Contains(name, "bao-nut") &&
				!strings.Contains(name, "baonut")
		},
	},
	{
		name:   "appetizers",
		result: model.TopCategoryAppetizers,
		matches: func(name string) bool {
			return strings.Contains(name, "egg roll") ||
				strings.Contains(name, "spring roll") ||
				strings.Contains(name, "edamame") ||
				strings.Contains(name, "wonton") ||
				strings.Contains(name, "crab rangoon") ||
				strings.Contains(name, "side of")
		},
	},
	{
		name:   "drinks",
		result: model.TopCategoryDrinks,
		matches: func(name string) bool {
			return containsToken(name, "tea") ||
				strings.Contains(name, "lemonade") ||
				strings.Contains(name, "soda") ||
				strings.Contains(name, "boba") ||
				strings.Contains(name, "water") ||
				strings.Contains(name, "drink")
		},
	},
}

// proteinRule pairs a predicate with the protein group it resolves to.
// Order matters: compound checks ("grilled" + "chicken") run before the
// bare keyword so "Grilled Orange Chicken" resolves to grilled chicken.
type proteinRule struct {
	matches func(string) bool
	result  model.SubCategory
}

var proteinRules = []proteinRule{
	{
		result:  model.SubCategoryPorkBelly,
		matches: func(name string) bool { return strings.Contains(name, "pork belly") },
	},
	{
		result: model.SubCategoryGrilledChicken,
		matches: func(name string) bool {
			return strings.Contains(name, "grilled") && strings.Contains(name, "chicken")
		},
	},
	{
		// Crispy is the default chicken preparation, so any remaining
		// chicken resolves here.
		result:  model.SubCategoryCrispyChicken,
		matches: func(name string) bool { return strings.Contains(name, "chicken") },
	},
	{
		result: model.SubCategorySteak,
		matches: func(name string) bool {
			return strings.Contains(name, "steak") || strings.Contains(name, "beef")
		},
	},
	{
		result:  model.SubCategorySalmon,
		matches: func(name string) bool { return strings.Contains(name, "salmon") },
	},
	{
		result:  model.SubCategoryShrimp,
		matches: func(name string) bool { return strings.Contains(name, "shrimp") },
	},
	{
		result:  model.SubCategoryFish,
		matches: func(name string) bool { return strings.Contains(name, "fish") },
	},
	{
		result:  model.SubCategoryTofu,
		matches: func(name string) bool { return strings.Contains(name, "tofu") },
	},
	{
		result:  model.SubCategoryCauliflower,
		matches: func(name string) bool { return strings.Contains(name, "cauliflower") },
	},
}

// saucePhrase maps a recognized sauce phrase to its display name. The
// list is ordered most-specific first wherever one phrase contains
// another ("spicy orange" before "orange").
type saucePhrase struct {
	phrase  string
	display string
}

var saucePhrases = []saucePhrase{
	{"spicy orange", "Spicy Orange"},
	{"orange", "Orange"},
	{"honey garlic", "Honey Garlic"},
	{"garlic aioli", "Garlic Aioli"},
	{"sweet sriracha", "Sweet Sriracha"},
	{"sriracha", "Sriracha"},
	{"black pepper", "Black Pepper"},
	{"sweet chili", "Sweet Chili"},
	{"chili crisp", "Chili Crisp"},
	{"coconut curry", "Coconut Curry"},
	{"general tso", "General Tso"},
	{"kung pao", "Kung Pao"},
	{"mongolian", "Mongolian"},
	{"teriyaki", "Teriyaki"},
	{"sesame", "Sesame"},
}

// DefaultBowlSauce is assigned to bowls with no recognized sauce.
const DefaultBowlSauce = "Original"

// containsToken reports whether name contains word bounded by
// non-letters, so "bao" matches "Pork Bao" and "Bao-Nut" but not
// "baobab".
func containsToken(name, word string) bool {
	idx := strings.Index(name, word)
	for idx >= 0 {
		before := idx == 0 || !isLetter(name[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx == len(name) || !isLetter(name[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(name[idx+1:], word)
		if next < 0 {
			break
		}
		idx = idx + 1 + next
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// matchTopCategory runs the top-category cascade over a lowercased name.
func matchTopCategory(lowered string) model.TopCategory {
	for _, rule := range topRules {
		if rule.matches(lowered) {
			return rule.result
		}
	}
	return model.TopCategoryOther
}

// matchProtein runs the protein cascade over a lowercased name. It
// returns SubCategoryGeneral when no protein keyword is present.
func matchProtein(lowered string) model.SubCategory {
	for _, rule := range proteinRules {
		if rule.matches(lowered) {
			return rule.result
		}
	}
	return model.SubCategoryGeneral
}

// matchSauce scans the ordered sauce list against a lowercased name and
// returns the display name of the first match, or "".
func matchSauce(lowered string) string {
	for _, sp := range saucePhrases {
		if strings.Contains(lowered, sp.phrase) {
			return sp.display
		}
	}
	return ""
}
