package model

// TopCategory identifies a dish family at the top of the classification
// hierarchy.
type TopCategory string

// Top-level dish families, from most to least specific detection priority.
const (
	TopCategoryRiceBowls  TopCategory = "riceBowls"
	TopCategoryUrbanBowls TopCategory = "urbanBowls"
	TopCategoryFriedRice  TopCategory = "friedRice"
	TopCategoryNoodles    TopCategory = "noodles"
	TopCategoryDumplings  TopCategory = "dumplings"
	TopCategoryDesserts   TopCategory = "desserts"
	TopCategoryBao        TopCategory = "bao"
	TopCategoryAppetizers TopCategory = "appetizers"
	TopCategoryDrinks     TopCategory = "drinks"
	TopCategoryOther      TopCategory = "other"
)

// SubCategory identifies the protein or type group below a top category.
type SubCategory string

// Protein and type groups.
const (
	SubCategoryPorkBelly      SubCategory = "porkBelly"
	SubCategoryGrilledChicken SubCategory = "grilledChicken"
	SubCategoryCrispyChicken  SubCategory = "crispyChicken"
	SubCategorySteak          SubCategory = "steak"
	SubCategorySalmon         SubCategory = "salmon"
	SubCategoryShrimp         SubCategory = "shrimp"
	SubCategoryFish           SubCategory = "fish"
	SubCategoryTofu           SubCategory = "tofu"
	SubCategoryCauliflower    SubCategory = "cauliflower"
	SubCategoryGeneral        SubCategory = "general"
	SubCategoryOther          SubCategory = "other"
)

// CategoryInfo is the fully resolved classification for one item. It is a
// deterministic pure function of (name, size, modifier signature) and is
// safe to cache.
type CategoryInfo struct {
	TopCategory     TopCategory `json:"topCategory"`
	TopCategoryName string      `json:"topCategoryName"`
	SubCategory     SubCategory `json:"subCategory"`
	SubCategoryName string      `json:"subCategoryName"`
	Sauce           string      `json:"sauce,omitempty"`
	DisplayCategory string      `json:"displayCategory"`
	Modifiers       []string    `json:"modifiers,omitempty"`
}

// Clone returns a copy of the category info with its own modifier slice.
func (c *CategoryInfo) Clone() CategoryInfo {
	clone := *c
	if c.Modifiers != nil {
		clone.Modifiers = make([]string, len(c.Modifiers))
		copy(clone.Modifiers, c.Modifiers)
	}
	return clone
}

// TopCategoryDef describes a top-level category for display purposes:
// classification itself is the ordered cascade in internal/category, not a
// table lookup.
type TopCategoryDef struct {
	ID           TopCategory
	Name         string
	DisplayOrder int
}

// SubCategoryDef describes a protein/type group and the keywords used as a
// display and ordering aid.
type SubCategoryDef struct {
	ID       SubCategory
	Name     string
	Keywords []string
}

// TopCategories lists all top-level dish families in display order.
var TopCategories = []TopCategoryDef{
	{ID: TopCategoryRiceBowls, Name: "Rice Bowls", DisplayOrder: 1},
	{ID: TopCategoryUrbanBowls, Name: "Urban Bowls", DisplayOrder: 2},
	{ID: TopCategoryFriedRice, Name: "Fried Rice", DisplayOrder: 3},
	{ID: TopCategoryNoodles, Name: "Noodles", DisplayOrder: 4},
	{ID: TopCategoryDumplings, Name: "Dumplings", DisplayOrder: 5},
	{ID: TopCategoryBao, Name: "Bao", DisplayOrder: 6},
	{ID: TopCategoryAppetizers, Name: "Appetizers", DisplayOrder: 7},
	{ID: TopCategoryDesserts, Name: "Desserts", DisplayOrder: 8},
	{ID: TopCategoryDrinks, Name: "Drinks", DisplayOrder: 9},
	{ID: TopCategoryOther, Name: "Other", DisplayOrder: 10},
}

// SubCategories lists all protein/type groups with their keywords.
var SubCategories = []SubCategoryDef{
	{ID: SubCategoryPorkBelly, Name: "Pork Belly", Keywords: []string{"pork belly"}},
	{ID: SubCategoryGrilledChicken, Name: "Grilled Chicken", Keywords: []string{"grilled", "chicken"}},
	{ID: SubCategoryCrispyChicken, Name: "Crispy Chicken", Keywords: []string{"crispy", "chicken"}},
	{ID: SubCategorySteak, Name: "Steak", Keywords: []string{"steak", "beef"}},
	{ID: SubCategorySalmon, Name: "Salmon", Keywords: []string{"salmon"}},
	{ID: SubCategoryShrimp, Name: "Shrimp", Keywords: []string{"shrimp"}},
	{ID: SubCategoryFish, Name: "Fish", Keywords: []string{"fish"}},
	{ID: SubCategoryTofu, Name: "Tofu", Keywords: []string{"tofu"}},
	{ID: SubCategoryCauliflower, Name: "Cauliflower", Keywords: []string{"cauliflower"}},
	{ID: SubCategoryGeneral, Name: "General", Keywords: nil},
}

// TopCategoryName returns the display name for a top category ID.
func TopCategoryName(id TopCategory) string {
	for _, def := range TopCategories {
		if def.ID == id {
			return def.Name
		}
	}
	return "Other"
}

// SubCategoryName returns the display name for a sub category ID.
func SubCategoryName(id SubCategory) string {
	for _, def := range SubCategories {
		if def.ID == id {
			return def.Name
		}
	}
	return "Other"
}
