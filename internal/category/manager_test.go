package category

import (
	"testing"

	"github.com/liwesley02/order-up/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Categorize_TopCategory(t *testing.T) {
	manager := New()

	tests := []struct {
		name     string
		itemName string
		want     model.TopCategory
	}{
		{"rice bowl by phrase", "Orange Chicken Rice Bowl", model.TopCategoryRiceBowls},
		{"rice bowl no space", "Steak RiceBowl", model.TopCategoryRiceBowls},
		{"rice and bowl apart", "Bowl of Garlic Rice", model.TopCategoryRiceBowls},
		{"urban bowl", "Pork Belly Urban Bowl", model.TopCategoryUrbanBowls},
		{"urban bowl with rice in name", "Urban Bowl - Fried Rice Substitution", model.TopCategoryUrbanBowls},
		{"fried rice", "Steak Fried Rice", model.TopCategoryFriedRice},
		{"noodles", "Chicken Lo Mein", model.TopCategoryNoodles},
		{"dumplings", "Pork Dumplings (6)", model.TopCategoryDumplings},
		{"bao", "Crispy Chicken Bao", model.TopCategoryBao},
		{"bao-nut is dessert not bao", "Bao-Nut", model.TopCategoryDesserts},
		{"baonut spelling is dessert", "Cinnamon Baonut", model.TopCategoryDesserts},
		{"bao out branding is not bao", "Bao Out Combo", model.TopCategoryOther},
		{"baobab is not bao", "Baobab Smoothie", model.TopCategoryOther},
		{"appetizer", "Vegetable Egg Roll", model.TopCategoryAppetizers},
		{"drink", "Thai Iced Tea", model.TopCategoryDrinks},
		{"steak is not tea", "Grilled Steak Skewers", model.TopCategoryOther},
		{"unknown", "Mystery Special", model.TopCategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := manager.Categorize(tt.itemName, "", ItemData{})
			assert.Equal(t, tt.want, info.TopCategory)
		})
	}
}

func TestManager_Categorize_Protein(t *testing.T) {
	manager := New()

	tests := []struct {
		name     string
		itemName string
		data     ItemData
		want     model.SubCategory
	}{
		{
			name:     "pork belly before chicken",
			itemName: "Pork Belly Rice Bowl",
			want:     model.SubCategoryPorkBelly,
		},
		{
			name:     "grilled chicken conjunction beats sauce word order",
			itemName: "Grilled Orange Chicken Rice Bowl",
			want:     model.SubCategoryGrilledChicken,
		},
		{
			name:     "plain chicken resolves to crispy",
			itemName: "Orange Chicken Rice Bowl",
			want:     model.SubCategoryCrispyChicken,
		},
		{
			name:     "caller-supplied protein wins for bowls",
			itemName: "Mystery Rice Bowl",
			data:     ItemData{ProteinType: "salmon"},
			want:     model.SubCategorySalmon,
		},
		{
			name:     "steak",
			itemName: "Steak Urban Bowl",
			want:     model.SubCategorySteak,
		},
		{
			name:     "tofu",
			itemName: "Teriyaki Tofu Urban Bowl",
			want:     model.SubCategoryTofu,
		},
		{
			name:     "no protein falls back to general",
			itemName: "Garden Rice Bowl",
			want:     model.SubCategoryGeneral,
		},
		{
			name:     "protein scan applies outside bowls too",
			itemName: "Crispy Chicken Bao",
			want:     model.SubCategoryCrispyChicken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := manager.Categorize(tt.itemName, "", tt.data)
			assert.Equal(t, tt.want, info.SubCategory)
		})
	}
}

func TestManager_Categorize_Sauce(t *testing.T) {
	manager := New()

	tests := []struct {
		name     string
		itemName string
		data     ItemData
		want     string
	}{
		{
			name:     "explicit sauce input wins",
			itemName: "Orange Chicken Rice Bowl",
			data:     ItemData{Sauce: "Garlic Aioli"},
			want:     "Garlic Aioli",
		},
		{
			name:     "specific phrase beats its substring",
			itemName: "Spicy Orange Chicken Rice Bowl",
			want:     "Spicy Orange",
		},
		{
			name:     "sauce from name",
			itemName: "Kung Pao Cauliflower Urban Bowl",
			want:     "Kung Pao",
		},
		{
			name:     "bowl with no sauce defaults to Original",
			itemName: "Pork Belly Urban Bowl",
			want:     "Original",
		},
		{
			name:     "non-bowl with no sauce has none",
			itemName: "Pork Dumplings",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := manager.Categorize(tt.itemName, "", tt.data)
			assert.Equal(t, tt.want, info.Sauce)
		})
	}
}

func TestManager_Categorize_DisplayCategory(t *testing.T) {
	manager := New()

	tests := []struct {
		name     string
		itemName string
		want     string
	}{
		{
			name:     "full hierarchy",
			itemName: "Orange Chicken Rice Bowl",
			want:     "Rice Bowls > Crispy Chicken > Orange",
		},
		{
			name:     "general sub category omitted",
			itemName: "Garden Rice Bowl",
			want:     "Rice Bowls > Original",
		},
		{
			name:     "no sauce no sub",
			itemName: "Mystery Special",
			want:     "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := manager.Categorize(tt.itemName, "", ItemData{})
			assert.Equal(t, tt.want, info.DisplayCategory)
		})
	}
}

func TestManager_Categorize_EmptyNameDegrades(t *testing.T) {
	manager := New()

	info := manager.Categorize("   ", "large", ItemData{})

	assert.Equal(t, model.TopCategoryOther, info.TopCategory)
	assert.Equal(t, model.SubCategoryOther, info.SubCategory)
}

func TestManager_Categorize_Deterministic(t *testing.T) {
	manager := New()

	// First call takes the cache-miss path, second the cache-hit path;
	// both must agree structurally.
	first := manager.Categorize("Grilled Chicken Urban Bowl (Extra Sauce)", "medium",
		ItemData{Modifiers: []string{"Extra Sauce"}})
	second := manager.Categorize("Grilled Chicken Urban Bowl (Extra Sauce)", "medium",
		ItemData{Modifiers: []string{"Extra Sauce"}})

	assert.Equal(t, first, second)
	assert.Equal(t, 1, manager.CacheLen())
}

func TestManager_Categorize_CacheKeyModifierOrderInsensitive(t *testing.T) {
	manager := New()

	manager.Categorize("Steak Rice Bowl", "large", ItemData{Modifiers: []string{"A", "B"}})
	manager.Categorize("Steak Rice Bowl", "large", ItemData{Modifiers: []string{"B", "A"}})

	assert.Equal(t, 1, manager.CacheLen())
}

func TestManager_IsIntegratedModifier(t *testing.T) {
	manager := New()

	tests := []struct {
		name     string
		modifier string
		want     bool
	}{
		{"sauce modifier integrates", "Orange Sauce", true},
		{"rice substitution integrates", "Garlic Butter Fried Rice", true},
		{"side of stays separate", "Side of Egg Rolls", false},
		{"add-on stays separate", "Add-On Dumplings", false},
		{"unknown defaults to integrated", "Birthday Candle", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, manager.IsIntegratedModifier(tt.modifier))
		})
	}
}

func TestManager_IsIntegratedModifier_ConfigurableDefault(t *testing.T) {
	manager := NewWithConfig(Config{IntegratedModifierDefault: false})

	assert.False(t, manager.IsIntegratedModifier("Birthday Candle"))
	// Known markers are unaffected by the default.
	assert.True(t, manager.IsIntegratedModifier("Orange Sauce"))
	assert.False(t, manager.IsIntegratedModifier("Side of Egg Rolls"))
}

func TestCache_EvictsOldest(t *testing.T) {
	cache := NewCache(2)

	cache.Put("a", model.CategoryInfo{TopCategory: model.TopCategoryBao})
	cache.Put("b", model.CategoryInfo{TopCategory: model.TopCategoryDumplings})
	cache.Put("c", model.CategoryInfo{TopCategory: model.TopCategoryDrinks})

	_, okA := cache.Get("a")
	assert.False(t, okA, "oldest entry should be evicted")

	infoB, okB := cache.Get("b")
	require.True(t, okB)
	assert.Equal(t, model.TopCategoryDumplings, infoB.TopCategory)

	_, okC := cache.Get("c")
	assert.True(t, okC)
	assert.Equal(t, 2, cache.Len())
}

func TestCache_PutExistingKeyUpdatesInPlace(t *testing.T) {
	cache := NewCache(2)

	cache.Put("a", model.CategoryInfo{TopCategory: model.TopCategoryBao})
	cache.Put("a", model.CategoryInfo{TopCategory: model.TopCategoryDrinks})

	info, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, model.TopCategoryDrinks, info.TopCategory)
	assert.Equal(t, 1, cache.Len())
}
