package category

import (
	"log/slog"
	"strings"

	"github.com/liwesley02/order-up/internal/model"
)

// ItemData carries the structured hints the extractor may supply for an
// item. All fields are optional; the cascade fills what is missing.
type ItemData struct {
	ProteinType string
	Sauce       string
	Modifiers   []string
}

// Config holds configuration options for the manager.
type Config struct {
	// CacheSize bounds the classification cache.
	CacheSize int
	// IntegratedModifierDefault decides how an unrecognized modifier is
	// treated: as part of the parent dish (true) or as a separate item
	// (false). Integrated is the long-standing bias; flipping it changes
	// how novel add-ons group in the kitchen view.
	IntegratedModifierDefault bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CacheSize:                 DefaultCacheSize,
		IntegratedModifierDefault: true,
	}
}

// Manager classifies items into {topCategory, protein, sauce}. The same
// inputs always produce the same result: items are re-classified on
// every extraction cycle and must never drift between runs.
type Manager struct {
	cache             *Cache
	integratedDefault bool
}

// New creates a manager with default configuration.
func New() *Manager {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a manager with custom configuration.
func NewWithConfig(cfg Config) *Manager {
	return &Manager{
		cache:             NewCache(cfg.CacheSize),
		integratedDefault: cfg.IntegratedModifierDefault,
	}
}

// Categorize resolves the full classification for an item. Malformed
// input degrades to the other/other result with a log line; it never
// fails.
func (m *Manager) Categorize(name, size string, data ItemData) model.CategoryInfo {
	name = strings.TrimSpace(name)
	if name == "" {
		slog.Warn("categorize called with empty item name")
		return m.otherResult(data.Modifiers)
	}

	key := Key(name, size, data.Modifiers)
	if cached, ok := m.cache.Get(key); ok {
		return cached
	}

	lowered := strings.ToLower(name)

	top := matchTopCategory(lowered)
	sub := m.resolveSubCategory(lowered, top, data)
	sauce := m.resolveSauce(lowered, top, data)

	info := model.CategoryInfo{
		TopCategory:     top,
		TopCategoryName: model.TopCategoryName(top),
		SubCategory:     sub,
		SubCategoryName: model.SubCategoryName(sub),
		Sauce:           sauce,
		DisplayCategory: displayCategory(top, sub, sauce),
	}
	if len(data.Modifiers) > 0 {
		info.Modifiers = make([]string, len(data.Modifiers))
		copy(info.Modifiers, data.Modifiers)
	}

	m.cache.Put(key, info)
	return info
}

// resolveSubCategory determines the protein group, conditioned on the
// top category. Bowls honor a caller-supplied protein before scanning
// the name; non-bowl categories run a reduced version of the same scan.
func (m *Manager) resolveSubCategory(lowered string, top model.TopCategory, data ItemData) model.SubCategory {
	isBowl := top == model.TopCategoryRiceBowls || top == model.TopCategoryUrbanBowls

	if isBowl && data.ProteinType != "" {
		if sub := matchProtein(strings.ToLower(data.ProteinType)); sub != model.SubCategoryGeneral {
			return sub
		}
	}

	return matchProtein(lowered)
}

// resolveSauce determines the sauce: explicit input first, then the
// ordered phrase scan, then the bowl default.
func (m *Manager) resolveSauce(lowered string, top model.TopCategory, data ItemData) string {
	if sauce := strings.TrimSpace(data.Sauce); sauce != "" {
		return sauce
	}

	if sauce := matchSauce(lowered); sauce != "" {
		return sauce
	}

	if top == model.TopCategoryRiceBowls || top == model.TopCategoryUrbanBowls {
		return DefaultBowlSauce
	}
	return ""
}

// displayCategory composes "Top > Sub > Sauce", omitting the sub name
// when it is the generic placeholder.
func displayCategory(top model.TopCategory, sub model.SubCategory, sauce string) string {
	display := model.TopCategoryName(top)
	if sub != model.SubCategoryGeneral && sub != model.SubCategoryOther {
		display += " > " + model.SubCategoryName(sub)
	}
	if sauce != "" {
		display += " > " + sauce
	}
	return display
}

func (m *Manager) otherResult(modifiers []string) model.CategoryInfo {
	info := model.CategoryInfo{
		TopCategory:     model.TopCategoryOther,
		TopCategoryName: model.TopCategoryName(model.TopCategoryOther),
		SubCategory:     model.SubCategoryOther,
		SubCategoryName: "Other",
		DisplayCategory: model.TopCategoryName(model.TopCategoryOther),
	}
	if len(modifiers) > 0 {
		info.Modifiers = make([]string, len(modifiers))
		copy(info.Modifiers, modifiers)
	}
	return info
}

// integratedModifierMarkers are modifier fragments known to be part of
// the parent dish rather than separate line items.
var integratedModifierMarkers = []string{
	"sauce", "rice", "substitution", "dumpling", "steamed", "fried",
	"small", "medium", "large", "regular", "spicy", "mild",
	"no ", "extra ", "light ",
}

// separateModifierMarkers are modifier fragments that indicate a
// standalone add-on.
var separateModifierMarkers = []string{
	"side of", "add on", "add-on",
}

// IsIntegratedModifier reports whether a modifier folds into the parent
// item's identity. Unrecognized modifiers fall back to the configured
// default, which historically treats them as integrated.
func (m *Manager) IsIntegratedModifier(modifier string) bool {
	lowered := strings.ToLower(strings.TrimSpace(modifier))
	if lowered == "" {
		return true
	}

	for _, marker := range separateModifierMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}
	for _, marker := range integratedModifierMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return m.integratedDefault
}

// CacheLen exposes the number of memoized classifications.
func (m *Manager) CacheLen() int {
	return m.cache.Len()
}
