// Package match builds canonical, order-independent identities for line
// items so that semantically identical items merge across orders.
package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/liwesley02/order-up/internal/model"
)

// NoSize is the key component used when an item carries no size at all.
const NoSize = "no-size"

// keySeparator joins the components of a canonical item key.
const keySeparator = "|"

// sizeTokens are the explicit size words recognized in parentheticals and
// modifiers. Longer tokens are listed first so "extra large" never matches
// as "large".
var sizeTokens = []string{"extra large", "small", "medium", "large", "regular"}

var (
	trailingParenRe = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)\s*$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Config holds configuration options for the matcher.
type Config struct {
	// CaseSensitive disables lowercasing during normalization. Off by
	// default: feeds routinely change the casing of the same item between
	// extractions.
	CaseSensitive bool
}

// Matcher normalizes raw item text and generates canonical aggregation
// keys. All methods are pure; malformed input degrades to best-effort
// normalization rather than an error.
type Matcher struct {
	caseSensitive bool
}

// New creates a matcher with default configuration.
func New() *Matcher {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a matcher with custom configuration.
func NewWithConfig(cfg Config) *Matcher {
	return &Matcher{caseSensitive: cfg.CaseSensitive}
}

// Normalize trims and collapses whitespace and, unless configured
// otherwise, lowercases the text. Empty input stays empty.
func (m *Matcher) Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	if !m.caseSensitive {
		text = strings.ToLower(text)
	}
	return text
}

// ExtractModifiers splits a trailing parenthetical off an item name and
// returns the base name plus the comma-separated modifiers inside it.
// Text without a trailing parenthetical comes back unchanged with no
// modifiers.
func (m *Matcher) ExtractModifiers(text string) (string, []string) {
	matches := trailingParenRe.FindStringSubmatch(strings.TrimSpace(text))
	if matches == nil {
		return strings.TrimSpace(text), nil
	}

	base := strings.TrimSpace(matches[1])
	var modifiers []string
	for _, part := range strings.Split(matches[2], ",") {
		if part = strings.TrimSpace(part); part != "" {
			modifiers = append(modifiers, part)
		}
	}
	return base, modifiers
}

// ExtractSize finds an explicit size token in an item's trailing
// parenthetical or modifier list. It returns "" when no size is present;
// callers decide whether that means NoSize.
func (m *Matcher) ExtractSize(text string) string {
	_, modifiers := m.ExtractModifiers(text)
	for _, modifier := range modifiers {
		if size := sizeToken(modifier); size != "" {
			return size
		}
	}
	return ""
}

// sizeToken returns the size word contained in text, or "".
func sizeToken(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, token := range sizeTokens {
		if lowered == token || containsWord(lowered, token) {
			return token
		}
	}
	return ""
}

// containsWord reports whether text contains token bounded by non-letters.
func containsWord(text, token string) bool {
	idx := strings.Index(text, token)
	for idx >= 0 {
		before := idx == 0 || !isLetter(text[idx-1])
		afterIdx := idx + len(token)
		after := afterIdx == len(text) || !isLetter(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], token)
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

// AreItemsIdentical reports whether two items are the same line item:
// normalized base names match and modifier sets match after independent
// normalization and sorting.
func (m *Matcher) AreItemsIdentical(a, b model.Item) bool {
	baseA, modsA := m.ExtractModifiers(a.Name)
	baseB, modsB := m.ExtractModifiers(b.Name)

	if m.Normalize(baseA) != m.Normalize(baseB) {
		return false
	}

	modsA = append(modsA, a.Modifiers...)
	modsB = append(modsB, b.Modifiers...)

	return equalModifierSets(m.normalizeAll(modsA), m.normalizeAll(modsB))
}

func (m *Matcher) normalizeAll(modifiers []string) []string {
	normalized := make([]string, 0, len(modifiers))
	for _, modifier := range modifiers {
		if n := m.Normalize(modifier); n != "" {
			normalized = append(normalized, n)
		}
	}
	sort.Strings(normalized)
	return normalized
}

func equalModifierSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// GenerateItemKey builds the canonical aggregation key for an item. Two
// items with the same semantic content (protein, size, sauce or
// substitution, category) always produce the same key, irrespective of
// modifier ordering or case.
//
// Special cases:
//   - fried rice items can carry a size embedded in the name itself
//     ("Large - Fried Rice"); the embedded size stays part of the base
//     name so the item never merges with a plain "Fried Rice" sized via
//     its size field.
//   - urban bowls key on their rice substitution instead of a size,
//     because the substitution is what distinguishes them in the kitchen.
func (m *Matcher) GenerateItemKey(name, size, category, riceSubstitution string) string {
	base, modifiers := m.ExtractModifiers(name)
	lowered := strings.ToLower(base)

	// Resolve the size component: explicit parameter first, then a size
	// found in the item text, then the no-size sentinel.
	resolved := strings.TrimSpace(size)
	if resolved == "" {
		resolved = m.ExtractSize(name)
	}
	if resolved == "" {
		resolved = NoSize
	}

	isFriedRice := strings.Contains(lowered, "fried rice")
	if isFriedRice && embeddedSize(lowered) != "" {
		// The size lives inside the name; keep the base intact and do not
		// let an extracted token double as the key's size component.
		resolved = NoSize
		if strings.TrimSpace(size) != "" {
			resolved = strings.TrimSpace(size)
		}
	}

	isUrbanBowl := strings.Contains(lowered, "urban bowl")
	if isUrbanBowl && strings.TrimSpace(riceSubstitution) != "" {
		resolved = riceSubstitution
	}

	components := []string{m.Normalize(resolved)}
	if category = strings.TrimSpace(category); category != "" {
		components = append(components, m.Normalize(category))
	}
	components = append(components, m.Normalize(base))
	if normalized := m.normalizeAll(modifiers); len(normalized) > 0 {
		components = append(components, normalized...)
	}

	return strings.Join(components, keySeparator)
}

// ItemKey builds the canonical key for a model item. Urban bowls append
// their dumpling choice to the keying name so distinct fillings never
// merge, and key on their rice substitution instead of a size.
func (m *Matcher) ItemKey(item *model.Item, category string) string {
	name := item.Name
	if (item.IsUrbanBowl || strings.Contains(strings.ToLower(item.Name), "urban bowl")) &&
		item.ModifierDetails.DumplingChoice != "" {
		name += " - " + item.ModifierDetails.DumplingChoice
	}
	return m.GenerateItemKey(name, item.Size, category, item.ModifierDetails.RiceSubstitution)
}

// embeddedSize returns the size token embedded in a lowercased base name
// (e.g. the "large" in "large - fried rice"), or "".
func embeddedSize(lowered string) string {
	for _, token := range sizeTokens {
		if containsWord(lowered, token) {
			return token
		}
	}
	return ""
}
