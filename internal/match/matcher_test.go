package match

import (
	"testing"

	"github.com/liwesley02/order-up/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMatcher_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		matcher *Matcher
		input   string
		want    string
	}{
		{
			name:    "trims and lowercases",
			matcher: New(),
			input:   "  Pork Belly Urban Bowl  ",
			want:    "pork belly urban bowl",
		},
		{
			name:    "collapses internal whitespace",
			matcher: New(),
			input:   "Crispy   Chicken\tBao",
			want:    "crispy chicken bao",
		},
		{
			name:    "empty input stays empty",
			matcher: New(),
			input:   "   ",
			want:    "",
		},
		{
			name:    "case sensitive config preserves case",
			matcher: NewWithConfig(Config{CaseSensitive: true}),
			input:   " Steak Rice Bowl ",
			want:    "Steak Rice Bowl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Normalize(tt.input))
		})
	}
}

func TestMatcher_ExtractModifiers(t *testing.T) {
	matcher := New()

	tests := []struct {
		name     string
		input    string
		wantBase string
		wantMods []string
	}{
		{
			name:     "trailing parenthetical with two modifiers",
			input:    "Steak Rice Bowl (Extra Sauce, No Onions)",
			wantBase: "Steak Rice Bowl",
			wantMods: []string{"Extra Sauce", "No Onions"},
		},
		{
			name:     "no parenthetical",
			input:    "Pork Belly Bao",
			wantBase: "Pork Belly Bao",
			wantMods: nil,
		},
		{
			name:     "empty parenthetical",
			input:    "Edamame ()",
			wantBase: "Edamame",
			wantMods: nil,
		},
		{
			name:     "single modifier",
			input:    "Chicken Dumplings (Steamed)",
			wantBase: "Chicken Dumplings",
			wantMods: []string{"Steamed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, mods := matcher.ExtractModifiers(tt.input)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantMods, mods)
		})
	}
}

func TestMatcher_ExtractSize(t *testing.T) {
	matcher := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "size in parenthetical",
			input: "Orange Chicken Bowl (Large)",
			want:  "large",
		},
		{
			name:  "compound size with substitution",
			input: "Steak Fried Rice (Large - White Rice)",
			want:  "large",
		},
		{
			name:  "no size",
			input: "Pork Belly Bao",
			want:  "",
		},
		{
			name:  "size word inside another word does not match",
			input: "Smallish Snack (Regularly)",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.ExtractSize(tt.input))
		})
	}
}

func TestMatcher_AreItemsIdentical(t *testing.T) {
	matcher := New()

	tests := []struct {
		name string
		a    model.Item
		b    model.Item
		want bool
	}{
		{
			name: "same base name different modifier order",
			a:    model.Item{Name: "Steak Rice Bowl", Modifiers: []string{"Extra Sauce", "No Onions"}},
			b:    model.Item{Name: "Steak Rice Bowl", Modifiers: []string{"No Onions", "Extra Sauce"}},
			want: true,
		},
		{
			name: "case differences in modifiers",
			a:    model.Item{Name: "steak rice bowl", Modifiers: []string{"extra sauce"}},
			b:    model.Item{Name: "Steak Rice Bowl", Modifiers: []string{"Extra Sauce"}},
			want: true,
		},
		{
			name: "different base names",
			a:    model.Item{Name: "Steak Rice Bowl"},
			b:    model.Item{Name: "Salmon Rice Bowl"},
			want: false,
		},
		{
			name: "different modifier sets",
			a:    model.Item{Name: "Steak Rice Bowl", Modifiers: []string{"Extra Sauce"}},
			b:    model.Item{Name: "Steak Rice Bowl", Modifiers: []string{"No Onions"}},
			want: false,
		},
		{
			name: "parenthetical modifiers count toward the set",
			a:    model.Item{Name: "Steak Rice Bowl (Extra Sauce)"},
			b:    model.Item{Name: "Steak Rice Bowl", Modifiers: []string{"Extra Sauce"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.AreItemsIdentical(tt.a, tt.b))
		})
	}
}

func TestMatcher_GenerateItemKey(t *testing.T) {
	matcher := New()

	tests := []struct {
		name             string
		itemName         string
		size             string
		category         string
		riceSubstitution string
		want             string
	}{
		{
			name:     "explicit size and category",
			itemName: "Orange Chicken Rice Bowl",
			size:     "Large",
			category: "riceBowls",
			want:     "large|ricebowls|orange chicken rice bowl",
		},
		{
			name:     "falls back to no-size",
			itemName: "Pork Belly Bao",
			want:     "no-size|pork belly bao",
		},
		{
			name:     "modifiers sorted into the key",
			itemName: "Steak Rice Bowl (No Onions, Extra Sauce)",
			size:     "Medium",
			want:     "medium|steak rice bowl|extra sauce|no onions",
		},
		{
			name:             "urban bowl keys on rice substitution",
			itemName:         "Pork Belly Urban Bowl",
			size:             "Medium",
			riceSubstitution: "Garlic Butter Fried Rice",
			want:             "garlic butter fried rice|pork belly urban bowl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.GenerateItemKey(tt.itemName, tt.size, tt.category, tt.riceSubstitution)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatcher_GenerateItemKey_ModifierOrderInsensitive(t *testing.T) {
	matcher := New()

	keyA := matcher.GenerateItemKey("Steak Rice Bowl (Extra Sauce, No Onions)", "large", "riceBowls", "")
	keyB := matcher.GenerateItemKey("Steak Rice Bowl (No Onions, Extra Sauce)", "LARGE", "RiceBowls", "")

	assert.Equal(t, keyA, keyB)
}

func TestMatcher_GenerateItemKey_EmbeddedFriedRiceSize(t *testing.T) {
	matcher := New()

	// A size embedded in the name must stay part of the identity so the
	// two spellings never merge.
	embedded := matcher.GenerateItemKey("Large - Fried Rice", "", "", "")
	sized := matcher.GenerateItemKey("Fried Rice", "large", "", "")

	assert.NotEqual(t, embedded, sized)
	assert.Contains(t, embedded, "large - fried rice")
}

func TestMatcher_GenerateItemKey_DistinctDumplingFillings(t *testing.T) {
	matcher := New()

	chicken := matcher.GenerateItemKey("Urban Bowl - Chicken Dumplings", "", "", "White Rice")
	pork := matcher.GenerateItemKey("Urban Bowl - Pork Dumplings", "", "", "White Rice")

	assert.NotEqual(t, chicken, pork)
}
