package config

import (
	"sort"
	"strings"

	"github.com/theirongolddev/creditsim/internal/export"
	"github.com/theirongolddev/creditsim/internal/model"
)

// DefaultPresets maps preset names to built-in band tables.
var DefaultPresets = map[string][]model.Band{
	"example": export.ExampleBands(),
	"flat-2pct": {
		{Lower: 0, Pct: 0.02, MinPayment: 25},
	},
	"flat-3pct": {
		{Lower: 0, Pct: 0.03, MinPayment: 35},
	},
	"interest-only": {
		{Lower: 0, Pct: 0.02, MinPayment: 0},
	},
	"payoff": {
		{Lower: 0, Pct: 1, MinPayment: 0},
	},
}

// NormalizePresetName lowercases a preset name and turns spaces and
// underscores into dashes, so "Flat 2pct" finds "flat-2pct".
func NormalizePresetName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// LookupPreset returns the band table for name. User presets from the
// config file take precedence over the built-in ones.
func LookupPreset(name string, user map[string][]model.Band) ([]model.Band, bool) {
	key := NormalizePresetName(name)
	for k, bands := range user {
		if NormalizePresetName(k) == key {
			return bands, true
		}
	}
	bands, ok := DefaultPresets[key]
	return bands, ok
}

// PresetNames lists built-in and user presets, sorted.
func PresetNames(user map[string][]model.Band) []string {
	seen := make(map[string]bool)
	var names []string
	for k := range DefaultPresets {
		seen[k] = true
		names = append(names, k)
	}
	for k := range user {
		k = NormalizePresetName(k)
		if !seen[k] {
			seen[k] = true
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}
