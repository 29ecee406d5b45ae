package strategy

import "sort"

// Preset bundles the gate configuration and actionability threshold for one
// signal mode. Presets are read-only lookup values.
type Preset struct {
	Name               string
	MinActionableScore int
	VolMultiplier      float64
	RequireVolume      bool
	RequireMACDTurn    bool
	RequireVWAPEvent   bool
	RequireRSIEvent    bool
}

// DefaultPreset is used when a preset name is unknown.
const DefaultPreset = "Cleaner signals"

var presets = map[string]Preset{
	"Fast scalp": {
		Name:               "Fast scalp",
		MinActionableScore: 70,
		VolMultiplier:      1.15,
		RequireVolume:      false,
		RequireMACDTurn:    true,
		RequireVWAPEvent:   true,
		RequireRSIEvent:    true,
	},
	"Cleaner signals": {
		Name:               "Cleaner signals",
		MinActionableScore: 80,
		VolMultiplier:      1.35,
		RequireVolume:      true,
		RequireMACDTurn:    true,
		RequireVWAPEvent:   true,
		RequireRSIEvent:    true,
	},
}

// PresetByName looks up a preset, falling back to DefaultPreset for unknown
// names.
func PresetByName(name string) Preset {
	if p, ok := presets[name]; ok {
		return p
	}
	return presets[DefaultPreset]
}

// HasPreset reports whether the name is registered.
func HasPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// PresetNames returns the registered preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
