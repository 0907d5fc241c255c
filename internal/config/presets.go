package config

import "sort"

func demoCircles() []CircleConfig {
	return []CircleConfig{
		{X: 97, Y: 178, R: 5},
		{X: 217, Y: 128, R: 36.87817782917155},
		{X: 90, Y: 88, R: 48.16637831516918},
		{X: 168, Y: 164, R: 5.0990195135927845},
		{X: 238, Y: 190, R: 5},
		{X: 169, Y: 76, R: 14.866068747318506},
		{X: 207, Y: 224, R: 12.727922061357855},
		{X: 144, Y: 200, R: 20},
		{X: 161, Y: 132, R: 8.48528137423857},
		{X: 85, Y: 155, R: 13.038404810405298},
		{X: 286, Y: 125, R: 5},
		{X: 264, Y: 234, R: 22.67156809750927},
		{X: 280, Y: 162, R: 9.219544457292887},
		{X: 316, Y: 159, R: 17.804493814764857},
		{X: 338, Y: 222, R: 33.015148038438355},
	}
}

// Presets are seed scenes; each is applied over DefaultConfig.
var Presets = map[string][]CircleConfig{
	"demo":   demoCircles(),
	"single": {{X: 100, Y: 100, R: 10}},
	"pair":   {{X: 0, Y: 0, R: 5}, {X: 1000, Y: 1000, R: 5}},
	"ring": {
		{X: 640, Y: 200, R: 30}, {X: 840, Y: 360, R: 30}, {X: 640, Y: 520, R: 30},
		{X: 440, Y: 360, R: 30}, {X: 640, Y: 360, R: 60},
	},
	"empty": {},
}

// GetPreset returns a fresh default config seeded with the named preset,
// or nil.
func GetPreset(name string) *Config {
	circles, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Circles = append([]CircleConfig(nil), circles...)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
