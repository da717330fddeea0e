package config

import "sort"

// Presets are named curve requests. "standard" reproduces harmonic.Standard
// with the legacy search policy.
var Presets = map[string]CurveConfig{
	"standard": {Wobbles: 4, Overshoot: 0.2},
	"reverse":  {Wobbles: 4, Overshoot: 0.2, Reverse: true},
	"default":  {Wobbles: DefaultWobbles, Overshoot: DefaultOvershoot},
	"shrink":   {Wobbles: 0, Overshoot: 0.999},
	"expand":   {Wobbles: 2, Overshoot: 0.3},
	"gentle":   {Wobbles: 1, Overshoot: 0.1},
	"bouncy":   {Wobbles: 6, Overshoot: 0.5},
}

func GetPreset(name string) *CurveConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
