package config

var Presets = map[string]*Config{
	"wave": {
		Name: "wave", Boundary: "natural",
		Points:  [][]float64{{0}, {1}, {0}, {-1}},
		Samples: 120,
	},
	"ramp": {
		Name: "ramp", Boundary: "clamped",
		Points:       [][]float64{{0}, {0.5}, {2}, {3}},
		StartTangent: []float64{0},
		EndTangent:   []float64{1},
		Samples:      120,
		Margin:       1,
	},
	"loop": {
		Name: "loop", Boundary: "periodic",
		Points:  [][]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		Samples: 160,
	},
	"sbend": {
		Name: "sbend", Boundary: "clamped",
		Points:       [][]float64{{0, 0}, {1, 2}, {3, 2}, {4, 4}},
		StartTangent: []float64{1, 0},
		EndTangent:   []float64{1, 0},
		Samples:      160,
	},
	"zigzag": {
		Name: "zigzag", Boundary: "natural",
		Points:    [][]float64{{0}, {2}, {-2}, {2}, {-2}, {0}},
		Arguments: []float64{0, 1, 2, 3, 4, 5},
		Samples:   200,
		Margin:    0.5,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names in map order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
