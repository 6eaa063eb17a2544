package effect

import "math"

// Params describes one effect in a chain.
type Params struct {
	ID   string             `yaml:"id,omitempty"`
	Type string             `yaml:"type"`
	Num  map[string]float64 `yaml:"params,omitempty"`
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// Has reports whether key carries a finite value.
func (p Params) Has(key string) bool {
	v, ok := p.Num[key]
	return ok && !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p Params) label() string {
	if p.ID != "" {
		return p.ID
	}
	return p.Type
}
