package physics

// Bound is a closed interval [Min, Max] on one axis
type Bound struct {
	Min, Max float32
}

// Contains reports whether x lies inside the closed interval
func (b Bound) Contains(x float32) bool {
	return x >= b.Min && x <= b.Max
}

// Clamp limits x to the interval
func (b Bound) Clamp(x float32) float32 {
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}
	return x
}
