package convert

// Range is an immutable min/max pair with its span precomputed.
// An inverted range (max < min) only changes how Clamp orders its bounds;
// Up and Down use the same formula either way.
type Range struct {
	min      float32
	max      float32
	span     float32
	spanInv  float32
	inverted bool
}

// NewRange creates a range. min must differ from max.
func NewRange(min, max float32) Range {
	span := max - min
	return Range{
		min:      min,
		max:      max,
		span:     span,
		spanInv:  1 / span,
		inverted: max < min,
	}
}

// Min returns the physical value at normalized 0.
func (r Range) Min() float32 { return r.min }

// Max returns the physical value at normalized 1.
func (r Range) Max() float32 { return r.max }

// Span returns max - min. It is negative for inverted ranges.
func (r Range) Span() float32 { return r.span }

// SpanInv returns 1 / (max - min).
func (r Range) SpanInv() float32 { return r.spanInv }

// Inverted reports whether max < min.
func (r Range) Inverted() bool { return r.inverted }

// Clamp limits v to the range, whichever way round it is configured.
func (r Range) Clamp(v float32) float32 {
	if r.inverted {
		return clamp(v, r.max, r.min)
	}
	return clamp(v, r.min, r.max)
}

// Up maps a normalized value into physical space.
func (r Range) Up(norm float32) float32 {
	// explicit conversion keeps the multiply from fusing into the add
	return float32(norm*r.span) + r.min
}

// Down maps a physical value into normalized space.
func (r Range) Down(phys float32) float32 {
	return (phys - r.min) * r.spanInv
}

// clamp passes NaN through unchanged.
func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
