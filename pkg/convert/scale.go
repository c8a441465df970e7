package convert

// midX is the normalized input the skew curve is anchored at.
const midX float32 = 0.5

// ScaleCurve is an optional rational warp of the normalized space:
//
//	f(v) = v / (v + a*(v-1))
//
// The factor a is derived once from (min, max, mid) so that f(0.5) lands on
// the normalized position of mid. A curve without a factor is the identity.
type ScaleCurve struct {
	factor float32
	skewed bool
}

// LinearCurve returns the identity curve.
func LinearCurve() ScaleCurve {
	return ScaleCurve{}
}

// NewScaleCurve derives the warp factor for a curve through mid.
// mid must lie strictly between min and max; otherwise the factor is Inf or
// NaN and so is every value scaled with it.
func NewScaleCurve(min, max, mid float32) ScaleCurve {
	return ScaleCurve{factor: skewFactor(min, max, mid), skewed: true}
}

// skewFactor solves f(x) = y for a with x = 0.5 and y the normalized mid.
func skewFactor(min, max, mid float32) float32 {
	y := (mid - min) / (max - min)
	x := midX
	t := -y * (x - 1) / (x - float32(2*x*y) + y)
	return 1 - 1/t
}

// Factor returns the warp factor and whether the curve has one.
func (c ScaleCurve) Factor() (float32, bool) {
	return c.factor, c.skewed
}

// Skewed reports whether the curve warps its input.
func (c ScaleCurve) Skewed() bool { return c.skewed }

// ScaleUp warps a linear normalized value into skewed space.
func (c ScaleCurve) ScaleUp(v float32) float32 {
	if !c.skewed {
		return v
	}
	return v / (v + float32(c.factor*(v-1)))
}

// ScaleDown is the inverse of ScaleUp. v of exactly 0 or 1 divides by zero.
func (c ScaleCurve) ScaleDown(v float32) float32 {
	if !c.skewed {
		return v
	}
	return -1 / ((1/v-1)/c.factor - 1)
}
