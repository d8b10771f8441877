package gamemath

// Vec3 is a minimal 3-component vector. Z carries draw-order bias for
// objects placed above tile layers.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Transform is a translation plus a non-uniform scale. Rotation is not
// modeled; neither the compiler nor the reconciler needs it.
type Transform struct {
	Translation Vec3
	Scale       Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: Vec3{X: 1, Y: 1, Z: 1}}
}
