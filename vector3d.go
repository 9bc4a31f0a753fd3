package biost

import "fmt"

// Vector3d is a point or displacement in three dimensional space.
type Vector3d struct {
	X float32
	Y float32
	Z float32
}

// NewVector3d returns a vector with the given coordinates.
func NewVector3d(x, y, z float32) Vector3d {
	return Vector3d{
		X: x,
		Y: y,
		Z: z,
	}
}

// ZeroVector3d returns the vector at the origin.
func ZeroVector3d() Vector3d {
	return NewVector3d(0.0, 0.0, 0.0)
}

func NewVector3dFromArray(a [3]float32) Vector3d {
	return NewVector3d(a[0], a[1], a[2])
}

func (v Vector3d) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vector3d) Add(other Vector3d) Vector3d {
	return NewVector3d(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

func (v *Vector3d) AddInPlace(other Vector3d) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

func (v Vector3d) Sub(other Vector3d) Vector3d {
	return NewVector3d(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

func (v *Vector3d) SubInPlace(other Vector3d) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// mult by scalar
func (v Vector3d) Mul(scalar float32) Vector3d {
	return NewVector3d(v.X*scalar, v.Y*scalar, v.Z*scalar)
}

func (v *Vector3d) MulInPlace(scalar float32) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// Div divides each component by scalar. A zero or NaN scalar gives
// Inf or NaN components; it is not an error.
func (v Vector3d) Div(scalar float32) Vector3d {
	return NewVector3d(v.X/scalar, v.Y/scalar, v.Z/scalar)
}

func (v *Vector3d) DivInPlace(scalar float32) {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
}

func (v Vector3d) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
