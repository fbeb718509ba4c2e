package physics

import "math"

// Vector3 is a plain 3D vector value.
type Vector3 struct{ X, Y, Z float64 }

// Gravity is the default acceleration applied to lattice particles.
var Gravity = Vector3{Y: -9.81}

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(o Vector3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Magnitude() float64      { return math.Sqrt(v.Dot(v)) }
func (v Vector3) AddScaled(o Vector3, s float64) Vector3 {
	return Vector3{v.X + o.X*s, v.Y + o.Y*s, v.Z + o.Z*s}
}

// Distance computes Euclidean distance between two points.
func Distance(a, b Vector3) float64 { return b.Sub(a).Magnitude() }
