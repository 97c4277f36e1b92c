package chart

import "math"

// Point3 represents a point in 3D model space.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the sum of two 3D points (vector addition).
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two 3D points (vector subtraction).
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// RotateX rotates the point around the X axis.
func (p Point3) RotateX(angle float64) Point3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point3{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// RotateY rotates the point around the Y axis.
func (p Point3) RotateY(angle float64) Point3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point3{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// RotateZ rotates the point around the Z axis.
func (p Point3) RotateZ(angle float64) Point3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point3{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
		Z: p.Z,
	}
}
