package math

// Vec4 is a 4-component vector, mostly used for homogeneous coordinates.
type Vec4 struct {
	X, Y, Z, W float32
}

// Point returns the homogeneous form of a position (w = 1).
func Point(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Direction returns the homogeneous form of a direction (w = 0).
func Direction(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 0}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns XYZ / W. A zero W leaves XYZ unchanged.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return v.XYZ()
	}
	return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
}
