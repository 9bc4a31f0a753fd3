package biost

import "github.com/go-gl/mathgl/mgl32"

// Vec3 converts v to a mathgl vector.
func (v Vector3d) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func Vector3dFromVec3(m mgl32.Vec3) Vector3d {
	return NewVector3d(m.X(), m.Y(), m.Z())
}
