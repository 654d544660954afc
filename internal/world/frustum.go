package world

import (
	"parkour/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	frustumNear float32 = 0.1
	frustumFar  float32 = 1000.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the view frustum of camera for the given aspect
// ratio (Gribb/Hartmann plane extraction).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}

	// VP = P * V
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		f.planes[i*2] = planeFromRow(rows[3], rows[i], 1)
		f.planes[i*2+1] = planeFromRow(rows[3], rows[i], -1)
	}
	return f
}

// planeFromRow combines the w row with sign times another clip row.
func planeFromRow(w, row [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: w[0] + sign*row[0],
			Y: w[1] + sign*row[1],
			Z: w[2] + sign*row[2],
		},
		distance: w[3] + sign*row[3],
	})
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsBox reports whether any part of box may be visible. For each
// plane it tests the box corner furthest along the plane normal.
func (f *Frustum) ContainsBox(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].normal
		corner := box.Min
		if n.X >= 0 {
			corner.X = box.Max.X
		}
		if n.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if n.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, corner)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
