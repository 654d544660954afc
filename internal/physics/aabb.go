package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// Face identifies which side of a static box the player is pushed out through.
type Face int

const (
	FaceNone Face = iota
	FaceLeft
	FaceRight
	FaceFront
	FaceBack
	FaceBelow
	FaceAbove
)

func (f Face) String() string {
	switch f {
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceBelow:
		return "below"
	case FaceAbove:
		return "above"
	default:
		return "none"
	}
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func FromBoundingBox(b rl.BoundingBox) AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

func (a AABB) BoundingBox() rl.BoundingBox {
	return rl.BoundingBox{Min: a.Min, Max: a.Max}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Intersects treats touching faces as overlapping.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Penetration is one candidate push-out through a face of the static box.
type Penetration struct {
	Face  Face
	Depth float32
}

// Vector returns the push-out translation for this candidate.
func (p Penetration) Vector() rl.Vector3 {
	switch p.Face {
	case FaceLeft:
		return rl.Vector3{X: p.Depth}
	case FaceRight:
		return rl.Vector3{X: -p.Depth}
	case FaceFront:
		return rl.Vector3{Z: p.Depth}
	case FaceBack:
		return rl.Vector3{Z: -p.Depth}
	case FaceBelow:
		return rl.Vector3{Y: p.Depth}
	case FaceAbove:
		return rl.Vector3{Y: -p.Depth}
	}
	return rl.Vector3Zero()
}

// Penetrations lists the six candidate depths of 'a' into 'b' in
// tie-break order: left, right, front, back, below, above.
func (a AABB) Penetrations(b AABB) [6]Penetration {
	return [6]Penetration{
		{FaceLeft, b.Max.X - a.Min.X},
		{FaceRight, a.Max.X - b.Min.X},
		{FaceFront, b.Max.Z - a.Min.Z},
		{FaceBack, a.Max.Z - b.Min.Z},
		{FaceBelow, b.Max.Y - a.Min.Y},
		{FaceAbove, a.Max.Y - b.Min.Y},
	}
}

// MinPenetration picks the shallowest non-negative candidate. An earlier
// face wins a tie. Returns FaceNone if the boxes don't overlap.
func (a AABB) MinPenetration(b AABB) Penetration {
	if !a.Intersects(b) {
		return Penetration{}
	}

	best := Penetration{Depth: math.MaxFloat32}
	for _, p := range a.Penetrations(b) {
		if p.Depth >= 0 && p.Depth < best.Depth {
			best = p
		}
	}
	if best.Face == FaceNone {
		return Penetration{}
	}
	return best
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	return a.MinPenetration(b).Vector()
}
