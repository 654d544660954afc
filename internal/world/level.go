package world

import (
	"unsafe"

	"parkour/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

// Level is a level model made of independent meshes, one collider each.
type Level struct {
	Model rl.Model
}

func (l Level) Meshes() []rl.Mesh {
	if l.Model.MeshCount == 0 || l.Model.Meshes == nil {
		return nil
	}
	return unsafe.Slice(l.Model.Meshes, l.Model.MeshCount)
}

// MeshBoxes derives one box per mesh, in mesh order. Boxes are recomputed
// on every call.
func (l Level) MeshBoxes() []physics.AABB {
	return lo.Map(l.Meshes(), func(mesh rl.Mesh, _ int) physics.AABB {
		return physics.FromBoundingBox(rl.GetMeshBoundingBox(mesh))
	})
}
