package world

import (
	"unsafe"

	"parkour/internal/physics"
	"parkour/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	GridSlices  = 300
	GridSpacing = 1.0
)

// Signboard material slots 1..5 show levels 1..5.
const (
	firstLevelMaterial = 1
	lastLevelMaterial  = player.LevelCount
)

type Renderer struct {
	ShowColliders bool

	// Culled counts debug boxes skipped by the frustum test last frame.
	Culled int
}

func NewRenderer(showColliders bool) *Renderer {
	return &Renderer{ShowColliders: showColliders}
}

// LevelColor is the signboard colour for a level state.
func LevelColor(s player.LevelState) rl.Color {
	switch s {
	case player.LevelCurrent:
		return rl.Yellow
	case player.LevelComplete:
		return rl.Green
	default:
		return rl.Gray
	}
}

// ApplySignboardColors tints the level slots of the signboard model.
func ApplySignboardColors(signboard rl.Model, levels [player.LevelCount]player.LevelState) {
	if signboard.MaterialCount == 0 || signboard.Materials == nil {
		return
	}
	materials := unsafe.Slice(signboard.Materials, signboard.MaterialCount)
	for i := firstLevelMaterial; i <= lastLevelMaterial && i < len(materials); i++ {
		if materials[i].Maps == nil {
			continue
		}
		materials[i].Maps.Color = LevelColor(levels[i-1])
	}
}

// Draw renders the 3D scene for w. Must be called between BeginDrawing and
// EndDrawing.
func (r *Renderer) Draw(w *World, aspect float32) {
	rl.BeginMode3D(w.Camera)

	r.drawLobby(w)
	rl.DrawModel(w.Level.Model, rl.Vector3{}, 1, rl.White)

	if r.ShowColliders {
		r.drawColliders(w.Camera, w.Colliders(), aspect)
	}

	rl.EndMode3D()
}

func (r *Renderer) drawLobby(w *World) {
	center := w.Platform.Center()
	size := w.Platform.Size()
	rl.DrawCube(center, size.X, size.Y, size.Z, rl.Gray)
	rl.DrawGrid(GridSlices, GridSpacing)

	ApplySignboardColors(w.Signboard, w.Player.Levels)
	rl.DrawModel(w.Signboard, rl.Vector3{}, 1, rl.White)
}

func (r *Renderer) drawColliders(cam rl.Camera3D, c Colliders, aspect float32) {
	frustum := ExtractFrustum(cam, aspect)
	r.Culled = 0

	draw := func(box physics.AABB, color rl.Color) {
		if !frustum.ContainsBox(box) {
			r.Culled++
			return
		}
		rl.DrawBoundingBox(box.BoundingBox(), color)
	}

	draw(c.Signboard, rl.Gold)
	draw(c.Platform, rl.Green)
	for _, box := range c.Level {
		draw(box, rl.Gold)
	}
}
