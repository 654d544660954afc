package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// RaylibInput samples the live window.
type RaylibInput struct{}

func (RaylibInput) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }
func (RaylibInput) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }
func (RaylibInput) IsKeyPressed(key int32) bool { return rl.IsKeyPressed(key) }
func (RaylibInput) FrameTime() float32 { return rl.GetFrameTime() }

// Frozen wraps an Input and reports no mouse or key activity. Used while
// the debug panel owns the cursor.
type Frozen struct {
	Input
}

func (Frozen) MouseDelta() rl.Vector2 { return rl.Vector2{} }
func (Frozen) IsKeyDown(key int32) bool { return false }
func (Frozen) IsKeyPressed(key int32) bool { return false }
