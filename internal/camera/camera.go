package camera

import (
	"math"

	"parkour/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultJumpSpeed float32 = 0.25
	DefaultGravity   float32 = 0.5
)

// Diagonal movement scales each axis by 1/sqrt(2).
var diagonalFactor = float32(1 / math.Sqrt(2))

// Input is the per-frame view of mouse and keyboard state.
type Input interface {
	MouseDelta() rl.Vector2
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
	FrameTime() float32
}

// MoveFunc moves and reorients a camera. Movement is (forward, right, up),
// rotation is (yaw, pitch, roll).
type MoveFunc func(cam *rl.Camera3D, movement, rotation rl.Vector3, zoom float32)

// Controller turns input into first person camera motion with gravity.
type Controller struct {
	Input     Input
	Move      MoveFunc
	JumpSpeed float32
	Gravity   float32
}

func New(input Input) *Controller {
	return &Controller{
		Input:     input,
		Move:      rl.UpdateCameraPro,
		JumpSpeed: DefaultJumpSpeed,
		Gravity:   DefaultGravity,
	}
}

// NewCamera builds a perspective camera at the player's position.
func NewCamera(p *player.Player, target rl.Vector3) rl.Camera3D {
	return rl.Camera3D{
		Position:   p.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       p.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Update applies one frame of look, walk, jump and gravity to cam and
// mirrors the result into p. Ground state is whatever the probes left
// from before this call.
func (c *Controller) Update(p *player.Player, cam *rl.Camera3D) {
	rotation := c.Rotation(p)
	movement := c.Movement(p)

	if c.Input.IsKeyPressed(rl.KeySpace) && p.OnGround {
		p.VerticalSpeed = c.JumpSpeed
		p.OnGround = false
	}

	if !p.OnGround {
		p.VerticalSpeed -= c.Gravity * c.Input.FrameTime()
	}
	movement.Z = p.VerticalSpeed

	c.Move(cam, movement, rotation, 0)
	p.SyncFromCamera(cam)
}

// Rotation converts the mouse delta into a yaw/pitch delta.
func (c *Controller) Rotation(p *player.Player) rl.Vector3 {
	delta := c.Input.MouseDelta()
	return rl.Vector3{
		X: delta.X * p.Sensitivity * rl.Deg2rad,
		Y: delta.Y * p.Sensitivity * rl.Deg2rad,
	}
}

// Movement returns the horizontal (forward, right) step for this frame.
func (c *Controller) Movement(p *player.Player) rl.Vector3 {
	in := c.Input
	strafe := (in.IsKeyDown(rl.KeyW) || in.IsKeyDown(rl.KeyS)) &&
		(in.IsKeyDown(rl.KeyD) || in.IsKeyDown(rl.KeyA))

	step := p.Speed
	if strafe {
		step *= diagonalFactor
	}

	var movement rl.Vector3
	if in.IsKeyDown(rl.KeyW) {
		movement.X += step
	}
	if in.IsKeyDown(rl.KeyS) {
		movement.X -= step
	}
	if in.IsKeyDown(rl.KeyD) {
		movement.Y += step
	}
	if in.IsKeyDown(rl.KeyA) {
		movement.Y -= step
	}
	return movement
}
