package world

import (
	"math"
	"testing"

	"parkour/internal/camera"
	"parkour/internal/config"
	"parkour/internal/physics"
	"parkour/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type idleInput struct {
	down map[int32]bool
}

func (idleInput) MouseDelta() rl.Vector2 { return rl.Vector2{} }
func (i idleInput) IsKeyDown(key int32) bool { return i.down[key] }
func (idleInput) IsKeyPressed(key int32) bool { return false }
func (idleInput) FrameTime() float32 { return 1.0 / 60.0 }

// axisMove treats forward as +X, right as +Z and up as +Y.
func axisMove(cam *rl.Camera3D, movement, rotation rl.Vector3, zoom float32) {
	step := rl.Vector3{X: movement.X, Y: movement.Z, Z: movement.Y}
	cam.Position = rl.Vector3Add(cam.Position, step)
	cam.Target = rl.Vector3Add(cam.Target, step)
}

func newTestController(keys ...int32) *camera.Controller {
	in := idleInput{down: map[int32]bool{}}
	for _, k := range keys {
		in.down[k] = true
	}
	c := camera.New(in)
	c.Move = axisMove
	return c
}

func newTestPlayer(pos rl.Vector3) (*player.Player, rl.Camera3D) {
	p := player.New(pos)
	return p, camera.NewCamera(p, rl.Vector3Add(pos, rl.Vector3{X: 10}))
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

var farSignboard = physics.AABB{
	Min: rl.Vector3{X: -2, Y: 0, Z: 50},
	Max: rl.Vector3{X: 2, Y: 3, Z: 51},
}

func TestProbeGroundOnPlatformTop(t *testing.T) {
	p, _ := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	p.OnGround = false

	foot := p.FootBox()
	if !approxEqual(foot.Min.Y, -0.1) || foot.Max.Y != 0 {
		t.Fatalf("Expected foot probe y=[-0.1,0], got [%f,%f]", foot.Min.Y, foot.Max.Y)
	}

	ProbeGround(p, Platform)

	if !p.OnGround {
		t.Error("Expected player standing on the platform to be grounded")
	}
}

func TestProbeGroundIsSticky(t *testing.T) {
	p, _ := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	p.OnGround = false

	ProbeGround(p, Platform)
	ProbeGround(p, farSignboard)

	if !p.OnGround {
		t.Error("Expected a later miss not to clear ground contact")
	}
}

func TestProbeGroundIgnoresSideWalls(t *testing.T) {
	// Wall face flush with the player's side, spanning the foot height.
	wall := physics.AABB{
		Min: rl.Vector3{X: 0.5, Y: -5, Z: -5},
		Max: rl.Vector3{X: 5, Y: 5, Z: 5},
	}
	p, _ := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	p.OnGround = false

	ProbeGround(p, wall)

	if p.OnGround {
		t.Error("Expected inset foot probe to miss a flush side wall")
	}
}

func TestResolveCollisionLeavesSeparatedCameraAlone(t *testing.T) {
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	before := cam

	push := ResolveCollision(p, &cam, farSignboard)

	if push != (rl.Vector3{}) {
		t.Errorf("Expected no push, got %v", push)
	}
	if cam.Position != before.Position || cam.Target != before.Target {
		t.Errorf("Expected camera unchanged, got position %v target %v", cam.Position, cam.Target)
	}
}

func TestResolveCollisionPushesPositionAndTarget(t *testing.T) {
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	static := physics.AABB{
		Min: rl.Vector3{X: 0.4, Y: -10, Z: -10},
		Max: rl.Vector3{X: 20, Y: 10, Z: 10},
	}

	push := ResolveCollision(p, &cam, static)

	if !approxEqual(push.X, -0.1) || push.Y != 0 || push.Z != 0 {
		t.Fatalf("Expected push (-0.1, 0, 0), got %v", push)
	}
	if !approxEqual(cam.Position.X, -0.1) || !approxEqual(cam.Target.X, 9.9) {
		t.Errorf("Expected position.x -0.1 and target.x 9.9, got %f and %f", cam.Position.X, cam.Target.X)
	}
	if cam.Position.Y != 2 || cam.Target.Y != 2 {
		t.Errorf("Expected y untouched, got position %v target %v", cam.Position, cam.Target)
	}
	if p.Position != cam.Position {
		t.Errorf("Expected player synced to camera, got %v vs %v", p.Position, cam.Position)
	}
}

func TestResolveLevelLiftsAndGrounds(t *testing.T) {
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 1.8, Z: 0})
	p.OnGround = false

	// The first box lifts the player onto its top and its probe sees the
	// contact. The second box is out of reach.
	boxes := []physics.AABB{
		{Min: rl.Vector3{X: -1, Y: -1, Z: -1}, Max: rl.Vector3{X: 1, Y: 0, Z: 1}},
		{Min: rl.Vector3{X: 5, Y: -1, Z: 5}, Max: rl.Vector3{X: 6, Y: 0, Z: 6}},
	}

	ResolveLevel(p, &cam, boxes)

	if !approxEqual(cam.Position.Y, 2) {
		t.Errorf("Expected player lifted to y=2, got %f", cam.Position.Y)
	}
	if !p.OnGround {
		t.Error("Expected ground probe after resolution to find the box top")
	}
}

func TestStepLandsOnPlatform(t *testing.T) {
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 5, Z: 0})
	p.OnGround = false
	ctrl := newTestController()
	c := Colliders{Platform: Platform, Signboard: farSignboard}

	lastY := cam.Position.Y
	landed := -1
	for frame := 0; frame < 120; frame++ {
		Step(p, &cam, ctrl, c)
		if landed < 0 {
			if p.OnGround {
				landed = frame
			} else if cam.Position.Y > lastY {
				t.Fatalf("Frame %d: expected monotonic fall, y went from %f to %f", frame, lastY, cam.Position.Y)
			}
		}
		lastY = cam.Position.Y
	}

	if landed < 0 {
		t.Fatal("Expected player to land on the platform")
	}
	if !approxEqual(cam.Position.Y, 2) {
		t.Errorf("Expected eye height 2 above the platform, got %f", cam.Position.Y)
	}
	if p.Position != cam.Position {
		t.Errorf("Expected player synced to camera, got %v vs %v", p.Position, cam.Position)
	}
}

func TestStepProbesGroundBeforeMoving(t *testing.T) {
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	p.OnGround = false
	p.VerticalSpeed = 0
	c := Colliders{Platform: Platform, Signboard: farSignboard}

	Step(p, &cam, newTestController(), c)

	if !p.OnGround {
		t.Error("Expected player resting on the platform to be grounded")
	}
	if p.VerticalSpeed != 0 {
		t.Errorf("Expected no gravity on a grounded frame, got vertical speed %f", p.VerticalSpeed)
	}
	if cam.Position.Y != 2 {
		t.Errorf("Expected player to stay at y=2, got %f", cam.Position.Y)
	}
}

func TestStepGroundsOneFrameAfterLanding(t *testing.T) {
	// Feet start 0.15 above the platform, outside the foot probe.
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 2.15, Z: 0})
	p.OnGround = false
	p.VerticalSpeed = -0.2
	ctrl := newTestController()
	c := Colliders{Platform: Platform, Signboard: farSignboard}

	Step(p, &cam, ctrl, c)

	if !approxEqual(cam.Position.Y, 2) {
		t.Fatalf("Expected landing to push the player to y=2, got %f", cam.Position.Y)
	}
	if p.OnGround {
		t.Error("Expected ground contact to lag until the next frame")
	}

	Step(p, &cam, ctrl, c)

	if !p.OnGround {
		t.Error("Expected next frame's probe to ground the player")
	}
}

func TestStepWalksIntoWall(t *testing.T) {
	p, cam := newTestPlayer(rl.Vector3{X: 0, Y: 2, Z: 0})
	ctrl := newTestController(rl.KeyW)
	wall := physics.AABB{
		Min: rl.Vector3{X: 3, Y: 0, Z: -5},
		Max: rl.Vector3{X: 4, Y: 4, Z: 5},
	}
	c := Colliders{Platform: Platform, Signboard: farSignboard, Level: []physics.AABB{wall}}

	for i := 0; i < 60; i++ {
		Step(p, &cam, ctrl, c)
	}

	if cam.Position.X > 2.5+1e-4 {
		t.Errorf("Expected wall to stop the player at x=2.5, got %f", cam.Position.X)
	}
	if !approxEqual(cam.Position.X, 2.5) {
		t.Errorf("Expected player pressed against the wall at x=2.5, got %f", cam.Position.X)
	}
	if !approxEqual(cam.Position.Y, 2) {
		t.Errorf("Expected player to stay on the platform, got y=%f", cam.Position.Y)
	}
}

func TestWorldRespawnsAfterFall(t *testing.T) {
	cfg := config.Default()
	w := New(cfg, zap.NewNop())
	w.Controller = newTestController()
	w.Respawn(rl.Vector3{X: 0, Y: -40, Z: 0})

	w.step(Colliders{Platform: Platform, Signboard: farSignboard})

	want := cfg.Course.Levels[0].Start.Vector3()
	if !approxEqual(w.Camera.Position.Y, want.Y) || !approxEqual(w.Camera.Position.Z, want.Z) {
		t.Errorf("Expected respawn at %v, got %v", want, w.Camera.Position)
	}
	if w.Player.VerticalSpeed != 0 {
		t.Errorf("Expected vertical speed cleared, got %f", w.Player.VerticalSpeed)
	}
	look := rl.Vector3Subtract(w.Camera.Target, w.Camera.Position)
	if !approxEqual(look.X, 10) {
		t.Errorf("Expected look direction preserved, got %v", look)
	}
}

func TestWorldEdgeFall(t *testing.T) {
	cfg := config.Default()
	cfg.Player.EdgeFall = true
	w := New(cfg, zap.NewNop())
	w.Controller = newTestController()
	w.Respawn(rl.Vector3{X: 15, Y: 2, Z: 0})
	w.Player.OnGround = true

	w.step(Colliders{Platform: Platform, Signboard: farSignboard})

	if w.Player.OnGround {
		t.Error("Expected player off the platform edge to lose ground contact")
	}
	if w.Camera.Position.Y >= 2 {
		t.Errorf("Expected player to start falling, got y=%f", w.Camera.Position.Y)
	}
}

func TestWorldWithoutEdgeFallKeepsGround(t *testing.T) {
	w := New(config.Default(), zap.NewNop())
	w.Controller = newTestController()
	w.Respawn(rl.Vector3{X: 15, Y: 2, Z: 0})
	w.Player.OnGround = true

	w.step(Colliders{Platform: Platform, Signboard: farSignboard})

	if !w.Player.OnGround || w.Camera.Position.Y != 2 {
		t.Errorf("Expected ground flag to persist past the edge, got onGround=%v y=%f", w.Player.OnGround, w.Camera.Position.Y)
	}
}
