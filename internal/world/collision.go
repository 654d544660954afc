package world

import (
	"parkour/internal/camera"
	"parkour/internal/physics"
	"parkour/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Colliders are the static boxes checked every frame.
type Colliders struct {
	Platform  physics.AABB
	Signboard physics.AABB
	Level     []physics.AABB
}

// ProbeGround marks p grounded if its foot probe touches box. It never
// clears the flag.
func ProbeGround(p *player.Player, box physics.AABB) {
	p.OnGround = p.FootBox().Intersects(box) || p.OnGround
}

// ResolveCollision pushes cam out of box along the shallowest face and
// moves the look target by the same amount. p is synced to the camera
// either way. Returns the applied push.
func ResolveCollision(p *player.Player, cam *rl.Camera3D, box physics.AABB) rl.Vector3 {
	push := p.BodyBox().Resolve(box)
	if push != (rl.Vector3{}) {
		cam.Target = rl.Vector3Add(cam.Target, push)
		cam.Position = rl.Vector3Add(cam.Position, push)
	}
	p.SyncFromCamera(cam)
	return push
}

// ResolveLevel runs collision and then the ground probe for every mesh box
// in order.
func ResolveLevel(p *player.Player, cam *rl.Camera3D, boxes []physics.AABB) {
	for _, box := range boxes {
		ResolveCollision(p, cam, box)
		ProbeGround(p, box)
	}
}

// Step advances one frame. Ground probes use last frame's position, so the
// controller sees contact with a one frame lag.
func Step(p *player.Player, cam *rl.Camera3D, ctrl *camera.Controller, c Colliders) {
	ProbeGround(p, c.Platform)
	ProbeGround(p, c.Signboard)

	ctrl.Update(p, cam)

	ResolveCollision(p, cam, c.Signboard)
	ResolveCollision(p, cam, c.Platform)
	ResolveLevel(p, cam, c.Level)
}
