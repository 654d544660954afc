package player

import (
	"parkour/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LevelCount is the number of level slots shown on the lobby signboard.
const LevelCount = 5

// FootInset shrinks the foot probe on x/z so side walls don't count as ground.
const FootInset = 0.05

// FootDepth is the thickness of the foot probe below the feet.
const FootDepth = 0.1

type LevelState int

const (
	LevelCurrent LevelState = iota
	LevelIncomplete
	LevelComplete
)

func (s LevelState) String() string {
	switch s {
	case LevelCurrent:
		return "current"
	case LevelIncomplete:
		return "incomplete"
	case LevelComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Player is the controlled entity. The camera owns the authoritative
// position; Position mirrors it after every update.
type Player struct {
	Position    rl.Vector3
	Speed       float32 // units per frame
	Sensitivity float32 // degrees per pointer unit
	Fovy        float32
	Size        float32 // half extent on x/z
	Height      float32
	OnGround    bool

	VerticalSpeed        float32
	VerticalAcceleration float32

	Levels [LevelCount]LevelState
}

func New(spawn rl.Vector3) *Player {
	p := &Player{
		Position:    spawn,
		Speed:       0.24,
		Sensitivity: 10.0,
		Fovy:        90.0,
		Size:        0.5,
		Height:      2.0,
		OnGround:    true,
	}
	p.ResetLevels()
	return p
}

// ResetLevels marks the first level current and the rest incomplete.
func (p *Player) ResetLevels() {
	for i := range p.Levels {
		p.Levels[i] = LevelIncomplete
	}
	p.Levels[0] = LevelCurrent
}

// CurrentLevel returns the index of the level marked current, or -1.
func (p *Player) CurrentLevel() int {
	for i, s := range p.Levels {
		if s == LevelCurrent {
			return i
		}
	}
	return -1
}

// FootBox is a thin slab just under the feet, inset on x/z.
func (p *Player) FootBox() physics.AABB {
	inset := p.Size - FootInset
	feet := p.Position.Y - p.Height
	return physics.AABB{
		Min: rl.Vector3{X: p.Position.X - inset, Y: feet - FootDepth, Z: p.Position.Z - inset},
		Max: rl.Vector3{X: p.Position.X + inset, Y: feet, Z: p.Position.Z + inset},
	}
}

// BodyBox spans from the feet up to the eye position.
func (p *Player) BodyBox() physics.AABB {
	return physics.AABB{
		Min: rl.Vector3{X: p.Position.X - p.Size, Y: p.Position.Y - p.Height, Z: p.Position.Z - p.Size},
		Max: rl.Vector3{X: p.Position.X + p.Size, Y: p.Position.Y, Z: p.Position.Z + p.Size},
	}
}

// SyncFromCamera copies the camera position into the player.
func (p *Player) SyncFromCamera(cam *rl.Camera3D) {
	p.Position = cam.Position
}
