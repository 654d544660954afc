package world

import (
	"fmt"
	"os"

	"parkour/internal/camera"
	"parkour/internal/config"
	"parkour/internal/course"
	"parkour/internal/physics"
	"parkour/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Platform is the lobby floor: a 20x20 slab whose top sits at y=0.
var Platform = physics.AABB{
	Min: rl.Vector3{X: -10, Y: -2, Z: -10},
	Max: rl.Vector3{X: 10, Y: 0, Z: 10},
}

type World struct {
	log *zap.Logger
	cfg config.Config

	Player     *player.Player
	Camera     rl.Camera3D
	Controller *camera.Controller
	Course     *course.Tracker

	Signboard    rl.Model
	SignboardBox physics.AABB
	Level        Level
	Platform     physics.AABB

	loaded bool
}

func New(cfg config.Config, log *zap.Logger) *World {
	p := player.New(cfg.Player.Spawn.Vector3())
	p.Speed = cfg.Player.Speed
	p.Sensitivity = cfg.Player.Sensitivity
	p.Fovy = cfg.Player.Fov
	p.Size = cfg.Player.Size
	p.Height = cfg.Player.Height

	ctrl := camera.New(camera.RaylibInput{})
	ctrl.JumpSpeed = cfg.Player.JumpSpeed
	ctrl.Gravity = cfg.Player.Gravity

	w := &World{
		log:        log,
		cfg:        cfg,
		Player:     p,
		Camera:     camera.NewCamera(p, cfg.Player.LookAt.Vector3()),
		Controller: ctrl,
		Platform:   Platform,
	}

	levels := lo.Map(cfg.Course.Levels, func(l config.Level, _ int) course.Level {
		return course.Level{Name: l.Name, Start: l.Start.Vec3(), Finish: l.Finish.Vec3()}
	})
	w.Course = course.NewTracker(log.Named("course"), course.Settings{
		Spawn:            cfg.Player.Spawn.Vec3(),
		FallDistance:     cfg.Course.FallDistance,
		CompletionRadius: cfg.Course.CompletionRadius,
		Levels:           levels,
	}, nil)
	w.Course.OnRespawn.AddListener(func(r course.Respawn) {
		w.Respawn(course.Vector3(r.Position))
	})
	return w
}

// Load reads the signboard and level models. Needs an open window.
func (w *World) Load() error {
	for _, path := range []string{w.cfg.Assets.Signboard, w.cfg.Assets.Level} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("load model: %w", err)
		}
	}

	offset := w.cfg.Assets.SignboardOffset
	w.Signboard = rl.LoadModel(w.cfg.Assets.Signboard)
	w.Signboard.Transform = rl.MatrixTranslate(float32(offset.X), float32(offset.Y), float32(offset.Z))
	w.SignboardBox = physics.FromBoundingBox(rl.GetModelBoundingBox(w.Signboard))

	w.Level = Level{Model: rl.LoadModel(w.cfg.Assets.Level)}
	w.loaded = true

	w.logModel("signboard", w.cfg.Assets.Signboard, w.Signboard)
	w.logModel("level", w.cfg.Assets.Level, w.Level.Model)
	return nil
}

func (w *World) logModel(name, path string, m rl.Model) {
	if m.MeshCount == 0 {
		w.log.Warn("Model has no meshes", zap.String("model", name), zap.String("path", path))
		return
	}
	w.log.Info("Model loaded",
		zap.String("model", name),
		zap.String("path", path),
		zap.Int32("meshes", m.MeshCount),
		zap.Int32("materials", m.MaterialCount),
	)
}

func (w *World) Unload() {
	if !w.loaded {
		return
	}
	rl.UnloadModel(w.Signboard)
	rl.UnloadModel(w.Level.Model)
	w.loaded = false
}

// Colliders returns the static boxes for this frame.
func (w *World) Colliders() Colliders {
	return Colliders{
		Platform:  w.Platform,
		Signboard: w.SignboardBox,
		Level:     w.Level.MeshBoxes(),
	}
}

// Update runs one frame of movement, collision and course tracking.
func (w *World) Update() {
	w.step(w.Colliders())
}

func (w *World) step(c Colliders) {
	if w.cfg.Player.EdgeFall {
		w.Player.OnGround = false
	}
	Step(w.Player, &w.Camera, w.Controller, c)
	w.Course.Update(w.Player)
}

// Respawn moves the camera to pos, keeping the view direction, and stops
// any vertical motion.
func (w *World) Respawn(pos rl.Vector3) {
	look := rl.Vector3Subtract(w.Camera.Target, w.Camera.Position)
	w.Camera.Position = pos
	w.Camera.Target = rl.Vector3Add(pos, look)
	w.Player.SyncFromCamera(&w.Camera)
	w.Player.VerticalSpeed = 0
	w.Player.OnGround = false
}
