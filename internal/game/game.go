package game

import (
	"fmt"

	"parkour/internal/camera"
	"parkour/internal/config"
	"parkour/internal/course"
	"parkour/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Game struct {
	log *zap.Logger
	cfg config.Config

	World    *world.World
	Renderer *world.Renderer
	HUD      *HUD

	// DebugMode shows the debug panel and frees the cursor.
	DebugMode bool

	input camera.Input
}

func New(cfg config.Config, log *zap.Logger) *Game {
	g := &Game{
		log:      log,
		cfg:      cfg,
		World:    world.New(cfg, log.Named("world")),
		Renderer: world.NewRenderer(cfg.Debug.ShowColliders),
		HUD:      NewHUD(),
		input:    camera.RaylibInput{},
	}
	g.World.Course.OnComplete.AddListener(g.HUD.Announce)
	return g
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.Window.TargetFPS)

	// Models need the GL context created by InitWindow.
	if err := g.World.Load(); err != nil {
		return fmt.Errorf("load world: %w", err)
	}
	defer g.World.Unload()

	g.HUD.ApplyStyle()
	rl.DisableCursor()

	g.log.Info("Game loop started")
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	g.log.Info("Game loop stopped")
	return nil
}

func (g *Game) Update() {
	if g.input.IsKeyPressed(rl.KeyF1) {
		g.SetDebugMode(!g.DebugMode)
	}
	g.HandleCourseKeys()

	g.World.Update()
	g.HUD.Tick(g.input.FrameTime())
}

// HandleCourseKeys restarts the current level on R and resets all progress
// on Backspace. Both are ignored in debug mode.
func (g *Game) HandleCourseKeys() {
	if g.DebugMode {
		return
	}
	if g.input.IsKeyPressed(rl.KeyR) {
		g.World.Course.Restart(g.World.Player)
	}
	if g.input.IsKeyPressed(rl.KeyBackspace) {
		g.World.Course.Reset(g.World.Player)
	}
}

// SetDebugMode opens or closes the debug panel. Movement input is frozen
// while the panel has the cursor; gravity keeps running.
func (g *Game) SetDebugMode(on bool) {
	g.DebugMode = on
	if on {
		rl.EnableCursor()
		g.World.Controller.Input = camera.Frozen{Input: g.input}
	} else {
		rl.DisableCursor()
		g.World.Controller.Input = g.input
	}
	g.log.Debug("Debug mode", zap.Bool("enabled", on))
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	g.Renderer.Draw(g.World, aspect)

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.DarkGray)
	rl.DrawText("R to restart level, Backspace to reset, F1 for debug", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	g.HUD.DrawLevels(g.World.Player, g.World.Course)
	g.HUD.DrawAnnouncement()

	if g.DebugMode {
		g.HUD.DrawDebug(g.World, g.Renderer)
	}
}

// AnnounceText formats a completion for the on-screen banner.
func AnnounceText(c course.Completion) string {
	text := fmt.Sprintf("%s complete in %s", c.Name, course.FormatDuration(c.Duration))
	if c.Best {
		text += " (best)"
	}
	return text
}
