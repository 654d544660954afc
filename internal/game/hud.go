package game

import (
	"fmt"

	"parkour/internal/course"
	"parkour/internal/player"
	"parkour/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

const (
	announceSeconds = 3.0

	minSensitivity = 1
	maxSensitivity = 30
)

var (
	colorPanel  = rl.NewColor(30, 30, 40, 230)
	colorAccent = rl.NewColor(230, 180, 40, 255)
	colorText   = rl.NewColor(220, 220, 230, 255)
)

// HUD draws the level board, completion banner and debug panel.
type HUD struct {
	announcement string
	remaining    float32
}

func NewHUD() *HUD {
	return &HUD{}
}

// ApplyStyle sets the raygui colours. Needs an open window.
func (h *HUD) ApplyStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}

// Announce shows a completion banner for a few seconds.
func (h *HUD) Announce(c course.Completion) {
	h.announcement = AnnounceText(c)
	h.remaining = announceSeconds
}

// Tick counts down the banner.
func (h *HUD) Tick(dt float32) {
	if h.remaining <= 0 {
		return
	}
	h.remaining -= dt
	if h.remaining <= 0 {
		h.announcement = ""
	}
}

func (h *HUD) Announcement() string {
	return h.announcement
}

func (h *HUD) DrawAnnouncement() {
	if h.announcement == "" {
		return
	}
	size := int32(30)
	width := rl.MeasureText(h.announcement, size)
	x := (int32(rl.GetScreenWidth()) - width) / 2
	rl.DrawText(h.announcement, x, int32(rl.GetScreenHeight())/3, size, colorAccent)
}

// LevelLines returns one row per signboard slot.
func LevelLines(p *player.Player, t *course.Tracker) []string {
	levels := t.Levels()
	lines := make([]string, 0, player.LevelCount+1)
	for i, state := range p.Levels {
		name := fmt.Sprintf("Level %d", i+1)
		if i < len(levels) && levels[i].Name != "" {
			name = levels[i].Name
		}
		lines = append(lines, fmt.Sprintf("%-10s %-10s best %s", name, state, course.FormatDuration(t.Best(i))))
	}
	done := lo.Count(p.Levels[:], player.LevelComplete)
	lines = append(lines, fmt.Sprintf("Completed %d/%d", done, player.LevelCount))
	return lines
}

func (h *HUD) DrawLevels(p *player.Player, t *course.Tracker) {
	lines := LevelLines(p, t)
	x := float32(rl.GetScreenWidth()) - 330
	bounds := rl.Rectangle{X: x, Y: 10, Width: 320, Height: float32(len(lines)*22 + 40)}
	gui.GroupBox(bounds, "Levels")

	for i, line := range lines {
		color := colorText
		if i < player.LevelCount {
			color = world.LevelColor(p.Levels[i])
		}
		rl.DrawText(line, int32(x)+10, int32(22*i)+30, 16, color)
	}

	if p.CurrentLevel() >= 0 {
		run := fmt.Sprintf("Run: %s", course.FormatDuration(t.Elapsed()))
		rl.DrawText(run, int32(x)+10, int32(bounds.Y+bounds.Height)+5, 18, rl.DarkGray)
	}
}

// DrawDebug draws the debug panel: collider toggle, sensitivity and the
// player state readout.
func (h *HUD) DrawDebug(w *world.World, r *world.Renderer) {
	p := w.Player
	panel := rl.Rectangle{X: 10, Y: 90, Width: 300, Height: 210}
	gui.Panel(panel, "Debug")

	r.ShowColliders = gui.CheckBox(rl.Rectangle{X: 20, Y: 125, Width: 16, Height: 16}, "Show colliders", r.ShowColliders)

	gui.Label(rl.Rectangle{X: 20, Y: 150, Width: 100, Height: 20}, "Sensitivity")
	p.Sensitivity = gui.Slider(
		rl.Rectangle{X: 110, Y: 150, Width: 140, Height: 20},
		"", fmt.Sprintf("%.1f", p.Sensitivity),
		p.Sensitivity, minSensitivity, maxSensitivity,
	)

	for i, line := range DebugLines(w, r) {
		gui.Label(rl.Rectangle{X: 20, Y: float32(180 + 22*i), Width: 280, Height: 20}, line)
	}
}

// DebugLines is the player state readout.
func DebugLines(w *world.World, r *world.Renderer) []string {
	p := w.Player
	return []string{
		fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", p.Position.X, p.Position.Y, p.Position.Z),
		fmt.Sprintf("On ground: %v", p.OnGround),
		fmt.Sprintf("Vertical speed: %.3f", p.VerticalSpeed),
		fmt.Sprintf("Level meshes: %d  culled: %d", w.Level.Model.MeshCount, r.Culled),
	}
}
