package course

import (
	"fmt"
	"time"

	"parkour/internal/player"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Level is one parkour run: the player starts at Start and finishes by
// reaching Finish.
type Level struct {
	Name   string
	Start  mgl64.Vec3
	Finish mgl64.Vec3
}

// Completion describes a finished run.
type Completion struct {
	Index    int
	Name     string
	Duration time.Duration
	Best     bool
}

// Respawn asks the game to move the player to Position.
type Respawn struct {
	Position mgl64.Vec3
	Reason   string
}

type Settings struct {
	Spawn            mgl64.Vec3
	FallDistance     float64
	CompletionRadius float64
	Levels           []Level
}

// Tracker advances the signboard level states as the player finishes runs.
type Tracker struct {
	log      *zap.Logger
	settings Settings
	now      func() time.Time

	runStart time.Time
	best     [player.LevelCount]time.Duration

	OnComplete Event[Completion]
	OnRespawn  Event[Respawn]
}

func NewTracker(log *zap.Logger, settings Settings, now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	t := &Tracker{
		log:      log,
		settings: settings,
		now:      now,
	}
	t.runStart = now()
	return t
}

// Levels returns the configured courses.
func (t *Tracker) Levels() []Level {
	return t.settings.Levels
}

// Best returns the fastest recorded run for level i, zero if none.
func (t *Tracker) Best(i int) time.Duration {
	if i < 0 || i >= len(t.best) {
		return 0
	}
	return t.best[i]
}

// Elapsed is the time spent on the current run.
func (t *Tracker) Elapsed() time.Duration {
	return t.now().Sub(t.runStart)
}

// Update checks the player's position against the fall threshold and the
// current level's finish zone.
func (t *Tracker) Update(p *player.Player) {
	pos := vec3(p.Position)

	if pos.Y() < t.settings.Spawn.Y()-t.settings.FallDistance {
		t.respawn(p, "fell")
		return
	}

	i := p.CurrentLevel()
	if i < 0 || i >= len(t.settings.Levels) {
		return
	}
	level := t.settings.Levels[i]
	if pos.Sub(level.Finish).Len() > t.settings.CompletionRadius {
		return
	}
	t.complete(p, i)
}

// Restart sends the player back to the start of the current run.
func (t *Tracker) Restart(p *player.Player) {
	t.respawn(p, "restart")
}

// Reset clears all progress and best times and respawns at the lobby.
func (t *Tracker) Reset(p *player.Player) {
	p.ResetLevels()
	t.best = [player.LevelCount]time.Duration{}
	t.runStart = t.now()
	t.log.Info("Progress reset")
	t.OnRespawn.Invoke(Respawn{Position: t.settings.Spawn, Reason: "reset"})
}

func (t *Tracker) complete(p *player.Player, i int) {
	dur := t.now().Sub(t.runStart)
	level := t.settings.Levels[i]

	prev := t.best[i]
	best := prev == 0 || dur < prev
	if best {
		t.best[i] = dur
	}

	p.Levels[i] = player.LevelComplete
	next := i + 1
	if next < len(t.settings.Levels) && next < player.LevelCount && p.Levels[next] == player.LevelIncomplete {
		p.Levels[next] = player.LevelCurrent
	}
	t.runStart = t.now()

	t.log.Info("Level complete",
		zap.Int("level", i+1),
		zap.String("name", level.Name),
		zap.String("time", FormatDuration(dur)),
		zap.String("previous", FormatDuration(prev)),
		zap.Bool("best", best),
	)
	t.OnComplete.Invoke(Completion{Index: i, Name: level.Name, Duration: dur, Best: best})
}

func (t *Tracker) respawn(p *player.Player, reason string) {
	target := t.settings.Spawn
	if i := p.CurrentLevel(); i >= 0 && i < len(t.settings.Levels) {
		target = t.settings.Levels[i].Start
	}
	t.runStart = t.now()

	t.log.Debug("Respawn",
		zap.String("reason", reason),
		zap.Float64("x", target.X()),
		zap.Float64("y", target.Y()),
		zap.Float64("z", target.Z()),
	)
	t.OnRespawn.Invoke(Respawn{Position: target, Reason: reason})
}

// FormatDuration renders d as seconds with two decimals, or N/A for zero.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%0.2fs", d.Seconds())
}

func vec3(v rl.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Vector3 converts a course position into world space.
func Vector3(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X()), Y: float32(v.Y()), Z: float32(v.Z())}
}
