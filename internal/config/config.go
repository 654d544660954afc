package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxLevels matches the number of slots on the lobby signboard.
const MaxLevels = 5

// Config is read from config.toml. Keys use kebab-case.
type Config struct {
	Window Window `toml:"window"`
	Player Player `toml:"player"`
	Assets Assets `toml:"assets"`
	Course Course `toml:"course"`
	Debug  Debug  `toml:"debug"`
}

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target-fps"`
}

type Player struct {
	Spawn       Position `toml:"spawn"`
	LookAt      Position `toml:"look-at"`
	Speed       float32  `toml:"speed"`
	Sensitivity float32  `toml:"sensitivity"`
	Fov         float32  `toml:"fov"`
	Size        float32  `toml:"size"`
	Height      float32  `toml:"height"`
	JumpSpeed   float32  `toml:"jump-speed"`
	Gravity     float32  `toml:"gravity"`

	// EdgeFall clears ground contact at the start of every frame so the
	// player drops when walking off a ledge.
	EdgeFall bool `toml:"edge-fall"`
}

type Assets struct {
	Signboard       string   `toml:"signboard"`
	Level           string   `toml:"level"`
	SignboardOffset Position `toml:"signboard-offset"`
}

type Course struct {
	FallDistance     float64 `toml:"fall-distance"`
	CompletionRadius float64 `toml:"completion-radius"`
	Levels           []Level `toml:"levels"`
}

type Level struct {
	Name   string   `toml:"name"`
	Start  Position `toml:"start"`
	Finish Position `toml:"finish"`
}

type Debug struct {
	ShowColliders bool `toml:"show-colliders"`
}

type Position struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

func (p Position) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func (p Position) Vector3() rl.Vector3 {
	return rl.Vector3{X: float32(p.X), Y: float32(p.Y), Z: float32(p.Z)}
}

// Default returns the lobby tuning the prototype ships with.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "jrrom parkour",
			TargetFPS: 60,
		},
		Player: Player{
			Spawn:       Position{X: 0, Y: 2, Z: 0},
			LookAt:      Position{X: 10, Y: 0, Z: 0},
			Speed:       0.24,
			Sensitivity: 10,
			Fov:         90,
			Size:        0.5,
			Height:      2,
			JumpSpeed:   0.25,
			Gravity:     0.5,
		},
		Assets: Assets{
			Signboard:       "resources/Signboard.glb",
			Level:           "resources/Level1.glb",
			SignboardOffset: Position{X: 0, Y: 0, Z: 9},
		},
		Course: Course{
			FallDistance:     30,
			CompletionRadius: 1.5,
			Levels: []Level{
				{
					Name:   "Level 1",
					Start:  Position{X: 0, Y: 2, Z: 0},
					Finish: Position{X: 0, Y: 2, Z: 40},
				},
			},
		},
	}
}

// UnknownKeysError lists config keys that don't map to any field.
type UnknownKeysError []string

func (e UnknownKeysError) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

// Load reads path. A missing file is created with Default values.
// The second return value reports whether defaults were written.
func Load(path string) (Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		c := Default()
		if err := Save(path, c); err != nil {
			return Config{}, false, err
		}
		return c, true, nil
	}

	// Levels from the file replace the defaults as a whole; the decoder
	// would otherwise fill the first entry into the default level.
	c := Default()
	c.Course.Levels = nil
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, false, fmt.Errorf("decode %s: %w", path, err)
	}
	if !meta.IsDefined("course", "levels") {
		c.Course.Levels = Default().Course.Levels
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err UnknownKeysError
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return Config{}, false, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, false, fmt.Errorf("validate %s: %w", path, err)
	}
	return c, false, nil
}

// Save writes c to path as TOML, creating parent directories.
func Save(path string, c Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Validate rejects values the game can't run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %v", c.Player.Speed))
	}
	if c.Player.Size <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size and height must be positive, got %v and %v", c.Player.Size, c.Player.Height))
	}
	if c.Player.Fov <= 0 || c.Player.Fov >= 180 {
		errs = append(errs, fmt.Errorf("player fov must be in (0, 180), got %v", c.Player.Fov))
	}
	if c.Player.JumpSpeed <= 0 || c.Player.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("jump speed and gravity must be positive, got %v and %v", c.Player.JumpSpeed, c.Player.Gravity))
	}
	if c.Course.CompletionRadius < 0 {
		errs = append(errs, fmt.Errorf("completion radius must not be negative, got %v", c.Course.CompletionRadius))
	}
	if len(c.Course.Levels) > MaxLevels {
		errs = append(errs, fmt.Errorf("at most %d course levels, got %d", MaxLevels, len(c.Course.Levels)))
	}
	return errors.Join(errs...)
}
