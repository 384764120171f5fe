// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Parallax  ParallaxConfig  `yaml:"parallax"`
	Particles ParticlesConfig `yaml:"particles"`
	Assets    AssetsConfig    `yaml:"assets"`
	Audio     AudioConfig     `yaml:"audio"`
	Exhibits  []ExhibitConfig `yaml:"exhibits"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	ShowFPS    bool   `yaml:"show_fps"`

	// ScreenshotDir receives F12 captures.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// CameraConfig holds the perspective camera setup.
type CameraConfig struct {
	FOV       float32    `yaml:"fov"` // Vertical, degrees
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
	Position  [3]float32 `yaml:"position"`
	Antialias bool       `yaml:"antialias"`
}

// ParallaxConfig holds pointer-driven scene rotation settings.
type ParallaxConfig struct {
	Range    float32       `yaml:"range"` // Max rotation in radians, both axes
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`

	// PitchUsesHeight normalizes the vertical pointer position by the
	// viewport height instead of its width.
	PitchUsesHeight bool `yaml:"pitch_uses_height"`
}

// ParticlesConfig holds point cloud generation and shading settings.
type ParticlesConfig struct {
	Count     int     `yaml:"count"`
	PointSize float32 `yaml:"point_size"`
	Seed      uint64  `yaml:"seed"`
}

// AssetsConfig holds asset loading settings.
type AssetsConfig struct {
	Root  string `yaml:"root"`  // Base directory for exhibit files
	Watch bool   `yaml:"watch"` // Reload exhibits when their files change
}

// AudioConfig holds ambience playback settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// ExhibitConfig describes one selectable model.
type ExhibitConfig struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	Color1      string `yaml:"color1"`
	Color2      string `yaml:"color2"`
	Background  string `yaml:"background"`
	PlaceOnLoad bool   `yaml:"place_on_load"`

	// Ambience is an optional WAV looped while the exhibit is selected.
	Ambience string `yaml:"ambience"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the three stock exhibits.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:         "Particle Exhibits",
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			FOV:       50,
			Near:      0.1,
			Far:       100,
			Position:  [3]float32{0, 1, 5},
			Antialias: true,
		},
		Parallax: ParallaxConfig{
			Range:    0.2,
			Duration: 500 * time.Millisecond,
			Ease:     "power1.out",
		},
		Particles: ParticlesConfig{
			Count:     20000,
			PointSize: 2.0,
			Seed:      1,
		},
		Assets: AssetsConfig{
			Root:  "models",
			Watch: false,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.7,
		},
		Exhibits: []ExhibitConfig{
			{
				Name:        "skull",
				File:        "skull.glb",
				Color1:      "gray",
				Color2:      "white",
				Background:  "#000000",
				PlaceOnLoad: true,
			},
			{
				Name:       "horse",
				File:       "horse.glb",
				Color1:     "blue",
				Color2:     "pink",
				Background: "#110047",
			},
			{
				Name:       "bull",
				File:       "bull.glb",
				Color1:     "red",
				Color2:     "yellow",
				Background: "#47001b",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
