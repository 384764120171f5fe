package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
	"github.com/Faultbox/particle-exhibits/internal/engine/tween"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if sel := *flagSelect; sel != "" && cfg.Exhibit(sel) == nil {
		return nil, fmt.Errorf("--select %q: no such exhibit", sel)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Exhibit returns the exhibit config with the given name, or nil.
func (c *Config) Exhibit(name string) *ExhibitConfig {
	for i := range c.Exhibits {
		if c.Exhibits[i].Name == name {
			return &c.Exhibits[i]
		}
	}
	return nil
}

// Validate reports every problem found in the config at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		err = multierr.Append(err, fmt.Errorf("camera clip range %g..%g is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Particles.Count <= 0 {
		err = multierr.Append(err, errors.New("particles.count must be positive"))
	}
	if c.Parallax.Duration < 0 {
		err = multierr.Append(err, errors.New("parallax.duration must not be negative"))
	}
	if _, e := tween.EaseByName(c.Parallax.Ease); e != nil {
		err = multierr.Append(err, fmt.Errorf("parallax.ease: %w", e))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		err = multierr.Append(err, fmt.Errorf("audio.volume %g must be within 0..1", c.Audio.Volume))
	}
	if len(c.Exhibits) == 0 {
		err = multierr.Append(err, errors.New("at least one exhibit is required"))
	}

	seen := make(map[string]bool, len(c.Exhibits))
	placed := 0
	for i, ex := range c.Exhibits {
		if ex.Name == "" {
			err = multierr.Append(err, fmt.Errorf("exhibits[%d]: name is empty", i))
		} else if seen[ex.Name] {
			err = multierr.Append(err, fmt.Errorf("exhibits[%d]: duplicate name %q", i, ex.Name))
		}
		seen[ex.Name] = true
		if ex.File == "" {
			err = multierr.Append(err, fmt.Errorf("exhibit %q: file is empty", ex.Name))
		}
		colors := []struct{ field, value string }{
			{"color1", ex.Color1},
			{"color2", ex.Color2},
			{"background", ex.Background},
		}
		for _, col := range colors {
			if _, e := palette.Parse(col.value); e != nil {
				err = multierr.Append(err, fmt.Errorf("exhibit %q: %s: %w", ex.Name, col.field, e))
			}
		}
		if ex.PlaceOnLoad {
			placed++
		}
	}
	if placed > 1 {
		err = multierr.Append(err, fmt.Errorf("%d exhibits set place_on_load, at most one allowed", placed))
	}

	return err
}

// AssetPath resolves an exhibit file against the asset root.
func (c *Config) AssetPath(ex ExhibitConfig) string {
	return c.resolve(ex.File)
}

// AmbiencePath resolves an exhibit's ambience track, or returns "".
func (c *Config) AmbiencePath(ex ExhibitConfig) string {
	if ex.Ambience == "" {
		return ""
	}
	return c.resolve(ex.Ambience)
}

func (c *Config) resolve(file string) string {
	if filepath.IsAbs(file) || c.Assets.Root == "" {
		return file
	}
	return filepath.Join(c.Assets.Root, file)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./exhibits.yaml",
		filepath.Join(ConfigDir(), "exhibits.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "ParticleExhibits")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "ParticleExhibits")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "particle-exhibits")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "particle-exhibits")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// An exhibits list in the file replaces the default list as a whole.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
