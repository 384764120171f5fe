package app

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Faultbox/particle-exhibits/internal/config"
	"github.com/Faultbox/particle-exhibits/internal/engine/palette"
	"github.com/Faultbox/particle-exhibits/internal/engine/scene"
	"github.com/Faultbox/particle-exhibits/internal/engine/tween"
	"github.com/Faultbox/particle-exhibits/internal/exhibit"
	"github.com/Faultbox/particle-exhibits/internal/parallax"
	"github.com/Faultbox/particle-exhibits/internal/surface"
)

// BuildExhibits creates the configured exhibits on sc, in config order.
func BuildExhibits(cfg *config.Config, sc *scene.Scene) ([]*exhibit.Exhibit, error) {
	exhibits := make([]*exhibit.Exhibit, 0, len(cfg.Exhibits))
	for _, ec := range cfg.Exhibits {
		c1, err := palette.Parse(ec.Color1)
		if err != nil {
			return nil, fmt.Errorf("exhibit %q color1: %w", ec.Name, err)
		}
		c2, err := palette.Parse(ec.Color2)
		if err != nil {
			return nil, fmt.Errorf("exhibit %q color2: %w", ec.Name, err)
		}
		bg, err := palette.Parse(ec.Background)
		if err != nil {
			return nil, fmt.Errorf("exhibit %q background: %w", ec.Name, err)
		}

		exhibits = append(exhibits, exhibit.New(exhibit.Config{
			Name:        ec.Name,
			File:        cfg.AssetPath(ec),
			Color1:      c1,
			Color2:      c2,
			Background:  bg,
			PlaceOnLoad: ec.PlaceOnLoad,
			Particles:   cfg.Particles.Count,
			PointSize:   cfg.Particles.PointSize,
			Seed:        cfg.Particles.Seed,
		}, sc))
	}
	return exhibits, nil
}

// AmbienceTracks maps exhibit names to their resolved ambience files.
// Exhibits without ambience are left out.
func AmbienceTracks(cfg *config.Config) map[string]string {
	tracks := make(map[string]string)
	for _, ec := range cfg.Exhibits {
		if path := cfg.AmbiencePath(ec); path != "" {
			tracks[ec.Name] = path
		}
	}
	return tracks
}

// DisplayName turns an exhibit name into a button label: "giant_skull"
// becomes "Giant Skull".
func DisplayName(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return cases.Title(language.English).String(name)
}

// SurfaceConfig converts the camera and parallax sections.
func SurfaceConfig(cfg *config.Config) (surface.Config, error) {
	ease, err := tween.EaseByName(cfg.Parallax.Ease)
	if err != nil {
		return surface.Config{}, fmt.Errorf("parallax: %w", err)
	}

	sc := surface.DefaultConfig()
	sc.FOV = cfg.Camera.FOV
	sc.Near = cfg.Camera.Near
	sc.Far = cfg.Camera.Far
	sc.Position = mgl32.Vec3(cfg.Camera.Position)
	sc.Width = cfg.Window.Width
	sc.Height = cfg.Window.Height
	sc.Parallax = parallax.Config{
		Range:           cfg.Parallax.Range,
		Duration:        cfg.Parallax.Duration,
		Ease:            ease,
		PitchUsesHeight: cfg.Parallax.PitchUsesHeight,
	}
	return sc, nil
}
