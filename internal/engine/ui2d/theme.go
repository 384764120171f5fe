package ui2d

import "github.com/Faultbox/particle-exhibits/internal/engine/palette"

// Theme colors.
var (
	ColorPanelBg      = palette.Color{R: 0.08, G: 0.08, B: 0.12, A: 0.6}
	ColorPanelBorder  = palette.Color{R: 0.3, G: 0.3, B: 0.4, A: 1}
	ColorButtonNormal = palette.Color{R: 0.15, G: 0.15, B: 0.2, A: 0.8}
	ColorButtonHover  = ColorButtonNormal.Lighten(0.1).WithAlpha(0.9)
	ColorButtonActive = ColorHighlight.Darken(0.5)
	ColorText         = palette.Color{R: 0.9, G: 0.9, B: 0.9, A: 1}
	ColorTextDim      = palette.Color{R: 0.5, G: 0.5, B: 0.6, A: 1}
	ColorHighlight    = palette.Color{R: 0.2, G: 0.6, B: 0.9, A: 1}
)
