package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/particle-exhibits/internal/engine/renderer"
	"github.com/Faultbox/particle-exhibits/internal/engine/window"
)

func TestWindowErrorMarksMissingContext(t *testing.T) {
	ctxErr := fmt.Errorf("%w: SDL_GL_CreateContext: %w", window.ErrGLContext, errors.New("GLX not supported"))
	err := windowError(ctxErr)
	assert.ErrorIs(t, err, renderer.ErrRenderContext)
	assert.ErrorIs(t, err, window.ErrGLContext)
	assert.ErrorContains(t, err, "GLX not supported")

	err = windowError(errors.New("SDL_CreateWindow failed: no display"))
	assert.NotErrorIs(t, err, renderer.ErrRenderContext)
	assert.ErrorContains(t, err, "no display")
}
