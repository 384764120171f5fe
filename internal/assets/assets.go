// Package assets handles exhibit mesh loading and caching.
package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Faultbox/particle-exhibits/internal/logger"
)

// ErrNoMesh is returned when an asset decodes but contains no usable geometry.
var ErrNoMesh = errors.New("asset contains no mesh")

// Mesh is the geometry of one loaded asset: vertex positions and a triangle list.
type Mesh struct {
	Path      string
	Positions [][3]float32
	Indices   []uint32
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// DecodeFunc reads a mesh from a path.
type DecodeFunc func(path string) (*Mesh, error)

// Library loads meshes, caching them by path. Concurrent loads of the same
// path share one decode.
type Library struct {
	decode DecodeFunc
	cache  *Cache
	group  singleflight.Group
	log    *zap.Logger
}

// NewLibrary creates a library that decodes GLB/glTF files.
func NewLibrary() *Library {
	return NewLibraryWithDecoder(DecodeGLTF)
}

// NewLibraryWithDecoder creates a library with a custom decoder.
func NewLibraryWithDecoder(decode DecodeFunc) *Library {
	return &Library{
		decode: decode,
		cache:  NewCache(),
		log:    logger.Named("assets"),
	}
}

// Load returns the mesh at path. It blocks until the mesh is decoded or ctx
// is done; a cancelled caller does not abort a decode other callers share.
func (l *Library) Load(ctx context.Context, path string) (*Mesh, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mesh, ok := l.cache.Get(path); ok {
		return mesh, nil
	}

	ch := l.group.DoChan(path, func() (any, error) {
		gen := l.cache.Generation(path)
		mesh, err := l.decode(path)
		if err != nil {
			return nil, err
		}
		if len(mesh.Positions) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoMesh)
		}
		if !l.cache.SetIfCurrent(path, mesh, gen) {
			l.log.Debug("stale decode not cached", zap.String("path", path))
			return mesh, nil
		}
		l.log.Debug("mesh decoded",
			zap.String("path", path),
			zap.Int("vertices", len(mesh.Positions)),
			zap.Int("triangles", mesh.Triangles()),
		)
		return mesh, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Mesh), nil
	}
}

// Invalidate drops path from the cache so the next Load decodes it again.
// A decode already in flight still answers its callers but is not cached.
func (l *Library) Invalidate(path string) {
	l.cache.Delete(path)
	l.group.Forget(path)
}

// Stats returns cache statistics.
func (l *Library) Stats() (hits, misses int) {
	return l.cache.Stats()
}

// Cache is a simple in-memory cache for decoded meshes.
type Cache struct {
	data map[string]*Mesh
	gens map[string]uint64
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*Mesh),
		gens: make(map[string]uint64),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*Mesh, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mesh, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return mesh, ok
}

// Generation returns the number of times key has been deleted.
func (c *Cache) Generation(key string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[key]
}

// SetIfCurrent stores mesh unless key was deleted since gen was read.
func (c *Cache) SetIfCurrent(key string, mesh *Mesh, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key] != gen {
		return false
	}
	c.data[key] = mesh
	return true
}

// Delete removes an item from cache and bumps its generation.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.gens[key]++
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
