package assets

import (
	"log/slog"
	"path/filepath"
)

// Cache owns every model and texture loaded during a session. Entries are
// keyed by the path they were requested with and are never evicted. A Cache
// is not safe for concurrent use.
type Cache struct {
	root     string
	models   map[string]*Model
	textures map[string]*Texture
}

// NewCache creates a cache resolving relative paths against root. An empty
// root leaves paths untouched.
func NewCache(root string) *Cache {
	return &Cache{
		root:     root,
		models:   make(map[string]*Model),
		textures: make(map[string]*Texture),
	}
}

// Resolve returns the filesystem path for a requested asset path.
func (c *Cache) Resolve(path string) string {
	if c.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.root, path)
}

// Model returns the cached model for path, loading it on first use. Failed
// loads are not cached.
func (c *Cache) Model(path string) (*Model, error) {
	if m, ok := c.models[path]; ok {
		return m, nil
	}

	m, err := LoadModel(c.Resolve(path))
	if err != nil {
		return nil, err
	}
	// the model remembers the path it is saved under, not the resolved one
	m.FilePath = path
	c.models[path] = m
	slog.Debug("loaded model", "path", path, "faces", len(m.Faces))
	return m, nil
}

// Texture returns the cached texture for path, loading it on first use.
func (c *Cache) Texture(path string) (*Texture, error) {
	if t, ok := c.textures[path]; ok {
		return t, nil
	}

	t, err := LoadTexture(c.Resolve(path))
	if err != nil {
		return nil, err
	}
	t.Path = path
	c.textures[path] = t
	slog.Debug("loaded texture", "path", path, "width", t.Width, "height", t.Height)
	return t, nil
}

// ModelCount is the number of models loaded so far.
func (c *Cache) ModelCount() int {
	return len(c.models)
}
