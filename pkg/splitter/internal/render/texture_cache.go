package render

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 64

// TextureCache keeps the most recently used textures, keyed by whatever
// identifies their source (icon name and size, label text).
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// GetOrLoad returns the cached texture for key, calling load on a miss.
func (c *TextureCache) GetOrLoad(key string, load func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture, ok := c.textures[key]; ok {
		c.touch(key)
		return texture, nil
	}

	texture, err := load()
	if err != nil {
		return nil, err
	}
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
	return texture, nil
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy frees every cached texture.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
