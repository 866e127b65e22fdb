package graphics

import (
	"errors"
	"io/fs"
	"sync"

	"cubic/internal/render"

	"github.com/sirupsen/logrus"
)

const generatedAtlasCellPx = 16

var (
	textureCache = make(map[string]uint32)
	cacheMutex   sync.RWMutex
)

// GetAtlas returns a cached texture ID for the atlas at path. A missing file
// falls back to the generated atlas; other load errors are returned.
func GetAtlas(path string) (uint32, error) {
	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	img, err := LoadImage(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", path).Warn("atlas not found, using generated atlas")
		img = render.AtlasImage(generatedAtlasCellPx)
	case err != nil:
		return 0, err
	}

	tex := UploadTexture(img)
	textureCache[path] = tex
	return tex, nil
}
