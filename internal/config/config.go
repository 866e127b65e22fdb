package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int // in chunks
	workers        int
}

const (
	MinRenderDistance = 1
	MaxRenderDistance = 32
)

var globalRenderSettings = &RenderSettings{
	renderDistance: 4, // default value
	workers:        4,
}

// GetRenderDistance returns the current render distance in chunks
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if distance < MinRenderDistance {
		distance = MinRenderDistance
	}
	if distance > MaxRenderDistance {
		distance = MaxRenderDistance
	}

	globalRenderSettings.renderDistance = distance
}

// GetWorkers returns the number of chunk model workers
func GetWorkers() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.workers
}

// SetWorkers sets the number of chunk model workers, at least one
func SetWorkers(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if n < 1 {
		n = 1
	}
	globalRenderSettings.workers = n
}

// GetChunkLoadRadius returns radius for chunk loading, one ring past what is drawn
// so edge chunks have their neighbours.
func GetChunkLoadRadius() int {
	return GetRenderDistance() + 1
}
