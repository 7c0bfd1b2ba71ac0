package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager loads and caches external resources and owns the
// process-wide audio context.
//
// The audio context is a process singleton in Ebitengine; routing it
// through the manager keeps subsystem handles explicit instead of
// ambient, so scenes receive everything they use from the bootstrap.
type ResourceManager struct {
	audioContext  *audio.Context
	fontFaceCache map[string]*text.GoTextFace
}

// NewResourceManager creates a new resource manager.
//
// Parameters:
//   - audioContext: the global audio context used for playback; may be
//     nil, in which case audio-dependent features degrade to no-ops
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// AudioContext returns the audio context handed in at construction.
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadFont reads a TrueType/OpenType font file and returns a face at
// the given size. Faces are cached by (path, size).
//
// Parameters:
//   - path: font file path, relative to the working directory
//   - size: point size of the returned face
//
// Returns:
//   - *text.GoTextFace: the face ready for rendering
//   - error: if the file cannot be read or parsed
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}

	rm.fontFaceCache[cacheKey] = face
	return face, nil
}
