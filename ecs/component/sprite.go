package component

import "image"

// Sprite references an image by key. Rendering is done elsewhere; physics
// only cares about the source size when SyncSize is set.
type Sprite struct {
	Image     string
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	SyncSize  bool
}
