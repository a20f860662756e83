package component

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform places an entity in the world. Size is the unscaled footprint;
// physics uses Size scaled uniformly by Scale.
type Transform struct {
	Position r3.Vec
	Size     r3.Vec
	Scale    float64
	Rotation float64 // degrees
	Layer    int
	FlipX    bool
	FlipY    bool
	Tint     color.RGBA
}

// ScaledWidth returns the horizontal footprint after scaling.
func (t *Transform) ScaledWidth() float64 {
	return t.Size.X * t.Scale
}

// ScaledHeight returns the vertical footprint after scaling.
func (t *Transform) ScaledHeight() float64 {
	return t.Size.Y * t.Scale
}

// HasFootprint reports whether the transform occupies any area on both axes.
func (t *Transform) HasFootprint() bool {
	return t.Size.X != 0 && t.Size.Y != 0
}
