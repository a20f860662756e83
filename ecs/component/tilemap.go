package component

import "strings"

// collisionLayerMarker is the substring (case-insensitive) that makes a tile
// layer contribute to collision.
const collisionLayerMarker = "collision"

// TileLayer is one named grid of tile ids, row-major, Width*Height long.
// A tile id of 0 is empty.
type TileLayer struct {
	Name  string
	Tiles []int
}

// IsCollision reports whether the layer name marks it as a collision layer.
func (l *TileLayer) IsCollision() bool {
	return IsCollisionLayerName(l.Name)
}

// IsCollisionLayerName reports whether name contains "collision" in any case.
func IsCollisionLayerName(name string) bool {
	return strings.Contains(strings.ToLower(name), collisionLayerMarker)
}

// TileMap2D is a grid of tiles split into ordered named layers.
type TileMap2D struct {
	TileWidth  float64
	TileHeight float64
	Width      int // columns
	Height     int // rows
	Layers     []TileLayer
	Visible    bool
}

// Tile returns the id at (col,row) in the given layer, or 0 when out of range.
func (m *TileMap2D) Tile(layer, col, row int) int {
	if layer < 0 || layer >= len(m.Layers) || col < 0 || row < 0 || col >= m.Width || row >= m.Height {
		return 0
	}
	tiles := m.Layers[layer].Tiles
	idx := row*m.Width + col
	if idx >= len(tiles) {
		return 0
	}
	return tiles[idx]
}

// LayerIndex returns the index of the layer called name, or -1.
func (m *TileMap2D) LayerIndex(name string) int {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return i
		}
	}
	return -1
}

// CollisionLayers returns the indices of every collision layer in order.
func (m *TileMap2D) CollisionLayers() []int {
	var out []int
	for i := range m.Layers {
		if m.Layers[i].IsCollision() {
			out = append(out, i)
		}
	}
	return out
}
