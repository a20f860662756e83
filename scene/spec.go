// Package scene reads YAML scene descriptions and builds them into a World.
package scene

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/simcore/scenes"
)

var ErrNoScene = eris.New("scene: no such scene")

type Scene struct {
	Name     string       `yaml:"name"`
	Entities []EntitySpec `yaml:"entities"`
}

type EntitySpec struct {
	Name      string         `yaml:"name"`
	Transform *TransformSpec `yaml:"transform"`
	RigidBody *RigidBodySpec `yaml:"rigidbody"`
	TileMap   *TileMapSpec   `yaml:"tilemap"`
	Sprite    *SpriteSpec    `yaml:"sprite"`
	Animation *AnimationSpec `yaml:"animation"`
	Input     bool           `yaml:"input"`
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
	Layer    int     `yaml:"layer"`
	FlipX    bool    `yaml:"flip_x"`
	FlipY    bool    `yaml:"flip_y"`
}

type RigidBodySpec struct {
	VX                 float64 `yaml:"vx"`
	VY                 float64 `yaml:"vy"`
	OffsetX            float64 `yaml:"offset_x"`
	OffsetY            float64 `yaml:"offset_y"`
	Mass               string  `yaml:"mass"`
	GameType           string  `yaml:"game_type"`
	Gravity            float64 `yaml:"gravity"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`
	FastFallMultiplier float64 `yaml:"fast_fall_multiplier"`
}

type TileMapSpec struct {
	TileWidth  float64         `yaml:"tile_width"`
	TileHeight float64         `yaml:"tile_height"`
	Width      int             `yaml:"width"`
	Height     int             `yaml:"height"`
	Visible    bool            `yaml:"visible"`
	Layers     []TileLayerSpec `yaml:"layers"`
}

// TileLayerSpec lists a layer's tiles in one of three forms: Tiles as a
// row-major id list, Rows as one string per row ('.' or ' ' empty, '#' id 1,
// a digit its own id), or Fill as a single id for every cell.
type TileLayerSpec struct {
	Name  string   `yaml:"name"`
	Tiles []int    `yaml:"tiles"`
	Rows  []string `yaml:"rows"`
	Fill  int      `yaml:"fill"`
}

type SpriteSpec struct {
	Image    string    `yaml:"image"`
	Source   *RectSpec `yaml:"source"`
	OriginX  float64   `yaml:"origin_x"`
	OriginY  float64   `yaml:"origin_y"`
	SyncSize bool      `yaml:"sync_size"`
}

type RectSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type AnimationSpec struct {
	Sheet   string                      `yaml:"sheet"`
	Current string                      `yaml:"current"`
	Playing bool                        `yaml:"playing"`
	Defs    map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

// Parse decodes a scene description.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrap(err, "scene: unmarshal")
	}
	return &s, nil
}

// LoadFile reads and parses a scene from disk.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "scene: read %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "scene: load %s", path)
	}
	return s, nil
}

// LoadEmbedded parses one of the bundled scenes. The ".yaml" extension may
// be omitted.
func LoadEmbedded(name string) (*Scene, error) {
	clean := cleanScenePath(name)
	if clean == "" {
		return nil, ErrNoScene
	}
	data, err := fs.ReadFile(scenes.ScenesFS, clean)
	if err != nil {
		return nil, eris.Wrapf(ErrNoScene, "%s", name)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "scene: load embedded %s", name)
	}
	return s, nil
}

// Load resolves name as a file on disk first and falls back to the bundled
// scenes.
func Load(name string) (*Scene, error) {
	if name == "" {
		return nil, ErrNoScene
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return LoadFile(name)
	}
	return LoadEmbedded(name)
}

// Embedded lists the bundled scene names.
func Embedded() []string {
	entries, err := fs.ReadDir(scenes.ScenesFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if isSceneFile(e.Name()) {
			names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
	}
	return names
}

func cleanScenePath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "scenes/"); ok {
		s = after
	}
	if !isSceneFile(s) {
		s += ".yaml"
	}
	return s
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
