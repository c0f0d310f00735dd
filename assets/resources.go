package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Model is a static mesh set described by per-mesh bounds.
type Model struct {
	Name   string `json:"name"`
	Meshes []Mesh `json:"meshes"`
}

type Mesh struct {
	Name string     `json:"name"`
	Min  [3]float64 `json:"min"`
	Max  [3]float64 `json:"max"`
}

// Bounds returns the union of all mesh bounds.
func (m *Model) Bounds() (lo, hi [3]float64) {
	for i, mesh := range m.Meshes {
		if i == 0 {
			lo, hi = mesh.Min, mesh.Max
			continue
		}
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], mesh.Min[k])
			hi[k] = max(hi[k], mesh.Max[k])
		}
	}
	return lo, hi
}

type Material struct {
	Name              string     `json:"name"`
	Diffuse           [3]float64 `json:"diffuse"`
	Emissive          [3]float64 `json:"emissive"`
	EmissiveIntensity float64    `json:"emissiveIntensity"`
	Opacity           float64    `json:"opacity"`
}

type Texture struct {
	Image image.Image
	img   *ebiten.Image
}

// Ebiten converts the decoded image on first use. Call it from the game loop.
func (t *Texture) Ebiten() *ebiten.Image {
	if t == nil || t.Image == nil {
		return nil
	}
	if t.img == nil {
		t.img = ebiten.NewImageFromImage(t.Image)
	}
	return t.img
}

type Font struct {
	Name   string  `json:"name"`
	Size   float64 `json:"size"`
	Source *text.GoTextFaceSource
}

// Face returns a face of the given pixel size, or the font's own size if 0.
func (f *Font) Face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = f.Size
	}
	return &text.GoTextFace{Source: f.Source, Size: size}
}

// Decoder turns raw file bytes into an asset resource.
type Decoder func(data []byte) (any, error)

func decodeModel(data []byte) (any, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if len(m.Meshes) == 0 {
		return nil, fmt.Errorf("decode model %q: no meshes", m.Name)
	}
	return &m, nil
}

func decodeMaterial(data []byte) (any, error) {
	m := Material{Opacity: 1, Diffuse: [3]float64{1, 1, 1}}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode material: %w", err)
	}
	return &m, nil
}

func decodeTexture(data []byte) (any, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return &Texture{Image: img}, nil
}

// Font descriptors name the family; glyphs come from the bundled Go font.
func decodeFont(data []byte) (any, error) {
	f := Font{Size: 32}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode font: %w", err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("decode font %q: %w", f.Name, err)
	}
	f.Source = src
	return &f, nil
}

func decodeRaw(data []byte) (any, error) {
	return data, nil
}
