package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
)

//go:embed samurai
var assetsFS embed.FS

// LoadImage loads an image by assets-relative path. A file under the on-disk
// assets/ directory takes precedence over the embedded copy.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if b, err := os.ReadFile(diskAssetPath(clean)); err == nil {
		return b, nil
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	return b, nil
}

// LoadTexturePair loads the image at path and returns it together with its
// horizontal mirror: [0] faces right, [1] faces left. Nothing is cached.
func LoadTexturePair(path string) ([2]*ebiten.Image, error) {
	img, err := LoadImage(path)
	if err != nil {
		return [2]*ebiten.Image{}, err
	}
	return [2]*ebiten.Image{img, Mirror(img)}, nil
}

// Mirror returns a horizontally flipped copy of img.
func Mirror(img *ebiten.Image) *ebiten.Image {
	b := img.Bounds()
	flipped := ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = mirrorGeoM(b)
	flipped.DrawImage(img, op)
	return flipped
}

// mirrorGeoM maps b onto (0, 0)-(w, h) flipped about its vertical centre line.
func mirrorGeoM(b image.Rectangle) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	m.Scale(-1, 1)
	m.Translate(float64(b.Dx()), 0)
	return m
}

// FramePath names frame i of an animation: "<dir>/<name>_<i>.png".
func FramePath(dir, name string, i int) string {
	return fmt.Sprintf("%s/%s_%d.png", strings.TrimSuffix(filepath.ToSlash(dir), "/"), name, i)
}

// LoadAnimation loads frames texture pairs named by FramePath. The first
// failing frame aborts the whole load.
func LoadAnimation(dir, name string, frames int) ([][2]*ebiten.Image, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("assets: animation %s/%s: no frames", dir, name)
	}
	table := make([][2]*ebiten.Image, 0, frames)
	for i := 0; i < frames; i++ {
		pair, err := LoadTexturePair(FramePath(dir, name, i))
		if err != nil {
			return nil, fmt.Errorf("assets: animation %s/%s frame %d: %w", dir, name, i, err)
		}
		table = append(table, pair)
	}
	return table, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}

func diskAssetPath(clean string) string {
	return filepath.Join("assets", filepath.FromSlash(clean))
}
