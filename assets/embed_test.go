package assets

import (
	"image"
	"strings"
	"testing"
)

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"relative", "samurai/idle_0.png", "samurai/idle_0.png"},
		{"prefixed", "assets/samurai/idle_0.png", "samurai/idle_0.png"},
		{"absolute_inside_assets", "/home/dev/samurai/assets/samurai/walk_3.png", "samurai/walk_3.png"},
		{"absolute_elsewhere", "/tmp/walk_3.png", "walk_3.png"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := cleanAssetPath(c.in); got != c.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestFramePath(t *testing.T) {
	cases := []struct {
		dir, name string
		i         int
		want      string
	}{
		{"samurai", "idle", 0, "samurai/idle_0.png"},
		{"samurai/", "walk", 7, "samurai/walk_7.png"},
	}
	for _, c := range cases {
		if got := FramePath(c.dir, c.name, c.i); got != c.want {
			t.Fatalf("FramePath(%q, %q, %d) = %q, want %q", c.dir, c.name, c.i, got, c.want)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("samurai/missing_0.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadTexturePair(t *testing.T) {
	pair, err := LoadTexturePair("samurai/idle_0.png")
	if err != nil {
		t.Fatalf("LoadTexturePair: %v", err)
	}
	if pair[0] == nil || pair[1] == nil {
		t.Fatalf("expected both images, got %v", pair)
	}
	if pair[0] == pair[1] {
		t.Fatalf("mirror must be a separate image")
	}
	if pair[0].Bounds().Size() != pair[1].Bounds().Size() {
		t.Fatalf("mirror size %v differs from original %v", pair[1].Bounds().Size(), pair[0].Bounds().Size())
	}
}

func TestMirrorGeoM(t *testing.T) {
	cases := []struct {
		name   string
		bounds image.Rectangle
		in     [2]float64
		want   [2]float64
	}{
		{"left_edge_to_right", image.Rect(0, 0, 64, 96), [2]float64{0, 10}, [2]float64{64, 10}},
		{"right_edge_to_left", image.Rect(0, 0, 64, 96), [2]float64{64, 10}, [2]float64{0, 10}},
		{"interior", image.Rect(0, 0, 64, 96), [2]float64{16, 95}, [2]float64{48, 95}},
		{"centre_fixed", image.Rect(0, 0, 64, 96), [2]float64{32, 0}, [2]float64{32, 0}},
		{"offset_bounds", image.Rect(10, 20, 74, 116), [2]float64{10, 20}, [2]float64{64, 0}},
		{"offset_bounds_far_edge", image.Rect(10, 20, 74, 116), [2]float64{74, 116}, [2]float64{0, 96}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := mirrorGeoM(c.bounds)
			x, y := m.Apply(c.in[0], c.in[1])
			if x != c.want[0] || y != c.want[1] {
				t.Fatalf("mirror of %v = (%v, %v), want %v", c.in, x, y, c.want)
			}
		})
	}
}

func TestLoadTexturePairInvalidPath(t *testing.T) {
	pair, err := LoadTexturePair("samurai/nope.png")
	if err == nil {
		t.Fatalf("expected error")
	}
	if pair[0] != nil || pair[1] != nil {
		t.Fatalf("expected empty pair on error")
	}
}

func TestLoadAnimation(t *testing.T) {
	t.Run("walk_cycle", func(t *testing.T) {
		table, err := LoadAnimation("samurai", "walk", 8)
		if err != nil {
			t.Fatalf("LoadAnimation: %v", err)
		}
		if len(table) != 8 {
			t.Fatalf("expected 8 frames, got %d", len(table))
		}
	})

	t.Run("aborts_on_missing_frame", func(t *testing.T) {
		_, err := LoadAnimation("samurai", "idle", 9)
		if err == nil {
			t.Fatalf("expected error when a frame is missing")
		}
		if !strings.Contains(err.Error(), "frame 4") {
			t.Fatalf("error should name the first missing frame: %v", err)
		}
	})

	t.Run("no_frames", func(t *testing.T) {
		if _, err := LoadAnimation("samurai", "idle", 0); err == nil {
			t.Fatalf("expected error for zero frames")
		}
	})
}
