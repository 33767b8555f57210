package cardtable

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"after-drop", "after-drop"},
		{"frame.01", "frame.01"},
		{"card on ph3", "card_on_ph3"},
		{"path/to/thing", "path_to_thing"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-transparent
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := [][4]uint8{{255, 0, 0, 255}, {127, 63, 0, 128}, {0, 0, 0, 0}}
	for x, w := range want {
		c := img.NRGBAAt(x, 0)
		if c.R != w[0] || c.G != w[1] || c.B != w[2] || c.A != w[3] {
			t.Errorf("pixel %d = %v, want %v", x, c, w)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 4, 2))); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
}

func TestTableScreenshotQueue(t *testing.T) {
	tbl := newTestTable(t, DefaultConfig())
	tbl.Screenshot("a")
	tbl.Screenshot("b")
	if len(tbl.shots) != 2 || tbl.shots[0] != "a" || tbl.shots[1] != "b" {
		t.Errorf("queue = %v, want [a b]", tbl.shots)
	}
	if tbl.Config().ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", tbl.Config().ScreenshotDir)
	}
}
