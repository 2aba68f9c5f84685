package raster

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{R: 0xFF, A: 0xFF}, false},
		{"00ff00", color.RGBA{G: 0xFF, A: 0xFF}, false},
		{"0x0000FF80", color.RGBA{B: 0xFF, A: 0x80}, false},
		{" #00000080 ", color.RGBA{A: 0x80}, false},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got, want := Hex(0x008080), (color.RGBA{G: 0x80, B: 0x80, A: 0xFF}); got != want {
		t.Errorf("Hex(0x008080) = %v, want %v", got, want)
	}
}

func TestFace(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	img, err := Face(40, FaceStyle{Fill: red})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(20, 20); got != red {
		t.Errorf("centre pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestFaceWithLabel(t *testing.T) {
	img, err := Face(64, FaceStyle{
		Fill:       color.White,
		Ring:       color.Black,
		RingWidth:  3,
		Label:      "7",
		LabelColor: color.Black,
	})
	if err != nil {
		t.Fatal(err)
	}
	dark := 0
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			if c := img.RGBAAt(x, y); c.R < 0x80 && c.A > 0 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("label left no marks inside the face")
	}
}

func TestFaceInvalidSize(t *testing.T) {
	if _, err := Face(0, FaceStyle{}); err == nil {
		t.Fatal("zero size should fail")
	}
}

func TestIcons(t *testing.T) {
	names := IconNames()
	for _, want := range []string{"camera", CloseIcon, "mail", "music"} {
		found := false
		for _, n := range names {
			found = found || n == want
		}
		if !found {
			t.Errorf("icon %q not embedded (have %v)", want, names)
		}
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			img, err := Icon(name, 48, 48)
			if err != nil {
				t.Fatal(err)
			}
			opaque := 0
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] > 0 {
					opaque++
				}
			}
			if opaque == 0 {
				t.Error("icon rasterized to a blank image")
			}
		})
	}
}

func TestIconErrors(t *testing.T) {
	if _, err := Icon("nope", 24, 24); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("unknown icon error = %v", err)
	}
	if _, err := Icon(CloseIcon, 0, 24); err == nil {
		t.Error("zero width should fail")
	}
}
