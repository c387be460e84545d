package hal

import "testing"

func TestRGB565PacksPureChannels(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tt := range tests {
		if got := RGB565(tt.r, tt.g, tt.b); got != tt.want {
			t.Fatalf("RGB565(%d,%d,%d)=%#04x want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestRGB888From565RoundTripsExtremes(t *testing.T) {
	for _, c := range []struct{ r, g, b uint8 }{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
	} {
		r, g, b := RGB888From565(RGB565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("round trip (%d,%d,%d) -> (%d,%d,%d)", c.r, c.g, c.b, r, g, b)
		}
	}
}

func TestRGB888From565LossyMidtones(t *testing.T) {
	// 5/6 bit quantization loses at most the dropped low bits.
	r, g, b := RGB888From565(RGB565(100, 150, 200))
	if d := int(r) - 100; d < -8 || d > 8 {
		t.Fatalf("red drift %d", d)
	}
	if d := int(g) - 150; d < -4 || d > 4 {
		t.Fatalf("green drift %d", d)
	}
	if d := int(b) - 200; d < -8 || d > 8 {
		t.Fatalf("blue drift %d", d)
	}
}
