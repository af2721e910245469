package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{"full with hash", "#FF8040", color.NRGBA{255, 128, 64, 255}},
		{"full without hash", "00ff00", color.NRGBA{0, 255, 0, 255}},
		{"shorthand", "#03F", color.NRGBA{0x00, 0x33, 0xFF, 255}},
		{"shorthand lower", "abc", color.NRGBA{0xAA, 0xBB, 0xCC, 255}},
		{"with alpha", "#FF000080", color.NRGBA{255, 0, 0, 128}},
		{"surrounding space", "  #000000 ", color.NRGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, hex := range []string{"", "#", "#12", "#12345", "#GG0000", "#FF0000ZZ", "red"} {
		t.Run(hex, func(t *testing.T) {
			if _, err := ParseHexColor(hex); err == nil {
				t.Errorf("ParseHexColor(%q) should fail", hex)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	if got := HexString(color.NRGBA{255, 128, 64, 10}); got != "#FF8040" {
		t.Errorf("HexString: got %s, want #FF8040", got)
	}
}

func TestLabelColor(t *testing.T) {
	if LabelColor(5) != LabelColor(5) {
		t.Error("LabelColor is not deterministic")
	}

	seen := make(map[color.NRGBA]regions.Label)
	for l := regions.Label(1); l <= 64; l++ {
		c := LabelColor(l)
		if c.A != 255 {
			t.Errorf("label %d: alpha %d, want 255", l, c.A)
		}
		if prev, dup := seen[c]; dup {
			t.Errorf("labels %d and %d share color %v", prev, l, c)
		}
		seen[c] = l
	}

	// neighbors in discovery order must be easy to tell apart
	a, b := LabelColor(1), LabelColor(2)
	diff := absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
	if diff < 60 {
		t.Errorf("labels 1 and 2 too similar: %v vs %v", a, b)
	}
}

func TestLabelColor_LargeAndNegative(t *testing.T) {
	for _, l := range []regions.Label{-7, 256, 1 << 20} {
		if c := LabelColor(l); c.A != 255 {
			t.Errorf("label %d: alpha %d, want 255", l, c.A)
		}
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
