package intensity

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered list of hex colors from most intense (index 0) to
// least intense (last index, also used for days without data).
type Palette []string

// Empty returns the color used for cells without an observation.
func (p Palette) Empty() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// BuildPalette lightens baseColor in bucketCount steps. Color i keeps the hue
// and saturation of the base and moves its HSL lightness i/bucketCount of the
// way towards white, so index 0 is the base color itself.
func BuildPalette(baseColor string, bucketCount int) (Palette, error) {
	if bucketCount < MinBuckets {
		return nil, &InvalidBucketCountError{Count: bucketCount}
	}
	base, err := parseColor(baseColor)
	if err != nil {
		return nil, err
	}

	h, s, l := base.Hsl()
	out := make(Palette, bucketCount)
	out[0] = base.Hex()
	for i := 1; i < bucketCount; i++ {
		f := float64(i) / float64(bucketCount)
		out[i] = colorful.Hsl(h, s, l+(1-l)*f).Clamped().Hex()
	}
	return out, nil
}

// ResolvePalette returns override when one is given, otherwise the palette
// built from baseColor. An override must hold exactly bucketCount colors.
func ResolvePalette(baseColor string, bucketCount int, override []string) (Palette, error) {
	if len(override) == 0 {
		return BuildPalette(baseColor, bucketCount)
	}
	if bucketCount < MinBuckets {
		return nil, &InvalidBucketCountError{Count: bucketCount}
	}
	if len(override) != bucketCount {
		return nil, &PaletteSizeError{Want: bucketCount, Got: len(override)}
	}

	out := make(Palette, len(override))
	for i, s := range override {
		c, err := parseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = c.Hex()
	}
	return out, nil
}

func parseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, &InvalidColorError{Color: s, cause: err}
	}
	return c, nil
}
