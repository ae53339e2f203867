package render

// Color is a straight-alpha RGBA color with components in [0, 1]. It
// implements color.Color, so it can be passed anywhere the image/color
// package is expected, and unmarshals from a four-element YAML list.
type Color [4]float32

// RGBA implements color.Color. Components are clamped to [0, 1] and
// premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c[3])
	r = uint32(clamp01(c[0]) * alpha * 0xffff)
	g = uint32(clamp01(c[1]) * alpha * 0xffff)
	b = uint32(clamp01(c[2]) * alpha * 0xffff)
	a = uint32(alpha * 0xffff)
	return r, g, b, a
}

// WithAlpha returns c with its alpha multiplied by f.
func (c Color) WithAlpha(f float32) Color {
	c[3] *= f
	return c
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	// White is opaque white.
	White = Color{1, 1, 1, 1}
	// Black is opaque black.
	Black = Color{0, 0, 0, 1}
	// DebugOutline is the stroke color for debug outlines.
	DebugOutline = Color{1, 0, 0, 1}
)
