package sketch

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Origin     RGB
	Bounds     RGB
	Marker     RGB
	Text       RGB
	Highlight  RGB
	Dim        RGB
	Error      RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Origin:     RGB{R: 0, G: 255, B: 0},
	Bounds:     RGB{R: 100, G: 100, B: 100},
	Marker:     RGB{R: 255, G: 0, B: 0},
	Text:       RGB{R: 255, G: 255, B: 255},
	Highlight:  RGB{R: 255, G: 255, B: 100},
	Dim:        RGB{R: 150, G: 150, B: 150},
	Error:      RGB{R: 255, G: 80, B: 80},
}
