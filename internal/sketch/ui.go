package sketch

import (
	"fmt"
	"math"
)

// drawHUD queues the frame-rate counter, load status and the parameter panel.
func (c *Controller) drawHUD(view FrameView, scene Scene) {
	s := float32(TextScale)
	lineH := int(float32(FontCellH)*s) + 4

	scene.DrawString(fmt.Sprintf("FPS: %d", int(math.Round(view.FPS))), 8, 8, s, Palette.Text)

	switch c.state {
	case StateLoading:
		scene.DrawString("loading samples...", 8, 8+lineH, s, Palette.Dim)
	case StateLoadFailed:
		scene.DrawString("no samples available", 8, 8+lineH, s, Palette.Error)
	}

	// Panel: top-right, one row per parameter.
	rows := c.PanelRows()
	y := 8
	for i, row := range rows {
		text := fmt.Sprintf("%s %s", row[0], row[1])
		col := Palette.Text
		prefix := "  "
		if i == c.panelRow {
			col = Palette.Highlight
			prefix = "> "
		}
		if i == RowSourceCount {
			col = Palette.Dim
		}
		text = prefix + text
		scene.DrawString(text, view.Width-TextWidth(text, s)-8, y, s, col)
		y += lineH
	}

	hint := "S sound  Up/Down range  Tab/Space panel  Esc quit"
	hs := s * 0.75
	scene.DrawString(hint, 8, view.Height-int(float32(FontCellH)*hs)-8, hs, Palette.Dim)
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}
