package sprite

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Placeholder builds a sheet of solid frames with a dark outline, each a
// slightly different shade so the animation is visible. It stands in for
// art that failed to load.
func Placeholder(columns, rows, frameW, frameH int) *Sheet {
	if columns < 1 {
		columns = 1
	}
	if rows < 1 {
		rows = 1
	}
	w, h := columns*frameW, rows*frameH
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	outline := color.RGBA{0, 0, 0, 255}

	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			shade := uint8(255 - (col*80)/columns)
			fill := color.RGBA{255, shade, 255 - shade, 255}
			ox, oy := col*frameW, row*frameH
			for y := 0; y < frameH; y++ {
				for x := 0; x < frameW; x++ {
					if x == 0 || y == 0 || x == frameW-1 || y == frameH-1 {
						img.Set(ox+x, oy+y, outline)
					} else {
						img.Set(ox+x, oy+y, fill)
					}
				}
			}
		}
	}

	return &Sheet{
		image:   ebiten.NewImageFromImage(img),
		columns: columns,
		rows:    rows,
		frameW:  frameW,
		frameH:  frameH,
	}
}
