package hal

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// halfBlock is the glyph used to show two vertically stacked pixels in one
// terminal cell: foreground is the top pixel, background the bottom.
const halfBlock = '▀'

func cellStyle(img *image.RGBA, x, y int) tcell.Style {
	top := img.RGBAAt(x, y)
	bot := img.RGBAAt(x, y+1)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
		Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
}

// blitCells draws img onto screen, two pixel rows per cell row.
func blitCells(screen tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	cols, rows := screen.Size()
	for cy := 0; cy < rows && b.Min.Y+cy*2 < b.Max.Y; cy++ {
		y := b.Min.Y + cy*2
		for cx := 0; cx < cols && b.Min.X+cx < b.Max.X; cx++ {
			screen.SetContent(cx, cy, halfBlock, nil, cellStyle(img, b.Min.X+cx, y))
		}
	}
}

// drawStatus writes status on the last terminal row.
func drawStatus(screen tcell.Screen, status string) {
	cols, rows := screen.Size()
	if rows == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
}
