package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// renderDepthFrame draws img to the terminal using upper-half-block
// characters, two source rows per terminal row. ultraviolet's
// Screen/Cell types aren't used here: occludebench drives the terminal
// itself with raw truecolor escapes so the depth visualization doesn't
// depend on a color framebuffer at all.
func renderDepthFrame(w *strings.Builder, img *image.RGBA, cols, rows int) {
	w.WriteString("\x1b[H")
	bounds := img.Bounds()
	for row := 0; row < rows; row++ {
		topY := bounds.Min.Y + row*2
		botY := topY + 1
		for col := 0; col < cols; col++ {
			x := bounds.Min.X + col
			top := sampleRGBA(img, x, topY)
			bot := sampleRGBA(img, x, botY)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}
		w.WriteString("\x1b[0m\r\n")
	}
}

func sampleRGBA(img *image.RGBA, x, y int) color.RGBA {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return color.RGBA{}
	}
	return img.RGBAAt(x, y)
}
