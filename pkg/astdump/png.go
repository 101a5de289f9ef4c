package astdump

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const margin = 8

var (
	background = color.RGBA{0x1d, 0x1f, 0x21, 0xff}
	foreground = color.RGBA{0xc5, 0xc8, 0xc6, 0xff}
	edgeColor  = color.RGBA{0x81, 0xa2, 0xbe, 0xff}
)

// Render draws the text outline of trees onto an RGBA image using the
// fixed 7x13 bitmap face. Edge labels ("left:", "init:") are tinted.
func Render(trees []*Tree) *image.RGBA {
	var buf bytes.Buffer
	_ = Text(&buf, trees)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	face := basicfont.Face7x13
	lineHeight := face.Height

	width := 0
	for _, l := range lines {
		if w := font.MeasureString(face, l).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*margin, len(lines)*lineHeight+2*margin))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Face: face}
	for i, l := range lines {
		d.Dot = fixed.P(margin, margin+i*lineHeight+face.Ascent)

		body := l
		if idx := strings.Index(l, ": "); idx >= 0 {
			d.Src = image.NewUniform(edgeColor)
			d.DrawString(l[:idx+2])
			body = l[idx+2:]
		}
		d.Src = image.NewUniform(foreground)
		d.DrawString(body)
	}
	return img
}

// PNG encodes Render(trees) to w.
func PNG(w io.Writer, trees []*Tree) error {
	return png.Encode(w, Render(trees))
}

// SavePNG writes the rendered tree to filename.
func SavePNG(filename string, trees []*Tree) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return PNG(f, trees)
}
