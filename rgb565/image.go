package rgb565

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// PanelSize is the module display's edge length in pixels.
const PanelSize = 128

// Scale resamples img to w x h with Catmull-Rom interpolation.
func Scale(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// EncodeImage converts img to a big-endian RGB565 pixel stream, row-major
// from the top-left. Transparency is composited over the background color
// first.
func EncodeImage(img image.Image, background color.Color) []byte {
	return encode(img, background, func(r, g, b uint8) uint16 {
		return Encode(r, g, b)
	})
}

// EncodeImageQuantized is EncodeImage with every pixel snapped to the
// palette. An empty or nil palette means DefaultPalette.
func EncodeImageQuantized(img image.Image, background color.Color, palette []uint16) []byte {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return encode(img, background, func(r, g, b uint8) uint16 {
		return Quantize(r, g, b, palette)
	})
}

func encode(img image.Image, background color.Color, pixel func(r, g, b uint8) uint16) []byte {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	data := make([]byte, 0, bounds.Dx()*bounds.Dy()*2)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := flat.RGBAAt(x, y)
			data = AppendBigEndian(data, pixel(c.R, c.G, c.B))
		}
	}
	return data
}
