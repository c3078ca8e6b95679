package rgb565

// ColorBars generates a w x h test image of vertical palette-colored bars,
// as a big-endian RGB565 stream.
func ColorBars(w, h int) []byte {
	barWidth := w / 8
	if barWidth == 0 {
		barWidth = 1
	}

	data := make([]byte, 0, w*h*2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			color := DefaultPalette[(x/barWidth)%len(DefaultPalette)]
			data = AppendBigEndian(data, color)
		}
	}
	return data
}

// AnimatedBars generates frames of scrolling bars for the animation format:
// frames concatenated back to back, each a w x h big-endian RGB565 image,
// shifting two pixels per frame.
func AnimatedBars(w, h, frames int) []byte {
	data := make([]byte, 0, w*h*frames*2)
	for frame := 0; frame < frames; frame++ {
		offset := frame * 2
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				color := DefaultPalette[((x+offset)/16)%len(DefaultPalette)]
				data = AppendBigEndian(data, color)
			}
		}
	}
	return data
}
