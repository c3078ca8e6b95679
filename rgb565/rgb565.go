package rgb565

// Encode packs an 8-bit RGB triple into RGB565 by truncation: the top 5,
// 6, and 5 bits of each channel, packed R:G:B high to low.
func Encode(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Decode widens an RGB565 value back to 8-bit channels by bit replication:
// the high bits of each channel are repeated into the low bits. This is not
// the inverse of Encode; the round trip through Encode is lossy.
func Decode(v uint16) (r, g, b uint8) {
	r5 := uint8(v >> 11 & 0x1F)
	g6 := uint8(v >> 5 & 0x3F)
	b5 := uint8(v & 0x1F)
	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return r, g, b
}

// AppendBigEndian appends the wire encoding of v to dst. Display payloads
// carry RGB565 big-endian.
func AppendBigEndian(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}

// DefaultPalette is the module's stock 3-color palette: green, blue, red.
var DefaultPalette = []uint16{
	0x07E0, // green
	0x001F, // blue
	0xF800, // red
}

// Quantize snaps an 8-bit RGB triple to the nearest palette entry by
// squared Euclidean distance in 8-bit RGB space. Ties go to the first
// palette entry reaching the minimum, so the result is stable across runs
// but depends on palette order. An empty palette falls back to
// DefaultPalette.
func Quantize(r, g, b uint8, palette []uint16) uint16 {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	best := palette[0]
	bestDist := -1
	for _, entry := range palette {
		pr, pg, pb := Decode(entry)
		dist := sqDist(r, pr) + sqDist(g, pg) + sqDist(b, pb)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = entry
		}
	}
	return best
}

func sqDist(a, b uint8) int {
	d := int(a) - int(b)
	return d * d
}
