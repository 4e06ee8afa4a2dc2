package tui

import "strings"

// brailleBuf rasterizes onto a 2x4 dot grid per terminal cell. Each cell
// also remembers the strongest ink drawn into it, which picks its colour.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	ink  [][]ink
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	k := make([][]ink, h)
	for i := range m {
		m[i] = make([]uint8, w)
		k[i] = make([]ink, w)
	}
	return &brailleBuf{w: w, h: h, m: m, ink: k}
}

// dotBits maps a dot's position inside its cell to the braille bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, k ink) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
	if k > b.ink[cy][cx] {
		b.ink[cy][cx] = k
	}
}

// dot draws a 2x2 block centred on a micro-pixel.
func (b *brailleBuf) dot(mx, my int, k ink) {
	for dy := -1; dy <= 0; dy++ {
		for dx := -1; dx <= 0; dx++ {
			b.setPixel(mx+dx, my+dy, k)
		}
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, k ink) {
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= b.w*2 && x1 >= b.w*2) || (y0 >= b.h*4 && y1 >= b.h*4) {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, k)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) rect(x0, y0, x1, y1 int, k ink) {
	b.drawLineMicro(x0, y0, x1, y0, k)
	b.drawLineMicro(x1, y0, x1, y1, k)
	b.drawLineMicro(x1, y1, x0, y1, k)
	b.drawLineMicro(x0, y1, x0, y0, k)
}

// toLines renders every row, styling runs of cells that share an ink.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	var sb, run strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		run.Reset()
		cur := inkNone
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			k := b.ink[y][x]
			if mask == 0 {
				k = inkNone
			}
			if k != cur && run.Len() > 0 {
				sb.WriteString(inkStyles[cur].Render(run.String()))
				run.Reset()
			}
			cur = k
			if mask == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		if run.Len() > 0 {
			sb.WriteString(inkStyles[cur].Render(run.String()))
		}
		out[y] = sb.String()
	}
	return out
}
