package view

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when vertices are written.
type Color struct {
	R, G, B, A float64
}

// lerp blends c toward o by t in [0, 1].
func (c Color) lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// rgba converts c to a premultiplied color.RGBA.
func (c Color) rgba() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// maxBatchVerts keeps vertex indices within uint16 range.
const maxBatchVerts = math.MaxUint16 - 64

// --- White pixel singleton (the view is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Every untextured triangle samples its center.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// batch accumulates solid-color triangles and submits them with as few
// DrawTriangles calls as the uint16 index range allows. Buffers grow to a
// high-water mark and are reused across frames.
type batch struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (b *batch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

// reserve flushes to dst if n more vertices would overflow the index range.
func (b *batch) reserve(dst *ebiten.Image, n int) {
	if len(b.verts)+n > maxBatchVerts {
		b.flush(dst)
	}
}

// flush draws the accumulated triangles onto dst and clears the batch.
func (b *batch) flush(dst *ebiten.Image) {
	if len(b.inds) == 0 {
		b.reset()
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(b.verts, b.inds, ensureWhitePixel(), op)
	b.reset()
}

func vertex(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}

// appendSegment adds a quad of the given width along the screen-space line
// from (x0, y0) to (x1, y1): 4 vertices, 6 indices.
func (b *batch) appendSegment(x0, y0, x1, y1, width float64, c Color) {
	nx, ny := perpendicular(x0, y0, x1, y1)
	halfW := width / 2

	v := uint16(len(b.verts))
	b.verts = append(b.verts,
		vertex(x0+nx*halfW, y0+ny*halfW, c),
		vertex(x0-nx*halfW, y0-ny*halfW, c),
		vertex(x1+nx*halfW, y1+ny*halfW, c),
		vertex(x1-nx*halfW, y1-ny*halfW, c),
	)
	b.inds = append(b.inds, v, v+1, v+2, v+1, v+3, v+2)
}

// appendDisc adds a fan-triangulated regular polygon approximating a circle:
// sides+1 vertices, 3*sides indices.
func (b *batch) appendDisc(cx, cy, radius float64, sides int, c Color) {
	hub := uint16(len(b.verts))
	b.verts = append(b.verts, vertex(cx, cy, c))
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		b.verts = append(b.verts, vertex(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle), c))
	}
	for i := 0; i < sides; i++ {
		next := (i+1)%sides + 1
		b.inds = append(b.inds, hub, hub+uint16(i+1), hub+uint16(next))
	}
}

// appendPolygon adds a fan-triangulated polygon with vertex 0 as the hub:
// N vertices, 3*(N-2) indices. Exact for convex outlines; concave outlines
// overdraw but stay inside their hull.
func (b *batch) appendPolygon(xs, ys []float64, c Color) {
	n := len(xs)
	if n < 3 {
		return
	}
	hub := uint16(len(b.verts))
	for i := 0; i < n; i++ {
		b.verts = append(b.verts, vertex(xs[i], ys[i], c))
	}
	for i := 0; i < n-2; i++ {
		b.inds = append(b.inds, hub, hub+uint16(i+1), hub+uint16(i+2))
	}
}

// perpendicular returns the unit left-perpendicular of the segment from
// (x0, y0) to (x1, y1).
func perpendicular(x0, y0, x1, y1 float64) (float64, float64) {
	dx := x1 - x0
	dy := y1 - y0
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
