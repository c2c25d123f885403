// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Vec2 is a pair of finite coordinates in the font's em-unit space, Y
// increasing upwards.
type Vec2 struct {
	X, Y float64
}

// EdgeKind tags the variant held by an EdgeSegment. Cubics never arise
// from this decoder, but the variant exists so the type round-trips
// through a downstream consumer's affine transforms.
type EdgeKind int

const (
	EdgeLinear EdgeKind = iota
	EdgeQuadratic
	EdgeCubic
)

// EdgeSegment is a tagged union of a line or Bézier curve segment. Only
// the fields relevant to Kind are meaningful; the rest are zero.
type EdgeSegment struct {
	Kind           EdgeKind
	P0, P1, P2, P3 Vec2
}

// Start returns the segment's starting point.
func (e EdgeSegment) Start() Vec2 {
	return e.P0
}

// End returns the segment's ending point, which varies by Kind.
func (e EdgeSegment) End() Vec2 {
	switch e.Kind {
	case EdgeLinear:
		return e.P1
	case EdgeQuadratic:
		return e.P2
	case EdgeCubic:
		return e.P3
	default:
		panic("truetype: edge segment holds an unrecognized kind")
	}
}

// Transform applies the affine map (x',y') = (a*x+c*y+dx, b*x+d*y+dy) to
// every point the segment carries, returning a new segment of the same
// kind.
func (e EdgeSegment) Transform(a, b, c, d, dx, dy float64) EdgeSegment {
	tp := func(p Vec2) Vec2 {
		return Vec2{a*p.X + c*p.Y + dx, b*p.X + d*p.Y + dy}
	}
	out := e
	out.P0 = tp(e.P0)
	switch e.Kind {
	case EdgeLinear:
		out.P1 = tp(e.P1)
	case EdgeQuadratic:
		out.P1 = tp(e.P1)
		out.P2 = tp(e.P2)
	case EdgeCubic:
		out.P1 = tp(e.P1)
		out.P2 = tp(e.P2)
		out.P3 = tp(e.P3)
	}
	return out
}

// Contour is an ordered, closed sequence of edges: the end of edge i
// equals the start of edge (i+1) mod len(Edges), and the start of edge 0
// equals the end of the last edge.
type Contour struct {
	Edges []EdgeSegment
}

// Transform returns a new Contour with every edge transformed by the
// given affine map.
func (c Contour) Transform(a, b, cc, d, dx, dy float64) Contour {
	edges := make([]EdgeSegment, len(c.Edges))
	for i, e := range c.Edges {
		edges[i] = e.Transform(a, b, cc, d, dx, dy)
	}
	return Contour{Edges: edges}
}

// Shape is an ordered set of closed contours: a whole decoded glyph
// outline, owning its edge and contour arrays.
type Shape struct {
	Contours []Contour
}

// Transform returns a new Shape with every contour transformed by the
// given affine map (a,b,c,d,dx,dy), where (x',y') = (a*x+c*y+dx,
// b*x+d*y+dy).
func (s Shape) Transform(a, b, c, d, dx, dy float64) Shape {
	contours := make([]Contour, len(s.Contours))
	for i, ct := range s.Contours {
		contours[i] = ct.Transform(a, b, c, d, dx, dy)
	}
	return Shape{Contours: contours}
}

// closeTolerance is the absolute coincidence tolerance used when deciding
// whether a contour's traversal has already returned to its starting
// point.
const closeTolerance = 1e-10

func almostEqual(p, q Vec2) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx > -closeTolerance && dx < closeTolerance &&
		dy > -closeTolerance && dy < closeTolerance
}
