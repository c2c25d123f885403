// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// maxCompositeRecursion bounds how deep a chain of composite glyph
// components may nest, defending against pathological or cyclic fonts.
const maxCompositeRecursion = 16

// Flag bits for a simple glyph's per-point flag byte.
const (
	flagOnCurve         = 0x01
	flagXShort          = 0x02
	flagYShort          = 0x04
	flagRepeat          = 0x08
	flagXSameOrPositive = 0x10
	flagYSameOrPositive = 0x20
)

// LoadGlyph decodes glyph index i into a Shape. A zero-length loca span
// returns an empty Shape (the glyph has no contours, e.g. a space).
// Composite glyphs are resolved recursively, transforming and appending
// each component's contours into the result.
func (f *Font) LoadGlyph(i uint16) (Shape, error) {
	return f.loadGlyph(i, 0, nil)
}

// loadGlyph is the recursive entry point shared by simple and composite
// decoding. visited tracks the glyph indices already on the current
// recursion path, to reject cyclic composite references; it is nil at
// the top-level call and allocated lazily only once a composite glyph
// needs to track it.
func (f *Font) loadGlyph(i uint16, depth int, visited map[uint16]bool) (Shape, error) {
	if depth > maxCompositeRecursion {
		return Shape{}, invalidFontData("composite glyph recursion exceeds depth %d", maxCompositeRecursion)
	}
	if visited[i] {
		return Shape{}, invalidFontData("cyclic composite glyph reference to glyph %d", i)
	}

	rng, err := f.locaRange(i)
	if err != nil {
		return Shape{}, err
	}
	if rng.Length == 0 {
		return Shape{}, nil
	}
	span := f.glyf[rng.Offset : rng.Offset+rng.Length]

	numContours, err := readI16(span, 0)
	if err != nil {
		return Shape{}, err
	}
	switch {
	case numContours >= 0:
		return decodeSimpleGlyph(span, int(numContours))
	case numContours == -1:
		next := make(map[uint16]bool, len(visited)+1)
		for k := range visited {
			next[k] = true
		}
		next[i] = true
		return f.decodeCompositeGlyph(span, depth, next)
	default:
		return Shape{}, invalidFontData("glyph %d has reserved negative contour count %d", i, numContours)
	}
}

// glyfPoint is a decoded outline point before contour assembly.
type glyfPoint struct {
	X, Y    float64
	OnCurve bool
}

// decodeSimpleGlyph decodes a simple glyph's header, run-length-encoded
// flags, and delta-encoded coordinates, then assembles its contours.
func decodeSimpleGlyph(span []byte, numContours int) (Shape, error) {
	offset := 10 // numberOfContours(2) + xMin/yMin/xMax/yMax(8)

	endPts := make([]uint16, numContours)
	for i := range endPts {
		v, err := readU16(span, offset)
		if err != nil {
			return Shape{}, err
		}
		endPts[i] = v
		offset += 2
	}
	if numContours == 0 {
		return Shape{}, nil
	}

	numPoints := int(endPts[numContours-1]) + 1
	if numPoints > 65536 {
		return Shape{}, invalidFontData("glyph has %d points, exceeding the 65536 limit", numPoints)
	}

	instrLen, err := readU16(span, offset)
	if err != nil {
		return Shape{}, err
	}
	offset += 2 + int(instrLen) // skip the hinting instruction bytes

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		c, err := readU8(span, offset)
		if err != nil {
			return Shape{}, err
		}
		offset++
		flags[i] = c
		i++
		if c&flagRepeat != 0 {
			repeat, err := readU8(span, offset)
			if err != nil {
				return Shape{}, err
			}
			offset++
			for ; repeat > 0 && i < numPoints; repeat-- {
				flags[i] = c
				i++
			}
		}
	}

	xs := make([]float64, numPoints)
	var x int32
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		switch {
		case fl&flagXShort != 0:
			d, err := readU8(span, offset)
			if err != nil {
				return Shape{}, err
			}
			offset++
			if fl&flagXSameOrPositive != 0 {
				x += int32(d)
			} else {
				x -= int32(d)
			}
		case fl&flagXSameOrPositive == 0:
			d, err := readI16(span, offset)
			if err != nil {
				return Shape{}, err
			}
			offset += 2
			x += int32(d)
		}
		xs[i] = float64(x)
	}

	ys := make([]float64, numPoints)
	var y int32
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		switch {
		case fl&flagYShort != 0:
			d, err := readU8(span, offset)
			if err != nil {
				return Shape{}, err
			}
			offset++
			if fl&flagYSameOrPositive != 0 {
				y += int32(d)
			} else {
				y -= int32(d)
			}
		case fl&flagYSameOrPositive == 0:
			d, err := readI16(span, offset)
			if err != nil {
				return Shape{}, err
			}
			offset += 2
			y += int32(d)
		}
		ys[i] = float64(y)
	}

	contours := make([]Contour, numContours)
	start := 0
	for ci, end := range endPts {
		e := int(end)
		pts := make([]glyfPoint, e-start+1)
		for j := range pts {
			k := start + j
			pts[j] = glyfPoint{X: xs[k], Y: ys[k], OnCurve: flags[k]&flagOnCurve != 0}
		}
		contours[ci] = buildContour(pts)
		start = e + 1
	}
	return Shape{Contours: contours}, nil
}

// buildContour walks a contour's on-/off-curve point sequence into closed
// edges.
func buildContour(pts []glyfPoint) Contour {
	n := len(pts)
	if n < 2 {
		// A single point (or none) cannot form an edge; this is the
		// degenerate, zero-width case, treated as an empty contour.
		return Contour{}
	}

	firstOn := -1
	for i, p := range pts {
		if p.OnCurve {
			firstOn = i
			break
		}
	}

	var start Vec2
	var walk []glyfPoint
	if firstOn >= 0 {
		rotated := make([]glyfPoint, 0, n)
		rotated = append(rotated, pts[firstOn:]...)
		rotated = append(rotated, pts[:firstOn]...)
		start = Vec2{rotated[0].X, rotated[0].Y}
		walk = rotated[1:]
	} else {
		start = Vec2{(pts[0].X + pts[1].X) / 2, (pts[0].Y + pts[1].Y) / 2}
		// The synthesized start lies between points 0 and 1, so the walk
		// begins at point 1 and wraps around to point 0 last.
		walk = make([]glyfPoint, 0, n)
		walk = append(walk, pts[1:]...)
		walk = append(walk, pts[0])
	}

	edges := make([]EdgeSegment, 0, n)
	cur := start
	var pendingControl *Vec2

	for _, p := range walk {
		pv := Vec2{p.X, p.Y}
		if p.OnCurve {
			if pendingControl == nil {
				edges = append(edges, EdgeSegment{Kind: EdgeLinear, P0: cur, P1: pv})
			} else {
				edges = append(edges, EdgeSegment{Kind: EdgeQuadratic, P0: cur, P1: *pendingControl, P2: pv})
				pendingControl = nil
			}
			cur = pv
		} else {
			if pendingControl == nil {
				c := pv
				pendingControl = &c
			} else {
				mid := Vec2{(pendingControl.X + pv.X) / 2, (pendingControl.Y + pv.Y) / 2}
				edges = append(edges, EdgeSegment{Kind: EdgeQuadratic, P0: cur, P1: *pendingControl, P2: mid})
				cur = mid
				c := pv
				pendingControl = &c
			}
		}
	}

	// Close the contour. A dangling off-curve control emits a closing
	// quadratic back to start, unless it is already coincident with the
	// current walk position.
	if pendingControl != nil {
		if !almostEqual(*pendingControl, cur) {
			edges = append(edges, EdgeSegment{Kind: EdgeQuadratic, P0: cur, P1: *pendingControl, P2: start})
			cur = start
		}
	}
	if !almostEqual(cur, start) {
		edges = append(edges, EdgeSegment{Kind: EdgeLinear, P0: cur, P1: start})
	}

	return Contour{Edges: edges}
}
