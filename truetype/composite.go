// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Flag bits for a composite glyph's per-component flag word.
const (
	flagArg1And2AreWords   = 0x0001
	flagArgsAreXYValues    = 0x0002
	flagRoundXYToGrid      = 0x0004
	flagWeHaveAScale       = 0x0008
	flagMoreComponents     = 0x0020
	flagWeHaveAnXAndYScale = 0x0040
	flagWeHaveATwoByTwo    = 0x0080
)

// decodeCompositeGlyph decodes a composite glyph's component records,
// recursively decoding and affine-transforming each referenced child
// glyph, and appends the transformed contours into a single Shape.
func (f *Font) decodeCompositeGlyph(span []byte, depth int, visited map[uint16]bool) (Shape, error) {
	offset := 10 // numberOfContours(2) + xMin/yMin/xMax/yMax(8)
	var contours []Contour

	for {
		flags, err := readU16(span, offset)
		if err != nil {
			return Shape{}, err
		}
		glyphIndex, err := readU16(span, offset+2)
		if err != nil {
			return Shape{}, err
		}
		offset += 4

		var dx, dy float64
		if flags&flagArg1And2AreWords != 0 {
			a1, err := readI16(span, offset)
			if err != nil {
				return Shape{}, err
			}
			a2, err := readI16(span, offset+2)
			if err != nil {
				return Shape{}, err
			}
			offset += 4
			if flags&flagArgsAreXYValues != 0 {
				dx, dy = float64(a1), float64(a2)
			}
		} else {
			a1, err := readI8(span, offset)
			if err != nil {
				return Shape{}, err
			}
			a2, err := readI8(span, offset+1)
			if err != nil {
				return Shape{}, err
			}
			offset += 2
			if flags&flagArgsAreXYValues != 0 {
				dx, dy = float64(a1), float64(a2)
			}
		}
		// When ARGS_ARE_XY_VALUES is clear, arg1/arg2 are point-matching
		// indices; point matching is out of scope, so such components
		// are treated as an untranslated (dx=dy=0) placement.

		a, b, c, d := 1.0, 0.0, 0.0, 1.0
		switch {
		case flags&flagWeHaveATwoByTwo != 0:
			v0, err := readI16(span, offset)
			if err != nil {
				return Shape{}, err
			}
			v1, err := readI16(span, offset+2)
			if err != nil {
				return Shape{}, err
			}
			v2, err := readI16(span, offset+4)
			if err != nil {
				return Shape{}, err
			}
			v3, err := readI16(span, offset+6)
			if err != nil {
				return Shape{}, err
			}
			offset += 8
			a, b, c, d = f2dot14(v0), f2dot14(v1), f2dot14(v2), f2dot14(v3)
		case flags&flagWeHaveAnXAndYScale != 0:
			v0, err := readI16(span, offset)
			if err != nil {
				return Shape{}, err
			}
			v1, err := readI16(span, offset+2)
			if err != nil {
				return Shape{}, err
			}
			offset += 4
			a, d = f2dot14(v0), f2dot14(v1)
		case flags&flagWeHaveAScale != 0:
			v0, err := readI16(span, offset)
			if err != nil {
				return Shape{}, err
			}
			offset += 2
			a, d = f2dot14(v0), f2dot14(v0)
		}

		child, err := f.loadGlyph(glyphIndex, depth+1, visited)
		if err != nil {
			return Shape{}, err
		}
		transformed := child.Transform(a, b, c, d, dx, dy)
		contours = append(contours, transformed.Contours...)

		if flags&flagMoreComponents == 0 {
			break
		}
	}

	// ROUND_XY_TO_GRID, USE_MY_METRICS, WE_HAVE_INSTRUCTIONS, and scaled
	// component offsets are out-of-scope knobs; we stop reading as soon
	// as the component list ends, so any trailing instruction block is
	// never touched and can't be mistaken for another component header.
	return Shape{Contours: contours}, nil
}
