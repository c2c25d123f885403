// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// glyphRange is the byte range inside glyf that holds glyph i's outline
// data.
type glyphRange struct {
	Offset, Length uint32
}

// locaRange translates a glyph index into a byte range inside glyf via
// the loca table. Short loca stores two consecutive uint16 values scaled
// by 2; long loca stores them directly as uint32. A zero-length range is
// legal (an empty glyph, such as a space).
func (f *Font) locaRange(i uint16) (glyphRange, error) {
	if int(i) >= int(f.numGlyphs) {
		return glyphRange{}, invalidGlyph(i)
	}

	var g0, g1 uint32
	if f.indexToLocFormat == 0 {
		a, err := readU16(f.loca, 2*int(i))
		if err != nil {
			return glyphRange{}, err
		}
		b, err := readU16(f.loca, 2*int(i)+2)
		if err != nil {
			return glyphRange{}, err
		}
		g0, g1 = uint32(a)*2, uint32(b)*2
	} else {
		a, err := readU32(f.loca, 4*int(i))
		if err != nil {
			return glyphRange{}, err
		}
		b, err := readU32(f.loca, 4*int(i)+4)
		if err != nil {
			return glyphRange{}, err
		}
		g0, g1 = a, b
	}
	if g1 < g0 {
		return glyphRange{}, invalidFontData("loca offsets decrease at glyph %d: %d > %d", i, g0, g1)
	}
	if int(g1) > len(f.glyf) {
		return glyphRange{}, outOfBounds("glyph %d span [%d:%d] exceeds glyf table of length %d", i, g0, g1, len(f.glyf))
	}
	return glyphRange{Offset: g0, Length: g1 - g0}, nil
}
