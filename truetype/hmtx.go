// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Hhea holds the horizontal header metrics that are not glyph-specific.
type Hhea struct {
	Ascent, Descent, LineGap int16
	NumOfLongHorMetrics      uint16
}

// Hhea parses and returns the font's hhea table. It fails with
// TableNotFound if the font has none; hhea is an optional collaborator,
// not one of the core's required tables.
func (f *Font) Hhea() (Hhea, error) {
	if len(f.hhea) == 0 {
		return Hhea{}, tableNotFound("hhea")
	}
	if len(f.hhea) < 36 {
		return Hhea{}, invalidFontData("hhea table is %d bytes, want at least 36", len(f.hhea))
	}
	ascent, _ := readI16(f.hhea, 4)
	descent, _ := readI16(f.hhea, 6)
	lineGap, _ := readI16(f.hhea, 8)
	numOfLongHorMetrics, err := readU16(f.hhea, 34)
	if err != nil {
		return Hhea{}, err
	}
	return Hhea{
		Ascent:              ascent,
		Descent:             descent,
		LineGap:             lineGap,
		NumOfLongHorMetrics: numOfLongHorMetrics,
	}, nil
}

// HMetric is a glyph's horizontal advance and left-side bearing.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// HMetric returns the horizontal metrics for glyph index i. The first
// NumOfLongHorMetrics glyphs each have a full (advanceWidth, lsb) record in
// hmtx; later glyphs reuse the last advance width and take their lsb from
// the trailing array of bare int16 values.
func (f *Font) HMetric(i uint16) (HMetric, error) {
	if int(i) >= int(f.numGlyphs) {
		return HMetric{}, invalidGlyph(i)
	}
	if len(f.hmtx) == 0 {
		return HMetric{}, tableNotFound("hmtx")
	}
	hhea, err := f.Hhea()
	if err != nil {
		return HMetric{}, err
	}
	n := int(hhea.NumOfLongHorMetrics)
	if n == 0 {
		return HMetric{}, invalidFontData("hhea numOfLongHorMetrics is 0")
	}
	if int(i) < n {
		aw, err := readU16(f.hmtx, 4*int(i))
		if err != nil {
			return HMetric{}, err
		}
		lsb, err := readI16(f.hmtx, 4*int(i)+2)
		if err != nil {
			return HMetric{}, err
		}
		return HMetric{AdvanceWidth: aw, LeftSideBearing: lsb}, nil
	}
	aw, err := readU16(f.hmtx, 4*(n-1))
	if err != nil {
		return HMetric{}, err
	}
	lsb, err := readI16(f.hmtx, 4*n+2*(int(i)-n))
	if err != nil {
		return HMetric{}, err
	}
	return HMetric{AdvanceWidth: aw, LeftSideBearing: lsb}, nil
}

// Kerning returns the legacy format-0 kern adjustment between a glyph
// pair, or 0 if the font has no kern table or the pair is unlisted. Only
// the original, Windows-compatible format-0 horizontal kern subtable is
// understood; newer Apple kern formats are out of scope.
func (f *Font) Kerning(left, right uint16) (int16, error) {
	if len(f.kern) == 0 {
		return 0, nil
	}
	if len(f.kern) < 18 {
		return 0, invalidFontData("kern table is %d bytes, want at least 18", len(f.kern))
	}
	version, _ := readU16(f.kern, 0)
	if version != 0 {
		return 0, unsupportedFormat("kern table version %d", version)
	}
	nTables, _ := readU16(f.kern, 2)
	if nTables == 0 {
		return 0, nil
	}
	coverage, _ := readU16(f.kern, 8)
	if coverage != 0x0001 {
		return 0, unsupportedFormat("kern subtable coverage 0x%04x", coverage)
	}
	nPairs, err := readU16(f.kern, 10)
	if err != nil {
		return 0, err
	}
	target := uint32(left)<<16 | uint32(right)
	lo, hi := 0, int(nPairs)
	for lo < hi {
		mid := (lo + hi) / 2
		base := 18 + 6*mid
		pair, err := readU32(f.kern, base)
		if err != nil {
			return 0, err
		}
		switch {
		case pair < target:
			lo = mid + 1
		case pair > target:
			hi = mid
		default:
			value, err := readI16(f.kern, base+4)
			return value, err
		}
	}
	return 0, nil
}
