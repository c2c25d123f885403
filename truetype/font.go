// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Font is a parsed view over an sfnt font buffer. A Font is immutable once
// returned by Parse: every field is computed once, up front or lazily
// without mutation, so a single Font may be shared and queried
// concurrently across goroutines, each decoding independent glyphs into
// their own owned Shape.
type Font struct {
	dir *TableDirectory

	numGlyphs        uint16
	indexToLocFormat int // 0 = short loca, 1 = long loca
	unitsPerEm       uint16

	head, maxp, loca, glyf []byte
	hhea, hmtx, kern       []byte // optional; nil if absent

	cmap *Cmap
}

// Parse reads the sfnt table directory and the tables the core always
// touches: head, maxp, loca, glyf, and cmap. hhea, hmtx, and kern are
// optional collaborators; their presence is recorded but their contents
// are parsed lazily, on first use, by Hhea, HMetric, and Kerning.
func Parse(data []byte) (*Font, error) {
	dir, err := ParseTableDirectory(data)
	if err != nil {
		return nil, err
	}
	f := &Font{dir: dir}

	head, ok := dir.Find("head")
	if !ok {
		return nil, tableNotFound("head")
	}
	if err := f.parseHead(head); err != nil {
		return nil, err
	}

	maxp, ok := dir.Find("maxp")
	if !ok {
		return nil, tableNotFound("maxp")
	}
	if err := f.parseMaxp(maxp); err != nil {
		return nil, err
	}

	loca, ok := dir.Find("loca")
	if !ok {
		return nil, tableNotFound("loca")
	}
	f.loca = loca

	glyf, ok := dir.Find("glyf")
	if !ok {
		return nil, tableNotFound("glyf")
	}
	f.glyf = glyf

	cmapData, ok := dir.Find("cmap")
	if !ok {
		return nil, tableNotFound("cmap")
	}
	cm, err := parseCmap(cmapData)
	if err != nil {
		return nil, err
	}
	f.cmap = cm

	f.hhea, _ = dir.Find("hhea")
	f.hmtx, _ = dir.Find("hmtx")
	f.kern, _ = dir.Find("kern")

	return f, nil
}

func (f *Font) parseHead(head []byte) error {
	if len(head) < 54 {
		return invalidFontData("head table is %d bytes, want at least 54", len(head))
	}
	unitsPerEm, err := readU16(head, 18)
	if err != nil {
		return err
	}
	f.unitsPerEm = unitsPerEm
	indexToLocFormat, err := readI16(head, 50)
	if err != nil {
		return err
	}
	switch indexToLocFormat {
	case 0, 1:
		f.indexToLocFormat = int(indexToLocFormat)
	default:
		return invalidFontData("indexToLocFormat %d is neither 0 nor 1", indexToLocFormat)
	}
	return nil
}

func (f *Font) parseMaxp(maxp []byte) error {
	numGlyphs, err := readU16(maxp, 4)
	if err != nil {
		return err
	}
	f.numGlyphs = numGlyphs
	return nil
}

// NumGlyphs returns the font's glyph count, as read from maxp.
func (f *Font) NumGlyphs() int {
	return int(f.numGlyphs)
}

// UnitsPerEm returns the number of FUnits in the font's em-square, as read
// from head.
func (f *Font) UnitsPerEm() int {
	return int(f.unitsPerEm)
}

// Lookup translates a Unicode code point to a glyph index using the
// font's resolved cmap subtable. Unmapped code points return glyph 0,
// .notdef.
func (f *Font) Lookup(codePoint uint32) (uint16, error) {
	return f.cmap.Lookup(codePoint)
}
