// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Cmap is a resolved Unicode cmap subtable: a format tag and a borrowed
// byte range. It decodes nothing eagerly; every Lookup re-reads the
// subtable, carrying raw table slices rather than a parsed structure.
type Cmap struct {
	format int // 4 or 12
	data   []byte
}

// isUnicodeCapable classifies a cmap encoding record's (platformID,
// encodingID) pair as Unicode-capable.
func isUnicodeCapable(platformID, encodingID uint16) bool {
	switch platformID {
	case 0: // Unicode
		switch encodingID {
		case 0, 1, 2, 3, 4:
			return true
		}
	case 3: // Windows
		switch encodingID {
		case 1, 10:
			return true
		}
	}
	return false
}

// parseCmap reads the cmap table header, enumerates encoding records, and
// selects a Unicode-capable subtable in format 4 or 12, preferring 12 over
// 4 regardless of encoding-record order.
func parseCmap(data []byte) (*Cmap, error) {
	version, err := readU16(data, 0)
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, unsupportedFormat("cmap version %d", version)
	}
	numTables, err := readU16(data, 2)
	if err != nil {
		return nil, err
	}

	var offset4, offset12 uint32
	var have4, have12 bool
	for i := 0; i < int(numTables); i++ {
		base := 4 + 8*i
		platformID, err := readU16(data, base)
		if err != nil {
			return nil, err
		}
		encodingID, err := readU16(data, base+2)
		if err != nil {
			return nil, err
		}
		if !isUnicodeCapable(platformID, encodingID) {
			continue
		}
		subtableOffset, err := readU32(data, base+4)
		if err != nil {
			return nil, err
		}
		format, err := readU16(data, int(subtableOffset))
		if err != nil {
			return nil, err
		}
		switch format {
		case 4:
			offset4, have4 = subtableOffset, true
		case 12:
			offset12, have12 = subtableOffset, true
		}
	}

	switch {
	case have12:
		return &Cmap{format: 12, data: data[offset12:]}, nil
	case have4:
		return &Cmap{format: 4, data: data[offset4:]}, nil
	default:
		return nil, unsupportedFormat("no Unicode cmap subtable in format 4 or 12")
	}
}

// Lookup dispatches to the resolved subtable's format and returns the
// glyph index for codePoint, or 0 (.notdef) if unmapped.
func (c *Cmap) Lookup(codePoint uint32) (uint16, error) {
	switch c.format {
	case 4:
		return lookupFormat4(c.data, codePoint)
	case 12:
		return lookupFormat12(c.data, codePoint)
	default:
		panic("truetype: cmap holds an unrecognized format")
	}
}

// lookupFormat4 implements the format-4 segment-delta mapping. data
// begins at the subtable's format field.
func lookupFormat4(data []byte, codePoint uint32) (uint16, error) {
	if codePoint > 0xFFFF {
		return 0, nil
	}
	segCountX2, err := readU16(data, 6)
	if err != nil {
		return 0, err
	}
	segCount := int(segCountX2 / 2)

	endCodeBase := 14
	startCodeBase := endCodeBase + 2*segCount + 2 // +2 skips reservedPad
	idDeltaBase := startCodeBase + 2*segCount
	idRangeOffsetBase := idDeltaBase + 2*segCount

	cp := uint16(codePoint)
	// Binary search endCode for the smallest index s with endCode[s] >= cp.
	lo, hi := 0, segCount
	for lo < hi {
		mid := (lo + hi) / 2
		endCode, err := readU16(data, endCodeBase+2*mid)
		if err != nil {
			return 0, err
		}
		if endCode < cp {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == segCount {
		return 0, nil
	}
	s := lo

	startCode, err := readU16(data, startCodeBase+2*s)
	if err != nil {
		return 0, err
	}
	if cp < startCode {
		return 0, nil
	}
	idDelta, err := readI16(data, idDeltaBase+2*s)
	if err != nil {
		return 0, err
	}
	idRangeOffset, err := readU16(data, idRangeOffsetBase+2*s)
	if err != nil {
		return 0, err
	}

	if idRangeOffset == 0 {
		return uint16(cp + uint16(idDelta)), nil
	}

	// The idRangeOffset is a byte offset measured from its own storage
	// location in the table, not from the start of the subtable: the
	// pointer-arithmetic idiom is inherited from the file format.
	glyphAddr := idRangeOffsetBase + 2*s + int(idRangeOffset) + 2*int(cp-startCode)
	glyphID, err := readU16(data, glyphAddr)
	if err != nil {
		return 0, err
	}
	if glyphID == 0 {
		return 0, nil
	}
	return uint16(glyphID + uint16(idDelta)), nil
}

// lookupFormat12 implements the format-12 segmented-coverage mapping.
// data begins at the subtable's format field.
func lookupFormat12(data []byte, codePoint uint32) (uint16, error) {
	nGroups, err := readU32(data, 12)
	if err != nil {
		return 0, err
	}
	const groupBase = 16
	const groupSize = 12

	lo, hi := 0, int(nGroups)
	for lo < hi {
		mid := (lo + hi) / 2
		base := groupBase + groupSize*mid
		startCharCode, err := readU32(data, base)
		if err != nil {
			return 0, err
		}
		endCharCode, err := readU32(data, base+4)
		if err != nil {
			return 0, err
		}
		switch {
		case codePoint < startCharCode:
			hi = mid
		case codePoint > endCharCode:
			lo = mid + 1
		default:
			startGlyphID, err := readU32(data, base+8)
			if err != nil {
				return 0, err
			}
			glyph := startGlyphID + (codePoint - startCharCode)
			if glyph > 0xFFFF {
				return 0, nil
			}
			return uint16(glyph), nil
		}
	}
	return 0, nil
}
