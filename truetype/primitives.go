// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package truetype parses the sfnt container, cmap, and glyf/loca tables of
// a TrueType/OpenType font and decodes glyph outlines into a Shape of
// closed contours. It never writes or mutates a font, executes hinting
// bytecode, or rasterizes to pixels; it only turns on-disk tables into an
// in-memory vector outline for a downstream consumer.
//
// All numbers are measured in FUnits, the font's native em-square units,
// with Y increasing upwards as TrueType itself stores them. Scaling to
// pixels, DPI, or a rendering target is the caller's responsibility.
package truetype

// readU8 returns the byte at offset, or a bounds error if it escapes data.
func readU8(data []byte, offset int) (uint8, error) {
	if offset < 0 || offset+1 > len(data) {
		return 0, outOfBounds("u8 read at %d exceeds buffer of length %d", offset, len(data))
	}
	return data[offset], nil
}

// readI8 returns the signed byte at offset, or a bounds error.
func readI8(data []byte, offset int) (int8, error) {
	b, err := readU8(data, offset)
	return int8(b), err
}

// readU16 returns the big-endian uint16 at offset, or a bounds error.
func readU16(data []byte, offset int) (uint16, error) {
	if offset < 0 || offset+2 > len(data) {
		return 0, outOfBounds("u16 read at %d exceeds buffer of length %d", offset, len(data))
	}
	return uint16(data[offset])<<8 | uint16(data[offset+1]), nil
}

// readI16 returns the big-endian int16 at offset, or a bounds error.
func readI16(data []byte, offset int) (int16, error) {
	u, err := readU16(data, offset)
	return int16(u), err
}

// readU32 returns the big-endian uint32 at offset, or a bounds error.
func readU32(data []byte, offset int) (uint32, error) {
	if offset < 0 || offset+4 > len(data) {
		return 0, outOfBounds("u32 read at %d exceeds buffer of length %d", offset, len(data))
	}
	return uint32(data[offset])<<24 | uint32(data[offset+1])<<16 |
		uint32(data[offset+2])<<8 | uint32(data[offset+3]), nil
}

// readI32 returns the big-endian int32 at offset, or a bounds error.
func readI32(data []byte, offset int) (int32, error) {
	u, err := readU32(data, offset)
	return int32(u), err
}

// f2dot14 decodes a signed 2.14 fixed-point value as used by composite
// glyph transforms.
func f2dot14(v int16) float64 {
	return float64(v) / 16384
}
