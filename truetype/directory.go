// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Recognized sfnt version tags. TrueType fonts use 0x00010000 or the Apple
// 'true' tag; OpenType/CFF fonts use 'OTTO'.
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionApple    = 0x74727565 // 'true'
	sfntVersionOTTO     = 0x4F54544F // 'OTTO'
)

// TableRecord is one entry of the sfnt table directory.
type TableRecord struct {
	Tag            [4]byte
	Checksum       uint32
	Offset, Length uint32
}

// TableDirectory is the parsed sfnt header and table record array. It
// borrows from, and is lifetime-bound to, the buffer it was parsed from.
type TableDirectory struct {
	data        []byte
	sfntVersion uint32
	records     []TableRecord
}

// ParseTableDirectory validates the sfnt header (size, version, and that
// the full record array fits) and indexes the table records. It does not
// validate individual table spans; those are checked lazily on first
// dereference, by Find or Iterate.
func ParseTableDirectory(data []byte) (*TableDirectory, error) {
	if len(data) < 12 {
		return nil, outOfBounds("sfnt header needs 12 bytes, got %d", len(data))
	}
	version, _ := readU32(data, 0)
	switch version {
	case sfntVersionTrueType, sfntVersionApple, sfntVersionOTTO:
	default:
		return nil, unsupportedFormat("sfnt version 0x%08x", version)
	}
	numTables, _ := readU16(data, 4)
	recordsEnd := 12 + 16*int(numTables)
	if recordsEnd > len(data) {
		return nil, outOfBounds("table record array of %d tables exceeds buffer of length %d", numTables, len(data))
	}
	records := make([]TableRecord, numTables)
	for i := range records {
		base := 12 + 16*i
		var rec TableRecord
		copy(rec.Tag[:], data[base:base+4])
		rec.Checksum, _ = readU32(data, base+4)
		rec.Offset, _ = readU32(data, base+8)
		rec.Length, _ = readU32(data, base+12)
		records[i] = rec
	}
	return &TableDirectory{data: data, sfntVersion: version, records: records}, nil
}

// span validates and returns the byte range a table record points to.
func (d *TableDirectory) span(r TableRecord) ([]byte, error) {
	offset, length := int(r.Offset), int(r.Length)
	end := offset + length
	if offset < 0 || length < 0 || end < offset || end > len(d.data) {
		return nil, outOfBounds("table %q span [%d:%d] exceeds buffer of length %d", r.Tag, offset, end, len(d.data))
	}
	return d.data[offset:end], nil
}

// Find returns the byte range of the first table whose tag matches, and
// true. Records with an out-of-range offset/length are tolerated and
// skipped rather than treated as fatal, so a partially corrupted font
// still exposes its other, recoverable tables; a later duplicate-tagged
// record with a valid span is used instead. Find reports false if no
// record with the tag has a valid span.
func (d *TableDirectory) Find(tag string) ([]byte, bool) {
	for _, r := range d.records {
		if string(r.Tag[:]) != tag {
			continue
		}
		span, err := d.span(r)
		if err != nil {
			continue
		}
		return span, true
	}
	return nil, false
}

// Iterate calls fn with the tag and byte range of each table record in
// file order, stopping at (and returning) the first record whose span is
// out of range, or the first error fn itself returns.
func (d *TableDirectory) Iterate(fn func(tag string, data []byte) error) error {
	for _, r := range d.records {
		span, err := d.span(r)
		if err != nil {
			return err
		}
		if err := fn(string(r.Tag[:]), span); err != nil {
			return err
		}
	}
	return nil
}

// SfntVersion returns the raw sfnt version field.
func (d *TableDirectory) SfntVersion() uint32 {
	return d.sfntVersion
}
