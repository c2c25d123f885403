package truetype

import "testing"

func TestParseRequiresCoreTables(t *testing.T) {
	buf := buildDirectory(t, map[string][]byte{"head": make([]byte, 54)})
	if _, err := Parse(buf); err == nil {
		t.Fatal("expected Parse to fail without maxp/loca/glyf/cmap")
	} else if e, ok := err.(*Error); !ok || e.Kind != TableNotFound {
		t.Errorf("got %v, want TableNotFound", err)
	}
}

func TestParseAndBasicAccessors(t *testing.T) {
	loca := make([]byte, 2*2) // numGlyphs=1: two short loca entries
	putU16(loca, 0, 0)
	putU16(loca, 2, 0) // glyph 0 is empty
	maxp := make([]byte, 6)
	putU16(maxp, 4, 1)
	head := make([]byte, 54)
	putU16(head, 18, 2048)
	putU16(head, 50, 0) // short loca

	buf := buildDirectory(t, map[string][]byte{
		"head": head,
		"maxp": maxp,
		"loca": loca,
		"glyf": {},
		"cmap": wrapCmapTable(buildCmapFormat4('A', 'Z', 1)),
	})
	f, err := Parse(buf)
	if err != nil {
		t.Fatal(err)
	}
	if f.NumGlyphs() != 1 {
		t.Errorf("NumGlyphs() = %d, want 1", f.NumGlyphs())
	}
	if f.UnitsPerEm() != 2048 {
		t.Errorf("UnitsPerEm() = %d, want 2048", f.UnitsPerEm())
	}
	gid, err := f.Lookup('A')
	if err != nil || gid != 1 {
		t.Fatalf("Lookup('A') = %d, %v, want 1, nil", gid, err)
	}
	shape, err := f.LoadGlyph(0)
	if err != nil {
		t.Fatalf("LoadGlyph(0): %v", err)
	}
	if len(shape.Contours) != 0 {
		t.Errorf("LoadGlyph(0) contours = %d, want 0 (empty glyph)", len(shape.Contours))
	}
}

func buildLocaShort(spans []uint32) []byte {
	b := make([]byte, 2*len(spans))
	for i, v := range spans {
		putU16(b, 2*i, uint16(v/2))
	}
	return b
}

func buildLocaLong(spans []uint32) []byte {
	b := make([]byte, 4*len(spans))
	for i, v := range spans {
		putU32(b, 4*i, v)
	}
	return b
}

func TestLocaRangeShortFormat(t *testing.T) {
	// Three glyphs: offsets 0, 10, 10, 24 (glyph 1 empty).
	loca := buildLocaShort([]uint32{0, 10, 10, 24})
	f := &Font{loca: loca, glyf: make([]byte, 24), numGlyphs: 3, indexToLocFormat: 0}
	r, err := f.locaRange(0)
	if err != nil || r.Offset != 0 || r.Length != 10 {
		t.Fatalf("locaRange(0) = %+v, %v, want {0 10}, nil", r, err)
	}
	r, err = f.locaRange(1)
	if err != nil || r.Length != 0 {
		t.Fatalf("locaRange(1) = %+v, %v, want zero-length span", r, err)
	}
	r, err = f.locaRange(2)
	if err != nil || r.Offset != 10 || r.Length != 14 {
		t.Fatalf("locaRange(2) = %+v, %v, want {10 14}, nil", r, err)
	}
}

func TestLocaRangeLongFormat(t *testing.T) {
	loca := buildLocaLong([]uint32{0, 100000, 200000})
	f := &Font{loca: loca, glyf: make([]byte, 200000), numGlyphs: 2, indexToLocFormat: 1}
	r, err := f.locaRange(1)
	if err != nil || r.Offset != 100000 || r.Length != 100000 {
		t.Fatalf("locaRange(1) = %+v, %v, want {100000 100000}, nil", r, err)
	}
}

func TestLocaRangeRejectsOutOfRangeGlyph(t *testing.T) {
	f := &Font{loca: buildLocaShort([]uint32{0, 0}), glyf: nil, numGlyphs: 1, indexToLocFormat: 0}
	if _, err := f.locaRange(5); err == nil {
		t.Fatal("expected InvalidGlyph for an out-of-range index")
	} else if e, ok := err.(*Error); !ok || e.Kind != InvalidGlyph {
		t.Errorf("got %v, want InvalidGlyph", err)
	}
}

func TestHheaAndHMetric(t *testing.T) {
	hhea := make([]byte, 36)
	ascent := int16(-1000)
	putU16(hhea, 4, uint16(ascent)) // stored as int16 bit pattern via readI16
	putU16(hhea, 34, 2)                   // numOfLongHorMetrics
	hmtx := make([]byte, 4*2+2)           // 2 long records + 1 trailing lsb
	putU16(hmtx, 0, 500)
	putU16(hmtx, 2, 10)
	putU16(hmtx, 4, 600)
	putU16(hmtx, 6, 20)
	putU16(hmtx, 8, 30) // trailing lsb for glyph 2

	f := &Font{hhea: hhea, hmtx: hmtx, numGlyphs: 3}
	h, err := f.Hhea()
	if err != nil {
		t.Fatal(err)
	}
	if h.NumOfLongHorMetrics != 2 {
		t.Errorf("NumOfLongHorMetrics = %d, want 2", h.NumOfLongHorMetrics)
	}

	m, err := f.HMetric(1)
	if err != nil || m.AdvanceWidth != 600 || m.LeftSideBearing != 20 {
		t.Fatalf("HMetric(1) = %+v, %v, want {600 20}, nil", m, err)
	}
	m, err = f.HMetric(2)
	if err != nil || m.AdvanceWidth != 600 || m.LeftSideBearing != 30 {
		t.Fatalf("HMetric(2) = %+v, %v, want {600 30}, nil (reuse last advance, own lsb)", m, err)
	}
}

func TestHheaAbsentIsTableNotFound(t *testing.T) {
	f := &Font{}
	if _, err := f.Hhea(); err == nil {
		t.Fatal("expected TableNotFound for a font without hhea")
	} else if e, ok := err.(*Error); !ok || e.Kind != TableNotFound {
		t.Errorf("got %v, want TableNotFound", err)
	}
}

func TestKerningFormat0(t *testing.T) {
	kern := make([]byte, 18+6*2)
	putU16(kern, 0, 0) // version
	putU16(kern, 2, 1) // nTables
	putU16(kern, 8, 0x0001) // coverage
	putU16(kern, 10, 2)     // nPairs
	putU32(kern, 18, uint32(3)<<16|4)
	negKern := int16(-50)
	putU16(kern, 22, uint16(negKern))
	putU32(kern, 24, uint32(5)<<16|6)
	putU16(kern, 28, 25)

	f := &Font{kern: kern}
	v, err := f.Kerning(3, 4)
	if err != nil || v != -50 {
		t.Fatalf("Kerning(3,4) = %d, %v, want -50, nil", v, err)
	}
	v, err = f.Kerning(5, 6)
	if err != nil || v != 25 {
		t.Fatalf("Kerning(5,6) = %d, %v, want 25, nil", v, err)
	}
	v, err = f.Kerning(1, 2)
	if err != nil || v != 0 {
		t.Fatalf("Kerning(1,2) = %d, %v, want 0, nil (unlisted pair)", v, err)
	}
}

func TestKerningAbsentIsZero(t *testing.T) {
	f := &Font{}
	v, err := f.Kerning(1, 2)
	if err != nil || v != 0 {
		t.Fatalf("Kerning on a font without kern = %d, %v, want 0, nil", v, err)
	}
}
