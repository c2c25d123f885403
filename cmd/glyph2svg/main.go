// The glyph2svg command renders a text string to an SVG path using a
// TrueType/OpenType font's own glyph outlines, with no hinting or
// rasterization: it is a thin, direct consumer of the truetype package's
// Shape/Contour/EdgeSegment model.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"

	"golang.org/x/image/math/fixed"

	"github.com/outlinefont/sfnt/truetype"
)

var (
	textFlag  = flag.String("text", "Hamburger", "the text to render")
	fontFlag  = flag.String("font", "", "path to the TrueType/OpenType font file")
	scaleFlag = flag.Int("scale", 100, "scale in points (em-square size)")
)

func main() {
	flag.Parse()

	log.SetPrefix("glyph2svg: ")
	log.SetFlags(0)

	if *fontFlag == "" {
		log.Fatal("missing -font")
	}

	data, err := ioutil.ReadFile(*fontFlag)
	if err != nil {
		log.Fatalf("loading font: %v", err)
	}

	f, err := truetype.Parse(data)
	if err != nil {
		log.Fatalf("parsing font: %v", err)
	}

	fmt.Printf("<svg xmlns='http://www.w3.org/2000/svg' "+
		"style='fill: grey' width='%d' height='%d'>\n", 2000, 400)

	var penX fixed.Int26_6
	penY := fixed.I(*scaleFlag)

	var prevGlyph uint16
	for i, r := range *textFlag {
		gid, err := f.Lookup(uint32(r))
		if err != nil {
			log.Fatalf("looking up %q: %v", r, err)
		}

		shape, err := f.LoadGlyph(gid)
		if err != nil {
			log.Fatalf("loading glyph for %q: %v", r, err)
		}

		fmt.Printf("<path d='")
		for _, contour := range shape.Contours {
			emitContour(contour, penX, penY, *scaleFlag, f.UnitsPerEm())
		}
		fmt.Printf("'/>\n")

		metric, err := f.HMetric(gid)
		if err == nil {
			penX += funitsToFixed(float64(metric.AdvanceWidth), *scaleFlag, f.UnitsPerEm())
		}
		if i > 0 {
			if kern, err := f.Kerning(prevGlyph, gid); err == nil {
				penX += funitsToFixed(float64(kern), *scaleFlag, f.UnitsPerEm())
			}
		}
		prevGlyph = gid
	}
	fmt.Println("</svg>")
}

// funitsToFixed scales a value measured in the font's FUnits to a
// fixed.Int26_6 pixel value at the given point size.
func funitsToFixed(funits float64, points, unitsPerEm int) fixed.Int26_6 {
	if unitsPerEm == 0 {
		return 0
	}
	return fixed.Int26_6((funits * float64(points) * 64) / float64(unitsPerEm))
}

// emitContour writes a single SVG subpath for one decoded Contour,
// translating FUnits to screen pixels (Y flipped, since SVG grows
// downward while FUnits grow upward) and offsetting by the current pen
// position.
func emitContour(c truetype.Contour, penX, penY fixed.Int26_6, points, unitsPerEm int) {
	if len(c.Edges) == 0 {
		return
	}
	toPoint := func(v truetype.Vec2) fixed.Point26_6 {
		return fixed.Point26_6{
			X: penX + funitsToFixed(v.X, points, unitsPerEm),
			Y: penY - funitsToFixed(v.Y, points, unitsPerEm),
		}
	}
	p2svg := func(p fixed.Point26_6) string {
		return fmt.Sprintf("%v,%v", float64(p.X)/64, float64(p.Y)/64)
	}

	start := toPoint(c.Edges[0].Start())
	fmt.Printf("M%s ", p2svg(start))
	for _, e := range c.Edges {
		switch e.Kind {
		case truetype.EdgeLinear:
			fmt.Printf("L%s ", p2svg(toPoint(e.End())))
		case truetype.EdgeQuadratic:
			fmt.Printf("Q%s %s ", p2svg(toPoint(e.P1)), p2svg(toPoint(e.End())))
		case truetype.EdgeCubic:
			fmt.Printf("C%s %s %s ", p2svg(toPoint(e.P1)), p2svg(toPoint(e.P2)), p2svg(toPoint(e.End())))
		}
	}
}
