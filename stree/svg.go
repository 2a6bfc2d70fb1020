package stree

import (
	"bufio"
	"fmt"
	"os"
)

// svgScale is the number of SVG units per grid cell.
const svgScale = 50.0

// svgObjSize is the side length (squares) / diameter (circles) used for
// node markers, in SVG units.
const svgObjSize = 10.0

// DumpSVG writes a debug rendering of t to path: a white viewport sized to
// the tree's bounding box (padded by one cell) at 50 units per cell, one
// parent-to-self polyline per non-root node with a midpoint arrowhead, the
// source as a red square, other port cells as blue squares, and pure
// Steiner bends as black circles. This is a debug aid only, not a stable
// interface — its exact output is not covered by any invariant.
func (t *STree) DumpSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	x0, y0 := int(t.Box.X0)-1, int(t.Box.Y0)-1
	width := int(t.Box.X1) - x0 + 1
	height := int(t.Box.Y1) - y0 + 1

	fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)
	fmt.Fprintf(w, "<svg viewBox=\"0 0 %f %f\" width=\"%f\" height=\"%f\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		float64(width)*svgScale, float64(height)*svgScale, float64(width)*svgScale, float64(height)*svgScale)
	fmt.Fprintln(w, "<defs>")
	fmt.Fprintln(w, `<marker id="arrowhead" markerWidth="10" markerHeight="7" refX="0" refY="3.5" orient="auto">`)
	fmt.Fprintln(w, `  <polygon points="0 0, 10 3.5, 0 7" />`)
	fmt.Fprintln(w, "</marker>")
	fmt.Fprintln(w, "</defs>")
	fmt.Fprintln(w, `<rect x="0" y="0" width="100%" height="100%" stroke="#fff" fill="#fff"/>`)

	for cell, n := range t.Nodes {
		if n.Uphill.IsNull() {
			continue
		}
		lx0, ly0 := float64(int(n.Uphill.X)-x0)*svgScale, float64(int(n.Uphill.Y)-y0)*svgScale
		lx1, ly1 := float64(int(cell.X)-x0)*svgScale, float64(int(cell.Y)-y0)*svgScale
		fmt.Fprintf(w, "<polyline points=\"%f,%f %f,%f %f,%f\" stroke=\"black\" marker-mid=\"url(#arrowhead)\"/>\n",
			lx0, ly0, (lx0+lx1)/2.0, (ly0+ly1)/2.0, lx1, ly1)
	}

	for cell, n := range t.Nodes {
		cx, cy := float64(int(cell.X)-x0)*svgScale, float64(int(cell.Y)-y0)*svgScale
		switch {
		case cell == t.Source:
			fmt.Fprintf(w, "<rect x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\" style=\"fill:red;stroke:black;stroke-width:1\" />\n",
				cx-svgObjSize/2, cy-svgObjSize/2, svgObjSize, svgObjSize)
		case n.PortCount > 0:
			fmt.Fprintf(w, "<rect x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\" style=\"fill:blue;stroke:black;stroke-width:1\" />\n",
				cx-svgObjSize/2, cy-svgObjSize/2, svgObjSize, svgObjSize)
		default:
			fmt.Fprintf(w, "<circle cx=\"%f\" cy=\"%f\" r=\"%f\" style=\"fill:black;stroke:black;stroke-width:1\" />\n",
				cx, cy, svgObjSize/2)
		}
	}

	fmt.Fprintln(w, "</svg>")

	return w.Flush()
}
