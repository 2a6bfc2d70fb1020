// Package rectree builds timing-aware rectilinear Steiner trees for signal
// nets in a place-and-route flow. Given a driver pin and a set of sink pins
// resolved through two small caller-supplied capabilities — NetEnumeration
// and GeometryOracle — BuildTree produces a rooted, rectilinear tree
// connecting all of them, trading total wire length against source-to-sink
// path length via a single alpha parameter.
//
// Construction runs three phases in a fixed order: primdijkstra builds an
// initial tree with a best-first expansion over a sparse neighbour graph;
// edgeflip locally rewires single-node subtree patterns when doing so lowers
// a weighted cost; hvw converts every remaining diagonal edge into an
// L-shaped pair of rectilinear segments, chosen to maximise shared wire with
// sibling edges. Intermediate states between phases are not observable by
// callers.
package rectree
