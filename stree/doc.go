// Package stree defines STree, the rooted tree under construction by the
// three build phases (primdijkstra, edgeflip, hvw), along with the
// topology utilities (children/leaf sets, topological order, altitude) all
// three phases share, tree initialisation from an external pin oracle, and
// the debug SVG dump.
//
// STree stores only a parent pointer per node (Node.Uphill); child sets and
// altitudes are recomputed on demand rather than kept as a mirrored
// doubly-linked structure, so a phase that rewires many edges never has to
// keep two representations of the tree in sync.
package stree
