// Package hvw implements HVW Steinerisation: the final build phase that
// turns every still-diagonal edge into an L-shaped pair of rectilinear
// segments, choosing each bend's orientation to maximise colinear overlap
// with sibling edges so overlapping segments become shared wire, then
// collapsing any remaining nested same-direction overlap at each node.
//
// Nodes are visited in ascending altitude order (leaves first is altitude
// 0 and is skipped — a leaf has only a parent edge, never two incident
// edges to weigh against each other). This mirrors Feline's HvwWorker
// traversal and per-node bend-choice/commit/cleanup sequence.
package hvw
