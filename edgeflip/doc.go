// Package edgeflip implements PD-II's single-flip (D=1) local improvement
// pass: repeatedly find the non-root node whose parent edge, paired with one
// of its own child edges, can be rewired through a sibling at strictly lower
// weighted cost, and commit the best such move until none remains.
//
// A move takes a node v with parent p, a sibling new_src of v (another child
// of p), and a child new_dst of v; it removes edges (p,v) and (v,new_dst) and
// installs (new_src,new_dst) and (new_dst,v) — v now hangs off new_dst
// instead of p. This mirrors Feline's do_edge_flips: a best-improvement
// greedy search, not first-improvement, over all (v, new_src, new_dst)
// triples every outer iteration.
package edgeflip
