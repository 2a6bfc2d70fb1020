package stree

import "errors"

// ErrCycle indicates that the parent relation over Nodes is not acyclic:
// Kahn's algorithm terminated before visiting every node. This is a
// precondition violation — it means an earlier phase committed an
// inconsistent edge — and always indicates a bug in a build phase, never a
// reachable state from well-formed caller input.
var ErrCycle = errors.New("stree: cycle detected in parent relation")

// ErrDanglingParent indicates that some node's Uphill points at a cell that
// is not itself a key in Nodes, violating the invariant that every Uphill
// value is a Nodes key.
var ErrDanglingParent = errors.New("stree: node's parent is not present in the tree")

// ErrDoubleParent indicates an attempt to wire a node to a new parent via
// AddEdge while it already has one. Every genuinely new edge targets a node
// whose Uphill is still null; anything else means a build phase is
// overwriting an edge instead of removing it first.
var ErrDoubleParent = errors.New("stree: node already has a parent")

// ErrParentMismatch indicates an attempt to remove an edge via RemoveEdge
// whose recorded parent does not match what the caller expected to be
// removing.
var ErrParentMismatch = errors.New("stree: recorded parent does not match edge being removed")

// ErrNonRectilinearEdge indicates that some node's edge to its parent is
// diagonal (differs in both X and Y) after Steinerisation, which should
// have rewritten every such edge into an axis-aligned pair.
var ErrNonRectilinearEdge = errors.New("stree: edge is not axis-aligned")
