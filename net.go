package rectree

import "github.com/rectree/rectree/stree"

// CellHandle, PinHandle and NetHandle are opaque identities owned by the
// caller's netlist/placement data structures.
type CellHandle = stree.CellHandle
type PinHandle = stree.PinHandle
type NetHandle = stree.NetHandle

// Endpoint is one logical driver or sink connection point on a net.
type Endpoint = stree.Endpoint

// NetEnumeration yields a net's driver endpoint and its sink endpoints.
type NetEnumeration = stree.NetEnumeration

// GeometryOracle resolves endpoints to grid cells and decides which
// endpoints Steiner construction should skip over.
type GeometryOracle = stree.GeometryOracle
