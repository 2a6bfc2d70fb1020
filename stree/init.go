package stree

import "github.com/rectree/rectree/gcell"

// CellHandle, PinHandle and NetHandle are opaque identities owned by the
// caller's netlist/placement data structures (driver/sink enumeration and
// pin-to-gridcell mapping are external collaborators — this package never
// inspects their contents).
type CellHandle = any
type PinHandle = any
type NetHandle = any

// Endpoint is one logical driver or sink connection point on a net: a cell
// and the physical pins on it that resolve to grid cells via
// GeometryOracle.PinLocation.
type Endpoint struct {
	Cell CellHandle
	Pins []PinHandle
}

// NetEnumeration yields a net's driver endpoint and its sink endpoints.
type NetEnumeration interface {
	// Net identifies the net itself, passed on to
	// GeometryOracle.ShouldSkipEndpoint.
	Net() NetHandle
	// Driver returns the net's driver endpoint; ok is false if the net has
	// no driver.
	Driver() (endpoint Endpoint, ok bool)
	// Sinks returns the net's sink endpoints.
	Sinks() []Endpoint
}

// GeometryOracle resolves endpoints to grid cells and decides which
// endpoints Steiner construction should skip over (e.g. because they route
// straight to detailed routing).
type GeometryOracle interface {
	// PinLocation returns the grid cell of one physical pin on one cell.
	PinLocation(cell CellHandle, pin PinHandle) gcell.GCell
	// ShouldSkipEndpoint reports whether endpoint should be left out of
	// Steiner construction entirely.
	ShouldSkipEndpoint(net NetHandle, endpoint Endpoint) bool
}

// InitTree builds the initial (edge-free) STree for net: every non-skipped
// driver and sink pin becomes a node, the source is set to the driver's
// first resolved cell, and the port index is sealed. It never returns an
// error: a missing driver, or a driver with zero usable sinks, is a
// degenerate-but-valid input and yields an empty or single-node tree rather
// than a failure.
func InitTree(net NetEnumeration, geo GeometryOracle) *STree {
	tree := New()

	driver, ok := net.Driver()
	if !ok || geo.ShouldSkipEndpoint(net.Net(), driver) {
		return tree
	}

	sourceSet := false
	for _, pin := range driver.Pins {
		cell := geo.PinLocation(driver.Cell, pin)
		tree.addPin(cell)
		if !sourceSet {
			tree.Source = cell
			sourceSet = true
		}
	}
	if !sourceSet {
		// Driver endpoint resolved to zero physical pins: nothing to root
		// the tree at.
		return New()
	}

	for _, sink := range net.Sinks() {
		if geo.ShouldSkipEndpoint(net.Net(), sink) {
			continue
		}
		for _, pin := range sink.Pins {
			tree.addPin(geo.PinLocation(sink.Cell, pin))
		}
	}

	tree.Ports.Seal()

	return tree
}
