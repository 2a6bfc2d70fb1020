package neighbour

import (
	"github.com/rectree/rectree/gcell"
	"github.com/rectree/rectree/portindex"
)

// Oracle answers maximum-bounding-box neighbour queries over a sealed set
// of pins and their bounding box.
type Oracle struct {
	ports *portindex.Index
	box   gcell.BoundingBox
}

// New constructs an Oracle over an already-sealed PortIndex and the
// bounding box of the same pin set. Ports must be sealed; queries return
// portindex.ErrNotSealed otherwise.
func New(ports *portindex.Index, box gcell.BoundingBox) *Oracle {
	return &Oracle{ports: ports, box: box}
}
