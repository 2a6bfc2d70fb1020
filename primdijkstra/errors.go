package primdijkstra

import "errors"

// ErrAlphaOutOfRange is returned by Build when alpha falls outside [0, 1].
var ErrAlphaOutOfRange = errors.New("primdijkstra: alpha must be in [0, 1]")
