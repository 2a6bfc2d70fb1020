package edgeflip

import "errors"

// ErrAlphaOutOfRange is returned by Build when alpha falls outside [0, 1].
var ErrAlphaOutOfRange = errors.New("edgeflip: alpha must be in [0, 1]")
