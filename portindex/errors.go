package portindex

import "errors"

// ErrNotSealed is returned by every query method when called before Seal,
// or after a Push that has not been followed by a re-Seal.
var ErrNotSealed = errors.New("portindex: index must be sealed before querying")
