package explorer

import "errors"

// ErrInvalidConfiguration indicates margin >= jump distance or margin <= 0,
// rejected at construction time.
var ErrInvalidConfiguration = errors.New("explorer: invalid configuration")
