package dense

import "github.com/pkg/errors"

// ErrShape reports operands whose shapes cannot be combined or an index that
// falls outside an array.
var ErrShape = errors.New("shape mismatch")
