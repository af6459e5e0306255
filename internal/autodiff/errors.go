package autodiff

import (
	"github.com/born-ml/beacon/internal/dense"
	"github.com/pkg/errors"
)

var (
	// ErrPrecondition reports a call that is invalid for the tensor's state,
	// such as Backward on an untracked tensor or Item on a non-scalar.
	ErrPrecondition = errors.New("precondition failed")

	// ErrConstruction reports data that cannot be turned into a tensor.
	ErrConstruction = errors.New("invalid tensor data")

	// ErrShape reports incompatible operand shapes or out-of-range indices.
	ErrShape = dense.ErrShape
)
