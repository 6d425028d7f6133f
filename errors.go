package magcoord

import "errors"

// Sentinels matched with errors.Is. Call sites wrap them with the offending
// value and, for slice inputs, the element index. Epoch-range failures come
// from the coefficient source as igrf.ErrUnsupportedEpoch.
var (
	ErrShapeMismatch   = errors.New("magcoord: input slices have different lengths")
	ErrNumericDomain   = errors.New("magcoord: input outside numeric domain")
	ErrDegenerateField = errors.New("magcoord: degenerate dipole field")
)
