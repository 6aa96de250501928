package encoding

import (
	"errors"

	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/scale"
)

// Sentinel error kinds returned by Encode. These allow errors.Is from callers.
var (
	ErrInvalidScale      = scale.ErrInvalidScale
	ErrInvalidMargin     = model.ErrInvalidMargin
	ErrAttributeMismatch = errors.New("attribute does not match radius rule")
)
