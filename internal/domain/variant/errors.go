package variant

import "errors"

// ErrUnknownVariant reports a preset name that is not registered.
var ErrUnknownVariant = errors.New("unknown variant")
