package registry

import "errors"

// ErrInvalidType indicates a type name that is neither style nor script.
var ErrInvalidType = errors.New("invalid asset type")
