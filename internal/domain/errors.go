package domain

import "errors"

var (
	ErrTooManyMediums   = errors.New("too many mediums selected")
	ErrTooManyStyleTags = errors.New("too many style tags selected")
	ErrEmptyTitle       = errors.New("artwork title is required")
	ErrInvalidPrice     = errors.New("artwork price must be positive")
	ErrInvalidDimension = errors.New("artwork dimensions must be positive")
	ErrInvalidUnit      = errors.New("unknown dimension unit")
)
