package port

import "errors"

var (
	ErrNotFound = errors.New("not found")
)
