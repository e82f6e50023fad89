package parse

import "errors"

var (
	ErrEmptyInput = errors.New("input text is empty")
)
