package http

import "errors"

var (
	errInvalidReferenceDate = errors.New("reference_date must be RFC 3339")
	errInvalidTimezone      = errors.New("timezone must be a valid IANA zone name")
)
