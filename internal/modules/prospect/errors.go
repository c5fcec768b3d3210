package prospect

import "errors"

var (
	ErrNotFound    = errors.New("prospect_not_found")
	ErrUpstream    = errors.New("stats_api_error")
	ErrInvalidYear = errors.New("invalid_year")
)
