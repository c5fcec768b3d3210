package rating

import "errors"

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidStars        = errors.New("invalid_stars")
	ErrInvalidRequest      = errors.New("invalid_request")
	ErrDuplicateSubmission = errors.New("duplicate_submission")
	ErrStoreUnavailable    = errors.New("store_unavailable")
)
