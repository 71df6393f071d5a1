package normalize

import "errors"

var (
	// ErrParseFailure indicates the model output is not valid JSON after
	// fence stripping.
	ErrParseFailure = errors.New("model output is not valid JSON")

	// ErrMissingField indicates a required schema field is absent.
	ErrMissingField = errors.New("missing required field")
)
