package sensor

import "errors"

var (
	ErrFrameTooShort   = errors.New("frame shorter than header")
	ErrLengthMismatch  = errors.New("frame length does not match header")
	ErrUnknownDataType = errors.New("unknown data type tag")
	ErrPayloadTooShort = errors.New("payload shorter than its format")
	ErrBadTimestamp    = errors.New("timestamp outside plausible range")
)
