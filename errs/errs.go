// Package errs defines the sentinel errors returned by nodebin.
//
// Errors are wrapped with fmt.Errorf("%w: ...") to carry the row number, column or
// offset that triggered them; callers match with errors.Is.
package errs

import "errors"

// Input errors. Any of these aborts the whole batch, no blob is produced.
var (
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidNumber  = errors.New("invalid numeric value")
	ErrUnknownLabel   = errors.New("unknown enum label")
	ErrFieldOverflow  = errors.New("value out of range for field")
	ErrStringTooLong  = errors.New("string exceeds 65535 bytes")
	ErrTooManyStrings = errors.New("string table exceeds 65536 entries")
	ErrTooManyEntries = errors.New("entry count exceeds uint32 range")
	ErrMalformedRow   = errors.New("malformed source row")
)

// Format and decoding errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidRecordSize    = errors.New("invalid record size")
	ErrInvalidStringSection = errors.New("invalid string section")
	ErrCorruptBlob          = errors.New("corrupt blob")
	ErrNameIndexOutOfRange  = errors.New("name index out of range")
	ErrUnsupportedLayout    = errors.New("unsupported record layout")
)

// Configuration errors.
var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUnknownProfile = errors.New("unknown profile")
)
