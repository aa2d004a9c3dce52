package mac_oui

import "errors"

// Error kinds returned by this package. Load-time kinds abort the whole
// construction; query-time kinds are returned to the caller. Match them
// with errors.Is, the wrapped message carries the offending value.
var (
	// ErrSourceUnavailable means the backing file or embedded resource
	// could not be read.
	ErrSourceUnavailable = errors.New("oui source unavailable")
	// ErrMalformedBlockNotation means a row's oui field could not be
	// parsed into a prefix value plus mask.
	ErrMalformedBlockNotation = errors.New("malformed block notation")
	// ErrInvalidMask means a row carried a prefix length outside [8, 48].
	ErrInvalidMask = errors.New("invalid mask")
	// ErrTableSchemaMismatch means the input does not decode into the
	// expected row structure at all (wrong file supplied).
	ErrTableSchemaMismatch = errors.New("table schema mismatch")
	// ErrEncoding means a validated 6-byte address failed the fixed-width
	// integer conversion. Unreachable for well-formed input.
	ErrEncoding = errors.New("mac encoding failed")
	// ErrAddressParse means a caller-supplied MAC string is not a valid
	// 48-bit address literal.
	ErrAddressParse = errors.New("invalid mac address")
)
