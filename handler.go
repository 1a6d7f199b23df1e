package jsonstream

// Handler is the capability set of structural callbacks the driver
// invokes at grammar landmarks while walking a document. A Handler may
// be stateful (building a value tree, tracking depth, whatever the
// caller needs); the driver makes no assumption about what happens
// inside a callback beyond the error contract below.
//
// Every callback returns an error. A non-nil return aborts the parse
// immediately: no further callback fires for the Write call that
// triggered it, and the error is returned from Write/WriteSequence/
// WriteEOF unchanged.
//
// Begin/End callbacks always bracket correctly and nest: an OnObjectEnd
// is never seen without a matching prior OnObjectBegin at the same
// depth, and so on for arrays and strings.
type Handler interface {
	OnObjectBegin() error
	OnObjectEnd() error
	OnArrayBegin() error
	OnArrayEnd() error

	// OnStringBegin/OnStringEnd bracket zero or more OnStringPiece
	// calls. Escape sequences are not decoded (SPEC_FULL.md §13): the
	// bytes handed to OnStringPiece are the raw, unescaped body of the
	// string, including any backslash bytes verbatim.
	OnStringBegin() error

	// OnStringPiece delivers one maximal run of string-body bytes
	// found within a single input buffer. piece aliases the buffer
	// passed to Write and is invalidated the instant OnStringPiece
	// returns; a Handler that needs to retain the bytes must copy them.
	OnStringPiece(piece []byte) error
	OnStringEnd() error

	// OnNumber delivers one complete number as
	// (neg ? -1 : 1) * mantissa * 10^(expSign*exp). Use the package
	// level Float64 helper to reconstruct a float64, or inspect the
	// fields directly to preserve integer precision. Mantissa/exp
	// accumulation saturates on overflow rather than wrapping
	// (SPEC_FULL.md §13).
	OnNumber(neg bool, mantissa int64, exp int64, expSign int64) error

	OnTrue() error
	OnFalse() error
	OnNull() error
}
