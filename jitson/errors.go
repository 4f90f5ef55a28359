package jitson

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than
// text, the same shape as hivekit's pkg/types.ErrKind.
type ErrKind int

const (
	ErrKindParse    ErrKind = iota // malformed input
	ErrKindAlloc                   // allocation failure (stack growth, index build, string dup)
	ErrKindType                    // operator/compare applied to an unsupported type
	ErrKindContract                // programmer error; never expected from valid callers
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Parse-error sentinels, named after the errno codes each condition maps to.
var (
	// ErrInvalid is a malformed token (bad number, unterminated string,
	// unbalanced bracket). Corresponds to EINVAL.
	ErrInvalid = &Error{Kind: ErrKindParse, Msg: "invalid token"}
	// ErrEncoding is an invalid escape or byte sequence. Corresponds to
	// EILSEQ.
	ErrEncoding = &Error{Kind: ErrKindParse, Msg: "invalid character encoding"}
	// ErrEmpty is used when a required value is missing (e.g. parsing an
	// empty source). Corresponds to ENODATA.
	ErrEmpty = &Error{Kind: ErrKindParse, Msg: "no data"}
	// ErrNameTooLong flags an object member name over 65535 bytes.
	// Corresponds to ENAMETOOLONG.
	ErrNameTooLong = &Error{Kind: ErrKindParse, Msg: "member name too long"}
	// ErrOverflow flags a number literal that saturated its target
	// representation. Corresponds to EOVERFLOW.
	ErrOverflow = &Error{Kind: ErrKindParse, Msg: "numeric overflow"}
	// ErrUnknownIdent flags a bare identifier that Consts didn't resolve
	// and that Options.IdentHook either wasn't set or declined to
	// resolve (AllowIdents must be set for IdentHook to be consulted at
	// all; see parseIdent).
	ErrUnknownIdent = &Error{Kind: ErrKindParse, Msg: "unknown identifier"}

	// ErrAlloc is returned when a stack growth, index build, or string
	// duplication fails.
	ErrAlloc = &Error{Kind: ErrKindAlloc, Msg: "allocation failed"}

	// ErrNoOverride is returned by operator Apply when neither a
	// per-type override nor a default implementation exists.
	ErrNoOverride = &Error{Kind: ErrKindType, Msg: "no operator implementation for type"}
)

// ParseError carries the source position of a parse failure alongside the
// sentinel it wraps.
type ParseError struct {
	Err    *Error
	Offset int
	Line   int
}

func newParseError(base *Error, offset, line int) *ParseError {
	return &ParseError{Err: base, Offset: offset, Line: line}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d (line %d)", e.Err.Error(), e.Offset, e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }
