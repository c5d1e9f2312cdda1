package elffile

import (
	"fmt"
)

// ErrorKind identifies the category of a decode failure. Callers that need
// to branch on the failure (exit codes, logging) should key on this rather
// than the message text.
type ErrorKind string

const (
	// Data errors: the input bytes violate the format.
	KindNotELF              ErrorKind = "not-elf"
	KindInvalidClass        ErrorKind = "invalid-class"
	KindInvalidByteOrder    ErrorKind = "invalid-byte-order"
	KindInvalidIdentVersion ErrorKind = "invalid-ident-version"
	KindInvalidOSABI        ErrorKind = "invalid-osabi"
	KindInvalidType         ErrorKind = "invalid-type"
	KindTruncated           ErrorKind = "truncated"
	KindIOFailure           ErrorKind = "io-failure"

	// KindByteOrderUnset is not a data error. It means a multi-byte read was
	// attempted before the byte order was resolved, which DecodeHeader never
	// does; seeing it indicates a bug in a caller using Reader directly.
	KindByteOrderUnset ErrorKind = "byte-order-unset"
)

// DecodeError is the error type for every failure produced by this package.
type DecodeError struct {
	Kind ErrorKind

	// Value holds the offending raw value for the invalid-* kinds.
	Value uint64

	// Err holds the underlying stream error for truncated and io-failure.
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindNotELF:
		return "not an ELF file"
	case KindInvalidClass:
		return fmt.Sprintf("invalid class byte: want 1 or 2, got %d", e.Value)
	case KindInvalidByteOrder:
		return fmt.Sprintf("invalid byte order byte: want 1 or 2, got %d", e.Value)
	case KindInvalidIdentVersion:
		return fmt.Sprintf("invalid identifier version: want 1, got %d", e.Value)
	case KindInvalidOSABI:
		return fmt.Sprintf("invalid OS ABI byte: 0x%02x", e.Value)
	case KindInvalidType:
		return fmt.Sprintf("invalid object type: 0x%04x", e.Value)
	case KindTruncated:
		return "unexpected end of file"
	case KindIOFailure:
		return fmt.Sprintf("read failed: %v", e.Err)
	case KindByteOrderUnset:
		return "multi-byte read before byte order was resolved (bug in caller)"
	}
	return string(e.Kind)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDataError reports whether the failure was caused by the input itself,
// as opposed to a misuse of the Reader API.
func (e *DecodeError) IsDataError() bool {
	return e.Kind != KindByteOrderUnset
}

func errInvalid(kind ErrorKind, value uint64) *DecodeError {
	return &DecodeError{Kind: kind, Value: value}
}
