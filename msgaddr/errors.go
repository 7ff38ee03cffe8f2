package msgaddr

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput matches any *MalformedInputError via errors.Is.
	ErrMalformedInput = errors.New("malformed msg_address input")
	// ErrUnsupportedTag matches any *UnsupportedTagError via errors.Is.
	ErrUnsupportedTag = errors.New("unsupported msg_address tag")
	// ErrChecksumMismatch matches any *ChecksumMismatchError via errors.Is.
	ErrChecksumMismatch = errors.New("address checksum mismatch")
)

// MalformedInputError reports a record, slice or text payload of the wrong size.
type MalformedInputError struct {
	Field  string
	Length int
	Want   int

	// AtLeast is set when Want is a lower bound rather than an exact size.
	AtLeast bool
}

func (e *MalformedInputError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("wrong length: %s is %d bytes, want at least %d", e.Field, e.Length, e.Want)
	}
	return fmt.Sprintf("wrong length: %s is %d bytes, want %d", e.Field, e.Length, e.Want)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// UnsupportedTagError carries the leading byte that did not match the only
// supported layout.
type UnsupportedTagError struct {
	Field string
	Tag   byte
	Want  byte
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("unsupported %s byte 0x%02x, want 0x%02x", e.Field, e.Tag, e.Want)
}

func (e *UnsupportedTagError) Is(target error) bool {
	return target == ErrUnsupportedTag
}

// ChecksumMismatchError is returned by ParseFriendly when the trailing CRC does
// not cover the address bytes.
type ChecksumMismatchError struct {
	Stored   uint16
	Computed uint16
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: stored 0x%04x, computed 0x%04x", e.Stored, e.Computed)
}

func (e *ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}
