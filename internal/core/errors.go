// Package core defines sentinel errors.
package core

import "errors"

// Sentinel errors; callers match them with errors.Is.
var (
	// Descriptor errors
	ErrMissingField      = errors.New("forge: required field missing")
	ErrDescriptorInvalid = errors.New("forge: invalid descriptor")

	// Address parsing errors
	ErrAddressFormat = errors.New("forge: malformed address")

	// Assembly errors
	ErrBufferOverflow   = errors.New("forge: write exceeds frame length override")
	ErrUnsupportedProto = errors.New("forge: unsupported protocol")

	// Configuration errors
	ErrConfigInvalid = errors.New("forge: invalid configuration")
)
