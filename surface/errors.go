// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "errors"

// Errors.
var (
	// ErrMissingCapability is returned when a surface lacks an optional
	// capability the caller requires.
	ErrMissingCapability = errors.New("surface: missing capability")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrUnknownFormat is returned for an unsupported pixel format.
	ErrUnknownFormat = errors.New("surface: unknown pixel format")
)

// MissingCapabilityError reports which capabilities a surface lacks.
type MissingCapabilityError struct {
	Missing Capabilities
}

func (e *MissingCapabilityError) Error() string {
	return "surface: missing capability: " + e.Missing.String()
}

// Unwrap returns ErrMissingCapability so that errors.Is matches.
func (e *MissingCapabilityError) Unwrap() error {
	return ErrMissingCapability
}

// Require returns a *MissingCapabilityError if s lacks any of required.
func Require(s Surface, required Capabilities) error {
	if missing := CapabilitiesOf(s).Missing(required); !missing.IsZero() {
		return &MissingCapabilityError{Missing: missing}
	}
	return nil
}
