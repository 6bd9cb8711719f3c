// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "strings"

// Surface is the core rendering target abstraction.
//
// A Surface is a width×height raw framebuffer that accepts pixel blocks.
//
// Example usage:
//
//	fb := surface.NewMono(128, 64)
//	fb.Blit(pixels, 0, 0, surface.NoKey)
//	fb.Present()
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Buffer returns the backing pixel memory. Its length together with
	// the dimensions determines the pixel format (see DetectFormat).
	Buffer() []byte

	// Blit copies src to (x, y), clipping to the surface. Source pixels
	// equal to key are skipped; NoKey disables the transparent key.
	Blit(src Pixels, x, y, key int)
}

// Clearer is an optional interface for surfaces that can reset themselves
// to their blank state.
type Clearer interface {
	Clear()
}

// Filler is an optional interface for surfaces that can be filled with a
// single pixel value.
type Filler interface {
	Fill(value int)
}

// Presenter is an optional interface for surfaces that push their buffer
// to a physical display.
type Presenter interface {
	Present() error
}

// Capabilities describes the optional features a surface supports.
type Capabilities struct {
	// SupportsClear indicates Clear is available.
	SupportsClear bool

	// SupportsFill indicates Fill is available.
	SupportsFill bool

	// SupportsPresent indicates Present is available.
	SupportsPresent bool
}

// CapabilitiesOf probes s for the optional interfaces it implements.
func CapabilitiesOf(s Surface) Capabilities {
	_, canClear := s.(Clearer)
	_, canFill := s.(Filler)
	_, canPresent := s.(Presenter)
	return Capabilities{
		SupportsClear:   canClear,
		SupportsFill:    canFill,
		SupportsPresent: canPresent,
	}
}

// Missing returns the capabilities in required that c lacks.
func (c Capabilities) Missing(required Capabilities) Capabilities {
	return Capabilities{
		SupportsClear:   required.SupportsClear && !c.SupportsClear,
		SupportsFill:    required.SupportsFill && !c.SupportsFill,
		SupportsPresent: required.SupportsPresent && !c.SupportsPresent,
	}
}

// IsZero reports whether no capability is set.
func (c Capabilities) IsZero() bool {
	return c == Capabilities{}
}

// String lists the set capabilities, e.g. "clear|present".
func (c Capabilities) String() string {
	var names []string
	if c.SupportsClear {
		names = append(names, "clear")
	}
	if c.SupportsFill {
		names = append(names, "fill")
	}
	if c.SupportsPresent {
		names = append(names, "present")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
