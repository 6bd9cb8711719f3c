// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the pixel surfaces text is rendered onto.
//
// A Surface is a raw framebuffer in one of two encodings used by small
// displays:
//
//   - MONO_HLSB: 1 bit per pixel, horizontal bytes, most significant bit
//     leftmost, rows padded to a multiple of 8 pixels (SSD1306, e-paper)
//   - RGB565: 2 bytes per pixel, little-endian (ST7735, ST7789)
//
// The only required drawing primitive is Blit, which copies a block of
// pixels with an optional transparent color key. Clearing, filling and
// presenting are optional capabilities expressed as separate interfaces
// (Clearer, Filler, Presenter). CapabilitiesOf probes them once so that
// callers do not need repeated type assertions.
//
// # Surface Types
//
//   - Framebuffer: in-memory surface in either encoding
//   - Display: a Framebuffer that presents onto a tinygo.org/x/drivers
//     Displayer
//
// # Kinds
//
// A Kind names a pixel format and framebuffer options so that tools can
// select a framebuffer from configuration:
//
//	fb, err := surface.NewKind("rgb565", 240, 240)
//
// # Thread Safety
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
package surface
