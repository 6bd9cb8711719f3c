// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

// bareSurface implements only the required Surface methods.
type bareSurface struct {
	w, h int
	buf  []byte
}

func (s *bareSurface) Width() int                 { return s.w }
func (s *bareSurface) Height() int                { return s.h }
func (s *bareSurface) Buffer() []byte             { return s.buf }
func (s *bareSurface) Blit(Pixels, int, int, int) {}

// TestSurfaceInterface verifies the Surface interface contract.
func TestSurfaceInterface(t *testing.T) {
	var _ Surface = (*Framebuffer)(nil)
	var _ Surface = (*Display)(nil)
	var _ Surface = (*bareSurface)(nil)
}

func TestCapabilitiesOf(t *testing.T) {
	full := CapabilitiesOf(NewMono(8, 8))
	want := Capabilities{SupportsClear: true, SupportsFill: true, SupportsPresent: true}
	if full != want {
		t.Errorf("CapabilitiesOf(Framebuffer) = %+v, want %+v", full, want)
	}

	bare := CapabilitiesOf(&bareSurface{w: 8, h: 8})
	if !bare.IsZero() {
		t.Errorf("CapabilitiesOf(bare) = %+v, want none", bare)
	}
	if bare.String() != "none" {
		t.Errorf("String() = %q, want none", bare.String())
	}
	if full.String() != "clear|fill|present" {
		t.Errorf("String() = %q, want clear|fill|present", full.String())
	}
}

func TestCapabilitiesMissing(t *testing.T) {
	have := Capabilities{SupportsClear: true}
	required := Capabilities{SupportsClear: true, SupportsPresent: true}
	got := have.Missing(required)
	if got != (Capabilities{SupportsPresent: true}) {
		t.Errorf("Missing() = %+v, want present only", got)
	}
	if !have.Missing(Capabilities{}).IsZero() {
		t.Error("Missing(none) should be empty")
	}
}

func TestRequire(t *testing.T) {
	if err := Require(NewRGB565(4, 4), Capabilities{SupportsPresent: true}); err != nil {
		t.Errorf("Require(Framebuffer) error = %v, want nil", err)
	}

	err := Require(&bareSurface{w: 4, h: 4}, Capabilities{SupportsClear: true, SupportsPresent: true})
	if !errors.Is(err, ErrMissingCapability) {
		t.Fatalf("Require(bare) error = %v, want ErrMissingCapability", err)
	}
	var mce *MissingCapabilityError
	if !errors.As(err, &mce) {
		t.Fatalf("Require(bare) error = %T, want *MissingCapabilityError", err)
	}
	if err.Error() != "surface: missing capability: clear|present" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		w, h, n int
		want    Format
	}{
		{128, 64, 128 * 64 / 8, FormatMonoHLSB},
		{200, 200, 200 * 200 / 8, FormatMonoHLSB},
		{13, 3, 6, FormatMonoHLSB},
		{160, 80, 160 * 80 * 2, FormatRGB565},
		{8, 8, 64, FormatRGB565},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.w, tt.h, tt.n); got != tt.want {
			t.Errorf("DetectFormat(%d, %d, %d) = %v, want %v", tt.w, tt.h, tt.n, got, tt.want)
		}
	}
}

func TestFormatStride(t *testing.T) {
	tests := []struct {
		f      Format
		width  int
		stride int
	}{
		{FormatMonoHLSB, 1, 1},
		{FormatMonoHLSB, 8, 1},
		{FormatMonoHLSB, 13, 2},
		{FormatMonoHLSB, 128, 16},
		{FormatRGB565, 13, 26},
		{FormatUnknown, 13, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Stride(tt.width); got != tt.stride {
			t.Errorf("%v.Stride(%d) = %d, want %d", tt.f, tt.width, got, tt.stride)
		}
	}
	if got := FormatMonoHLSB.BufferLen(13, 3); got != 6 {
		t.Errorf("BufferLen(13, 3) = %d, want 6", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"mono", "MONO_HLSB", "rgb565"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", name, err)
		}
		if f.String() != "mono" && f.String() != "rgb565" {
			t.Errorf("ParseFormat(%q) = %v", name, f)
		}
	}
	if _, err := ParseFormat("gs8"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(gs8) error = %v, want ErrUnknownFormat", err)
	}
}

func TestPixelsAt(t *testing.T) {
	mono := Pixels{Format: FormatMonoHLSB, Width: 10, Height: 2, Data: []byte{0x80, 0x40, 0x00, 0x01}}
	if mono.At(0, 0) != 1 || mono.At(9, 0) != 1 || mono.At(1, 0) != 0 {
		t.Error("mono row 0 decoded incorrectly")
	}
	if mono.At(7, 1) != 0 || mono.At(15, 1) != 0 {
		t.Error("out-of-range mono pixel should be 0")
	}

	rgb := Pixels{Format: FormatRGB565, Width: 2, Height: 1, Data: []byte{0x1F, 0x00, 0x00, 0xF8}}
	if got := rgb.At(0, 0); got != 0x001F {
		t.Errorf("At(0, 0) = %#04x, want 0x001f", got)
	}
	if got := rgb.At(1, 0); got != 0xF800 {
		t.Errorf("At(1, 0) = %#04x, want 0xf800", got)
	}
}
