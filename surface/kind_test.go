// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"slices"
	"testing"
)

// TestBuiltinKinds tests the kinds registered at init.
func TestBuiltinKinds(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		clear  int
	}{
		{"epaper", FormatMonoHLSB, 1},
		{"mono", FormatMonoHLSB, 0},
		{"rgb565", FormatRGB565, 0},
	}
	for _, tt := range tests {
		fb, err := NewKind(tt.name, 20, 10)
		if err != nil {
			t.Fatalf("NewKind(%q) failed: %v", tt.name, err)
		}
		if fb.Width() != 20 || fb.Height() != 10 {
			t.Errorf("%s: size = %dx%d, want 20x10", tt.name, fb.Width(), fb.Height())
		}
		if fb.Format() != tt.format {
			t.Errorf("%s: Format() = %v, want %v", tt.name, fb.Format(), tt.format)
		}
		fb.Clear()
		if got := fb.Pixel(3, 4); got != tt.clear {
			t.Errorf("%s: Pixel after Clear = %d, want %d", tt.name, got, tt.clear)
		}
	}

	names := Kinds()
	for _, want := range []string{"epaper", "mono", "rgb565"} {
		if !slices.Contains(names, want) {
			t.Errorf("Kinds() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("Kinds() = %v, want sorted", names)
	}
}

// TestNewKindOptionsOverride tests that caller options win over the kind's.
func TestNewKindOptionsOverride(t *testing.T) {
	fb, err := NewKind("epaper", 8, 2, WithClearValue(0))
	if err != nil {
		t.Fatal(err)
	}
	fb.Fill(1)
	fb.Clear()
	for i, b := range fb.Buffer() {
		if b != 0 {
			t.Errorf("Buffer()[%d] = %#x after Clear, want 0", i, b)
		}
	}

	// The registered kind is unaffected.
	fb, err = NewKind("epaper", 8, 2)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear()
	if fb.Buffer()[0] != 0xFF {
		t.Errorf("Buffer()[0] = %#x, want 0xff", fb.Buffer()[0])
	}
}

// TestRegisterKind tests registration and format validation.
func TestRegisterKind(t *testing.T) {
	t.Cleanup(func() {
		kindsMu.Lock()
		delete(kinds, "oled")
		kindsMu.Unlock()
	})

	if err := RegisterKind(Kind{Name: "oled", Format: FormatMonoHLSB}); err != nil {
		t.Fatalf("RegisterKind failed: %v", err)
	}
	k, ok := LookupKind("oled")
	if !ok || k.Format != FormatMonoHLSB {
		t.Errorf("LookupKind(oled) = %+v, %v", k, ok)
	}

	if err := RegisterKind(Kind{Name: "bad", Format: FormatUnknown}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown format error = %v, want ErrUnknownFormat", err)
	}
	if _, ok := LookupKind("bad"); ok {
		t.Error("rejected kind was registered")
	}
	if err := RegisterKind(Kind{Format: FormatRGB565}); err == nil {
		t.Error("expected error for empty name")
	}
}

// TestNewKindErrors tests unknown names and invalid sizes.
func TestNewKindErrors(t *testing.T) {
	_, err := NewKind("epd", 8, 8)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("error = %v, want ErrUnknownKind", err)
	}
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) || unknown.Name != "epd" || !slices.Contains(unknown.Known, "mono") {
		t.Errorf("error = %+v, want UnknownKindError{epd} listing mono", err)
	}

	if _, err := NewKind("mono", 0, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero width error = %v, want ErrInvalidSize", err)
	}
}
