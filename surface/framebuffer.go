// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"

	bmcolor "github.com/gogpu/bmfont/internal/color"
)

// Framebuffer is an in-memory surface in MONO_HLSB or RGB565 encoding.
//
// It implements Surface, Clearer, Filler and Presenter. Present hands the
// buffer to an optional callback, which is how Display pushes it to a
// physical panel; without a callback Present only counts frames.
//
// Example:
//
//	fb := surface.NewRGB565(160, 80)
//	fb.Fill(0x001F)
//	img := fb.Snapshot()
type Framebuffer struct {
	format Format
	width  int
	height int
	stride int
	buf    []byte
	config framebufferConfig
	frames int
}

// FramebufferOption configures a Framebuffer.
type FramebufferOption func(*framebufferConfig)

type framebufferConfig struct {
	clearValue int
	onPresent  func(*Framebuffer) error
}

func defaultFramebufferConfig() framebufferConfig {
	return framebufferConfig{}
}

// WithClearValue sets the pixel value Clear writes. E-paper panels, where
// a set bit is white, use 1 (mono) or 0xFFFF (RGB565).
func WithClearValue(v int) FramebufferOption {
	return func(c *framebufferConfig) {
		c.clearValue = v
	}
}

// WithPresentFunc sets the callback Present invokes.
func WithPresentFunc(fn func(*Framebuffer) error) FramebufferOption {
	return func(c *framebufferConfig) {
		c.onPresent = fn
	}
}

// NewFramebuffer creates a blank framebuffer of the given format and size.
func NewFramebuffer(format Format, width, height int, opts ...FramebufferOption) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if format != FormatMonoHLSB && format != FormatRGB565 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	config := defaultFramebufferConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Framebuffer{
		format: format,
		width:  width,
		height: height,
		stride: format.Stride(width),
		buf:    make([]byte, format.BufferLen(width, height)),
		config: config,
	}, nil
}

// NewMono creates a MONO_HLSB framebuffer. Non-positive dimensions are
// clamped to 1.
func NewMono(width, height int, opts ...FramebufferOption) *Framebuffer {
	fb, _ := NewFramebuffer(FormatMonoHLSB, max(width, 1), max(height, 1), opts...)
	return fb
}

// NewRGB565 creates an RGB565 framebuffer. Non-positive dimensions are
// clamped to 1.
func NewRGB565(width, height int, opts ...FramebufferOption) *Framebuffer {
	fb, _ := NewFramebuffer(FormatRGB565, max(width, 1), max(height, 1), opts...)
	return fb
}

// Width returns the framebuffer width.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height.
func (f *Framebuffer) Height() int {
	return f.height
}

// Buffer returns the backing memory. Writes to it are visible to the
// framebuffer.
func (f *Framebuffer) Buffer() []byte {
	return f.buf
}

// Format returns the pixel encoding.
func (f *Framebuffer) Format() Format {
	return f.format
}

// Pixel returns the value at (x, y), or 0 outside the framebuffer.
func (f *Framebuffer) Pixel(x, y int) int {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return getPixel(f.format, f.buf, f.stride, x, y)
}

// SetPixel sets the value at (x, y). Coordinates outside the framebuffer
// are ignored.
func (f *Framebuffer) SetPixel(x, y, v int) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	setPixel(f.format, f.buf, f.stride, x, y, v)
}

// Blit copies src to (x, y), clipped to the framebuffer. Source pixels
// whose value equals key are left untouched. Pixels of another format are
// converted: set mono pixels become white, any non-black color a set bit.
func (f *Framebuffer) Blit(src Pixels, x, y, key int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+src.Width, f.width), min(y+src.Height, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	srcStride := src.Format.Stride(src.Width)
	if src.Format == f.format && src.Format == FormatRGB565 && key == NoKey {
		for dy := y0; dy < y1; dy++ {
			s := (dy-y)*srcStride + (x0-x)*2
			d := dy*f.stride + x0*2
			copy(f.buf[d:d+(x1-x0)*2], src.Data[s:])
		}
		return
	}

	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			v := getPixel(src.Format, src.Data, srcStride, dx-x, dy-y)
			if v == key {
				continue
			}
			setPixel(f.format, f.buf, f.stride, dx, dy, convertPixel(src.Format, f.format, v))
		}
	}
}

// Clear sets every pixel to the clear value (0 unless WithClearValue).
func (f *Framebuffer) Clear() {
	f.Fill(f.config.clearValue)
}

// Fill sets every pixel to value.
func (f *Framebuffer) Fill(value int) {
	switch f.format {
	case FormatMonoHLSB:
		b := byte(0x00)
		if value&1 != 0 {
			b = 0xFF
		}
		for i := range f.buf {
			f.buf[i] = b
		}
	case FormatRGB565:
		lo, hi := byte(value), byte(value>>8)
		for i := 0; i < len(f.buf); i += 2 {
			f.buf[i] = lo
			f.buf[i+1] = hi
		}
	}
}

// Present invokes the present callback, if any, and counts the frame.
func (f *Framebuffer) Present() error {
	if f.config.onPresent != nil {
		if err := f.config.onPresent(f); err != nil {
			return err
		}
	}
	f.frames++
	return nil
}

// Frames returns the number of successful Present calls.
func (f *Framebuffer) Frames() int {
	return f.frames
}

// Snapshot returns the contents as an RGBA image. Set mono pixels are
// white, clear ones black. The returned image is a copy.
func (f *Framebuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			img.SetRGBA(x, y, f.colorAt(x, y))
		}
	}
	return img
}

// colorAt expands the pixel at (x, y) to RGBA.
func (f *Framebuffer) colorAt(x, y int) color.RGBA {
	v := getPixel(f.format, f.buf, f.stride, x, y)
	if f.format == FormatMonoHLSB {
		if v != 0 {
			return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
		}
		return color.RGBA{A: 0xFF}
	}
	return bmcolor.ToRGBA(uint16(v))
}

var (
	_ Surface   = (*Framebuffer)(nil)
	_ Clearer   = (*Framebuffer)(nil)
	_ Filler    = (*Framebuffer)(nil)
	_ Presenter = (*Framebuffer)(nil)
)
