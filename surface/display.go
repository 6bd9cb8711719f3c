// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"

	bmcolor "github.com/gogpu/bmfont/internal/color"
)

// Display is a Framebuffer whose Present pushes the buffer to a
// tinygo.org/x/drivers Displayer, such as an SSD1306 or ST7789 driver.
//
// Drawing happens in memory; Present writes every pixel with SetPixel and
// then calls the driver's Display. Set mono pixels are sent as the
// configured foreground color, clear ones as the background.
type Display struct {
	*Framebuffer

	dev        drivers.Displayer
	foreground color.RGBA
	background color.RGBA
}

// NewDisplay creates a Display sized to dev.
func NewDisplay(dev drivers.Displayer, format Format, opts ...FramebufferOption) (*Display, error) {
	w, h := dev.Size()
	d := &Display{
		dev:        dev,
		foreground: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		background: color.RGBA{A: 0xFF},
	}

	opts = append(opts, WithPresentFunc(func(*Framebuffer) error {
		return d.push()
	}))
	fb, err := NewFramebuffer(format, int(w), int(h), opts...)
	if err != nil {
		return nil, fmt.Errorf("surface: display: %w", err)
	}
	d.Framebuffer = fb
	return d, nil
}

// SetMonoColors sets the colors used for set and clear mono pixels.
func (d *Display) SetMonoColors(foreground, background color.RGBA) {
	d.foreground = foreground
	d.background = background
}

// Device returns the underlying driver.
func (d *Display) Device() drivers.Displayer {
	return d.dev
}

func (d *Display) push() error {
	fb := d.Framebuffer
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			v := getPixel(fb.format, fb.buf, fb.stride, x, y)
			var c color.RGBA
			switch {
			case fb.format == FormatRGB565:
				c = bmcolor.ToRGBA(uint16(v))
			case v != 0:
				c = d.foreground
			default:
				c = d.background
			}
			//nolint:gosec // G115: x, y are bounded by dev.Size()
			d.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	if err := d.dev.Display(); err != nil {
		return fmt.Errorf("surface: display: %w", err)
	}
	return nil
}
