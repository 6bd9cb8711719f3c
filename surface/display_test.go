// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDisplayer records pixels like a driver's internal buffer.
type fakeDisplayer struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	displays int
	err      error
}

func newFakeDisplayer(w, h int16) *fakeDisplayer {
	return &fakeDisplayer{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (d *fakeDisplayer) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.pixels[[2]int16{x, y}] = c
}

func (d *fakeDisplayer) Display() error {
	if d.err != nil {
		return d.err
	}
	d.displays++
	return nil
}

func TestDisplayMono(t *testing.T) {
	dev := newFakeDisplayer(16, 8)
	d, err := NewDisplay(dev, FormatMonoHLSB)
	require.NoError(t, err)

	assert.Equal(t, 16, d.Width())
	assert.Equal(t, 8, d.Height())
	assert.Equal(t, FormatMonoHLSB, FormatOf(d))
	assert.Equal(t, Capabilities{SupportsClear: true, SupportsFill: true, SupportsPresent: true}, CapabilitiesOf(d))

	d.SetPixel(3, 2, 1)
	require.NoError(t, d.Present())

	assert.Equal(t, 1, dev.displays)
	assert.Len(t, dev.pixels, 16*8)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dev.pixels[[2]int16{3, 2}])
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, dev.pixels[[2]int16{0, 0}])
	assert.Equal(t, dev, d.Device())
}

func TestDisplayMonoColors(t *testing.T) {
	dev := newFakeDisplayer(8, 1)
	d, err := NewDisplay(dev, FormatMonoHLSB)
	require.NoError(t, err)

	amber := color.RGBA{R: 0xFF, G: 0xB0, A: 0xFF}
	d.SetMonoColors(amber, color.RGBA{})
	d.SetPixel(0, 0, 1)
	require.NoError(t, d.Present())

	assert.Equal(t, amber, dev.pixels[[2]int16{0, 0}])
	assert.Equal(t, color.RGBA{}, dev.pixels[[2]int16{1, 0}])
}

func TestDisplayRGB565(t *testing.T) {
	dev := newFakeDisplayer(4, 4)
	d, err := NewDisplay(dev, FormatRGB565)
	require.NoError(t, err)

	d.Fill(0x001F)
	require.NoError(t, d.Present())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dev.pixels[[2]int16{2, 3}])
	assert.Equal(t, 1, d.Frames())
}

func TestDisplayErrors(t *testing.T) {
	_, err := NewDisplay(newFakeDisplayer(0, 8), FormatMonoHLSB)
	assert.ErrorIs(t, err, ErrInvalidSize)

	dev := newFakeDisplayer(4, 4)
	dev.err = errors.New("i2c nack")
	d, err := NewDisplay(dev, FormatMonoHLSB)
	require.NoError(t, err)

	err = d.Present()
	assert.ErrorIs(t, err, dev.err)
	assert.Equal(t, 0, d.Frames())
}
