// Package bmfont renders text from indexed bitmap-font containers onto the
// raw framebuffers of small displays.
//
// # Overview
//
// A container (see package container) holds pre-rasterized square glyphs
// for thousands of code points together with a sorted code-point index.
// Font opens a container, resolves characters through a small FIFO cache
// and hands out glyph bitmaps, substituting a built-in placeholder for
// characters the container lacks. Renderer lays a string out on a
// surface.Surface: it wraps, expands tabs, skips control characters,
// scales glyphs to the requested size and composes them into the
// surface's pixel format (MONO_HLSB or RGB565).
//
// # Quick Start
//
//	font, err := bmfont.OpenFile("unifont-16.bmf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer font.Close()
//
//	fb := surface.NewMono(128, 64)
//	r, err := bmfont.NewRenderer(font, fb)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts := bmfont.DefaultTextOptions()
//	opts.AutoWrap = true
//	cur, err := r.Text("你好, world\n第二行", 0, 0, opts)
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the surface
//   - X increases right, Y increases down
//   - A glyph drawn at (x, y) covers [x, x+size) × [y, y+size)
//
// # Bridges
//
// Face adapts a Font to golang.org/x/image/font.Face so that it can be
// drawn with font.Drawer onto any draw.Image. Package tiny adapts it to
// tinygo.org/x/tinyfont.
//
// # Concurrency
//
// Rendering is synchronous. A Font and the Renderers using it must be
// confined to one goroutine; open separate Fonts for concurrent renderers.
package bmfont

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// FormatVersion is the container format version this library writes.
	FormatVersion = 3
)
