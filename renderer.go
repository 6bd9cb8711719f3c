package bmfont

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/bmfont/compose"
	"github.com/gogpu/bmfont/surface"
)

// Cursor is the layout position after a Text call.
type Cursor struct {
	// X and Y are where the next glyph would be drawn.
	X, Y int

	// InitialX is the column lines return to after a newline or wrap.
	InitialX int

	// LineAdvance is the vertical distance between lines.
	LineAdvance int
}

// newline moves the cursor to the start of the next line.
func (c *Cursor) newline() {
	c.Y += c.LineAdvance
	c.X = c.InitialX
}

// Renderer lays text out on a surface.
//
// The surface's optional capabilities are probed once, when the Renderer
// is created. Renderer is not safe for concurrent use.
type Renderer struct {
	font   *Font
	surf   surface.Surface
	caps   surface.Capabilities
	config rendererConfig
}

// NewRenderer creates a Renderer drawing font onto surf.
//
// If WithRequiredCapabilities names a capability surf lacks, NewRenderer
// fails with a *surface.MissingCapabilityError.
func NewRenderer(font *Font, surf surface.Surface, opts ...RendererOption) (*Renderer, error) {
	if font == nil {
		return nil, ErrNilFont
	}
	if surf == nil {
		return nil, ErrNilSurface
	}

	config := defaultRendererConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if err := surface.Require(surf, config.required); err != nil {
		return nil, err
	}

	return &Renderer{
		font:   font,
		surf:   surf,
		caps:   surface.CapabilitiesOf(surf),
		config: config,
	}, nil
}

// Font returns the font the Renderer draws with.
func (r *Renderer) Font() *Font {
	return r.font
}

// Surface returns the target surface.
func (r *Renderer) Surface() surface.Surface {
	return r.surf
}

// Capabilities returns the optional surface capabilities found at creation.
func (r *Renderer) Capabilities() surface.Capabilities {
	return r.caps
}

// Text draws s with its first glyph's top-left corner at (x, y) and
// returns the final cursor. A nil opts uses DefaultTextOptions.
//
// For each character, in order:
//
//  1. With AutoWrap, a character whose advance would cross the right edge
//     starts a new line, unless the cursor is already at the line start.
//  2. '\n' starts a new line.
//  3. '\t' moves x to the next multiple of the glyph size.
//  4. Other control characters below U+0010 are skipped.
//  5. A glyph whose cell lies entirely outside the surface is not drawn,
//     but the cursor still advances.
//  6. The glyph is resolved, scaled, composed and blitted; characters
//     missing from the font draw the fallback glyph.
//  7. x advances by size/2 for half-width characters, by size otherwise.
//
// If opts.Clear or opts.Present is set but the surface lacks the
// capability, Text returns a *surface.MissingCapabilityError before
// drawing anything. Storage errors abort the call; the returned cursor
// then reflects the characters processed so far.
func (r *Renderer) Text(s string, x, y int, opts *TextOptions) (Cursor, error) {
	if opts == nil {
		opts = DefaultTextOptions()
	}
	size := opts.Size
	if size < 0 {
		return Cursor{X: x, Y: y, InitialX: x}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		size = r.font.GlyphSize()
	}
	cur := Cursor{X: x, Y: y, InitialX: x, LineAdvance: size + opts.LineSpacing}

	if err := r.checkCapabilities(opts); err != nil {
		return cur, err
	}

	var start time.Time
	if r.config.timing {
		start = time.Now()
	}

	if opts.Clear {
		r.clear()
	}

	format := opts.Format
	if format == surface.FormatUnknown {
		format = surface.FormatOf(r.surf)
	}
	composeOpts := compose.Options{
		Format:     format,
		Foreground: opts.Color,
		Background: opts.Background,
		Reverse:    opts.Reverse,
		Invert:     r.config.invert,
	}

	width, height := r.surf.Width(), r.surf.Height()
	drawn := 0
	for _, ch := range s {
		adv := opts.HalfWidth.Advance(ch, size)

		if opts.AutoWrap && ch >= 0x10 && cur.X+adv > width && cur.X != cur.InitialX {
			cur.newline()
		}

		switch {
		case ch == '\n':
			cur.newline()
			continue
		case ch == '\t':
			cur.X = nextTabStop(cur.X, size)
			continue
		case ch < 0x10:
			continue
		}

		if cur.X >= width || cur.Y >= height || cur.X+size <= 0 || cur.Y+size <= 0 {
			r.logger().Debug("bmfont: glyph outside surface", "rune", ch, "x", cur.X, "y", cur.Y)
			cur.X += adv
			continue
		}

		m, err := r.font.Glyph(ch, size)
		if err != nil {
			return cur, fmt.Errorf("bmfont: draw %U: %w", ch, err)
		}
		r.surf.Blit(compose.Compose(m, composeOpts), cur.X, cur.Y, opts.TransparentKey)
		drawn++
		cur.X += adv
	}

	if opts.Present {
		if err := r.surf.(surface.Presenter).Present(); err != nil {
			return cur, fmt.Errorf("bmfont: present: %w", err)
		}
	}

	if r.config.timing {
		r.logger().Debug("bmfont: text drawn",
			"chars", len(s),
			"glyphs", drawn,
			"elapsed", time.Since(start))
	}
	return cur, nil
}

// Clear resets the surface using Clear, or Fill(0) when the surface can
// only fill.
func (r *Renderer) Clear() error {
	if !r.caps.SupportsClear && !r.caps.SupportsFill {
		return &surface.MissingCapabilityError{Missing: surface.Capabilities{SupportsClear: true}}
	}
	r.clear()
	return nil
}

// Present pushes the surface to the display.
func (r *Renderer) Present() error {
	if !r.caps.SupportsPresent {
		return &surface.MissingCapabilityError{Missing: surface.Capabilities{SupportsPresent: true}}
	}
	return r.surf.(surface.Presenter).Present()
}

// Measure returns the cursor Text would return for s at (x, y) without
// drawing anything or reading glyph data. Like Text, it rejects a
// negative opts.Size with ErrInvalidSize.
func (r *Renderer) Measure(s string, x, y int, opts *TextOptions) (Cursor, error) {
	if opts == nil {
		opts = DefaultTextOptions()
	}
	size := opts.Size
	if size < 0 {
		return Cursor{X: x, Y: y, InitialX: x}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		size = r.font.GlyphSize()
	}
	cur := Cursor{X: x, Y: y, InitialX: x, LineAdvance: size + opts.LineSpacing}
	width := r.surf.Width()
	for _, ch := range s {
		adv := opts.HalfWidth.Advance(ch, size)
		if opts.AutoWrap && ch >= 0x10 && cur.X+adv > width && cur.X != cur.InitialX {
			cur.newline()
		}
		switch {
		case ch == '\n':
			cur.newline()
		case ch == '\t':
			cur.X = nextTabStop(cur.X, size)
		case ch < 0x10:
		default:
			cur.X += adv
		}
	}
	return cur, nil
}

// nextTabStop returns the first multiple of size greater than x.
func nextTabStop(x, size int) int {
	q := x / size
	if x%size != 0 && x < 0 {
		q--
	}
	return (q + 1) * size
}

func (r *Renderer) checkCapabilities(opts *TextOptions) error {
	var missing surface.Capabilities
	if opts.Clear && !r.caps.SupportsClear && !r.caps.SupportsFill {
		missing.SupportsClear = true
	}
	if opts.Present && !r.caps.SupportsPresent {
		missing.SupportsPresent = true
	}
	if !missing.IsZero() {
		return &surface.MissingCapabilityError{Missing: missing}
	}
	return nil
}

func (r *Renderer) clear() {
	if c, ok := r.surf.(surface.Clearer); ok {
		c.Clear()
		return
	}
	if f, ok := r.surf.(surface.Filler); ok {
		f.Fill(0)
	}
}

func (r *Renderer) logger() *slog.Logger {
	if r.config.logger != nil {
		return r.config.logger
	}
	return r.font.logger()
}
