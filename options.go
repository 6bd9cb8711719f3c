package bmfont

import (
	"log/slog"

	"github.com/gogpu/bmfont/compose"
	"github.com/gogpu/bmfont/surface"
)

// DefaultCacheSize is the default number of resolved characters a Font
// remembers.
const DefaultCacheSize = 64

// FontOption configures a Font during creation.
//
// Example:
//
//	font, err := bmfont.OpenFile("unifont-16.bmf", bmfont.WithCacheSize(256))
type FontOption func(*fontConfig)

// fontConfig holds optional configuration for Font creation.
type fontConfig struct {
	cacheSize int
	logger    *slog.Logger
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		cacheSize: DefaultCacheSize,
		logger:    nil, // package Logger() at call time
	}
}

// WithCacheSize sets how many resolved characters the Font remembers.
// Eviction is first-in first-out. A value of 0 disables the cache.
func WithCacheSize(n int) FontOption {
	return func(c *fontConfig) {
		c.cacheSize = max(n, 0)
	}
}

// WithFontLogger sets the logger the Font reports to instead of the
// package-wide one.
func WithFontLogger(l *slog.Logger) FontOption {
	return func(c *fontConfig) {
		c.logger = l
	}
}

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r, err := bmfont.NewRenderer(font, display,
//	    bmfont.WithRequiredCapabilities(surface.Capabilities{SupportsPresent: true}),
//	    bmfont.WithTiming(true),
//	)
type RendererOption func(*rendererConfig)

// rendererConfig holds optional configuration for Renderer creation.
type rendererConfig struct {
	logger   *slog.Logger
	timing   bool
	invert   compose.InvertMode
	required surface.Capabilities
}

// defaultRendererConfig returns the default renderer configuration.
func defaultRendererConfig() rendererConfig {
	return rendererConfig{
		invert: compose.InvertBytes,
	}
}

// WithLogger sets the logger the Renderer reports to instead of the
// package-wide one.
func WithLogger(l *slog.Logger) RendererOption {
	return func(c *rendererConfig) {
		c.logger = l
	}
}

// WithTiming enables a debug-level log record with the duration of every
// Text call.
func WithTiming(enabled bool) RendererOption {
	return func(c *rendererConfig) {
		c.timing = enabled
	}
}

// WithInvertMode selects how reversed glyphs are inverted on monochrome
// surfaces. The default is compose.InvertBytes.
func WithInvertMode(m compose.InvertMode) RendererOption {
	return func(c *rendererConfig) {
		c.invert = m
	}
}

// WithRequiredCapabilities makes NewRenderer fail with a
// *surface.MissingCapabilityError unless the surface supports all of caps.
func WithRequiredCapabilities(caps surface.Capabilities) RendererOption {
	return func(c *rendererConfig) {
		c.required = caps
	}
}
