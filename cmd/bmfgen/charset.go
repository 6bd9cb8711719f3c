package main

import (
	"log/slog"
	"slices"
	"unicode"

	"github.com/gogpu/bmfont/container"
)

// parseCharset returns the distinct characters of text in ascending order.
// Control characters are dropped, as are characters outside the Basic
// Multilingual Plane, which the container index cannot hold.
func parseCharset(text string, logger *slog.Logger) []rune {
	seen := make(map[rune]struct{})
	var out []rune
	for _, r := range text {
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			continue
		}
		if r > container.MaxRune {
			logger.Warn("bmfgen: character outside the BMP skipped", "rune", string(r))
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
