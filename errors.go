package bmfont

import "errors"

// Sentinel errors for bmfont package.
var (
	// ErrNilIndex is returned by NewFont when no container is given.
	ErrNilIndex = errors.New("bmfont: nil container index")

	// ErrNilFont is returned by NewRenderer when no font is given.
	ErrNilFont = errors.New("bmfont: nil font")

	// ErrNilSurface is returned by NewRenderer when no surface is given.
	ErrNilSurface = errors.New("bmfont: nil surface")

	// ErrInvalidSize is returned for a negative glyph render size.
	ErrInvalidSize = errors.New("bmfont: invalid glyph size")
)
