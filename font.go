package bmfont

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gogpu/bmfont/bitmap"
	"github.com/gogpu/bmfont/container"
	"github.com/gogpu/bmfont/internal/cache"
)

// Font is an open bitmap font: a container index plus a lookup cache and
// the fallback glyph.
//
// Font is not safe for concurrent use.
type Font struct {
	index    container.Index
	closer   io.Closer
	cache    *cache.Ring[rune, int]
	fallback []byte // fallback record at the native size
	scratch  []byte // record buffer reused by Glyph
	config   fontConfig
}

// CacheStats reports lookup cache statistics.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewFont wraps an open container index.
// The Font does not take ownership of idx; Close will not close it.
func NewFont(idx container.Index, opts ...FontOption) (*Font, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f := &Font{
		index:    idx,
		cache:    cache.NewRing[rune, int](config.cacheSize),
		fallback: FallbackRecord(idx.GlyphSize()),
		scratch:  make([]byte, idx.RecordSize()),
		config:   config,
	}
	f.logger().Info("bmfont: font opened",
		"glyphs", idx.Len(),
		"size", idx.GlyphSize(),
		"cache", config.cacheSize)
	return f, nil
}

// Open opens a v3 or legacy v1 container read through r.
func Open(r io.ReaderAt, opts ...FontOption) (*Font, error) {
	idx, err := container.OpenIndex(r)
	if err != nil {
		return nil, err
	}
	return NewFont(idx, opts...)
}

// OpenFile opens the container at path. The Font owns the file; call
// Close to release it.
func OpenFile(path string, opts ...FontOption) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bmfont: failed to open font file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("bmfont: failed to stat font file: %w", err)
	}

	f, err := Open(io.NewSectionReader(file, 0, info.Size()), opts...)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	f.closer = file
	return f, nil
}

// OpenFS opens the container name in fsys, for example an embed.FS.
// Files that support random access are read on demand; others are read
// into memory first.
func OpenFS(fsys fs.FS, name string, opts ...FontOption) (*Font, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("bmfont: failed to open font file: %w", err)
	}

	if ra, ok := file.(io.ReaderAt); ok {
		info, err := file.Stat()
		if err == nil {
			f, err := Open(io.NewSectionReader(ra, 0, info.Size()), opts...)
			if err != nil {
				_ = file.Close()
				return nil, err
			}
			f.closer = file
			return f, nil
		}
	}

	data, err := io.ReadAll(file)
	_ = file.Close()
	if err != nil {
		return nil, fmt.Errorf("bmfont: failed to read font file: %w", err)
	}
	return Open(bytes.NewReader(data), opts...)
}

// GlyphSize returns the native glyph edge length in pixels.
func (f *Font) GlyphSize() int {
	return f.index.GlyphSize()
}

// Len returns the number of glyphs in the container.
func (f *Font) Len() int {
	return f.index.Len()
}

// Index returns the underlying container index.
func (f *Font) Index() container.Index {
	return f.index
}

// Lookup returns the record index of r, or container.NotFound. Results,
// including misses, are cached.
func (f *Font) Lookup(r rune) (int, error) {
	if i, ok := f.cache.Get(r); ok {
		return i, nil
	}
	i, err := f.index.Lookup(r)
	if err != nil {
		return container.NotFound, err
	}
	f.cache.Put(r, i)
	return i, nil
}

// Has reports whether the container holds a glyph for r.
func (f *Font) Has(r rune) (bool, error) {
	i, err := f.Lookup(r)
	return i != container.NotFound, err
}

// Bitmap returns the packed native-size record of r. Characters absent
// from the container yield the fallback record and found == false; this
// is not an error.
func (f *Font) Bitmap(r rune) (record []byte, found bool, err error) {
	rec, found, err := f.record(r, nil)
	if err != nil {
		return nil, false, err
	}
	if !found {
		rec = append([]byte(nil), rec...)
	}
	return rec, found, nil
}

// Glyph returns the glyph of r scaled to size×size. A size of 0 means the
// native size. Absent characters yield the fallback glyph.
func (f *Font) Glyph(r rune, size int) (bitmap.Matrix, error) {
	if size < 0 {
		return bitmap.Matrix{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	native := f.index.GlyphSize()
	if size == 0 {
		size = native
	}

	rec, _, err := f.record(r, f.scratch)
	if err != nil {
		return bitmap.Matrix{}, err
	}
	m, err := bitmap.Decode(rec, native)
	if err != nil {
		return bitmap.Matrix{}, fmt.Errorf("bmfont: glyph %U: %w", r, err)
	}
	return bitmap.Scale(m, size), nil
}

// record resolves r to its packed record, reading into dst. The fallback
// record is returned as is and must not be modified.
func (f *Font) record(r rune, dst []byte) ([]byte, bool, error) {
	i, err := f.Lookup(r)
	if err != nil {
		return nil, false, err
	}
	if i == container.NotFound {
		f.logger().Debug("bmfont: glyph not found, using fallback", "rune", r)
		return f.fallback, false, nil
	}
	rec, err := f.index.ReadRecord(i, dst)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// CacheStats returns lookup cache statistics.
func (f *Font) CacheStats() CacheStats {
	s := f.cache.Stats()
	return CacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// Close releases the file opened by OpenFile or OpenFS.
// It is a no-op for fonts created with NewFont or Open.
func (f *Font) Close() error {
	f.cache.Clear()
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	if err != nil {
		f.logger().Warn("bmfont: closing font file", "err", err)
		return fmt.Errorf("bmfont: close: %w", err)
	}
	return nil
}

func (f *Font) logger() *slog.Logger {
	if f.config.logger != nil {
		return f.config.logger
	}
	return Logger()
}
