package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"runtime"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/bmfont/bitmap"
)

type rasterOptions struct {
	Size      int
	OffsetX   int
	OffsetY   int
	Threshold uint8
	Jobs      int
	Logger    *slog.Logger
}

// rasterizer renders characters of an outline font into square glyph
// matrices. The baseline sits size/8 pixels above the cell bottom, moved
// by the rendering offset.
type rasterizer struct {
	otf      *opentype.Font
	coverage *gotext.Face
	opts     rasterOptions
}

func newRasterizer(data []byte, opts rasterOptions) (*rasterizer, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font cmap: %w", err)
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &rasterizer{otf: otf, coverage: face, opts: opts}, nil
}

// covered returns the characters of runes the font maps to a glyph.
// Unmapped characters are logged and dropped.
func (r *rasterizer) covered(runes []rune) []rune {
	out := runes[:0:0]
	for _, ch := range runes {
		if _, ok := r.coverage.NominalGlyph(ch); !ok {
			r.opts.Logger.Warn("bmfgen: character missing from font", "rune", string(ch), "code", fmt.Sprintf("%U", ch))
			continue
		}
		out = append(out, ch)
	}
	return out
}

// render rasterizes runes in parallel. The result is index-aligned with
// runes.
func (r *rasterizer) render(ctx context.Context, runes []rune) ([]bitmap.Matrix, error) {
	glyphs := make([]bitmap.Matrix, len(runes))
	jobs := min(r.opts.Jobs, len(runes))
	if jobs == 0 {
		return glyphs, nil
	}
	chunk := (len(runes) + jobs - 1) / jobs

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(runes); lo += chunk {
		hi := min(lo+chunk, len(runes))
		g.Go(func() error {
			// Faces cache glyph data and are not safe for concurrent use.
			face, err := opentype.NewFace(r.otf, &opentype.FaceOptions{
				Size:    float64(r.opts.Size),
				DPI:     72,
				Hinting: font.HintingFull,
			})
			if err != nil {
				return fmt.Errorf("create face: %w", err)
			}
			defer func() {
				_ = face.Close()
			}()

			dst := image.NewAlpha(image.Rect(0, 0, r.opts.Size, r.opts.Size))
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				glyphs[i] = r.renderOne(face, dst, runes[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	r.opts.Logger.Debug("bmfgen: glyphs rendered", "count", len(runes), "jobs", jobs)
	return glyphs, nil
}

// renderOne draws ch into dst and thresholds the coverage.
func (r *rasterizer) renderOne(face font.Face, dst *image.Alpha, ch rune) bitmap.Matrix {
	clear(dst.Pix)
	size := r.opts.Size
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(r.opts.OffsetX, size-size/8+r.opts.OffsetY),
	}
	d.DrawString(string(ch))

	m := bitmap.NewMatrix(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if dst.Pix[y*dst.Stride+x] >= r.opts.Threshold {
				m.Set(y, x, true)
			}
		}
	}
	return m
}
