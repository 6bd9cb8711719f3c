// Command bmfgen renders a character set from an outline font into a
// bitmap font container.
//
// Usage:
//
//	bmfgen --charset-file 7000.txt --font SourceHanSansSC-Light.otf \
//	    --size 16 --offset-y -1 unifont-16.bmf
//
// Characters the outline font does not map are reported and left out, so
// that renderers draw their fallback glyph for them.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/bmfont"
	"github.com/gogpu/bmfont/container"
)

type cli struct {
	Charset     string `short:"c" xor:"chars" required:"" help:"Characters to include."`
	CharsetFile string `short:"f" xor:"chars" required:"" type:"existingfile" help:"UTF-8 file holding the characters to include."`
	Font        string `short:"t" type:"existingfile" help:"TrueType or OpenType font. Defaults to Go Regular."`
	Size        int    `short:"s" default:"16" help:"Glyph size in pixels (1-42)."`
	OffsetX     int    `help:"Horizontal rendering offset in pixels."`
	OffsetY     int    `help:"Vertical rendering offset in pixels."`
	Threshold   uint8  `default:"128" help:"Coverage (0-255) at or above which a pixel is set."`
	Legacy      bool   `help:"Write the legacy version 1 container."`
	Jobs        int    `short:"j" default:"0" help:"Parallel rasterizers. 0 uses one per CPU."`
	Verbose     bool   `short:"v" help:"Log progress to stderr."`

	Output string `arg:"" name:"output" type:"path" help:"Container file to write."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("bmfgen"),
		kong.Description("Render a character set into a bitmap font container."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run(context.Background(), &args, os.Stderr))
}

func run(ctx context.Context, args *cli, stderr io.Writer) error {
	level := slog.LevelWarn
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	bmfont.SetLogger(logger)

	if args.Size < 1 || args.Size > container.MaxGlyphSize {
		return fmt.Errorf("size %d not in [1, %d]", args.Size, container.MaxGlyphSize)
	}

	text := args.Charset
	if args.CharsetFile != "" {
		data, err := os.ReadFile(args.CharsetFile)
		if err != nil {
			return fmt.Errorf("read charset: %w", err)
		}
		text = string(data)
	}
	runes := parseCharset(text, logger)
	if len(runes) == 0 {
		return fmt.Errorf("charset holds no printable characters")
	}

	fontData := goregular.TTF
	if args.Font != "" {
		data, err := os.ReadFile(args.Font)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		fontData = data
	}

	r, err := newRasterizer(fontData, rasterOptions{
		Size:      args.Size,
		OffsetX:   args.OffsetX,
		OffsetY:   args.OffsetY,
		Threshold: args.Threshold,
		Jobs:      args.Jobs,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	runes = r.covered(runes)
	if len(runes) == 0 {
		return fmt.Errorf("font maps none of the requested characters")
	}
	glyphs, err := r.render(ctx, runes)
	if err != nil {
		return err
	}

	b, err := container.NewBuilder(args.Size)
	if err != nil {
		return err
	}
	for i, ch := range runes {
		if err := b.Add(ch, glyphs[i]); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if args.Legacy {
		_, err = b.WriteLegacyTo(&buf)
	} else {
		_, err = b.WriteTo(&buf)
	}
	if err != nil {
		return fmt.Errorf("encode container: %w", err)
	}
	if err := os.WriteFile(args.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write container: %w", err)
	}

	logger.Info("bmfgen: container written",
		"path", args.Output,
		"glyphs", b.Len(),
		"size", args.Size,
		"bytes", buf.Len())
	return nil
}
