// Command bmfrender draws text with a bitmap font container onto an
// in-memory framebuffer and saves the result as a PNG image.
//
// Usage:
//
//	bmfrender --surface mono --width 128 --height 64 --wrap \
//	    unifont-16.bmf 'Hello\n世界' -o hello.png
package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gogpu/bmfont"
	"github.com/gogpu/bmfont/compose"
	bmcolor "github.com/gogpu/bmfont/internal/color"
	"github.com/gogpu/bmfont/surface"
)

type cli struct {
	Font string `arg:"" type:"existingfile" help:"Bitmap font container."`
	Text string `arg:"" help:"Text to draw. The escapes \\n and \\t are expanded."`

	Output       string `short:"o" type:"path" default:"out.png" help:"PNG file to write."`
	Surface      string `default:"rgb565" help:"Surface kind (${kinds})."`
	Width        int    `default:"160" help:"Surface width in pixels."`
	Height       int    `default:"80" help:"Surface height in pixels."`
	X            int    `help:"Left edge of the first glyph."`
	Y            int    `help:"Top edge of the first glyph."`
	Size         int    `short:"s" help:"Render size in pixels. 0 uses the native size."`
	Color        string `default:"#ffffff" help:"Text color as #rrggbb or #rgb."`
	Background   string `default:"#000000" help:"Background color as #rrggbb or #rgb."`
	Transparent  bool   `help:"Leave background pixels of glyphs untouched."`
	Wrap         bool   `short:"w" help:"Wrap lines at the right edge."`
	LineSpacing  int    `help:"Extra pixels between lines."`
	HalfWidth    string `enum:"ascii,none,east-asian" default:"ascii" help:"Half-width characters: ascii, none or east-asian."`
	Reverse      bool   `help:"Invert glyphs."`
	InvertPixels bool   `help:"On mono surfaces invert only glyph pixels, not row padding."`
	CacheSize    int    `default:"64" help:"Glyph lookup cache size."`
	Verbose      bool   `short:"v" help:"Log diagnostics to stderr."`
}

func main() {
	var args cli
	ctx := kong.Parse(&args, kongOptions()...)
	ctx.FatalIfErrorf(run(&args, os.Stderr))
}

func kongOptions() []kong.Option {
	return []kong.Option{
		kong.Name("bmfrender"),
		kong.Description("Draw text with a bitmap font and save it as PNG."),
		kong.Vars{"kinds": strings.Join(surface.Kinds(), ", ")},
		kong.UsageOnError(),
	}
}

func run(args *cli, stderr io.Writer) (err error) {
	level := slog.LevelWarn
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := textOptions(args)
	if err != nil {
		return err
	}

	font, err := bmfont.OpenFile(args.Font,
		bmfont.WithCacheSize(args.CacheSize),
		bmfont.WithFontLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := font.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close font: %w", cerr)
		}
	}()

	fb, err := surface.NewKind(args.Surface, args.Width, args.Height)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}

	invert := compose.InvertBytes
	if args.InvertPixels {
		invert = compose.InvertPixels
	}
	r, err := bmfont.NewRenderer(font, fb,
		bmfont.WithLogger(logger),
		bmfont.WithTiming(args.Verbose),
		bmfont.WithInvertMode(invert),
		bmfont.WithRequiredCapabilities(surface.Capabilities{SupportsClear: true}),
	)
	if err != nil {
		return err
	}

	cur, err := r.Text(unescape(args.Text), args.X, args.Y, opts)
	if err != nil {
		return err
	}
	logger.Info("bmfrender: text drawn", "cursor_x", cur.X, "cursor_y", cur.Y)

	return writePNG(args.Output, fb.Snapshot())
}

func textOptions(args *cli) (*bmfont.TextOptions, error) {
	fg, err := bmcolor.ParseHex(args.Color)
	if err != nil {
		return nil, fmt.Errorf("--color: %w", err)
	}
	bg, err := bmcolor.ParseHex(args.Background)
	if err != nil {
		return nil, fmt.Errorf("--background: %w", err)
	}

	opts := bmfont.DefaultTextOptions()
	opts.Size = args.Size
	opts.Color = fg
	opts.Background = bg
	opts.AutoWrap = args.Wrap
	opts.LineSpacing = args.LineSpacing
	opts.Reverse = args.Reverse
	opts.Clear = true
	if args.Transparent {
		opts.TransparentKey = int(bg)
	}
	switch args.HalfWidth {
	case "none":
		opts.HalfWidth = bmfont.HalfWidthNone
	case "east-asian":
		opts.HalfWidth = bmfont.HalfWidthEastAsian
	default:
		opts.HalfWidth = bmfont.HalfWidthASCII
	}
	return opts, nil
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)

func unescape(s string) string {
	return escapes.Replace(s)
}

func writePNG(path string, img image.Image) error {
	// #nosec G304 -- output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
