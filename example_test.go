package bmfont_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gogpu/bmfont"
	"github.com/gogpu/bmfont/bitmap"
	"github.com/gogpu/bmfont/container"
	"github.com/gogpu/bmfont/surface"
)

// exampleFont builds an 8px container holding 'H' and 'I'.
func exampleFont() (*bmfont.Font, error) {
	b, err := container.NewBuilder(8)
	if err != nil {
		return nil, err
	}
	_ = b.Add('H', bitmap.ParseMatrix(
		"#....#..",
		"#....#..",
		"#....#..",
		"######..",
		"#....#..",
		"#....#..",
		"#....#..",
		"........",
	))
	_ = b.Add('I', bitmap.ParseMatrix(
		".####...",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		"..##....",
		".####...",
		"........",
	))

	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return bmfont.Open(bytes.NewReader(buf.Bytes()))
}

func Example() {
	font, err := exampleFont()
	if err != nil {
		fmt.Println("open font:", err)
		return
	}

	fb := surface.NewMono(16, 8)
	r, err := bmfont.NewRenderer(font, fb)
	if err != nil {
		fmt.Println("new renderer:", err)
		return
	}

	opts := bmfont.DefaultTextOptions()
	opts.HalfWidth = bmfont.HalfWidthNone
	cur, err := r.Text("HI", 0, 0, opts)
	if err != nil {
		fmt.Println("draw:", err)
		return
	}

	for y := 0; y < fb.Height(); y++ {
		var sb strings.Builder
		for x := 0; x < fb.Width(); x++ {
			if fb.Pixel(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		fmt.Println(sb.String())
	}
	fmt.Println("cursor:", cur.X, cur.Y)
	// Output:
	// #....#...####...
	// #....#....##....
	// #....#....##....
	// ######....##....
	// #....#....##....
	// #....#....##....
	// #....#...####...
	// ................
	// cursor: 16 0
}

func ExampleFont_Bitmap() {
	font, err := exampleFont()
	if err != nil {
		fmt.Println("open font:", err)
		return
	}

	_, found, _ := font.Bitmap('H')
	fmt.Println("H found:", found)

	// Missing characters yield the fallback record.
	rec, found, err := font.Bitmap('?')
	fmt.Println("? found:", found, "bytes:", len(rec), "err:", err)
	// Output:
	// H found: true
	// ? found: false bytes: 8 err: <nil>
}

func ExampleRenderer_Measure() {
	font, err := exampleFont()
	if err != nil {
		fmt.Println("open font:", err)
		return
	}
	r, err := bmfont.NewRenderer(font, surface.NewMono(16, 32))
	if err != nil {
		fmt.Println("new renderer:", err)
		return
	}

	opts := bmfont.DefaultTextOptions()
	opts.AutoWrap = true
	opts.HalfWidth = bmfont.HalfWidthNone
	cur, err := r.Measure("HIHI\nH", 0, 0, opts)
	if err != nil {
		fmt.Println("measure:", err)
		return
	}
	fmt.Println(cur.X, cur.Y)
	// Output: 8 16
}
