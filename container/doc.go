// Package container reads and writes BMF bitmap-font containers.
//
// A version 3 container is a single immutable file made of three regions:
//
//	offset  size          field
//	0       2             magic "BM"
//	2       1             format version (3)
//	3       1             mapping mode (0 = row-major MSB-first monochrome)
//	4       3             big-endian offset of the bitmap region
//	7       1             glyph pixel size (glyphs are square)
//	8       1             bytes per glyph record
//	9       7             reserved, zero
//	16      2*k           k ascending big-endian code points
//	start   record*k      k packed glyph records, in index order
//
// Record i holds the bitmap of the code point stored at index entry i.
// Lookup binary-searches the index directly in storage, so opening a
// container costs one 16-byte read and every lookup costs O(log k) 2-byte
// reads. Nothing but the header is held in memory.
//
// The older version 1 layout, with a UTF-8 character list in place of the
// sorted index, is readable through OpenLegacy. Both readers satisfy Index.
//
// Builder produces version 3 containers.
//
// A Container is not safe for concurrent use by multiple goroutines unless
// the underlying io.ReaderAt is; it keeps no mutable state of its own.
package container
