// Package format holds the closed set of image formats imgconv can name,
// the single extension/alias table that backs every extension decision, and
// the output-format resolver.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one supported image codec.
type Format int

const (
	Unknown Format = iota
	PNG
	JPEG
	GIF
	BMP
	ICO
	TIFF
	WebP
	AVIF
	PNM
	TGA
	DDS
	HDR
	Farbfeld
)

// table is the one source of truth for names, canonical extensions, and
// accepted aliases. Everything else (FromExtension, Parse, Extension) is
// derived from it, so jpg/jpeg and tif/tiff equivalence lives here and
// nowhere else.
var table = []struct {
	format    Format
	name      string
	canonical string
	aliases   []string
}{
	{PNG, "png", "png", nil},
	{JPEG, "jpeg", "jpg", []string{"jpeg"}},
	{GIF, "gif", "gif", nil},
	{BMP, "bmp", "bmp", nil},
	{ICO, "ico", "ico", nil},
	{TIFF, "tiff", "tiff", []string{"tif"}},
	{WebP, "webp", "webp", nil},
	{AVIF, "avif", "avif", nil},
	{PNM, "pnm", "pnm", []string{"pbm", "pgm", "ppm"}},
	{TGA, "tga", "tga", nil},
	{DDS, "dds", "dds", nil},
	{HDR, "hdr", "hdr", nil},
	{Farbfeld, "farbfeld", "ff", nil},
}

var (
	byExt  = map[string]Format{}
	byName = map[string]Format{}
	names  = map[Format]string{}
	exts   = map[Format]string{}
)

func init() {
	for _, row := range table {
		names[row.format] = row.name
		exts[row.format] = row.canonical
		byName[row.name] = row.format
		byExt[row.canonical] = row.format
		for _, alias := range row.aliases {
			byExt[alias] = row.format
			byName[alias] = row.format
		}
	}
}

func (f Format) String() string {
	if name, ok := names[f]; ok {
		return name
	}
	return "unknown"
}

// Extension returns the canonical file extension without the leading dot.
func (f Format) Extension() string {
	return exts[f]
}

// All lists every supported format in declaration order.
func All() []Format {
	out := make([]Format, 0, len(table))
	for _, row := range table {
		out = append(out, row.format)
	}
	return out
}

// FromExtension maps an extension string (leading dot optional, any case)
// to its format.
func FromExtension(ext string) (Format, bool) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	f, ok := byExt[ext]
	return f, ok
}

// FromPath maps a path's extension to its format.
func FromPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return Unknown, false
	}
	return FromExtension(ext)
}

// Parse resolves a user-supplied format name. Canonical names, extensions,
// and aliases are all accepted, so -f jpg and -f tif behave like their long
// forms.
func Parse(value string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if f, ok := byName[key]; ok {
		return f, nil
	}
	if f, ok := byExt[key]; ok {
		return f, nil
	}
	return Unknown, fmt.Errorf("unsupported format: %q", value)
}
