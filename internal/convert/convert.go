// Package convert drives a single conversion run: load the source bytes,
// resolve the output, encode, write. Every step fails fast with path and
// stage context.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cumulus13/imgconv/internal/clipboard"
	"github.com/cumulus13/imgconv/internal/codec"
	"github.com/cumulus13/imgconv/internal/format"
	"github.com/cumulus13/imgconv/internal/ui"
)

var (
	ErrQualityOutOfRange = errors.New("quality must be between 1 and 100")
	ErrInputNotFound     = errors.New("input file not found")
)

// Source supplies the encoded bytes of the image to convert.
type Source interface {
	Load(ctx context.Context) ([]byte, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, s.Path)
		}
		return nil, fmt.Errorf("stat input file %s: %w", s.Path, err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", s.Path, err)
	}
	return data, nil
}

type ClipboardSource struct{}

func (ClipboardSource) Load(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return clipboard.Read()
}

type Request struct {
	OutputPath    string
	FromClipboard bool
	// Format is the explicit output format, Unknown when not forced.
	Format format.Format
	// Extension is the clipboard-mode extension override.
	Extension string
	Quality   int
}

type Result struct {
	Path   string
	Format format.Format
	Bytes  int
	Width  int
	Height int
}

type Converter struct {
	source  Source
	codec   codec.Codec
	printer *ui.Printer
}

func New(source Source, printer *ui.Printer) (*Converter, error) {
	c, err := codec.New()
	if err != nil {
		return nil, fmt.Errorf("build codec: %w", err)
	}
	return &Converter{source: source, codec: c, printer: printer}, nil
}

func (c *Converter) Run(ctx context.Context, req Request) (Result, error) {
	// Quality is gated before any I/O in either input mode.
	if req.Quality < 1 || req.Quality > 100 {
		return Result{}, fmt.Errorf("%w, got %d", ErrQualityOutOfRange, req.Quality)
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return Result{}, errors.New("output path is required")
	}

	data, err := c.source.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load source: %w", err)
	}

	img, detected, err := c.codec.Decode(data)
	if err != nil {
		return Result{}, fmt.Errorf("decode stage: %w", err)
	}
	defer img.Close()

	if detected != format.Unknown {
		c.printer.Successf("image loaded: %dx%d pixels, format: %s", img.Width(), img.Height(), detected)
	} else {
		c.printer.Successf("image loaded: %dx%d pixels", img.Width(), img.Height())
	}

	resolved, err := c.resolveOutput(req, detected)
	if err != nil {
		return Result{}, err
	}

	c.printer.Infof("converting to format: %s", resolved.Format)

	if dir := filepath.Dir(resolved.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	encoded, err := c.codec.Encode(img, resolved.Format, req.Quality)
	if err != nil {
		return Result{}, fmt.Errorf("encode stage: %w", err)
	}
	if resolved.Format == format.JPEG {
		c.printer.Successf("JPEG quality: %d", req.Quality)
	}

	if err := os.WriteFile(resolved.Path, encoded, 0o644); err != nil {
		return Result{}, fmt.Errorf("write output file %s: %w", resolved.Path, err)
	}

	return Result{
		Path:   resolved.Path,
		Format: resolved.Format,
		Bytes:  len(encoded),
		Width:  img.Width(),
		Height: img.Height(),
	}, nil
}

func (c *Converter) resolveOutput(req Request, detected format.Format) (format.Resolved, error) {
	notify := format.NotifyFunc(c.printer.Infof)
	if req.FromClipboard {
		return format.ResolveClipboard(req.OutputPath, req.Format, req.Extension, detected, notify)
	}
	return format.ResolveFile(req.OutputPath, req.Format, notify)
}
