package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrUndeterminable   = errors.New("cannot determine output format")
	ErrUnknownExtension = errors.New("unknown extension")
)

// Resolved is the resolver's answer: the final output path and the codec to
// encode with. The path's extension is always consistent with Format, with
// alias extensions (jpeg, tif, ppm) accepted as equivalent.
type Resolved struct {
	Path   string
	Format Format
}

// NotifyFunc receives an informational notice for every path correction the
// resolver performs. A nil NotifyFunc discards notices.
type NotifyFunc func(format string, args ...any)

// ResolveFile resolves the output for file-input mode. An explicit format
// wins and canonicalizes the path extension; otherwise the path extension
// alone decides, and an unrecognized one is an error.
func ResolveFile(outputPath string, explicit Format, notify NotifyFunc) (Resolved, error) {
	if explicit != Unknown {
		return Resolved{Path: canonicalizePath(outputPath, explicit, notify), Format: explicit}, nil
	}
	if f, ok := FromPath(outputPath); ok {
		return Resolved{Path: outputPath, Format: f}, nil
	}
	return Resolved{}, fmt.Errorf("%w from %q: pass --format or use a recognized extension", ErrUndeterminable, outputPath)
}

// ResolveClipboard resolves the output for clipboard-input mode. Priority,
// first match wins: the extension flag, the format flag, the output path's
// own extension (corrected when it disagrees with the captured format), and
// finally the captured format itself (PNG when unknown).
func ResolveClipboard(outputPath string, explicit Format, extension string, detected Format, notify NotifyFunc) (Resolved, error) {
	if strings.TrimSpace(extension) != "" {
		return resolveByExtensionFlag(outputPath, extension, notify)
	}

	if explicit != Unknown {
		return Resolved{Path: canonicalizePath(outputPath, explicit, notify), Format: explicit}, nil
	}

	if cur := currentExtension(outputPath); cur != "" {
		curFormat, known := FromExtension(cur)
		if detected != Unknown && (!known || curFormat != detected) {
			// The output should match what was actually captured unless the
			// user overrode it with -e or -f.
			emit(notify, "output extension .%s does not match captured format .%s, correcting", cur, detected.Extension())
			return Resolved{Path: setExtension(outputPath, detected.Extension()), Format: detected}, nil
		}
		if known {
			return Resolved{Path: outputPath, Format: curFormat}, nil
		}
	}

	final := detected
	if final == Unknown {
		final = PNG
	}
	emit(notify, "auto-adding extension: .%s", final.Extension())
	return Resolved{Path: setExtension(outputPath, final.Extension()), Format: final}, nil
}

func resolveByExtensionFlag(outputPath, extension string, notify NotifyFunc) (Resolved, error) {
	target, ok := FromExtension(extension)
	if !ok {
		return Resolved{}, fmt.Errorf("%w: %q", ErrUnknownExtension, extension)
	}

	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))
	cur := currentExtension(outputPath)
	switch {
	case cur == "":
		return Resolved{Path: setExtension(outputPath, ext), Format: target}, nil
	case !strings.EqualFold(cur, ext):
		emit(notify, "correcting extension from .%s to .%s (conversion mode)", cur, ext)
		return Resolved{Path: setExtension(outputPath, ext), Format: target}, nil
	default:
		return Resolved{Path: outputPath, Format: target}, nil
	}
}

// canonicalizePath makes the path extension agree with f, leaving it alone
// when it already maps to f through the alias table (so photo.JPG stays
// untouched for an explicit jpeg).
func canonicalizePath(path string, f Format, notify NotifyFunc) string {
	if cur, ok := FromPath(path); ok && cur == f {
		return path
	}
	if cur := currentExtension(path); cur != "" {
		emit(notify, "correcting extension from .%s to .%s", cur, f.Extension())
	} else {
		emit(notify, "auto-adding extension: .%s", f.Extension())
	}
	return setExtension(path, f.Extension())
}

func currentExtension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// setExtension replaces the path's extension, or appends one if the path
// has none.
func setExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

func emit(notify NotifyFunc, format string, args ...any) {
	if notify != nil {
		notify(format, args...)
	}
}
