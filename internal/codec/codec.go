// Package codec decodes and encodes raster images behind a backend-neutral
// interface. The default backend is pure Go; building with the govips tag
// swaps in libvips.
package codec

import (
	"errors"

	"github.com/cumulus13/imgconv/internal/format"
)

// ErrEncoderUnavailable marks formats that resolve fine but have no encoder
// in the active backend (dds, hdr, farbfeld in the default one).
var ErrEncoderUnavailable = errors.New("no encoder available for format")

// Image is a decoded bitmap owned by the backend that produced it.
type Image interface {
	Width() int
	Height() int
	Close()
}

type Codec interface {
	// Decode sniffs the encoded format from content and decodes the bitmap.
	Decode(data []byte) (Image, format.Format, error)
	// Encode renders img as f. Quality applies to JPEG only; every other
	// codec encodes with its library defaults.
	Encode(img Image, f format.Format, quality int) ([]byte, error)
}

// New returns the codec selected at build time.
func New() (Codec, error) {
	return newCodec()
}
