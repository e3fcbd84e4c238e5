//go:build govips && cgo

package codec

import (
	"fmt"

	"github.com/davidbyttow/govips/v2/vips"

	"github.com/cumulus13/imgconv/internal/format"
)

type vipsImage struct {
	ref *vips.ImageRef
}

func (v vipsImage) Width() int  { return v.ref.Width() }
func (v vipsImage) Height() int { return v.ref.Height() }
func (v vipsImage) Close()      { v.ref.Close() }

type govipsCodec struct{}

func (govipsCodec) Decode(data []byte) (Image, format.Format, error) {
	ref, err := vips.NewImageFromBuffer(data)
	if err != nil {
		return nil, format.Unknown, fmt.Errorf("decode source image: %w", err)
	}
	return vipsImage{ref: ref}, formatFromImageType(vips.DetermineImageType(data)), nil
}

func (govipsCodec) Encode(img Image, f format.Format, quality int) ([]byte, error) {
	src, ok := img.(vipsImage)
	if !ok {
		return nil, fmt.Errorf("image was not decoded by this codec")
	}

	var (
		data []byte
		err  error
	)
	switch f {
	case format.JPEG:
		params := vips.NewJpegExportParams()
		if quality > 0 && quality <= 100 {
			params.Quality = quality
		}
		data, _, err = src.ref.ExportJpeg(params)
	case format.PNG:
		data, _, err = src.ref.ExportPng(vips.NewPngExportParams())
	case format.WebP:
		data, _, err = src.ref.ExportWebp(vips.NewWebpExportParams())
	case format.AVIF:
		data, _, err = src.ref.ExportAVIF(vips.NewAvifExportParams())
	case format.GIF:
		data, _, err = src.ref.ExportGIF(vips.NewGifExportParams())
	case format.TIFF:
		data, _, err = src.ref.ExportTiff(vips.NewTiffExportParams())
	default:
		return nil, fmt.Errorf("%w: %s", ErrEncoderUnavailable, f)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	return data, nil
}

func formatFromImageType(t vips.ImageType) format.Format {
	switch t {
	case vips.ImageTypeJPEG:
		return format.JPEG
	case vips.ImageTypePNG:
		return format.PNG
	case vips.ImageTypeGIF:
		return format.GIF
	case vips.ImageTypeBMP:
		return format.BMP
	case vips.ImageTypeTIFF:
		return format.TIFF
	case vips.ImageTypeWEBP:
		return format.WebP
	case vips.ImageTypeAVIF:
		return format.AVIF
	default:
		return format.Unknown
	}
}
