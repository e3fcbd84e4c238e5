package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	ico "github.com/Kodeworks/golang-image-ico"
	webpenc "github.com/chai2010/webp"
	"github.com/ftrvxmtrx/tga"
	pnm "github.com/jbuchbinder/gopnm"
	avif "github.com/kagami/go-avif"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/cumulus13/imgconv/internal/format"
)

type stdImage struct {
	img image.Image
}

func (s stdImage) Width() int  { return s.img.Bounds().Dx() }
func (s stdImage) Height() int { return s.img.Bounds().Dy() }
func (s stdImage) Close()      {}

type stdCodec struct{}

func (stdCodec) Decode(data []byte) (Image, format.Format, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format.Unknown, fmt.Errorf("decode source image: %w", err)
	}
	return stdImage{img: img}, formatFromRegisteredName(name), nil
}

func (stdCodec) Encode(img Image, f format.Format, quality int) ([]byte, error) {
	src, ok := img.(stdImage)
	if !ok {
		return nil, errors.New("image was not decoded by this codec")
	}

	var buf bytes.Buffer
	var err error
	switch f {
	case format.JPEG:
		err = jpeg.Encode(&buf, src.img, &jpeg.Options{Quality: quality})
	case format.PNG:
		err = png.Encode(&buf, src.img)
	case format.GIF:
		err = gif.Encode(&buf, src.img, nil)
	case format.BMP:
		err = bmp.Encode(&buf, src.img)
	case format.TIFF:
		err = tiff.Encode(&buf, src.img, nil)
	case format.WebP:
		err = webpenc.Encode(&buf, src.img, nil)
	case format.AVIF:
		err = avif.Encode(&buf, src.img, nil)
	case format.ICO:
		err = ico.Encode(&buf, src.img)
	case format.PNM:
		err = pnm.Encode(&buf, src.img, pnm.PPM)
	case format.TGA:
		err = tga.Encode(&buf, src.img)
	default:
		return nil, fmt.Errorf("%w: %s", ErrEncoderUnavailable, f)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

// formatFromRegisteredName maps the name image.Decode reports back to the
// format table. Registration comes from the codec imports above.
func formatFromRegisteredName(name string) format.Format {
	switch name {
	case "png":
		return format.PNG
	case "jpeg":
		return format.JPEG
	case "gif":
		return format.GIF
	case "bmp":
		return format.BMP
	case "tiff":
		return format.TIFF
	case "webp":
		return format.WebP
	case "pnm", "pbm", "pgm", "ppm":
		return format.PNM
	default:
		return format.Unknown
	}
}
