// Package imaging validates uploaded images and shrinks oversized ones.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/gift"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const JPEGQuality = 90

var (
	ErrNotImage      = errors.New("upload a valid image. the file you uploaded was either not an image or a corrupted image")
	ErrTooManyPixels = errors.New("image has too many pixels")
)

// Limits bound what an upload may decode to and the size it is stored at.
// Zero values disable the corresponding check.
type Limits struct {
	MaxDimension int
	MaxPixels    int
}

// Image is a decoded upload.
type Image struct {
	Format string
	Width  int
	Height int

	data []byte
	img  image.Image
}

// Decode fully decodes data so truncated or corrupted files are rejected.
// The header is read first and images above maxPixels are refused before
// any pixel buffer is allocated.
func Decode(data []byte, maxPixels int) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrNotImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotImage
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, ErrTooManyPixels
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotImage
	}

	b := img.Bounds()
	return &Image{
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		data:   data,
		img:    img,
	}, nil
}

// Extension is the canonical file extension for the decoded format.
func (i *Image) Extension() string {
	if i.Format == "jpeg" {
		return "jpg"
	}
	return i.Format
}

// Fit returns the bytes to store. Images within maxDim on both sides, and
// formats without an encoder, are returned unchanged. Others are resized to
// fit, keeping the aspect ratio, and re-encoded in their original format.
func (i *Image) Fit(maxDim int) ([]byte, error) {
	if maxDim <= 0 || (i.Width <= maxDim && i.Height <= maxDim) {
		return i.data, nil
	}

	encode, ok := encoders[i.Format]
	if !ok {
		return i.data, nil
	}

	g := gift.New(gift.ResizeToFit(maxDim, maxDim, gift.LanczosResampling))
	dst := image.NewRGBA(g.Bounds(i.img.Bounds()))
	g.Draw(dst, i.img)

	var buf bytes.Buffer
	if err := encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode %s: %w", i.Format, err)
	}
	return buf.Bytes(), nil
}

var encoders = map[string]func(*bytes.Buffer, image.Image) error{
	"jpeg": func(w *bytes.Buffer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: JPEGQuality})
	},
	"png": func(w *bytes.Buffer, m image.Image) error {
		return png.Encode(w, m)
	},
	"gif": func(w *bytes.Buffer, m image.Image) error {
		return gif.Encode(w, m, nil)
	},
	"bmp": func(w *bytes.Buffer, m image.Image) error {
		return bmp.Encode(w, m)
	},
	"tiff": func(w *bytes.Buffer, m image.Image) error {
		return tiff.Encode(w, m, nil)
	},
}
