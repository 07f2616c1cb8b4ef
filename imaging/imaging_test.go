package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10)), nil))

	img, err := Decode(buf.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", img.Format)
	assert.Equal(t, "jpg", img.Extension())
	assert.Equal(t, 10, img.Width)
	assert.Equal(t, 10, img.Height)
}

func TestDecodeRejectsNonImages(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("notimage"), encodePNG(t, 4, 4)[:20]} {
		_, err := Decode(data, 0)
		assert.ErrorIs(t, err, ErrNotImage)
	}
}

func TestFitKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 30, 20)
	img, err := Decode(data, 0)
	require.NoError(t, err)

	out, err := img.Fit(64)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	out, err = img.Fit(0)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestFitShrinksLargeImages(t *testing.T) {
	img, err := Decode(encodePNG(t, 200, 100), 0)
	require.NoError(t, err)

	out, err := img.Fit(50)
	require.NoError(t, err)

	resized, err := Decode(out, 0)
	require.NoError(t, err)
	assert.Equal(t, "png", resized.Format)
	assert.Equal(t, 50, resized.Width)
	assert.Equal(t, 25, resized.Height)
}

func TestDecodeRejectsTooManyPixels(t *testing.T) {
	data := encodePNG(t, 200, 100)

	_, err := Decode(data, 200*100-1)
	assert.ErrorIs(t, err, ErrTooManyPixels)

	img, err := Decode(data, 200*100)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Width)
}

func TestDecodeChecksHeaderBeforePixels(t *testing.T) {
	// A valid header claiming a huge canvas with a truncated body is refused
	// by the pixel limit, not by a failed decode.
	data := encodePNG(t, 20000, 1)[:64]

	_, err := Decode(data, 1000)
	assert.ErrorIs(t, err, ErrTooManyPixels)

	_, err = Decode(data, 0)
	assert.ErrorIs(t, err, ErrNotImage)
}
