package hwpx

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodeTestImage(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	default:
		t.Fatalf("unknown format %q", format)
	}
	require.NoError(t, err)
	return buf.Bytes()
}

func TestInspectImageFormats(t *testing.T) {
	for _, format := range []string{"png", "jpg", "gif", "bmp"} {
		t.Run(format, func(t *testing.T) {
			data := encodeTestImage(t, format, 100, 50)
			info := InspectImage(data)
			assert.Equal(t, format, info.Format)
			assert.Equal(t, 100, info.Width)
			assert.Equal(t, 50, info.Height)
		})
	}
}

func TestInspectImageFallback(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image"), {0x00, 0x01}} {
		info := InspectImage(data)
		assert.Equal(t, "png", info.Format)
		assert.Equal(t, 200, info.Width)
		assert.Equal(t, 150, info.Height)
	}
}

func TestInspectImageTopDownBMP(t *testing.T) {
	// Top-down BMPs store a negative height in the info header; the
	// reported dimensions must still come back positive.
	data := encodeTestImage(t, "bmp", 40, 30)
	height := int32(binary.LittleEndian.Uint32(data[22:26]))
	require.Positive(t, height)
	binary.LittleEndian.PutUint32(data[22:26], uint32(-height))

	info := InspectImage(data)
	assert.Equal(t, "bmp", info.Format)
	assert.Equal(t, 40, info.Width)
	assert.Equal(t, 30, info.Height)
}

func TestInspectImageTruncatedHeader(t *testing.T) {
	// Valid magic but nothing behind it: format sticks, dimensions fall
	// back.
	data := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	info := InspectImage(data)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 200, info.Width)
	assert.Equal(t, 150, info.Height)
}

func TestAddImagePixelScaling(t *testing.T) {
	doc := New()
	pic := doc.AddImage(encodeTestImage(t, "png", 100, 50))

	assert.Equal(t, "image1", pic.BinaryItemID)
	assert.Equal(t, "png", pic.Format)
	assert.Equal(t, 100*75, pic.Width)
	assert.Equal(t, 50*75, pic.Height)
}

func TestAddImageSized(t *testing.T) {
	doc := New()
	pic := doc.AddImageSized(encodeTestImage(t, "png", 10, 10), 20000, 10000)
	assert.Equal(t, 20000, pic.Width)
	assert.Equal(t, 10000, pic.Height)
}

func TestAddImageSequentialItemIDs(t *testing.T) {
	doc := New()
	a := doc.AddImage(encodeTestImage(t, "png", 4, 4))
	b := doc.AddImage(encodeTestImage(t, "jpg", 4, 4))
	assert.Equal(t, "image1", a.BinaryItemID)
	assert.Equal(t, "image2", b.BinaryItemID)
	assert.Equal(t, "image/jpeg", b.MediaType())
}

func TestAddImageFromFile(t *testing.T) {
	path := t.TempDir() + "/pic.png"
	data := encodeTestImage(t, "png", 8, 8)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	doc := New()
	pic, err := doc.AddImageFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", pic.Format)

	_, err = doc.AddImageFromFile(path + ".missing")
	assert.Error(t, err)
}
