package hwpx

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// ImageInfo is the detected format and pixel dimensions of an image
// payload.
type ImageInfo struct {
	Format string // "png", "jpg", "gif", "bmp"
	Width  int    // pixels
	Height int    // pixels
}

// Fallback for payloads whose format or dimensions cannot be read.
// Embedding keeps working; the viewer just shows a default-sized frame.
const (
	fallbackImageFormat = "png"
	fallbackImageWidth  = 200
	fallbackImageHeight = 150
)

var imageMagics = []struct {
	prefix []byte
	format string
}{
	{[]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, "png"},
	{[]byte{0xFF, 0xD8, 0xFF}, "jpg"},
	{[]byte("GIF87a"), "gif"},
	{[]byte("GIF89a"), "gif"},
	{[]byte("BM"), "bmp"},
}

// InspectImage detects the format and pixel dimensions of raw image
// bytes. Unrecognized data yields the documented fallback instead of an
// error so a bad image degrades gracefully.
func InspectImage(data []byte) ImageInfo {
	format := ""
	for _, m := range imageMagics {
		if bytes.HasPrefix(data, m.prefix) {
			format = m.format
			break
		}
	}
	if format == "" {
		return ImageInfo{Format: fallbackImageFormat, Width: fallbackImageWidth, Height: fallbackImageHeight}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		// Truncated or malformed headers land here.
		return ImageInfo{Format: format, Width: fallbackImageWidth, Height: fallbackImageHeight}
	}
	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}
}
