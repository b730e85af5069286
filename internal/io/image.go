package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// Cover is a cover image read from an album folder, ready to be embedded.
type Cover struct {
	// FileName is the base name of the image file.
	FileName string

	// Data holds the raw image bytes.
	Data []byte

	// MIME is the detected content type, e.g. "image/jpeg".
	MIME string

	Width      int
	Height     int
	ColorDepth int
}

// IsSquare returns true if the cover is exactly size x size pixels.
func (c *Cover) IsSquare(size int) bool {
	return c.Width == size && c.Height == size
}

// ImageService provides image processing operations for cover art.
//
// ImageService is used to:
//   - Load a folder cover with its MIME type, dimensions and color depth
//   - Resize covers to fit the canonical size before embedding them
//
// Example usage:
//
//	svc := NewImageService()
//
//	cover, _ := svc.LoadCover(ctx, "/music/Artist/2020 - Album/cover.jpg")
//	if !cover.IsSquare(1000) {
//	    cover, _ = svc.FitCover(ctx, cover, 1000)
//	}
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// LoadCover reads the image at path and inspects it.
//
// The MIME type is sniffed from the content rather than the extension, so a
// PNG saved as "cover.jpg" is reported as "image/png".
func (s *ImageService) LoadCover(ctx context.Context, path string) (*Cover, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.inspect(filepath.Base(path), data)
}

func (s *ImageService) inspect(fileName string, data []byte) (*Cover, error) {
	width, height, depth, err := Dimensions(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return &Cover{
		FileName:   fileName,
		Data:       data,
		MIME:       mimetype.Detect(data).String(),
		Width:      width,
		Height:     height,
		ColorDepth: depth,
	}, nil
}

// FitCover scales the cover to fit within size x size and re-encodes it as
// JPEG. The aspect ratio is preserved.
func (s *ImageService) FitCover(ctx context.Context, cover *Cover, size int) (*Cover, error) {
	data, err := s.ResizeImage(ctx, cover.Data, size, size)
	if err != nil {
		return nil, err
	}
	return s.inspect(cover.FileName, data)
}

// ResizeImage resizes an image to fit within the specified maximum dimensions.
//
// The aspect ratio is preserved. If the image is already smaller than the
// maximum dimensions, it will still be processed (re-encoded as JPEG).
//
// Parameters:
//   - ctx: Context for cancellation (currently unused)
//   - data: Original image data (JPEG, PNG, WebP, BMP)
//   - maxWidth: Maximum width in pixels
//   - maxHeight: Maximum height in pixels
//
// Returns the resized image as JPEG-encoded bytes.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
//
// Example:
//
//	// Resize to fit within 1000x1000, maintaining aspect ratio
//	resized, err := svc.ResizeImage(ctx, imageData, 1000, 1000)
//	// A 1500x1000 image becomes 1000x667
//	// A 800x600 image remains 800x600 (but re-encoded)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Calculate new dimensions maintaining aspect ratio
	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Dimensions returns the width, height and color depth (bits per pixel) of
// an encoded image without decoding its pixels.
func Dimensions(data []byte) (width, height, depth int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, 0, err
	}
	return cfg.Width, cfg.Height, colorDepth(cfg.ColorModel), nil
}

// colorDepth maps a color model to its bits per pixel.
func colorDepth(m color.Model) int {
	if _, ok := m.(color.Palette); ok {
		return 8
	}
	switch m {
	case color.GrayModel, color.AlphaModel:
		return 8
	case color.Gray16Model, color.Alpha16Model:
		return 16
	case color.YCbCrModel:
		return 24
	case color.RGBAModel, color.NRGBAModel, color.CMYKModel, color.NYCbCrAModel:
		return 32
	case color.RGBA64Model, color.NRGBA64Model:
		return 64
	}
	return 24
}
