package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // decode-only support for animated avatars
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// MaxDimension is the largest side allowed for uploaded images.
// Anything bigger gets downscaled before it reaches storage.
const MaxDimension = 1600

// ProfileImageDimension is the bounding box for profile avatars.
const ProfileImageDimension = 800

// Processor handles image decoding, downscaling and re-encoding.
type Processor struct {
	quality int // JPEG quality (1-100)
}

// NewProcessor creates a new image processor
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85 // Default quality
	}
	return &Processor{
		quality: quality,
	}
}

// Result holds a processed image ready for upload.
type Result struct {
	Body        io.Reader
	ContentType string
	Ext         string
}

// Downscale decodes an image and shrinks it to fit within maxDim on its
// longest side, keeping aspect ratio. Images already within bounds are
// re-encoded as-is. GIFs are passed through untouched to keep animation.
func (p *Processor) Downscale(reader io.Reader, maxDim int) (*Result, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if format == "gif" {
		return &Result{Body: bytes.NewReader(data), ContentType: "image/gif", Ext: ".gif"}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = resize(img, maxDim, maxDim)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
		return &Result{Body: &buf, ContentType: "image/png", Ext: ".png"}, nil
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		return &Result{Body: &buf, ContentType: "image/jpeg", Ext: ".jpg"}, nil
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
}

// resize resizes an image to fit within maxWidth x maxHeight keeping aspect ratio
func resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// IsValidImage checks if the reader contains a decodable image
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.DecodeConfig(reader)
	return err == nil
}
