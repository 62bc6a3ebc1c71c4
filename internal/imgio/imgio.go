// Package imgio handles raster decode and encode at the pipeline boundary.
package imgio

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	// Beyond imaging's own formats, accept bmp, tiff, and webp uploads.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tuhin92/Image-Enhancement/internal/lime"
)

// jpegQuality is the encode quality for service responses and .jpg outputs.
const jpegQuality = 95

// Decode reads a raster image from r. Invalid bytes are reported as a
// lime.ErrDecode failure.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lime.ErrDecode, err)
	}
	return img, nil
}

// Open decodes the image stored at path.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// EncodeJPEG writes img to w as a quality-95 JPEG.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
}

// Save writes img to path, picking the container from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}

// CapSize shrinks img so its longest side does not exceed maxDim, preserving
// aspect ratio. maxDim <= 0 disables the cap. Images already inside the limit
// are returned untouched.
func CapSize(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)
}
