// Package imageutil adapts standard library and OpenCV image sources into
// the RGBA views quantizr.Image expects. It carries no quantization logic
// of its own.
package imageutil

import (
	"image"

	"github.com/DarthSim/quantizr"
)

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	w, h := img.Width(), img.Height()
	clone := NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		copy(clone.Pix[y*clone.Stride:(y+1)*clone.Stride], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return clone
}

// ToQuantizrImage wraps img's pixels as a quantizr.Image. When img's Stride
// matches Width*4 (true for every RGBAImage this package constructs) the
// returned view borrows img.Pix: mutating one mutates the other. Otherwise
// (a sub-image, for example) it wraps a compact copy made by Clone, which
// does not alias img.
func (img *RGBAImage) ToQuantizrImage() (*quantizr.Image, error) {
	w, h := img.Width(), img.Height()
	if img.Stride != w*4 {
		clone := img.Clone()
		return quantizr.NewImage(clone.Pix, w, h)
	}
	return quantizr.NewImage(img.Pix, w, h)
}

// FromQuantizrPalette renders a palettized remap (one byte per pixel plus
// its source palette) back into an RGBAImage for saving.
func FromQuantizrPalette(indices []byte, width, height int, palette *quantizr.Palette) *RGBAImage {
	out := NewRGBAImage(width, height)
	for i := 0; i < width*height; i++ {
		c := palette.Entries[indices[i]]
		out.Pix[i*4+0] = c.R
		out.Pix[i*4+1] = c.G
		out.Pix[i*4+2] = c.B
		out.Pix[i*4+3] = c.A
	}
	return out
}
