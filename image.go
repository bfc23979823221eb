package quantizr

// Image is a borrowed view over a contiguous RGBA byte buffer, row-major,
// 4 bytes per pixel. It never copies or owns Data.
type Image struct {
	Data   []byte
	Width  int
	Height int
}

// NewImage validates that data is large enough to back a Width x Height
// RGBA image before wrapping it.
func NewImage(data []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, errOutOfRange()
	}
	if len(data) < width*height*4 {
		return nil, errBufferSmall()
	}
	return &Image{Data: data, Width: width, Height: height}, nil
}

func (img *Image) pixelCount() int { return img.Width * img.Height }

func (img *Image) at(i int) Color {
	o := i * 4
	return Color{R: img.Data[o], G: img.Data[o+1], B: img.Data[o+2], A: img.Data[o+3]}
}
