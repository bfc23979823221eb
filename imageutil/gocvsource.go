package imageutil

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadImageGoCV reads an image via OpenCV's IMRead instead of the standard
// library decoders in io.go. It exists for the formats and camera/frame
// capture sources gocv covers that the stdlib image package doesn't.
func LoadImageGoCV(path string) (*RGBAImage, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("imageutil: gocv could not read %q", path)
	}
	defer mat.Close()

	rgbaMat := gocv.NewMat()
	defer rgbaMat.Close()
	gocv.CvtColor(mat, &rgbaMat, gocv.ColorBGRToRGBA)

	w, h := rgbaMat.Cols(), rgbaMat.Rows()
	out := NewRGBAImage(w, h)
	buf, err := rgbaMat.DataPtrUint8()
	if err != nil {
		return nil, fmt.Errorf("imageutil: reading gocv mat data: %w", err)
	}
	copy(out.Pix, buf)
	return out, nil
}
