// Package batch drives a sequential batch-quantization pipeline: a YAML
// manifest names a set of images and the Options to quantize each with,
// and the CLI in cmd/quantrctl runs them one at a time against the
// quantizr CORE.
package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DarthSim/quantizr"
	"github.com/DarthSim/quantizr/imageutil"
)

// Job describes one image to quantize and the palette parameters to use.
type Job struct {
	Image          string  `yaml:"image"`
	Output         string  `yaml:"output"`
	MaxColors      int     `yaml:"max_colors"`
	DitheringLevel float32 `yaml:"dithering_level"`
	AddFixedColors bool    `yaml:"add_fixed_colors"`

	// ResizeWidth and ResizeHeight downscale the source image (via a
	// Lanczos3 filter) before it's quantized, ahead of the budget's
	// cluster split. Both must be set together; zero on either one skips
	// resizing.
	ResizeWidth  int `yaml:"resize_width"`
	ResizeHeight int `yaml:"resize_height"`
}

// Manifest is the top-level YAML document read by cmd/quantrctl.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadManifest reads and parses a batch manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: reading manifest %q: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("batch: parsing manifest %q: %w", path, err)
	}
	for i := range m.Jobs {
		m.Jobs[i].applyDefaults()
	}
	return &m, nil
}

func (j *Job) applyDefaults() {
	if j.MaxColors == 0 {
		j.MaxColors = 256
	}
	if j.Output == "" {
		j.Output = j.Image
	}
}

// Options builds the quantizr.Options for this job.
func (j Job) Options() (*quantizr.Options, error) {
	opts := quantizr.NewOptions()
	if err := opts.SetMaxColors(j.MaxColors); err != nil {
		return nil, fmt.Errorf("batch: job %q: %w", j.Image, err)
	}
	opts.AddFixedColors = j.AddFixedColors
	return opts, nil
}

// Quantize builds a palette for img using this job's Options.
func (j Job) Quantize(img *quantizr.Image, opts *quantizr.Options) *quantizr.QuantizeResult {
	return quantizr.Quantize(img, opts)
}

// PrepareImage applies this job's pre-quantization transforms to src,
// currently just the optional downscale. src is returned unchanged when
// ResizeWidth/ResizeHeight aren't both set.
func (j Job) PrepareImage(src *imageutil.RGBAImage) *imageutil.RGBAImage {
	if j.ResizeWidth <= 0 || j.ResizeHeight <= 0 {
		return src
	}
	return imageutil.Resize(src, j.ResizeWidth, j.ResizeHeight, imageutil.InterpolationLanczos)
}
