// Command quantrctl runs a batch manifest of images through the quantizr
// CORE: build a palette for each job, remap the source image against it,
// and save the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
	"github.com/willibrandon/mtlog/sinks"

	"github.com/DarthSim/quantizr/imageutil"
	"github.com/DarthSim/quantizr/internal/batch"
)

var (
	// Version is set via -ldflags at build time.
	Version = "dev"
)

func main() {
	manifestPath := flag.String("manifest", "",
		"Path to the batch manifest YAML file (required)")
	logLevel := flag.String("log-level", "info",
		"Log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "Show version information")
	useGoCV := flag.Bool("gocv", false,
		"Load source images through gocv instead of the stdlib decoders")
	flag.Parse()

	if *showVersion {
		fmt.Printf("quantrctl version %s\n", Version)
		os.Exit(0)
	}

	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "quantrctl: -manifest is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := createLogger(*logLevel)
	runID := uuid.New().String()
	logger.Information("Starting quantrctl run {RunId}", runID)

	manifest, err := batch.LoadManifest(*manifestPath)
	if err != nil {
		logger.Error("Run {RunId} failed to load manifest {Path}: {Error}", runID, *manifestPath, err)
		os.Exit(1)
	}

	cache := batch.NewSkipCache()
	failures := 0

	for _, job := range manifest.Jobs {
		skip, err := cache.Seen(job)
		if err != nil {
			logger.Warn("Could not fingerprint job {Image}: {Error}", job.Image, err)
		} else if skip {
			logger.Information("Skipping already-processed job {Image}", job.Image)
			continue
		}

		if err := runJob(job, *useGoCV, logger); err != nil {
			logger.Error("Job {Image} failed: {Error}", job.Image, err)
			failures++
		}
	}

	if failures > 0 {
		logger.Warn("Completed with {Failures} failed job(s)", failures)
		os.Exit(1)
	}
	logger.Information("Completed {JobCount} job(s)", len(manifest.Jobs))
}

func runJob(job batch.Job, useGoCV bool, logger core.Logger) error {
	var src *imageutil.RGBAImage
	var err error
	if useGoCV {
		src, err = imageutil.LoadImageGoCV(job.Image)
	} else {
		src, err = imageutil.LoadImage(job.Image)
	}
	if err != nil {
		return fmt.Errorf("loading %q: %w", job.Image, err)
	}
	src = job.PrepareImage(src)

	img, err := src.ToQuantizrImage()
	if err != nil {
		return fmt.Errorf("wrapping %q: %w", job.Image, err)
	}

	opts, err := job.Options()
	if err != nil {
		return err
	}

	result := job.Quantize(img, opts)
	if err := result.SetDitheringLevel(job.DitheringLevel); err != nil {
		return fmt.Errorf("setting dithering level for %q: %w", job.Image, err)
	}

	indices := make([]byte, src.Width()*src.Height())
	if err := result.RemapImage(img, indices); err != nil {
		return fmt.Errorf("remapping %q: %w", job.Image, err)
	}

	logger.Information("Quantized {Image} to {Colors} colors, error={Error}",
		job.Image, result.Palette().Count, result.QuantizationError())

	out := imageutil.FromQuantizrPalette(indices, src.Width(), src.Height(), result.Palette())
	if err := imageutil.SavePNG(out.RGBA, job.Output); err != nil {
		return fmt.Errorf("saving %q: %w", job.Output, err)
	}
	fmt.Print(renderPalette(result.Palette()))
	return nil
}

func createLogger(logLevel string) core.Logger {
	sink := sinks.NewConsoleSink()

	var opts []mtlog.Option
	opts = append(opts, mtlog.WithSink(sink))

	switch logLevel {
	case "debug":
		opts = append(opts, mtlog.WithMinimumLevel(core.DebugLevel))
	case "info":
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	case "warn":
		opts = append(opts, mtlog.WithMinimumLevel(core.WarningLevel))
	case "error":
		opts = append(opts, mtlog.WithMinimumLevel(core.ErrorLevel))
	default:
		opts = append(opts, mtlog.WithMinimumLevel(core.InformationLevel))
	}

	return mtlog.New(opts...)
}
