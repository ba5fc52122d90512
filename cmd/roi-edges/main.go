package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"github.com/ironsheep/roi-edges/internal/config"
	"github.com/ironsheep/roi-edges/internal/detection"
	"github.com/ironsheep/roi-edges/internal/imaging"
	"github.com/ironsheep/roi-edges/internal/ocr"
	"github.com/ironsheep/roi-edges/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const programName = "roi-edges"

type cliArgs struct {
	InputImage     string     `arg:"-i,--input_image" default:"jefferson_memorial.jpeg" help:"name of the input image inside the data directory"`
	ROICoordinates []int      `arg:"-r,--ROI_coordinates,required" help:"region of interest as x1 y1 x2 y2; values must not be negative"`
	OutputDir      string     `arg:"-o,--output_dir" default:"output" help:"directory for the output files, created if missing"`
	Sigma          *float64   `arg:"-s,--sigma" help:"threshold sigma; larger values widen the Canny thresholds [default: thresholds.sigma, 0.33]"`
	OCR            ocr.Switch `arg:"--OCR" default:"False" help:"True runs OCR on the cropped region, False skips it; anything else is an error"`
	Config         string     `arg:"-c,--config" help:"optional YAML configuration file"`
	DataDir        string     `arg:"--data_dir" help:"directory holding the input image [default: data_dir from the configuration]"`
	SaveConfig     string     `arg:"--save_config" help:"write the configuration (file plus --data_dir) to this file before running"`
}

func (cliArgs) Version() string {
	return fmt.Sprintf("%s %s\n  Build time: %s\n  Git commit: %s", programName, Version, BuildTime, GitCommit)
}

func (cliArgs) Description() string {
	return "roi-edges - draw a region of interest on an image, crop it, outline the Canny edges and optionally run OCR"
}

/*
parseArgs parses argv (without the program name).

Help and version requests are written to out and reported as arg.ErrHelp
and arg.ErrVersion so the caller can exit cleanly.
*/
func parseArgs(argv []string, out io.Writer) (*cliArgs, error) {
	var a cliArgs
	p, err := arg.NewParser(arg.Config{Program: programName}, &a)
	if err != nil {
		return nil, err
	}

	err = p.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(out)
		return nil, err
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(out, a.Version())
		return nil, err
	case err != nil:
		p.WriteUsage(out)
		return nil, err
	}
	return &a, nil
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

/*
run builds the configuration, the optional OCR engine and the pipeline from
parsed arguments and executes it.
*/
func run(a *cliArgs) (*pipeline.Result, error) {
	roi, err := imaging.ROIFromCoordinates(a.ROICoordinates)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(a.Config)
	if err != nil {
		return nil, err
	}
	if a.DataDir != "" {
		cfg.DataDir = a.DataDir
	}

	if a.SaveConfig != "" {
		if err := config.Save(a.SaveConfig, cfg); err != nil {
			return nil, err
		}
		tl.Log(tl.Info1, palette.Blue, "Saved configuration to '%s'", a.SaveConfig)
	}

	var recognizer ocr.Recognizer
	if a.OCR.On {
		engine, err := ocr.NewTesseract(cfg.OCROptions())
		if err != nil {
			return nil, err
		}
		tl.Log(
			tl.Info1, palette.Cyan, "Using Tesseract %s (language %s, page segmentation mode %d)",
			engine.Version(), cfg.OCR.Language, cfg.OCR.PageSegMode,
		)
		recognizer = engine
	}

	p, err := pipeline.New(cfg, pipeline.Options{
		InputImage: a.InputImage,
		OutputDir:  a.OutputDir,
		ROI:        roi,
		Sigma:      a.Sigma,
		OCR:        a.OCR.On,
	}, recognizer)
	if err != nil {
		return nil, err
	}
	return p.Run()
}

/*
main parses the command line and runs the pipeline once.

Any failure is logged and the program exits with a non-zero status code.
*/
func main() {
	a, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, arg.ErrHelp) || errors.Is(err, arg.ErrVersion) {
		return
	}
	xerr.QuitIfError(err, "parse command line")

	tl.Log(
		tl.Notice, palette.BlueBold, "%s %s %s (built %s, commit %s, %s backend)",
		"Running", programName, Version, BuildTime, GitCommit, detection.Backend,
	)

	result, err := run(a)
	xerr.QuitIfError(err, "run edge detection")

	tl.Log(
		tl.Notice1, palette.GreenBold, "%s. %d contours outlined, results stored in '%s'",
		"Done", result.ContourCount, a.OutputDir,
	)
}
