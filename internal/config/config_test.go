package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/roi-edges/internal/imaging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 95, cfg.JPEGQuality)
	assert.True(t, cfg.ROI.Strict)
	assert.Equal(t, "#00FF00", cfg.Annotate.Color)
	assert.Equal(t, 2, cfg.Annotate.Thickness)
	assert.Equal(t, 2, cfg.Contours.Thickness)
	assert.InDelta(t, 0.33, cfg.Thresholds.Sigma, 1e-9)
	assert.Equal(t, SourceImage, cfg.Thresholds.Source)
	assert.Equal(t, 110, cfg.OCR.BinarizeThreshold)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, 3, cfg.OCR.PageSegMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data_dir: images
thresholds:
  sigma: 0.5
contours:
  color: "#FF0000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "images", cfg.DataDir)
	assert.InDelta(t, 0.5, cfg.Thresholds.Sigma, 1e-9)
	assert.Equal(t, SourceImage, cfg.Thresholds.Source, "unset keys keep defaults")
	assert.Equal(t, "#FF0000", cfg.Contours.Color)
	assert.Equal(t, 2, cfg.Contours.Thickness, "unset keys keep defaults")
	assert.Equal(t, 95, cfg.JPEGQuality)
	assert.Equal(t, imaging.Green, cfg.Annotate.StrokeColor())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
data_dir: in
jpeg_quality: 80
roi:
  strict: false
annotate: { color: "#0000FF", thickness: 3 }
contours: { color: "#FFFF00", thickness: 1 }
thresholds:
  sigma: 0.2
  source: crop
ocr:
  binarize_threshold: 128
  language: deu
  page_seg_mode: 6
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.JPEGQuality)
	assert.False(t, cfg.ROI.Strict)
	assert.Equal(t, 3, cfg.Annotate.Thickness)
	assert.Equal(t, SourceCrop, cfg.Thresholds.Source)
	assert.Equal(t, 128, cfg.OCR.BinarizeThreshold)

	opts := cfg.OCROptions()
	assert.Equal(t, "deu", opts.Language)
	assert.Equal(t, 6, opts.PageSegMode)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "data_dir: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeConfig(t, "jpeg_quality: 0\n"))
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"quality too high", func(c *Config) { c.JPEGQuality = 101 }},
		{"bad annotate color", func(c *Config) { c.Annotate.Color = "green" }},
		{"zero contour thickness", func(c *Config) { c.Contours.Thickness = 0 }},
		{"negative sigma", func(c *Config) { c.Thresholds.Sigma = -0.1 }},
		{"unknown source", func(c *Config) { c.Thresholds.Source = "blurred" }},
		{"binarize out of range", func(c *Config) { c.OCR.BinarizeThreshold = 256 }},
		{"empty language", func(c *Config) { c.OCR.Language = "" }},
		{"psm out of range", func(c *Config) { c.OCR.PageSegMode = 14 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")

	cfg := Default()
	cfg.Thresholds.Source = SourceCrop
	cfg.Annotate.Thickness = 4
	require.NoError(t, Save(path, cfg))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
