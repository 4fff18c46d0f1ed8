// Package debug rasterizes draw lists to images and saves them as PNG.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ScreenshotCapture writes frames into an output directory.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
	}
}

// CaptureFromImage saves img under a timestamped name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	return sc.save(img, sc.GenerateFilename())
}

// CaptureFrame saves img as prefix_NNNN.png, so a sequence sorts by frame.
func (sc *ScreenshotCapture) CaptureFrame(img image.Image, frame int) (string, error) {
	return sc.save(img, sc.path(fmt.Sprintf("%s_%04d.png", sc.prefix, frame)))
}

// GenerateFilename returns the timestamped path CaptureFromImage writes to.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return sc.path(fmt.Sprintf("%s_%s.png", sc.prefix, timestamp))
}

func (sc *ScreenshotCapture) path(name string) string {
	if sc.outputDir != "" {
		return filepath.Join(sc.outputDir, name)
	}
	return name
}

func (sc *ScreenshotCapture) save(img image.Image, filename string) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
