// Package debug provides developer tooling for the viewer.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Supported screenshot formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// ErrUnknownFormat is returned for a format other than png or webp.
var ErrUnknownFormat = errors.New("unknown screenshot format")

// ScreenshotCapture writes frames to timestamped image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
	maxWidth  int // 0 keeps full size

	now func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix, format string, maxWidth int) (*ScreenshotCapture, error) {
	if format != FormatPNG && format != FormatWebP {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		maxWidth:  maxWidth,
		now:       time.Now,
	}, nil
}

// SetOutputDir sets the output directory for screenshots.
func (sc *ScreenshotCapture) SetOutputDir(dir string) {
	sc.outputDir = dir
}

// CaptureFromPixels saves raw RGBA rows as read from OpenGL, bottom row
// first, flipping them upright.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves an upright image, downscaled to the configured
// maximum width.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := sc.encode(file, Downscale(img, sc.maxWidth)); err != nil {
		return "", err
	}
	return filename, nil
}

func (sc *ScreenshotCapture) encode(w io.Writer, img image.Image) error {
	switch sc.format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("encoding WebP: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	}
	return nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", sc.prefix, timestamp, sc.format)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}

// Downscale shrinks img to maxWidth keeping the aspect ratio. Images that
// already fit, or a maxWidth of 0, are returned as is.
func Downscale(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return img
	}

	h := max(1, b.Dy()*maxWidth/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
