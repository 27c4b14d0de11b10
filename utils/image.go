package utils

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"
	"github.com/learngl/examples/texture"
)

// WritePNG saves the back buffer as <ScreenshotDir>/<baseName>.png.
func (s *Sample) WritePNG(baseName string) (string, error) {
	width, height := s.Width, s.Height
	if width <= 0 || height <= 0 {
		return "", errors.Newf("cannot capture a %dx%d framebuffer", width, height)
	}

	pix := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	if err := os.MkdirAll(s.Config.ScreenshotDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create screenshot directory")
	}
	filename := filepath.Join(s.Config.ScreenshotDir, fmt.Sprintf("%s.png", baseName))

	writeFile, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer writeFile.Close()

	if err := encodeFramebuffer(writeFile, pix, width, height); err != nil {
		return "", errors.Wrapf(err, "write %s", filename)
	}
	return filename, writeFile.Close()
}

// encodeFramebuffer writes RGBA rows read back bottom-up from GL as an
// opaque PNG.
func encodeFramebuffer(w io.Writer, pix []byte, width, height int) error {
	if len(pix) != width*height*4 {
		return errors.Newf("framebuffer holds %d bytes, want %d", len(pix), width*height*4)
	}

	outImg := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(outImg.Pix, pix)
	texture.FlipRows(outImg.Pix, outImg.Stride, height)

	// The default framebuffer's alpha is not meaningful.
	for i := 3; i < len(outImg.Pix); i += 4 {
		outImg.Pix[i] = 0xff
	}

	return png.Encode(w, outImg)
}

// screenshotName is the base name for a capture taken with F12.
func screenshotName(sample string) string {
	return fmt.Sprintf("%s-%s", sample, uuid.New())
}
