package texture

import (
	"context"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Image is decoded pixel data with tightly packed rows, ready for upload.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

func (img *Image) Stride() int {
	return img.Width * img.Channels
}

type Options struct {
	// FlipVertically puts the first image row at the bottom, where GL
	// expects texture coordinate v=0.
	FlipVertically bool
	// GammaCorrected uploads colour data with an sRGB internal format.
	GammaCorrected bool
	NoMipmaps      bool
}

// Decode reads a PNG, JPEG, BMP, TIFF or WebP image. Grayscale images decode
// to one channel, opaque images to three, everything else to four.
func Decode(r io.Reader, opts Options) (*Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}

	img := FromImage(src)
	if img.Width == 0 || img.Height == 0 {
		return nil, errors.Newf("decode image: empty %s image", format)
	}
	if opts.FlipVertically {
		FlipRows(img.Pix, img.Stride(), img.Height)
	}
	return img, nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string, opts Options) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := Decode(file, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "texture %s", path)
	}
	return img, nil
}

// FromImage converts src into packed pixel rows.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := &Image{Width: bounds.Dx(), Height: bounds.Dy()}

	switch src.(type) {
	case *image.Gray, *image.Gray16:
		gray := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)
		img.Channels = 1
		img.Pix = packRows(gray.Pix, gray.Stride, img.Width, img.Height)
		return img
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	if opaque, ok := src.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		img.Channels = 3
		img.Pix = make([]byte, 0, img.Width*img.Height*3)
		for y := 0; y < img.Height; y++ {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+img.Width*4]
			for x := 0; x < len(row); x += 4 {
				img.Pix = append(img.Pix, row[x], row[x+1], row[x+2])
			}
		}
		return img
	}

	img.Channels = 4
	img.Pix = packRows(nrgba.Pix, nrgba.Stride, img.Width*4, img.Height)
	return img
}

func packRows(pix []byte, stride, rowLength, height int) []byte {
	packed := make([]byte, 0, rowLength*height)
	for y := 0; y < height; y++ {
		packed = append(packed, pix[y*stride:y*stride+rowLength]...)
	}
	return packed
}

// FlipRows reverses the order of height rows of stride bytes in place.
func FlipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		topRow := pix[top*stride : (top+1)*stride]
		bottomRow := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}

// Checkerboard is an opaque size x size image of cells x cells squares
// alternating between a and b.
func Checkerboard(size, cells int, a, b color.RGBA) *Image {
	if cells < 1 {
		cells = 1
	}
	cellSize := size / cells
	if cellSize < 1 {
		cellSize = 1
	}

	img := &Image{Width: size, Height: size, Channels: 3, Pix: make([]byte, 0, size*size*3)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cellSize+y/cellSize)%2 == 1 {
				c = b
			}
			img.Pix = append(img.Pix, c.R, c.G, c.B)
		}
	}
	return img
}

// Substitute decides what replaces a file that failed to decode: an image
// to use instead, or the error to report.
type Substitute func(path string, err error) (*Image, error)

// DecodeAll decodes the files at paths concurrently. The result is in the
// same order as paths. A nil substitute reports the first failure.
func DecodeAll(ctx context.Context, paths []string, opts Options, substitute Substitute) ([]*Image, error) {
	images := make([]*Image, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := DecodeFile(path, opts)
			if err != nil && substitute != nil {
				img, err = substitute(path, err)
			}
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
