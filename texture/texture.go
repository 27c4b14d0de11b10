package texture

import (
	"image/color"
	"io/fs"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	fallbackLight = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	fallbackDark  = color.RGBA{R: 90, G: 90, B: 90, A: 255}
)

// Formats picks the internal and pixel formats for an image with the given
// channel count.
func Formats(channels int, gammaCorrected bool) (int32, uint32, error) {
	switch channels {
	case 1:
		return gl.RED, gl.RED, nil
	case 3:
		if gammaCorrected {
			return gl.SRGB, gl.RGB, nil
		}
		return gl.RGB, gl.RGB, nil
	case 4:
		if gammaCorrected {
			return gl.SRGB_ALPHA, gl.RGBA, nil
		}
		return gl.RGBA, gl.RGBA, nil
	default:
		return 0, 0, errors.Newf("unsupported channel count %d", channels)
	}
}

// Upload creates a repeating 2D texture from img and returns its name.
func Upload(img *Image, opts Options) (uint32, error) {
	internalFormat, format, err := Formats(img.Channels, opts.GammaCorrected)
	if err != nil {
		return 0, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	// Rows of RGB and RED images are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	if opts.NoMipmaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	} else {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

func Load(path string, opts Options) (uint32, error) {
	img, err := DecodeFile(path, opts)
	if err != nil {
		return 0, err
	}

	id, err := Upload(img, opts)
	if err != nil {
		return 0, errors.Wrapf(err, "texture %s", path)
	}
	return id, nil
}

// LoadOrFallback loads the texture at path, substituting a checkerboard if
// the file does not exist.
func LoadOrFallback(path string, opts Options, log *slog.Logger) (uint32, error) {
	img, err := DecodeFile(path, opts)
	if err != nil {
		if img, err = FallbackOnMissing(log)(path, err); err != nil {
			return 0, err
		}
	}

	id, err := Upload(img, opts)
	if err != nil {
		return 0, errors.Wrapf(err, "texture %s", path)
	}
	return id, nil
}

// FallbackOnMissing substitutes FallbackImage for files that do not exist,
// logging a warning for each. Other errors are passed through.
func FallbackOnMissing(log *slog.Logger) Substitute {
	return func(path string, err error) (*Image, error) {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Warn("Texture not found, using a checkerboard", "path", path)
		return FallbackImage(), nil
	}
}

// FallbackImage is the grey checkerboard substituted for missing textures.
func FallbackImage() *Image {
	return Checkerboard(256, 8, fallbackLight, fallbackDark)
}

func Delete(ids ...uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(ids)), &ids[0])
}
