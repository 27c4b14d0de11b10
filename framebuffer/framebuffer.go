package framebuffer

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an off-screen render target. Texture holds the colour
// attachment, or the depth attachment for depth maps.
type Framebuffer struct {
	FBO          uint32
	Texture      uint32
	Renderbuffer uint32

	Width   int32
	Height  int32
	Samples int32
}

// NewMultisample creates a target with a multisampled colour texture and a
// multisampled depth/stencil renderbuffer.
func NewMultisample(width, height, samples int32) (*Framebuffer, error) {
	fb := &Framebuffer{Width: width, Height: height, Samples: samples}

	gl.GenFramebuffers(1, &fb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)

	gl.GenTextures(1, &fb.Texture)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, fb.Texture)
	gl.TexImage2DMultisample(gl.TEXTURE_2D_MULTISAMPLE, samples, gl.RGB, width, height, true)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D_MULTISAMPLE, fb.Texture, 0)

	gl.GenRenderbuffers(1, &fb.Renderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.Renderbuffer)
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, gl.DEPTH24_STENCIL8, width, height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.Renderbuffer)

	return fb.finish("multisample")
}

// NewColor creates a single-sample target with a colour texture, used as the
// resolve target of a multisampled framebuffer.
func NewColor(width, height int32) (*Framebuffer, error) {
	fb := &Framebuffer{Width: width, Height: height}

	gl.GenFramebuffers(1, &fb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)

	gl.GenTextures(1, &fb.Texture)
	gl.BindTexture(gl.TEXTURE_2D, fb.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, width, height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.Texture, 0)

	return fb.finish("color")
}

// NewDepthMap creates a depth-only target for shadow mapping. Lookups
// outside the map return depth 1, so nothing beyond the light frustum is
// in shadow.
func NewDepthMap(width, height int32) (*Framebuffer, error) {
	fb := &Framebuffer{Width: width, Height: height}

	gl.GenTextures(1, &fb.Texture)
	gl.BindTexture(gl.TEXTURE_2D, fb.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT, width, height, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)
	borderColor := [4]float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &fb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, fb.Texture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	return fb.finish("depth map")
}

func (fb *Framebuffer) finish(kind string) (*Framebuffer, error) {
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	BindDefault()

	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Delete()
		return nil, errors.Newf("%s framebuffer is incomplete: %s", kind, StatusString(status))
	}
	return fb, nil
}

// Bind makes fb the draw and read target and sets the viewport to its size.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.FBO)
	gl.Viewport(0, 0, fb.Width, fb.Height)
}

// BlitTo copies the colour attachment into dst, resolving samples when fb
// is multisampled.
func (fb *Framebuffer) BlitTo(dst *Framebuffer) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.FBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, dst.FBO)
	gl.BlitFramebuffer(0, 0, fb.Width, fb.Height, 0, 0, dst.Width, dst.Height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (fb *Framebuffer) Delete() {
	if fb.Renderbuffer != 0 {
		gl.DeleteRenderbuffers(1, &fb.Renderbuffer)
	}
	if fb.Texture != 0 {
		gl.DeleteTextures(1, &fb.Texture)
	}
	if fb.FBO != 0 {
		gl.DeleteFramebuffers(1, &fb.FBO)
	}
	*fb = Framebuffer{}
}

// BindDefault makes the window the render target again.
func BindDefault() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// StatusString names a glCheckFramebufferStatus result.
func StatusString(status uint32) string {
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		return "FRAMEBUFFER_COMPLETE"
	case gl.FRAMEBUFFER_UNDEFINED:
		return "FRAMEBUFFER_UNDEFINED"
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_ATTACHMENT"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT"
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER"
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return "FRAMEBUFFER_INCOMPLETE_READ_BUFFER"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "FRAMEBUFFER_UNSUPPORTED"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE"
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return "FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS"
	default:
		return fmt.Sprintf("0x%04X", status)
	}
}
