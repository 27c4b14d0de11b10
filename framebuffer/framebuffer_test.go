package framebuffer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "FRAMEBUFFER_COMPLETE", StatusString(gl.FRAMEBUFFER_COMPLETE))
	assert.Equal(t, "FRAMEBUFFER_INCOMPLETE_ATTACHMENT", StatusString(gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT))
	assert.Equal(t, "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE", StatusString(gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE))
	assert.Equal(t, "FRAMEBUFFER_UNSUPPORTED", StatusString(gl.FRAMEBUFFER_UNSUPPORTED))
	assert.Equal(t, "0x0000", StatusString(0))
	assert.Equal(t, "0x1234", StatusString(0x1234))
}
