//go:build gldebug

package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/marley/engine/core"
)

// checkError drains the GL error queue and logs every code. It never fails
// the frame.
func checkError(op string) {
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		core.Logger().Error("gl error", "op", op, "code", errorName(code))
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	}
	return "UNKNOWN"
}
