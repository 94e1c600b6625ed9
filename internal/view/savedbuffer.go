package view

import (
	"image"

	"github.com/KononK/resize"
	"github.com/daaku/swizzle"

	"github.com/wlcolm/colmwm/internal/tree"
)

// MaxSavedBufferDim bounds a saved buffer's longest side; a close
// animation only ever needs a thumbnail, not the client's full-resolution
// texture (spec §9's "Saved buffers" redesign note calls for an owned,
// cheap-to-carry capture rather than keeping the original around).
const MaxSavedBufferDim = 256

// CaptureSavedBuffer builds a tree.SavedBuffer from a window's last-known
// frame. pix is the wire-format pixel payload (BGRA8888, wlroots'
// default renderer readback format) with the given stride; it is
// downsampled to at most MaxSavedBufferDim on its longest side and
// swizzled into image.RGBA's byte order, the same BGRA8888<->RGBA
// conversion the teacher's ShmFormatAbgr8888 buffers need against Go's
// image package (see daaku/swizzle's grounding in go.mod).
func CaptureSavedBuffer(width, height, stride int, pix []byte) tree.SavedBuffer {
	if width <= 0 || height <= 0 || len(pix) == 0 {
		return tree.SavedBuffer{}
	}

	rgba := make([]byte, len(pix))
	copy(rgba, pix)
	swizzle.BGRA(rgba)

	src := &image.RGBA{Pix: rgba, Stride: stride, Rect: image.Rect(0, 0, width, height)}

	thumbW, thumbH := thumbnailDims(width, height, MaxSavedBufferDim)
	scaled := resize.Resize(uint(thumbW), uint(thumbH), src, resize.Bilinear)

	out, ok := scaled.(*image.RGBA)
	if !ok {
		b := scaled.Bounds()
		out = image.NewRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.Set(x, y, scaled.At(x, y))
			}
		}
	}

	return tree.SavedBuffer{Width: thumbW, Height: thumbH, Pixels: out.Pix}
}

func thumbnailDims(w, h, maxDim int) (int, int) {
	if w <= maxDim && h <= maxDim {
		return w, h
	}
	if w >= h {
		return maxDim, max(1, h*maxDim/w)
	}
	return max(1, w*maxDim/h), maxDim
}

// AttachSavedBuffer appends buf to w's saved-buffer list, captured right
// before a surface unmaps so the renderer can still animate its close
// after the tree has dropped the live surface (spec §3.1, §9).
func AttachSavedBuffer(w *tree.Window, buf tree.SavedBuffer) {
	if buf.Width == 0 || buf.Height == 0 {
		return
	}
	w.SavedBuffers = append(w.SavedBuffers, buf)
}

// ClearSavedBuffers drops w's saved buffers once its close animation has
// finished playing (or a new surface maps into the same window id).
func ClearSavedBuffers(w *tree.Window) {
	w.SavedBuffers = nil
}
