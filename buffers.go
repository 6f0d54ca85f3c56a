package gfx

import "fmt"

// maxBuffers is the fixed multi-buffer capacity.
const maxBuffers = 3

// Buffer-index arguments to ClearBuffer.
const (
	// ClearAll clears every allocated buffer.
	ClearAll = -1

	// ClearDraw clears only the current draw buffer.
	ClearDraw = -2
)

// bufferRef is the ownership-tagged storage of one frame buffer slot. The
// two variants make the ownership rule a type distinction: only owned
// buffers may be released by the engine, and borrowed buffers (the hardware
// surface or caller-attached memory) can never be.
type bufferRef interface {
	bytes() []byte
}

type ownedBuffer []byte

func (b ownedBuffer) bytes() []byte { return b }

type borrowedBuffer []byte

func (b borrowedBuffer) bytes() []byte { return b }

// bufferSlot is one of up to three frame buffers.
type bufferSlot struct {
	ref   bufferRef
	ready bool
}

// multiBuffer tracks which slot is drawn into and which is displayed.
// Invariants: draw and display are always < count; at most one of each
// exists at any time (they may coincide).
type multiBuffer struct {
	dc      *Context
	slots   [maxBuffers]bufferSlot
	count   int
	draw    int
	display int
	enabled bool
}

// reset puts the manager into the single-buffer state: one borrowed slot
// aliasing the hardware surface, multi-buffering off.
func (mb *multiBuffer) reset(dc *Context) {
	mb.dc = dc
	mb.slots = [maxBuffers]bufferSlot{}
	mb.count = 0
	mb.draw = 0
	mb.display = 0
	mb.enabled = false
	if dc.soft != nil && dc.dev != nil {
		mb.slots[0] = bufferSlot{ref: borrowedBuffer(dc.dev.Framebuffer())}
		mb.count = 1
		dc.soft.setTarget(dc.dev.Framebuffer(), dc.dev.Pitch())
	}
}

// slotSize is the byte size of one engine-owned buffer.
func (mb *multiBuffer) slotSize() int {
	return mb.dc.soft.Width() * mb.dc.soft.Height() * 2
}

// retarget points the software surface at the current draw buffer.
func (mb *multiBuffer) retarget() {
	mb.dc.soft.setTarget(mb.slots[mb.draw].ref.bytes(), mb.dc.soft.Width()*2)
}

// copyToHardware copies one buffer's full contents to the hardware surface,
// row by row to honor the device pitch. Always a copy, never a pointer flip.
func (mb *multiBuffer) copyToHardware(i int) {
	src := mb.slots[i].ref.bytes()
	dst := mb.dc.dev.Framebuffer()
	pitch := mb.dc.dev.Pitch()
	rowBytes := mb.dc.soft.Width() * 2
	for y := 0; y < mb.dc.soft.Height(); y++ {
		copy(dst[y*pitch:y*pitch+rowBytes], src[y*rowBytes:(y+1)*rowBytes])
	}
}

// clearSlot fills one buffer with a color. Color zero takes the fast
// zero-fill path; any other color needs a per-pixel fill.
func (mb *multiBuffer) clearSlot(i int, c Color) {
	buf := mb.slots[i].ref.bytes()[:mb.slotSize()]
	if c == 0 {
		clear(buf)
		return
	}
	lo, hi := byte(c), byte(c>>8)
	for j := 0; j < len(buf); j += 2 {
		buf[j] = lo
		buf[j+1] = hi
	}
}

// EnableMultiBuffer switches the software path to n engine-allocated frame
// buffers. Values of n outside [1,3] are treated as 2. Previously owned
// buffers are released first.
//
// On any allocation failure the engine frees everything allocated so far,
// reverts to the single hardware-surface buffer, disables multi-buffering,
// and returns the error; it never stays in a partially allocated state.
func (dc *Context) EnableMultiBuffer(n int) error {
	if dc.soft == nil || dc.dev == nil {
		return ErrNoSoftSurface
	}
	if n < 1 || n > maxBuffers {
		n = 2
	}

	mb := &dc.mb
	mb.slots = [maxBuffers]bufferSlot{}
	size := mb.slotSize()
	for i := 0; i < n; i++ {
		buf, err := dc.alloc(size)
		if err != nil || len(buf) < size {
			mb.reset(dc)
			Logger().Warn("multi-buffer allocation failed, reverting to single buffer",
				"buffers", n, "failedAt", i, "err", err)
			if err == nil {
				return fmt.Errorf("enable multi-buffer: %w", ErrBufferSize)
			}
			return fmt.Errorf("enable multi-buffer: %w", err)
		}
		clear(buf[:size])
		mb.slots[i] = bufferSlot{ref: ownedBuffer(buf)}
	}

	mb.count = n
	mb.draw = 0
	mb.display = 0
	mb.enabled = true
	mb.retarget()
	Logger().Debug("multi-buffering enabled", "buffers", n, "bytesPerBuffer", size)
	return nil
}

// DisableMultiBuffer releases all engine-owned buffers and reverts the
// active pixel pointer to the single hardware surface.
func (dc *Context) DisableMultiBuffer() {
	if dc.soft == nil || dc.dev == nil {
		return
	}
	dc.mb.reset(dc)
}

// IsMultiBuffered reports whether multi-buffering is active.
func (dc *Context) IsMultiBuffered() bool { return dc.mb.enabled }

// BufferCount returns the number of allocated buffers (1 when
// multi-buffering is off).
func (dc *Context) BufferCount() int {
	if c := dc.mb.count; c > 0 {
		return c
	}
	return 1
}

// DrawBufferIndex returns the index of the current draw buffer.
func (dc *Context) DrawBufferIndex() int { return dc.mb.draw }

// DisplayBufferIndex returns the index of the currently displayed buffer.
func (dc *Context) DisplayBufferIndex() int { return dc.mb.display }

// Buffer returns the raw storage of one buffer slot for low-level access,
// or nil when the index is out of range.
func (dc *Context) Buffer(i int) []byte {
	if i < 0 || i >= dc.mb.count {
		return nil
	}
	return dc.mb.slots[i].ref.bytes()
}

// SwapBuffers presents the current draw buffer and advances to the next
// one. The draw buffer is marked ready, becomes the display buffer, and is
// copied in full to the hardware surface; the draw index then advances
// round-robin. With autoclear set, the new draw buffer is zero-filled.
//
// On the accelerated path (or with multi-buffering off) this degenerates to
// a flush plus a device present, with no buffer bookkeeping.
func (dc *Context) SwapBuffers(autoclear bool) error {
	if !dc.mb.enabled {
		if err := dc.surf.Flush(); err != nil {
			return err
		}
		if dc.dev != nil {
			return dc.dev.Present()
		}
		return nil
	}

	mb := &dc.mb
	mb.slots[mb.draw].ready = true
	mb.display = mb.draw
	mb.copyToHardware(mb.display)

	mb.draw = (mb.draw + 1) % mb.count
	if autoclear {
		mb.clearSlot(mb.draw, 0)
	}
	mb.slots[mb.draw].ready = false
	mb.retarget()
	return dc.dev.Present()
}

// SelectDrawBuffer overrides the draw index for manual buffer control.
// Fails without mutation when multi-buffering is off or i is out of range.
func (dc *Context) SelectDrawBuffer(i int) error {
	if !dc.mb.enabled {
		return ErrMultiBufferDisabled
	}
	if i < 0 || i >= dc.mb.count {
		return ErrBufferIndex
	}
	dc.mb.draw = i
	dc.mb.retarget()
	return nil
}

// SelectDisplayBuffer overrides the display index and immediately copies
// that buffer to the hardware surface. Fails without mutation when
// multi-buffering is off or i is out of range.
func (dc *Context) SelectDisplayBuffer(i int) error {
	if !dc.mb.enabled {
		return ErrMultiBufferDisabled
	}
	if i < 0 || i >= dc.mb.count {
		return ErrBufferIndex
	}
	dc.mb.display = i
	dc.mb.copyToHardware(i)
	return dc.dev.Present()
}

// ClearBuffer fills buffers with a color: ClearAll clears every buffer,
// ClearDraw only the current draw buffer, and i >= 0 one specific buffer.
func (dc *Context) ClearBuffer(i int, c Color) error {
	if !dc.mb.enabled {
		return ErrMultiBufferDisabled
	}
	mb := &dc.mb
	switch {
	case i == ClearAll:
		for j := 0; j < mb.count; j++ {
			mb.clearSlot(j, c)
		}
	case i == ClearDraw:
		mb.clearSlot(mb.draw, c)
	case i >= 0 && i < mb.count:
		mb.clearSlot(i, c)
	default:
		return ErrBufferIndex
	}
	return nil
}

// AttachExternalBuffer installs caller-supplied memory in a buffer slot.
// The engine never frees attached memory; any engine-owned buffer in that
// slot is released first. buf must hold at least width*height*2 bytes.
func (dc *Context) AttachExternalBuffer(i int, buf []byte) error {
	if !dc.mb.enabled {
		return ErrMultiBufferDisabled
	}
	if i < 0 || i >= dc.mb.count {
		return ErrBufferIndex
	}
	if len(buf) < dc.mb.slotSize() {
		return ErrBufferSize
	}
	dc.mb.slots[i] = bufferSlot{ref: borrowedBuffer(buf)}
	if dc.mb.draw == i {
		dc.mb.retarget()
	}
	return nil
}

// DetachExternalBuffer removes caller-supplied memory from a slot.
// Detaching an engine-owned buffer is refused: ownership transfer is
// one-directional. The slot receives a fresh zeroed engine-owned buffer so
// buffer indices stay valid; on allocation failure the slot is left
// unchanged and the error returned.
func (dc *Context) DetachExternalBuffer(i int) error {
	if !dc.mb.enabled {
		return ErrMultiBufferDisabled
	}
	if i < 0 || i >= dc.mb.count {
		return ErrBufferIndex
	}
	if _, borrowed := dc.mb.slots[i].ref.(borrowedBuffer); !borrowed {
		return ErrBufferOwned
	}
	size := dc.mb.slotSize()
	buf, err := dc.alloc(size)
	if err != nil || len(buf) < size {
		if err == nil {
			err = ErrBufferSize
		}
		return fmt.Errorf("detach external buffer: %w", err)
	}
	clear(buf[:size])
	dc.mb.slots[i] = bufferSlot{ref: ownedBuffer(buf)}
	if dc.mb.draw == i {
		dc.mb.retarget()
	}
	return nil
}
