package gpu

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	gfx "github.com/damp11113/circle-gfx"
)

const fenceTimeout = 5 * time.Second

// Surface renders through wgpu/hal compute shaders. The pixel store is a
// GPU storage buffer holding one u32 per RGB565 pixel; every drawing call
// is one compute dispatch. It implements gfx.Surface.
type Surface struct {
	mu sync.Mutex

	width  int
	height int

	target      []byte // CPU-side readback destination, may be nil
	targetPitch int

	instance       hal.Instance
	device         hal.Device
	queue          hal.Queue
	externalDevice bool

	fillShader     hal.ShaderModule
	fillBindLayout hal.BindGroupLayout
	fillPipeLayout hal.PipelineLayout
	fillPipeline   hal.ComputePipeline

	blitShader     hal.ShaderModule
	blitBindLayout hal.BindGroupLayout
	blitPipeLayout hal.PipelineLayout
	blitPipeline   hal.ComputePipeline

	pixelBuf   hal.Buffer // w*h u32 pixel store
	stagingBuf hal.Buffer // full-surface readback
	pixStaging hal.Buffer // single-pixel readback

	scratchBuf  hal.Buffer // blit upload, grown on demand
	scratchSize uint64

	ready bool
}

var _ gfx.Surface = (*Surface)(nil)

// Option configures a Surface.
type Option func(*Surface)

// WithTarget sets a CPU-side byte buffer that Flush copies the frame into,
// as little-endian RGB565 rows of the given pitch. Typically the hardware
// framebuffer of a gfx.Device.
func WithTarget(buf []byte, pitch int) Option {
	return func(s *Surface) {
		s.target = buf
		s.targetPitch = pitch
	}
}

// New opens a GPU device and builds the pipelines and pixel store for a
// width x height surface. The pixel store starts zeroed.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gpu: invalid surface size %dx%d", width, height)
	}
	s := &Surface{width: width, height: height}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.initGPU(); err != nil {
		s.Close()
		return nil, err
	}
	s.ready = true
	return s, nil
}

// SetDeviceProvider switches the surface to a shared GPU device from an
// external provider (e.g. gogpu). The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func (s *Surface) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	return s.adoptDevice(device, queue)
}

// adoptDevice tears down the surface's own device state and rebuilds the
// pipelines and buffers on a shared device the caller owns.
func (s *Surface) adoptDevice(device hal.Device, queue hal.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.destroyResources()
	if !s.externalDevice && s.device != nil {
		s.device.Destroy()
	}
	if s.instance != nil {
		s.instance.Destroy()
		s.instance = nil
	}

	s.device = device
	s.queue = queue
	s.externalDevice = true

	if err := s.createPipelines(); err != nil {
		s.ready = false
		return fmt.Errorf("gpu: create pipelines with shared device: %w", err)
	}
	if err := s.createBuffers(); err != nil {
		s.ready = false
		return fmt.Errorf("gpu: create buffers with shared device: %w", err)
	}
	s.ready = true
	return nil
}

func (s *Surface) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("gpu: create instance: %w", err)
	}
	s.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return ErrNoAdapter
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("gpu: open device: %w", err)
	}
	s.device = openDev.Device
	s.queue = openDev.Queue
	if err := s.createPipelines(); err != nil {
		return err
	}
	if err := s.createBuffers(); err != nil {
		return err
	}
	return nil
}

func (s *Surface) createPipelines() error {
	fill, err := s.createComputePipeline("gfx_fill", fillShaderSource,
		[]gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		})
	if err != nil {
		return err
	}
	s.fillShader, s.fillBindLayout, s.fillPipeLayout, s.fillPipeline =
		fill.shader, fill.bindLayout, fill.pipeLayout, fill.pipeline

	blit, err := s.createComputePipeline("gfx_blit", blitShaderSource,
		[]gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		})
	if err != nil {
		return err
	}
	s.blitShader, s.blitBindLayout, s.blitPipeLayout, s.blitPipeline =
		blit.shader, blit.bindLayout, blit.pipeLayout, blit.pipeline
	return nil
}

type pipelineSet struct {
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline
}

func (s *Surface) createComputePipeline(label, wgsl string, entries []gputypes.BindGroupLayoutEntry) (pipelineSet, error) {
	var p pipelineSet
	spirv, err := compileToSPIRV(wgsl)
	if err != nil {
		return p, fmt.Errorf("gpu: compile %s shader: %w", label, err)
	}
	shader, err := s.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return p, fmt.Errorf("gpu: create %s shader module: %w", label, err)
	}
	p.shader = shader

	bindLayout, err := s.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   label + "_bind_layout",
		Entries: entries,
	})
	if err != nil {
		return p, fmt.Errorf("gpu: create %s bind group layout: %w", label, err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := s.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: label + "_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		return p, fmt.Errorf("gpu: create %s pipeline layout: %w", label, err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := s.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: label + "_pipeline", Layout: pipeLayout,
		Compute: hal.ComputeState{Module: shader, EntryPoint: "main"},
	})
	if err != nil {
		return p, fmt.Errorf("gpu: create %s compute pipeline: %w", label, err)
	}
	p.pipeline = pipeline
	return p, nil
}

func (s *Surface) createBuffers() error {
	size := s.pixelBufSize()
	pixelBuf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_pixels", Size: size,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create pixel buffer: %w", err)
	}
	s.pixelBuf = pixelBuf

	stagingBuf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_staging", Size: size,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create staging buffer: %w", err)
	}
	s.stagingBuf = stagingBuf

	pixStaging, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_pix_staging", Size: 4,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create pixel staging buffer: %w", err)
	}
	s.pixStaging = pixStaging

	s.queue.WriteBuffer(pixelBuf, 0, make([]byte, size))
	return nil
}

func (s *Surface) pixelBufSize() uint64 {
	return uint64(s.width) * uint64(s.height) * 4
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// SetPixel plots one pixel as a 1x1 fill dispatch. Out-of-bounds
// coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c gfx.Color) {
	s.FillRect(x, y, 1, 1, c)
}

// Pixel reads one pixel back from the GPU pixel store. Out-of-bounds
// coordinates or a readback failure yield zero. A full round trip per
// call, intended for tests and debugging rather than hot paths.
func (s *Surface) Pixel(x, y int) gfx.Color {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return 0
	}
	off := uint64(y*s.width+x) * 4
	var out [4]byte
	if err := s.copyAndRead(s.pixStaging, off, out[:]); err != nil {
		gfx.Logger().Debug("pixel readback failed", "x", x, "y", y, "err", err)
		return 0
	}
	return gfx.Color(binary.LittleEndian.Uint32(out[:]))
}

// FillRowSpan fills a horizontal run of w pixels starting at (x, y).
func (s *Surface) FillRowSpan(x, y, w int, c gfx.Color) {
	s.FillRect(x, y, w, 1, c)
}

// FillRect fills an axis-aligned rectangle in one dispatch. The rectangle
// is clipped to the surface; a fully clipped rectangle is a no-op.
func (s *Surface) FillRect(x, y, w, h int, c gfx.Color) {
	x, y, w, h = clipRect(x, y, w, h, s.width, s.height)
	if w <= 0 || h <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	params := packParams(uint32(x), uint32(y), uint32(w), uint32(h),
		uint32(c), uint32(s.width), uint32(s.height), 0)
	err := s.dispatch(s.fillPipeline, s.fillBindLayout, params, nil, 0, uint32(w), uint32(h))
	if err != nil {
		gfx.Logger().Warn("fill dispatch failed", "err", err)
	}
}

// Fill floods the whole surface with one color.
func (s *Surface) Fill(c gfx.Color) {
	s.FillRect(0, 0, s.width, s.height, c)
}

// Blit uploads a w x h block of pixels and writes it at (x, y) in one
// dispatch. pix is tightly packed row-major; short slices are ignored.
func (s *Surface) Blit(x, y, w, h int, pix []gfx.Color) {
	if w <= 0 || h <= 0 || len(pix) < w*h {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return
	}
	// The shader clips the bottom and right edges; a negative origin needs
	// the visible sub-rectangle re-packed on the CPU first.
	if x < 0 || y < 0 {
		s.blitClipped(x, y, w, h, pix)
		return
	}
	src := make([]byte, w*h*4)
	for i, p := range pix[:w*h] {
		binary.LittleEndian.PutUint32(src[i*4:], uint32(p))
	}
	if err := s.ensureScratch(uint64(len(src))); err != nil {
		gfx.Logger().Warn("blit upload failed", "err", err)
		return
	}
	s.queue.WriteBuffer(s.scratchBuf, 0, src)
	params := packParams(uint32(x), uint32(y), uint32(w), uint32(h),
		uint32(s.width), uint32(s.height), 0, 0)
	err := s.dispatch(s.blitPipeline, s.blitBindLayout, params,
		s.scratchBuf, uint64(len(src)), uint32(w), uint32(h))
	if err != nil {
		gfx.Logger().Warn("blit dispatch failed", "err", err)
	}
}

// blitClipped handles blits whose origin is above or left of the surface
// by uploading only the visible sub-rectangle.
func (s *Surface) blitClipped(x, y, w, h int, pix []gfx.Color) {
	sx, sy := 0, 0
	if x < 0 {
		sx = -x
		w -= sx
		x = 0
	}
	if y < 0 {
		sy = -y
		h -= sy
		y = 0
	}
	if w <= 0 || h <= 0 {
		return
	}
	stride := w + sx
	src := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p := pix[(sy+row)*stride+sx+col]
			binary.LittleEndian.PutUint32(src[(row*w+col)*4:], uint32(p))
		}
	}
	if err := s.ensureScratch(uint64(len(src))); err != nil {
		gfx.Logger().Warn("blit upload failed", "err", err)
		return
	}
	s.queue.WriteBuffer(s.scratchBuf, 0, src)
	params := packParams(uint32(x), uint32(y), uint32(w), uint32(h),
		uint32(s.width), uint32(s.height), 0, 0)
	err := s.dispatch(s.blitPipeline, s.blitBindLayout, params,
		s.scratchBuf, uint64(len(src)), uint32(w), uint32(h))
	if err != nil {
		gfx.Logger().Warn("blit dispatch failed", "err", err)
	}
}

// Flush reads the pixel store back into the target buffer set with
// WithTarget, converting u32 entries to little-endian RGB565 bytes. With
// no target it only confirms the device is usable.
func (s *Surface) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return ErrNotReady
	}
	if s.target == nil {
		return nil
	}
	readback := make([]byte, s.pixelBufSize())
	if err := s.copyAndRead(s.stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("gpu: flush readback: %w", err)
	}
	pitch := s.targetPitch
	if pitch <= 0 {
		pitch = s.width * 2
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			v := binary.LittleEndian.Uint32(readback[(y*s.width+x)*4:])
			binary.LittleEndian.PutUint16(s.target[y*pitch+x*2:], uint16(v))
		}
	}
	return nil
}

// Close destroys all GPU resources. Shared devices installed via
// SetDeviceProvider are released but not destroyed.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyResources()
	if !s.externalDevice {
		if s.device != nil {
			s.device.Destroy()
			s.device = nil
		}
		if s.instance != nil {
			s.instance.Destroy()
			s.instance = nil
		}
	} else {
		s.device = nil
		s.instance = nil
	}
	s.queue = nil
	s.ready = false
	s.externalDevice = false
	return nil
}

func (s *Surface) destroyResources() {
	if s.device == nil {
		return
	}
	for _, buf := range []hal.Buffer{s.pixelBuf, s.stagingBuf, s.pixStaging, s.scratchBuf} {
		if buf != nil {
			s.device.DestroyBuffer(buf)
		}
	}
	s.pixelBuf, s.stagingBuf, s.pixStaging, s.scratchBuf = nil, nil, nil, nil
	s.scratchSize = 0
	for _, p := range []pipelineSet{
		{s.fillShader, s.fillBindLayout, s.fillPipeLayout, s.fillPipeline},
		{s.blitShader, s.blitBindLayout, s.blitPipeLayout, s.blitPipeline},
	} {
		if p.pipeline != nil {
			s.device.DestroyComputePipeline(p.pipeline)
		}
		if p.pipeLayout != nil {
			s.device.DestroyPipelineLayout(p.pipeLayout)
		}
		if p.bindLayout != nil {
			s.device.DestroyBindGroupLayout(p.bindLayout)
		}
		if p.shader != nil {
			s.device.DestroyShaderModule(p.shader)
		}
	}
	s.fillShader, s.fillBindLayout, s.fillPipeLayout, s.fillPipeline = nil, nil, nil, nil
	s.blitShader, s.blitBindLayout, s.blitPipeLayout, s.blitPipeline = nil, nil, nil, nil
}

// ensureScratch grows the blit upload buffer. Recreated only when the
// requested size exceeds the current capacity.
func (s *Surface) ensureScratch(size uint64) error {
	if s.scratchBuf != nil && s.scratchSize >= size {
		return nil
	}
	if s.scratchBuf != nil {
		s.device.DestroyBuffer(s.scratchBuf)
		s.scratchBuf = nil
		s.scratchSize = 0
	}
	buf, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_blit_src", Size: size,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create blit buffer: %w", err)
	}
	s.scratchBuf = buf
	s.scratchSize = size
	return nil
}

// dispatch runs one compute pass over a w x h grid with the uniform params
// and optional source buffer bound, then blocks on the fence.
func (s *Surface) dispatch(pipeline hal.ComputePipeline, layout hal.BindGroupLayout,
	params []byte, srcBuf hal.Buffer, srcSize uint64, w, h uint32) error {

	ub, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_params", Size: uint64(len(params)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	defer s.device.DestroyBuffer(ub)
	s.queue.WriteBuffer(ub, 0, params)

	entries := []gputypes.BindGroupEntry{
		{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: uint64(len(params))}},
	}
	if srcBuf != nil {
		entries = append(entries,
			gputypes.BindGroupEntry{Binding: 1, Resource: gputypes.BufferBinding{Buffer: srcBuf.NativeHandle(), Offset: 0, Size: srcSize}},
			gputypes.BindGroupEntry{Binding: 2, Resource: gputypes.BufferBinding{Buffer: s.pixelBuf.NativeHandle(), Offset: 0, Size: s.pixelBufSize()}},
		)
	} else {
		entries = append(entries,
			gputypes.BindGroupEntry{Binding: 1, Resource: gputypes.BufferBinding{Buffer: s.pixelBuf.NativeHandle(), Offset: 0, Size: s.pixelBufSize()}},
		)
	}
	bg, err := s.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "gfx_bind", Layout: layout, Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	defer s.device.DestroyBindGroup(bg)

	encoder, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gfx_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("gfx_dispatch"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "gfx_pass"})
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bg, nil)
	pass.Dispatch((w+7)/8, (h+7)/8, 1)
	pass.End()
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer s.device.FreeCommandBuffer(cmdBuf)

	return s.submitAndWait(cmdBuf)
}

// copyAndRead copies a region of the pixel store into a staging buffer and
// reads it back into out.
func (s *Surface) copyAndRead(staging hal.Buffer, srcOffset uint64, out []byte) error {
	encoder, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gfx_readback"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("gfx_readback"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	encoder.CopyBufferToBuffer(s.pixelBuf, staging, []hal.BufferCopy{
		{SrcOffset: srcOffset, DstOffset: 0, Size: uint64(len(out))},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer s.device.FreeCommandBuffer(cmdBuf)

	if err := s.submitAndWait(cmdBuf); err != nil {
		return err
	}
	if err := s.queue.ReadBuffer(staging, 0, out); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	return nil
}

func (s *Surface) submitAndWait(cmdBuf hal.CommandBuffer) error {
	fence, err := s.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer s.device.DestroyFence(fence)
	if err := s.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := s.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

func packParams(vals ...uint32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func clipRect(x, y, w, h, maxW, maxH int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > maxW {
		w = maxW - x
	}
	if y+h > maxH {
		h = maxH - y
	}
	return x, y, w, h
}
