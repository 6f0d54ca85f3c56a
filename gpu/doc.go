// Package gpu provides a compute-shader rendering surface backed by
// gogpu/wgpu. Pixels live in a GPU storage buffer as one u32 per RGB565
// value; fills and blits run as 8x8 workgroup dispatches, and Flush reads
// the buffer back into an optional CPU-side target.
//
// The package is an optional backend for the root gfx package:
//
//	surf, err := gpu.New(240, 320, gpu.WithTarget(dev.Framebuffer(), dev.Pitch()))
//	if err != nil {
//		// no usable GPU, stay on the software surface
//	}
//	dc := gfx.New(dev, gfx.WithSurface(surf))
//
// Initialization requires a registered Vulkan HAL backend; New returns an
// error when no adapter can be opened, and the caller decides the fallback.
package gpu
