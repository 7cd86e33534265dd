package ggchart

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// sampleCount is the MSAA sample count for the chart pipeline.
const sampleCount = 4

// Renderer batches a frame's chart primitives into one triangle list and
// renders it through a single 4x-MSAA GPU draw call.
//
// The renderer supports two output modes:
//   - Offscreen (default): renders to an internal resolve texture, then
//     reads pixels back into the caller's gg.GPURenderTarget.
//   - Surface: renders directly to a caller-provided surface texture view
//     (SetSurfaceTarget). No readback occurs; the MSAA attachment resolves
//     straight to the surface.
//
// GPU acquisition can fail on headless or driver-less machines. That is a
// recoverable condition: Initialize returns the error, Fallback() reports
// true, and the host presents a non-GPU notice instead of chart canvases.
//
// A Renderer is not safe for concurrent use by multiple goroutines drawing
// at once; the internal mutex only guards lifecycle calls racing a frame.
type Renderer struct {
	mu   sync.Mutex
	opts rendererOptions

	instance       hal.Instance
	device         hal.Device
	queue          hal.Queue
	externalDevice bool // shared device: don't destroy on Destroy

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	// Offscreen render targets (MSAA color + 1x resolve), recreated on
	// canvas size change, never resized in place.
	msaaTex     hal.Texture
	msaaView    hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView
	texWidth    uint32
	texHeight   uint32

	// Surface rendering mode fields. When surfaceView is non-nil, frames
	// resolve directly to the surface instead of reading back to CPU.
	surfaceView   hal.TextureView
	surfaceWidth  uint32
	surfaceHeight uint32

	ready     bool
	fallback  bool
	destroyed bool
}

// NewRenderer creates a renderer. Call Initialize (or SetDeviceProvider)
// before the first Draw.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Initialize acquires a GPU device and builds the chart pipeline. On
// failure the renderer enters fallback mode: Fallback reports true, Draw
// refuses frames, and the returned error describes the cause. Calling
// Initialize on an already-initialized renderer is a no-op.
func (r *Renderer) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return ErrDestroyed
	}
	if r.ready {
		return nil
	}

	if r.device == nil {
		if err := r.initGPU(); err != nil {
			r.fallback = true
			Logger().Warn("ggchart: GPU unavailable, falling back", "error", err)
			return err
		}
	}
	if err := r.ensurePipeline(); err != nil {
		r.fallback = true
		Logger().Warn("ggchart: pipeline creation failed, falling back", "error", err)
		return err
	}

	r.ready = true
	r.fallback = false
	return nil
}

// initGPU creates a standalone Vulkan device. This is the default path
// when no external device is provided via SetDeviceProvider.
func (r *Renderer) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	r.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		r.instance = nil
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
		instance.Destroy()
		r.instance = nil
		return fmt.Errorf("open device: %w", err)
	}
	r.device = openDev.Device
	r.queue = openDev.Queue
	r.externalDevice = false

	Logger().Info("ggchart: GPU initialized", "adapter", selected.Info.Name)
	return nil
}

// SetDeviceProvider switches the renderer to a shared GPU device from an
// external provider, avoiding a second device on the same adapter. Two
// provider shapes are accepted: a gogpu-style provider exposing
// HalDevice() any / HalQueue() any, or a gpucontext.DeviceProvider whose
// Device and Queue implement the HAL interfaces.
//
// The provider's device is never destroyed by this renderer.
func (r *Renderer) SetDeviceProvider(provider any) error {
	device, queue, ok := extractHALDevice(provider)
	if !ok {
		return ErrBadDeviceProvider
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return ErrDestroyed
	}

	// Drop resources tied to the previous device.
	r.destroyTargets()
	r.destroyPipeline()
	if !r.externalDevice && r.device != nil {
		r.device.Destroy()
	}
	if r.instance != nil {
		r.instance.Destroy()
		r.instance = nil
	}

	r.device = device
	r.queue = queue
	r.externalDevice = true

	if err := r.ensurePipeline(); err != nil {
		r.ready = false
		r.fallback = true
		return fmt.Errorf("pipeline on shared device: %w", err)
	}
	r.ready = true
	r.fallback = false
	Logger().Debug("ggchart: switched to shared GPU device")
	return nil
}

// extractHALDevice probes the provider for usable HAL device and queue
// handles.
func extractHALDevice(provider any) (hal.Device, hal.Queue, bool) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	if hp, ok := provider.(halProvider); ok {
		device, dok := hp.HalDevice().(hal.Device)
		queue, qok := hp.HalQueue().(hal.Queue)
		if dok && qok && device != nil && queue != nil {
			return device, queue, true
		}
		return nil, nil, false
	}
	if dp, ok := provider.(gpucontext.DeviceProvider); ok {
		device, dok := dp.Device().(hal.Device)
		queue, qok := dp.Queue().(hal.Queue)
		if dok && qok && device != nil && queue != nil {
			return device, queue, true
		}
	}
	return nil, nil, false
}

// SetSurfaceTarget configures the renderer to resolve frames directly to
// the given texture view instead of reading pixels back to the CPU. Call
// with a nil view to return to offscreen mode. The caller retains
// ownership of the view.
func (r *Renderer) SetSurfaceTarget(view hal.TextureView, width, height uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modeChanged := (view == nil) != (r.surfaceView == nil)
	sizeChanged := width != r.surfaceWidth || height != r.surfaceHeight
	if modeChanged || sizeChanged {
		r.destroyTargets()
	}
	r.surfaceView = view
	r.surfaceWidth = width
	r.surfaceHeight = height
}

// Fallback reports whether GPU initialization failed and the host should
// present a non-GPU notice instead of chart canvases.
func (r *Renderer) Fallback() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallback
}

// Ready reports whether the renderer can draw frames.
func (r *Renderer) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready && !r.destroyed
}

// Draw renders one frame. All primitives are expanded into a single
// triangle list and issued as one draw call; an empty frame still clears
// the canvas to the background color. In offscreen mode the resolved
// pixels are written into target.Data (straight RGBA, row-major); in
// surface mode the target is ignored and the frame resolves to the
// surface view.
//
// Draw on a destroyed renderer is an inert no-op. Draw before a
// successful Initialize returns ErrNotInitialized.
func (r *Renderer) Draw(target gg.GPURenderTarget, frame Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return nil
	}
	if !r.ready {
		return ErrNotInitialized
	}

	w, h := uint32(target.Width), uint32(target.Height) //nolint:gosec // canvas dimensions fit uint32
	if r.surfaceView != nil {
		w, h = r.surfaceWidth, r.surfaceHeight
	}
	if w == 0 || h == 0 {
		return nil
	}

	if err := r.ensureTargets(w, h); err != nil {
		return fmt.Errorf("ensure targets: %w", err)
	}

	verts := buildVertices(&frame, w, h, r.opts.diskSegments)
	Logger().Debug("ggchart: frame", "vertices", len(verts)/vertexFloats,
		"rects", len(frame.Rects), "segments", len(frame.Segments), "disks", len(frame.Disks))

	var vertBuf hal.Buffer
	if len(verts) > 0 {
		buf, err := r.createAndUploadBuffer("chart_verts", vertexBytes(verts),
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return fmt.Errorf("create vertex buffer: %w", err)
		}
		vertBuf = buf
		defer r.device.DestroyBuffer(vertBuf)
	}
	vertexCount := uint32(len(verts) / vertexFloats) //nolint:gosec // vertex count fits uint32

	if r.surfaceView != nil {
		return r.encodeSubmitSurface(&frame, vertBuf, vertexCount, w, h)
	}
	return r.encodeSubmitReadback(&frame, vertBuf, vertexCount, w, h, target)
}

// Destroy releases all GPU resources. Idempotent; a destroyed renderer
// ignores further Draw calls. A shared device from SetDeviceProvider is
// not destroyed.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return
	}
	r.destroyed = true
	r.ready = false

	if r.device != nil {
		r.destroyTargets()
		r.destroyPipeline()
	}
	if !r.externalDevice {
		if r.device != nil {
			r.device.Destroy()
		}
		if r.instance != nil {
			r.instance.Destroy()
		}
	}
	r.device = nil
	r.queue = nil
	r.instance = nil
	r.surfaceView = nil
}

// ensurePipeline compiles the shader and creates the render pipeline if
// they do not exist yet.
func (r *Renderer) ensurePipeline() error {
	if r.pipeline != nil {
		return nil
	}

	shader, err := createChartShader(r.device)
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	r.shader = shader

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "chart_pipe_layout",
		BindGroupLayouts: nil, // vertices arrive pre-transformed, no uniforms
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	// Straight-alpha blending: color src-alpha over, alpha accumulates
	// toward opaque.
	blend := gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}

	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "chart_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
						{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
	})
	if err != nil {
		r.destroyPipeline()
		return fmt.Errorf("create render pipeline: %w", err)
	}
	r.pipeline = pipeline
	return nil
}

// destroyPipeline releases pipeline resources in reverse creation order.
// Safe to call with partially created pipelines.
func (r *Renderer) destroyPipeline() {
	if r.device == nil {
		return
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// ensureTargets creates or recreates the MSAA color texture (and, in
// offscreen mode, the 1x resolve texture) when the canvas size changes.
func (r *Renderer) ensureTargets(w, h uint32) error {
	if r.texWidth == w && r.texHeight == h && r.msaaTex != nil {
		// Surface mode needs no resolve texture; offscreen mode keeps
		// the cached pair only when both textures exist.
		if r.surfaceView != nil || r.resolveTex != nil {
			return nil
		}
	}
	r.destroyTargets()

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	msaaTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "chart_msaa_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	r.msaaTex = msaaTex

	msaaView, err := r.device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label: "chart_msaa_color_view",
	})
	if err != nil {
		r.destroyTargets()
		return fmt.Errorf("create MSAA color view: %w", err)
	}
	r.msaaView = msaaView

	// Surface mode: the caller's surface view is the resolve target.
	if r.surfaceView == nil {
		resolveTex, err := r.device.CreateTexture(&hal.TextureDescriptor{
			Label:         "chart_resolve",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        gputypes.TextureFormatBGRA8Unorm,
			Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
		})
		if err != nil {
			r.destroyTargets()
			return fmt.Errorf("create resolve texture: %w", err)
		}
		r.resolveTex = resolveTex

		resolveView, err := r.device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
			Label: "chart_resolve_view",
		})
		if err != nil {
			r.destroyTargets()
			return fmt.Errorf("create resolve view: %w", err)
		}
		r.resolveView = resolveView
	}

	r.texWidth = w
	r.texHeight = h
	return nil
}

// destroyTargets releases render target textures and resets dimensions.
func (r *Renderer) destroyTargets() {
	if r.device == nil {
		return
	}
	if r.resolveView != nil {
		r.device.DestroyTextureView(r.resolveView)
		r.resolveView = nil
	}
	if r.resolveTex != nil {
		r.device.DestroyTexture(r.resolveTex)
		r.resolveTex = nil
	}
	if r.msaaView != nil {
		r.device.DestroyTextureView(r.msaaView)
		r.msaaView = nil
	}
	if r.msaaTex != nil {
		r.device.DestroyTexture(r.msaaTex)
		r.msaaTex = nil
	}
	r.texWidth = 0
	r.texHeight = 0
}

// recordPass records the chart pass onto the encoder: clear to the
// background color, optionally scissor to the clip rectangle, and issue
// the single batched draw.
func (r *Renderer) recordPass(encoder hal.CommandEncoder, frame *Frame, vertBuf hal.Buffer, vertexCount, w, h uint32, resolveTarget hal.TextureView) {
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "chart_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:          r.msaaView,
			ResolveTarget: resolveTarget,
			LoadOp:        gputypes.LoadOpClear,
			StoreOp:       gputypes.StoreOpStore,
			ClearValue: gputypes.Color{
				R: frame.Background.R,
				G: frame.Background.G,
				B: frame.Background.B,
				A: frame.Background.A,
			},
		}},
	})

	if vertBuf != nil && vertexCount > 0 {
		rp.SetPipeline(r.pipeline)
		if x, y, cw, ch, ok := clampClip(frame.Clip, w, h); ok {
			setScissor(rp, x, y, cw, ch)
		}
		rp.SetVertexBuffer(0, vertBuf, 0)
		rp.Draw(vertexCount, 1, 0, 0)
	}

	rp.End()
}

// setScissor applies a scissor rectangle to the pass. Backend pass
// encoders differ in whether SetScissorRect reports an error, so the
// method is probed dynamically; backends without scissor support render
// unclipped.
func setScissor(rp any, x, y, w, h uint32) {
	switch sc := rp.(type) {
	case interface {
		SetScissorRect(x, y, width, height uint32)
	}:
		sc.SetScissorRect(x, y, w, h)
	case interface {
		SetScissorRect(x, y, width, height uint32) error
	}:
		_ = sc.SetScissorRect(x, y, w, h)
	default:
		Logger().Warn("ggchart: backend lacks scissor support, clip ignored")
	}
}

// encodeSubmitReadback encodes the chart pass, copies the resolve texture
// to a staging buffer, submits, waits, and writes straight-RGBA pixels
// into the target.
func (r *Renderer) encodeSubmitReadback(frame *Frame, vertBuf hal.Buffer, vertexCount, w, h uint32, target gg.GPURenderTarget) error {
	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "chart_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("chart_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	r.recordPass(encoder, frame, vertBuf, vertexCount, w, h, r.resolveView)

	// After the MSAA resolve the texture is in attachment layout;
	// CopyTextureToBuffer needs transfer-src. Explicit barrier for
	// Vulkan/DX12, no-op elsewhere.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	// Copy requires BytesPerRow aligned to 256.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingBufSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "chart_staging",
		Size:  stagingBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.resolveTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	// Return the resolve texture to attachment layout for the next frame.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingBufSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}

	// Strip row padding (if any) and convert BGRA to RGBA.
	if alignedBytesPerRow == bytesPerRow {
		bgraToRGBA(readback, target.Data, target.Width*target.Height)
	} else {
		tight := make([]byte, uint64(bytesPerRow)*uint64(h))
		for row := uint32(0); row < h; row++ {
			srcOff := int(row) * int(alignedBytesPerRow)
			dstOff := int(row) * int(bytesPerRow)
			copy(tight[dstOff:dstOff+int(bytesPerRow)], readback[srcOff:srcOff+int(bytesPerRow)])
		}
		bgraToRGBA(tight, target.Data, target.Width*target.Height)
	}
	return nil
}

// encodeSubmitSurface encodes the chart pass with the surface view as the
// resolve target and submits without readback.
func (r *Renderer) encodeSubmitSurface(frame *Frame, vertBuf hal.Buffer, vertexCount, w, h uint32) error {
	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "chart_surface_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("chart_surface_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	r.recordPass(encoder, frame, vertBuf, vertexCount, w, h, r.surfaceView)

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	// Wait so the frame is complete before the host presents the surface.
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// bgraToRGBA swaps the B and R channels of count pixels from src into dst.
func bgraToRGBA(src, dst []byte, count int) {
	n := count * 4
	if n > len(src) {
		n = len(src)
	}
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i+3 < n; i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = src[i+3]
	}
}
