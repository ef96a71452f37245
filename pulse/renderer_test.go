package pulse

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/meme/glm"
	"github.com/oliverbestmann/meme/orion"
	"github.com/oliverbestmann/meme/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEncoder struct {
	device *fakeSwapchainDevice
	err    error

	frames      []orion.RenderFrame
	backBuffers []*BackBuffer
}

func (f *fakeEncoder) Encode(frame orion.RenderFrame, backBuffer *BackBuffer) error {
	f.device.record("encode")
	f.frames = append(f.frames, frame)
	f.backBuffers = append(f.backBuffers, backBuffer)
	return f.err
}

func newTestRenderer(t *testing.T) (*Renderer, *fakeSwapchainDevice, *fakeEncoder) {
	t.Helper()

	sc, device := newTestSwapchain(t, 1280, 720)
	encoder := &fakeEncoder{device: device}

	return &Renderer{swapchain: sc, encoder: encoder}, device, encoder
}

func testFrame() orion.RenderFrame {
	return orion.RenderFrame{
		ClearColor: glm.Vec4f{0.1, 0.2, 0.3, 1},
		Time:       1.5,
		Camera:     scene.DefaultCamera(),
	}
}

func TestRenderPresentsEncodedFrame(t *testing.T) {
	r, device, encoder := newTestRenderer(t)

	require.NoError(t, r.Render(testFrame()))

	assert.Equal(t, []string{"acquire", "encode", "present"}, device.calls)

	require.Len(t, encoder.frames, 1)
	assert.Equal(t, testFrame(), encoder.frames[0])
	assert.NotNil(t, encoder.backBuffers[0])
}

func TestRenderAcquireFailure(t *testing.T) {
	r, device, encoder := newTestRenderer(t)
	device.acquireErr = errors.New("surface lost")

	err := r.Render(testFrame())
	require.ErrorIs(t, err, orion.ErrRuntime)
	assert.ErrorContains(t, err, "surface lost")

	assert.Equal(t, []string{"acquire"}, device.calls)
	assert.Empty(t, encoder.frames)
}

func TestRenderEncodeFailureDiscardsBackBuffer(t *testing.T) {
	r, device, encoder := newTestRenderer(t)
	encoder.err = errors.New("validation failed")

	err := r.Render(testFrame())
	require.ErrorIs(t, err, orion.ErrRuntime)
	assert.Equal(t, orion.ErrRuntime, orion.KindOf(err))

	assert.Equal(t, []string{"acquire", "encode", "discard"}, device.calls)

	// the next frame starts from a clean state
	device.calls = nil
	encoder.err = nil

	require.NoError(t, r.Render(testFrame()))
	assert.Equal(t, []string{"acquire", "encode", "present"}, device.calls)
}

func TestRenderPresentFailure(t *testing.T) {
	r, device, _ := newTestRenderer(t)
	device.presentErr = errors.New("device removed")

	err := r.Render(testFrame())
	require.ErrorIs(t, err, orion.ErrRuntime)

	assert.Equal(t, []string{"acquire", "encode", "present", "discard"}, device.calls)
}

func TestRendererResizeForwardsToSwapchain(t *testing.T) {
	r, device, _ := newTestRenderer(t)

	require.NoError(t, r.Resize(800, 600))
	require.NoError(t, r.Resize(800, 600))

	assert.Equal(t, []string{"configure 800x600", "targets 800x600"}, device.calls)
}

func TestRendererRelease(t *testing.T) {
	r, device, _ := newTestRenderer(t)
	sc := r.swapchain

	_, err := sc.Acquire()
	require.NoError(t, err)

	r.Release()

	// the swapchain gives up its back buffer and targets
	assert.Equal(t, []string{"acquire", "discard"}, device.calls)
	assert.Nil(t, sc.Targets())

	assert.Nil(t, r.swapchain)
	assert.Nil(t, r.resources)
	assert.Nil(t, r.ctx)

	assert.NotPanics(t, r.Release)
}
