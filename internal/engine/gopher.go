package engine

import (
	"runtime"
	"time"

	"Gopher3DPickup/internal/behaviour"
	"Gopher3DPickup/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Fixed updates run once every fixedEvery frames with the accumulated delta
const fixedEvery = 2

// Gopher drives a scene once per frame, either from a GLFW window
// (input only, no rendering context) or headless at a fixed frame rate.
type Gopher struct {
	Width     int32
	Height    int32
	Title     string
	Scene     *behaviour.ComponentManager
	FrameRate int // headless frames per second
	MaxFrames int // stop after this many frames, 0 = until the window closes

	window           *glfw.Window
	frameTrackId     int
	fixedAccum       float32
	frames           int
	onRenderCallback func(deltaTime float64) // Optional per-frame callback (HUD output, wiring)
}

func NewGopher(scene *behaviour.ComponentManager) *Gopher {
	logger.Log.Info("Gopher3D initializing...")
	if scene == nil {
		scene = behaviour.GlobalComponentManager
	}
	return &Gopher{
		Width:     1024,
		Height:    768,
		Title:     "Gopher3D",
		Scene:     scene,
		FrameRate: 60,
	}
}

// SetOnRenderCallback sets a callback that will be called each frame after the scene updated
func (gopher *Gopher) SetOnRenderCallback(callback func(deltaTime float64)) {
	gopher.onRenderCallback = callback
}

// GetWindow returns the GLFW window, nil when running headless
func (gopher *Gopher) GetWindow() *glfw.Window {
	return gopher.window
}

// Frames is the number of frames run so far
func (gopher *Gopher) Frames() int {
	return gopher.frames
}

// Render opens a window at (x, y) and runs frames until it is closed
func (gopher *Gopher) Render(x, y int) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	// Input only, there is no renderer behind this window
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(gopher.Width), int(gopher.Height), gopher.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return err
	}
	defer window.Destroy()
	gopher.window = window
	if x >= 0 && y >= 0 {
		window.SetPos(x, y)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	lastTime := glfw.GetTime()

	for !gopher.window.ShouldClose() && !gopher.done() {
		glfw.PollEvents()

		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		if gopher.window.GetKey(glfw.KeyEscape) == glfw.Press {
			gopher.window.SetShouldClose(true)
		}

		gopher.Step(deltaTime)
	}
}

// RunHeadless runs MaxFrames frames at FrameRate without a window.
// Frames are not paced against the wall clock unless realtime is set.
func (gopher *Gopher) RunHeadless(realtime bool) {
	rate := gopher.FrameRate
	if rate <= 0 {
		rate = 60
	}
	deltaTime := 1.0 / float64(rate)
	frameDuration := time.Duration(float64(time.Second) * deltaTime)

	for !gopher.done() {
		gopher.Step(deltaTime)
		if realtime {
			time.Sleep(frameDuration)
		}
	}
	logger.Log.Info("Headless run finished", zap.Int("frames", gopher.frames))
}

// Step runs one frame: fixed update when due, then update, then the callback
func (gopher *Gopher) Step(deltaTime float64) {
	gopher.fixedAccum += float32(deltaTime)
	if gopher.frameTrackId >= fixedEvery {
		gopher.Scene.FixedUpdateAll(gopher.fixedAccum)
		gopher.fixedAccum = 0
		gopher.frameTrackId = 0
	}
	gopher.Scene.UpdateAll(float32(deltaTime))

	if gopher.onRenderCallback != nil {
		gopher.onRenderCallback(deltaTime)
	}
	gopher.frameTrackId++
	gopher.frames++
}

func (gopher *Gopher) done() bool {
	return gopher.MaxFrames > 0 && gopher.frames >= gopher.MaxFrames
}
