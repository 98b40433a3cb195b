package main

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var fbSize Size

func init() {
	runtime.LockOSThread()
}

func GetTime() float64 {
	return glfw.GetTime()
}

// GlfwApp receives window events and drives one frame per loop
// iteration. Cursor positions are reported in framebuffer pixels.
type GlfwApp interface {
	Init() error
	IsRunning() bool
	OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	OnMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, x, y float64)
	OnCursorPos(x, y float64)
	OnScroll(xoff, yoff float64)
	OnFramebufferSize(width, height int)
	OnClose()
	Render() error
	Update() error
	Close() error
}

type WindowOptions struct {
	Title  string
	Width  int
	Height int
	FPS    int
}

func WithGL(opts WindowOptions, app GlfwApp) error {
	err := glfw.Init()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()

	// cursor positions arrive in screen coordinates, which differ from
	// framebuffer pixels on high density displays
	toFramebuffer := func(w *glfw.Window, x, y float64) (float64, float64) {
		ww, wh := w.GetSize()
		if ww == 0 || wh == 0 {
			return x, y
		}
		return x * float64(fbSize.X) / float64(ww), y * float64(fbSize.Y) / float64(wh)
	}
	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		fbSize.X = width
		fbSize.Y = height
		gl.Viewport(0, 0, int32(width), int32(height))
		app.OnFramebufferSize(width, height)
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, scancode, action, mods)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		x, y = toFramebuffer(w, x, y)
		app.OnMouseButton(button, action, mods, x, y)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		app.OnCursorPos(toFramebuffer(w, x, y))
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		app.OnScroll(xoff, yoff)
	})
	window.SetCloseCallback(func(w *glfw.Window) {
		app.OnClose()
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	width, height := window.GetFramebufferSize()
	framebufferSizeCallback(window, width, height)
	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()
	frameSeconds := 1.0 / float64(opts.FPS)
	for app.IsRunning() {
		start := glfw.GetTime()
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := app.Render(); err != nil {
			return err
		}
		window.SwapBuffers()
		elapsedSeconds := glfw.GetTime() - start
		if frameSeconds > elapsedSeconds {
			glfw.WaitEventsTimeout(frameSeconds - elapsedSeconds)
		} else {
			glfw.PollEvents()
		}
		if err := app.Update(); err != nil {
			return err
		}
	}
	return nil
}
