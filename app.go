package main

import (
	"fmt"
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/bezier/bezier"
)

const (
	defaultFontSize FontSizeInPoints = 12
	minFontSize     FontSizeInPoints = 8
	maxFontSize     FontSizeInPoints = 48
	fontSizeStep    FontSizeInPoints = 1

	hudMargin = 8

	// pulsing of the dragged control point, cycles per second
	dragPulseRate = 1.5
)

var (
	colorHudText  bezier.Color = 0xb4b4b4ff
	colorHudError bezier.Color = 0xff5050ff
)

type App struct {
	editor       *bezier.Editor
	palette      bezier.Palette
	lineWidth    float32
	font         *Font
	fontSize     FontSizeInPoints
	sink         *GLSink
	text         *TextLayer
	globalKeyMap bezier.KeyMap
	cursor       bezier.Point
	showHelp     bool
	lastError    error
}

func CreateApp(editor *bezier.Editor, lineWidth float32) *App {
	return &App{
		editor:    editor,
		palette:   editor.Palette(),
		lineWidth: lineWidth,
	}
}

func (app *App) SetLastError(err error) {
	app.lastError = err
}

func (app *App) ClearLastError() {
	app.lastError = nil
}

func (app *App) reloadFont() error {
	face, err := app.font.GetFace(app.fontSize)
	if err != nil {
		return err
	}
	atlas, err := app.font.GetGlyphAtlas(face, 16, 8)
	if err != nil {
		return err
	}
	text, err := CreateTextLayer(atlas)
	if err != nil {
		return err
	}
	if app.text != nil {
		app.text.Close()
	}
	app.text = text
	return nil
}

func (app *App) setFontSize(size FontSizeInPoints) {
	clamped := size
	if clamped < minFontSize {
		clamped = minFontSize
	}
	if clamped > maxFontSize {
		clamped = maxFontSize
	}
	if clamped == app.fontSize {
		return
	}
	app.fontSize = clamped
	if err := app.reloadFont(); err != nil {
		logger.Debug("reloadFont failed", "fontSize", app.fontSize, "error", err)
	}
}

func (app *App) IncreaseFontSize() {
	app.setFontSize(app.fontSize + fontSizeStep)
}

func (app *App) DecreaseFontSize() {
	app.setFontSize(app.fontSize - fontSizeStep)
}

func (app *App) ResetFontSize() {
	app.setFontSize(defaultFontSize)
}

func (app *App) Init() error {
	font, err := LoadDefaultFont()
	if err != nil {
		return err
	}
	app.font = font
	app.fontSize = defaultFontSize
	if err := app.reloadFont(); err != nil {
		return err
	}
	sink, err := CreateGLSink(app.lineWidth)
	if err != nil {
		return err
	}
	app.sink = sink

	// keys handled here never reach the editor
	globalKeyMap := bezier.CreateKeyMap()
	globalKeyMap.Bind("C-S-=", app.IncreaseFontSize)
	globalKeyMap.Bind("C-=", app.IncreaseFontSize)
	globalKeyMap.Bind("C--", app.DecreaseFontSize)
	globalKeyMap.Bind("C-0", app.ResetFontSize)
	globalKeyMap.Bind("F1", func() {
		app.showHelp = !app.showHelp
	})
	app.globalKeyMap = globalKeyMap
	logger.Info("editor ready",
		"capacity", app.editor.Store().Cap(),
		"policy", app.editor.Store().Policy(),
		"mode", app.editor.Mode(),
		"step", app.editor.Step())
	return nil
}

func (app *App) IsRunning() bool {
	return app.editor.IsRunning()
}

func (app *App) push(ev bezier.Event) {
	logger.Debug("event", "event", ev)
	app.editor.Queue().Push(ev)
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	name := KeyName(key, scancode, mods)
	if name == "" {
		return
	}
	app.ClearLastError()
	if app.globalKeyMap.HandleKey(name) {
		return
	}
	app.push(bezier.KeyDown{Key: name})
}

// OnMouseButton receives the cursor position at the time of the click,
// which may precede any cursor movement callback.
func (app *App) OnMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, x, y float64) {
	if button != glfw.MouseButtonLeft {
		return
	}
	app.cursor = bezier.Pt(x, y)
	switch action {
	case glfw.Press:
		app.push(bezier.PointerDown{Pos: app.cursor})
	case glfw.Release:
		app.push(bezier.PointerUp{})
	}
}

func (app *App) OnCursorPos(x, y float64) {
	app.cursor = bezier.Pt(x, y)
	app.push(bezier.PointerMove{Pos: app.cursor})
}

func (app *App) OnScroll(xoff, yoff float64) {
	if yoff != 0 {
		app.push(bezier.WheelScroll{Delta: yoff})
	}
}

func (app *App) OnClose() {
	app.push(bezier.Quit{})
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Debug("OnFramebufferSize", "width", width, "height", height)
}

// pulse fades c in and out over time by scaling its alpha channel.
func pulse(c bezier.Color, t float64) bezier.Color {
	r, g, b, a := c.RGBA()
	k := 0.65 + 0.35*math.Sin(2*math.Pi*dragPulseRate*t)
	a = uint8(math.Round(float64(a) * k))
	return bezier.Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

func (app *App) statusLine() string {
	ed := app.editor
	store := ed.Store()
	degree := bezier.Degree(store.View())
	if degree < 0 {
		degree = 0
	}
	state := ed.State().String()
	if i, ok := ed.Dragged(); ok {
		state = fmt.Sprintf("dragging %d", i)
	}
	return fmt.Sprintf("points %d/%d  degree %d  %s  step %.3f  %s  %s",
		store.Len(), store.Cap(), degree, ed.Mode(), ed.Step(), store.Policy(), state)
}

var helpLines = []string{
	"click: add point / pick point   drag: move point",
	"wheel, Up/Down, PageUp/PageDown: sample step",
	"m, Tab: markers/polyline   c: clear   Backspace: delete last",
	"C-= C-- C-0: font size   F1: help   Escape, C-q: quit",
}

func (app *App) Render() error {
	running, err := app.editor.Frame(app.editor.Queue(), app.sink)
	if err != nil {
		logger.Warn("frame failed", "error", err)
		app.SetLastError(err)
	}
	if !running {
		app.sink.Clear()
		return nil
	}
	if err := app.sink.Flush(fbSize); err != nil {
		return err
	}
	lh := app.text.LineHeight()
	y := hudMargin
	app.text.DrawString(hudMargin, y, app.statusLine(), colorHudText)
	if app.showHelp {
		for _, line := range helpLines {
			y += lh
			app.text.DrawString(hudMargin, y, line, colorHudText)
		}
	}
	if err := app.lastError; err != nil {
		app.text.DrawString(hudMargin, fbSize.Y-lh-hudMargin, err.Error(), colorHudError)
	}
	return app.text.Render(fbSize)
}

func (app *App) Update() error {
	p := app.palette
	if _, ok := app.editor.Dragged(); ok {
		p.Dragged = pulse(p.Dragged, GetTime())
	}
	app.editor.SetPalette(p)
	return nil
}

func (app *App) Close() error {
	logger.Debug("Close")
	app.editor.Queue().Reset()
	if app.sink != nil {
		app.sink.Close()
	}
	if app.text != nil {
		app.text.Close()
	}
	return nil
}
