package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyNames = map[glfw.Key]string{
	glfw.KeySpace:     "Space",
	glfw.KeyEscape:    "Escape",
	glfw.KeyEnter:     "Enter",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyInsert:    "Insert",
	glfw.KeyDelete:    "Delete",
	glfw.KeyRight:     "Right",
	glfw.KeyLeft:      "Left",
	glfw.KeyDown:      "Down",
	glfw.KeyUp:        "Up",
	glfw.KeyPageUp:    "PageUp",
	glfw.KeyPageDown:  "PageDown",
	glfw.KeyHome:      "Home",
	glfw.KeyEnd:       "End",
	glfw.KeyF1:        "F1",
	glfw.KeyF2:        "F2",
	glfw.KeyF3:        "F3",
	glfw.KeyF4:        "F4",
	glfw.KeyF5:        "F5",
	glfw.KeyF6:        "F6",
	glfw.KeyF7:        "F7",
	glfw.KeyF8:        "F8",
	glfw.KeyF9:        "F9",
	glfw.KeyF10:       "F10",
	glfw.KeyF11:       "F11",
	glfw.KeyF12:       "F12",
}

// KeyName turns a glfw key press into the notation used by key maps:
// "C-", "M-" and "S-" prefixes followed by the key name. Modifier keys on
// their own and keys without a name yield "".
func KeyName(key glfw.Key, scancode int, mods glfw.ModifierKey) string {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return ""
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return ""
	}
	name, ok := keyNames[key]
	if !ok {
		name = glfw.GetKeyName(key, scancode)
	}
	if name == "" {
		return ""
	}
	if mods&glfw.ModShift != 0 {
		name = "S-" + name
	}
	if mods&glfw.ModAlt != 0 {
		name = "M-" + name
	}
	if mods&glfw.ModControl != 0 {
		name = "C-" + name
	}
	return name
}
