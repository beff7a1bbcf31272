package glfwinput

import (
	"strings"

	"Gopher3DPickup/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Source samples the action key and cursor motion of a GLFW window.
// Call Poll after glfw.PollEvents on the main thread.
type Source struct {
	window      *glfw.Window
	key         glfw.Key
	Sensitivity float32
	wasDown     bool
	lastX       float64
	lastY       float64
	firstMouse  bool
}

func NewSource(window *glfw.Window, key glfw.Key) *Source {
	return &Source{
		window:      window,
		key:         key,
		Sensitivity: 0.1,
		firstMouse:  true,
	}
}

func (s *Source) Poll() input.Frame {
	var f input.Frame

	down := s.window.GetKey(s.key) == glfw.Press
	f.Action = input.Action{
		Pressed:  down && !s.wasDown,
		Held:     down,
		Released: !down && s.wasDown,
	}
	s.wasDown = down

	x, y := s.window.GetCursorPos()
	if s.firstMouse {
		s.lastX, s.lastY = x, y
		s.firstMouse = false
	}
	// Screen y grows downwards
	f.MouseX = float32(x-s.lastX) * s.Sensitivity
	f.MouseY = float32(s.lastY-y) * s.Sensitivity
	s.lastX, s.lastY = x, y

	return f
}

// KeyFromName maps a config key name ("E", "F", "Space") to a GLFW key.
// Unknown names fall back to E.
func KeyFromName(name string) glfw.Key {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) == 1 {
		c := name[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			// GLFW printable keys use their ASCII code
			return glfw.Key(c)
		}
	}
	switch name {
	case "SPACE":
		return glfw.KeySpace
	case "ENTER":
		return glfw.KeyEnter
	case "TAB":
		return glfw.KeyTab
	}
	return glfw.KeyE
}
