package glfwinput

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyFromName(t *testing.T) {
	if k := KeyFromName("e"); k != glfw.KeyE {
		t.Errorf("Expected KeyE, got %v", k)
	}
	if k := KeyFromName("F"); k != glfw.KeyF {
		t.Errorf("Expected KeyF, got %v", k)
	}
	if k := KeyFromName("space"); k != glfw.KeySpace {
		t.Errorf("Expected KeySpace, got %v", k)
	}
	if k := KeyFromName("???"); k != glfw.KeyE {
		t.Errorf("Unknown names should fall back to KeyE, got %v", k)
	}
}
