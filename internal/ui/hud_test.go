package ui

import (
	"math"
	"strings"
	"testing"
)

func TestSliderClampsValue(t *testing.T) {
	s := &Slider{}

	s.SetValue(1.5)
	if s.Value() != 1 {
		t.Errorf("Expected 1, got %v", s.Value())
	}

	s.SetValue(-0.2)
	if s.Value() != 0 {
		t.Errorf("Expected 0, got %v", s.Value())
	}

	s.SetValue(float32(math.NaN()))
	if s.Value() != 0 {
		t.Errorf("NaN should clamp to 0, got %v", s.Value())
	}

	s.SetValue(0.25)
	if s.Value() != 0.25 {
		t.Errorf("Expected 0.25, got %v", s.Value())
	}
}

func TestLabelShowHide(t *testing.T) {
	l := &Label{Name: "Prompt"}

	l.Show("Press E")
	if !l.Visible || l.Text != "Press E" {
		t.Errorf("Expected visible label with text, got %+v", l)
	}

	l.Hide()
	if l.Visible {
		t.Error("Label should be hidden")
	}
}

func TestHUDRender(t *testing.T) {
	h := NewHUD()

	if h.Render() != "" {
		t.Errorf("Empty HUD should render nothing, got %q", h.Render())
	}

	h.ShowPrompt("Grab crate")
	h.ShowProgress()
	h.SetProgress(0.5)

	out := h.Render()
	if !strings.Contains(out, "[Grab crate]") {
		t.Errorf("Expected prompt in output, got %q", out)
	}
	if !strings.Contains(out, " 50%") {
		t.Errorf("Expected 50%% progress in output, got %q", out)
	}
}
