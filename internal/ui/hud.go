package ui

import (
	"fmt"
	"strings"

	"Gopher3DPickup/internal/logger"

	"go.uber.org/zap"
)

// Label is a single line of text that can be shown or hidden
type Label struct {
	Name    string
	Text    string
	Visible bool
}

func (l *Label) Show(text string) {
	if !l.Visible || l.Text != text {
		logger.Log.Debug("Label shown", zap.String("label", l.Name), zap.String("text", text))
	}
	l.Text = text
	l.Visible = true
}

func (l *Label) Hide() {
	if l.Visible {
		logger.Log.Debug("Label hidden", zap.String("label", l.Name))
	}
	l.Visible = false
}

// Slider is a progress bar whose value is always within [0, 1]
type Slider struct {
	Name    string
	Visible bool
	value   float32
}

func (s *Slider) Value() float32 {
	return s.value
}

// SetValue stores v clamped to [0, 1]
func (s *Slider) SetValue(v float32) {
	switch {
	case v != v: // NaN
		v = 0
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	s.value = v
}

func (s *Slider) Show() {
	if !s.Visible {
		logger.Log.Debug("Slider shown", zap.String("slider", s.Name))
	}
	s.Visible = true
}

func (s *Slider) Hide() {
	if s.Visible {
		logger.Log.Debug("Slider hidden", zap.String("slider", s.Name))
	}
	s.Visible = false
}

// HUD is the on-screen surface of the pick-up controller: a prompt label
// and a throw force slider.
type HUD struct {
	Prompt     *Label
	ThrowForce *Slider
}

func NewHUD() *HUD {
	return &HUD{
		Prompt:     &Label{Name: "PickUpPrompt"},
		ThrowForce: &Slider{Name: "ThrowForceSlider"},
	}
}

func (h *HUD) ShowPrompt(text string) { h.Prompt.Show(text) }

func (h *HUD) HidePrompt() { h.Prompt.Hide() }

func (h *HUD) ShowProgress() { h.ThrowForce.Show() }

func (h *HUD) HideProgress() { h.ThrowForce.Hide() }

func (h *HUD) SetProgress(v float32) { h.ThrowForce.SetValue(v) }

// Render draws the visible widgets as one text line, for terminals and logs
func (h *HUD) Render() string {
	var parts []string
	if h.Prompt.Visible {
		parts = append(parts, "["+h.Prompt.Text+"]")
	}
	if h.ThrowForce.Visible {
		const width = 20
		filled := int(h.ThrowForce.Value()*width + 0.5)
		bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
		parts = append(parts, fmt.Sprintf("[%s] %3.0f%%", bar, h.ThrowForce.Value()*100))
	}
	return strings.Join(parts, " ")
}
