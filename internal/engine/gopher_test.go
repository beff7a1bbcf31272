package engine

import (
	"math"
	"testing"

	"Gopher3DPickup/internal/behaviour"
)

type countingComponent struct {
	behaviour.BaseComponent
	updates int
	fixed   int
}

func (c *countingComponent) Update()      { c.updates++ }
func (c *countingComponent) FixedUpdate() { c.fixed++ }

func TestRunHeadless(t *testing.T) {
	cm := behaviour.NewComponentManager()
	obj := behaviour.NewGameObject("Counter")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	g := NewGopher(cm)
	g.FrameRate = 50
	g.MaxFrames = 10

	callbacks := 0
	g.SetOnRenderCallback(func(deltaTime float64) { callbacks++ })
	g.RunHeadless(false)

	if g.Frames() != 10 {
		t.Errorf("Expected 10 frames, got %d", g.Frames())
	}
	if comp.updates != 10 {
		t.Errorf("Expected 10 updates, got %d", comp.updates)
	}
	if callbacks != 10 {
		t.Errorf("Expected 10 callbacks, got %d", callbacks)
	}
	// Fixed updates on frames 3, 5, 7 and 9
	if comp.fixed != 4 {
		t.Errorf("Expected 4 fixed updates, got %d", comp.fixed)
	}
	if math.Abs(cm.Now()-0.2) > 1e-5 {
		t.Errorf("Expected scene time 0.2, got %v", cm.Now())
	}
}

func TestStepAccumulatesFixedDelta(t *testing.T) {
	cm := behaviour.NewComponentManager()
	g := NewGopher(cm)

	g.Step(0.01)
	g.Step(0.01)
	g.Step(0.01)

	if got := cm.Clock().FixedDeltaTime(); math.Abs(float64(got)-0.03) > 1e-5 {
		t.Errorf("Expected fixed delta 0.03, got %v", got)
	}
}

func TestNewGopherDefaultsToGlobalScene(t *testing.T) {
	g := NewGopher(nil)

	if g.Scene != behaviour.GlobalComponentManager {
		t.Error("Expected global component manager")
	}
	if g.GetWindow() != nil {
		t.Error("No window should exist before Render")
	}
}
