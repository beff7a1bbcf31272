package behaviour

import (
	"testing"
)

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
}

func TestComponentManagerUnregister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)
	cm.UnregisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Expected 0 objects after unregister, got %d", len(all))
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
}

func TestComponentManagerFixedUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll(0.02)

	if !comp.fixedCalled {
		t.Error("FixedUpdate() was not called on component")
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found == nil {
		t.Error("FindGameObject should find registered object")
	}
	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
}

func TestComponentManagerFindGameObjectNotFound(t *testing.T) {
	cm := NewComponentManager()

	found := cm.FindGameObject("NotHere")

	if found != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}

func TestComponentManagerFindByUID(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	cm.RegisterGameObject(obj)

	if cm.FindByUID(obj.UID) != obj {
		t.Error("FindByUID should find registered object")
	}
	if cm.FindByUID(0) != nil {
		t.Error("UID 0 should never resolve")
	}

	cm.DestroyGameObject(obj)
	cm.UpdateAll(0.016)

	if cm.FindByUID(obj.UID) != nil {
		t.Error("Destroyed object should no longer resolve")
	}
	if obj.Scene() != nil {
		t.Error("Destroyed object should not keep its scene")
	}
}

func TestComponentManagerFindGameObjectsWithTag(t *testing.T) {
	cm := NewComponentManager()
	a := NewGameObject("A")
	a.Tag = "Box"
	b := NewGameObject("B")
	b.Tag = "PickUp"
	c := NewGameObject("C")
	c.Tag = "Box"
	cm.RegisterGameObject(a)
	cm.RegisterGameObject(b)
	cm.RegisterGameObject(c)

	boxes := cm.FindGameObjectsWithTag("Box")

	if len(boxes) != 2 || boxes[0] != a || boxes[1] != c {
		t.Errorf("Expected A and C, got %v", boxes)
	}
}

func TestComponentManagerClock(t *testing.T) {
	cm := NewComponentManager()

	cm.UpdateAll(0.5)
	cm.UpdateAll(0.25)
	cm.UpdateAll(-1)

	if cm.Now() != 0.75 {
		t.Errorf("Expected time 0.75, got %v", cm.Now())
	}
	if cm.DeltaTime() != 0 {
		t.Errorf("Negative delta should clamp to 0, got %v", cm.DeltaTime())
	}
	if cm.Clock().Frame() != 3 {
		t.Errorf("Expected 3 frames, got %d", cm.Clock().Frame())
	}

	cm.Clear()

	if cm.Now() != 0 {
		t.Errorf("Clear should reset the clock, got %v", cm.Now())
	}
}

func TestComponentManagerRegisterSetsScene(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	cm.RegisterGameObject(obj)

	if !comp.startCalled {
		t.Error("Start() was not called on register")
	}
	if comp.Scene() != cm {
		t.Error("Component should see the scene it was registered with")
	}
}
