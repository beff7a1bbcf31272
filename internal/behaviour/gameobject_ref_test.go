package behaviour

import "testing"

func TestObjectRefResolves(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Target")
	cm.RegisterGameObject(obj)

	ref := RefTo(obj)

	if !ref.IsValid() {
		t.Fatal("Ref to a live object should be valid")
	}
	if ref.Get(cm) != obj {
		t.Error("Ref should resolve to its object")
	}
}

func TestObjectRefStaleAfterDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Target")
	cm.RegisterGameObject(obj)
	ref := RefTo(obj)

	cm.UnregisterGameObject(obj)

	if !ref.IsValid() {
		t.Error("IsValid only reports that a UID is set")
	}
	if ref.Get(cm) != nil {
		t.Error("Stale ref should resolve to nil")
	}
}

func TestObjectRefEmpty(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("Other"))

	var ref ObjectRef
	if ref.IsValid() || ref.Get(cm) != nil {
		t.Error("Zero ref should be empty")
	}
	if RefTo(nil).IsValid() {
		t.Error("Ref to nil should be empty")
	}

	obj := NewGameObject("Target")
	cm.RegisterGameObject(obj)
	ref.Set(obj)
	ref.Clear()
	if ref.IsValid() {
		t.Error("Clear should empty the ref")
	}
	if ref.Get(nil) != nil {
		t.Error("Ref should not resolve without a scene")
	}
}
