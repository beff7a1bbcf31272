package behaviour

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func addSphere(cm *ComponentManager, name string, pos mgl32.Vec3, radius float32) *GameObject {
	obj := NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(NewSphereColliderComponent(radius))
	cm.RegisterGameObject(obj)
	return obj
}

func TestRayIntersectSphere(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}

	hit, dist, point := RayIntersectSphere(ray, mgl32.Vec3{0, 0, -5}, 1)
	if !hit {
		t.Fatal("Expected hit")
	}
	if mgl32.Abs(dist-4) > 1e-5 {
		t.Errorf("Expected distance 4, got %v", dist)
	}
	if !vecNear(point, mgl32.Vec3{0, 0, -4}) {
		t.Errorf("Expected point (0,0,-4), got %v", point)
	}

	if hit, _, _ := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 5}, 1); hit {
		t.Error("Sphere behind the ray should not be hit")
	}
	if hit, _, _ := RayIntersectSphere(ray, mgl32.Vec3{3, 0, -5}, 1); hit {
		t.Error("Sphere beside the ray should not be hit")
	}
}

func TestRayIntersectSphereFromInside(t *testing.T) {
	ray := Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}}

	hit, dist, _ := RayIntersectSphere(ray, mgl32.Vec3{0, 0, 0}, 2)

	if !hit || mgl32.Abs(dist-2) > 1e-5 {
		t.Errorf("Expected exit hit at 2, got %v %v", hit, dist)
	}
}

func TestRaycastNearest(t *testing.T) {
	cm := NewComponentManager()
	far := addSphere(cm, "Far", mgl32.Vec3{0, 0, -6}, 0.5)
	near := addSphere(cm, "Near", mgl32.Vec3{0, 0, -3}, 0.5)

	hit, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 10)

	if !ok || hit.GameObject != near {
		t.Fatalf("Expected Near, got %+v", hit)
	}
	if mgl32.Abs(hit.Distance-2.5) > 1e-5 {
		t.Errorf("Expected distance 2.5, got %v", hit.Distance)
	}

	hit, ok = cm.Raycast(mgl32.Vec3{}, WorldForward, 10, near.UID)
	if !ok || hit.GameObject != far {
		t.Errorf("Ignoring Near should hit Far, got %+v", hit)
	}
}

func TestRaycastRange(t *testing.T) {
	cm := NewComponentManager()
	addSphere(cm, "Target", mgl32.Vec3{0, 0, -6}, 0.5)

	if _, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 5); ok {
		t.Error("Target beyond range should not be hit")
	}
	if _, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 5.5); !ok {
		t.Error("Target surface at range should be hit")
	}
	if _, ok := cm.Raycast(mgl32.Vec3{}, mgl32.Vec3{}, 10); ok {
		t.Error("Zero direction should not hit")
	}
}

func TestRaycastSkipsInactiveAndPlainObjects(t *testing.T) {
	cm := NewComponentManager()
	inactive := addSphere(cm, "Inactive", mgl32.Vec3{0, 0, -2}, 0.5)
	inactive.Active = false
	plain := NewGameObject("NoCollider")
	plain.Transform.Position = mgl32.Vec3{0, 0, -3}
	cm.RegisterGameObject(plain)
	disabled := addSphere(cm, "Disabled", mgl32.Vec3{0, 0, -4}, 0.5)
	collider, _ := FindComponent[*SphereColliderComponent](disabled)
	collider.SetEnabled(false)

	if hit, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 10); ok {
		t.Errorf("Expected no hit, got %s", hit.GameObject.Name)
	}
}

func TestRaycastUsesScaledRadius(t *testing.T) {
	cm := NewComponentManager()
	obj := addSphere(cm, "Big", mgl32.Vec3{1.5, 0, -5}, 0.5)

	if _, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 10); ok {
		t.Error("Unscaled sphere should be missed")
	}

	obj.Transform.Scale = mgl32.Vec3{1, 4, 1}

	if _, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 10); !ok {
		t.Error("Sphere scaled by its largest axis should be hit")
	}
}

func TestRaycastSkipsColliderContainingOrigin(t *testing.T) {
	cm := NewComponentManager()
	addSphere(cm, "Player", mgl32.Vec3{}, 0.4)
	target := addSphere(cm, "Target", mgl32.Vec3{0, 0, -3}, 0.5)

	hit, ok := cm.Raycast(mgl32.Vec3{}, WorldForward, 10)

	if !ok || hit.GameObject != target {
		t.Errorf("Expected Target past the enclosing collider, got %+v", hit)
	}
}
