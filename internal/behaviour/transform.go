package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World axes. Forward follows the OpenGL convention used by the camera.
var (
	WorldUp      = mgl32.Vec3{0, 1, 0}
	WorldRight   = mgl32.Vec3{1, 0, 0}
	WorldForward = mgl32.Vec3{0, 0, -1}
)

// Transform component
// Position and Rotation are local to Parent, or world space for roots.
// Scale is not inherited by children.
type Transform struct {
	BaseComponent
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Parent   *Transform
	Children []*Transform
}

// Transform methods
func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

// Rotate rotates around a local axis by angle radians
func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	rotation := mgl32.QuatRotate(angle, axis)
	t.Rotation = t.Rotation.Mul(rotation).Normalize()
}

// RotateWorld rotates around a world-space axis by the given degrees,
// independent of the current orientation or parent.
func (t *Transform) RotateWorld(axis mgl32.Vec3, degrees float32) {
	delta := mgl32.QuatRotate(mgl32.DegToRad(degrees), axis.Normalize())
	t.SetWorldRotation(delta.Mul(t.WorldRotation()))
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// LocalRotation is the rotation relative to the parent
func (t *Transform) LocalRotation() mgl32.Quat {
	return t.Rotation
}

func (t *Transform) SetLocalRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) WorldPosition() mgl32.Vec3 {
	if t.Parent == nil {
		return t.Position
	}
	return t.Parent.WorldPosition().Add(t.Parent.WorldRotation().Rotate(t.Position))
}

func (t *Transform) WorldRotation() mgl32.Quat {
	if t.Parent == nil {
		return t.Rotation
	}
	return t.Parent.WorldRotation().Mul(t.Rotation).Normalize()
}

func (t *Transform) SetWorldPosition(pos mgl32.Vec3) {
	if t.Parent == nil {
		t.Position = pos
		return
	}
	inv := t.Parent.WorldRotation().Inverse()
	t.Position = inv.Rotate(pos.Sub(t.Parent.WorldPosition()))
}

func (t *Transform) SetWorldRotation(rot mgl32.Quat) {
	if t.Parent == nil {
		t.Rotation = rot.Normalize()
		return
	}
	t.Rotation = t.Parent.WorldRotation().Inverse().Mul(rot).Normalize()
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.WorldRotation().Rotate(WorldForward)
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.WorldRotation().Rotate(WorldUp)
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.WorldRotation().Rotate(WorldRight)
}

// AttachTo parents t under parent and places it at the given local pose.
func (t *Transform) AttachTo(parent *Transform, localPos mgl32.Vec3, localRot mgl32.Quat) {
	if parent == nil || parent == t {
		return
	}
	t.unlink()
	t.Parent = parent
	parent.Children = append(parent.Children, t)
	t.Position = localPos
	t.Rotation = localRot
}

// Detach unparents t, keeping its current world pose.
func (t *Transform) Detach() {
	if t.Parent == nil {
		return
	}
	pos := t.WorldPosition()
	rot := t.WorldRotation()
	t.unlink()
	t.Position = pos
	t.Rotation = rot
}

func (t *Transform) unlink() {
	if t.Parent == nil {
		return
	}
	siblings := t.Parent.Children
	for i, child := range siblings {
		if child == t {
			t.Parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	t.Parent = nil
}
