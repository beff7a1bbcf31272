package behaviour

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for all components
// Components can be attached to game objects
type Component interface {
	// Lifecycle methods
	Awake()       // Called when component is first attached
	Start()       // Called once the owning object joins a scene
	Update()      // Called every frame
	FixedUpdate() // Called at fixed time intervals
	OnDestroy()   // Called when component/object is destroyed

	// Component info
	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides default implementations for all Component methods
// User scripts can embed this to only override methods they need
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()       {}
func (c *BaseComponent) Start()       {}
func (c *BaseComponent) Update()      {}
func (c *BaseComponent) FixedUpdate() {}
func (c *BaseComponent) OnDestroy()   {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// Scene returns the manager the owning object is registered with, or nil.
func (c *BaseComponent) Scene() *ComponentManager {
	if c.gameObject == nil {
		return nil
	}
	return c.gameObject.scene
}

var lastUID uint64

// GameObject represents an object in the scene.
// UID is unique for the process lifetime and is what ObjectRef resolves.
type GameObject struct {
	UID        uint64
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	scene      *ComponentManager
}

// NewGameObject creates an active object with an identity transform
func NewGameObject(name string) *GameObject {
	obj := &GameObject{
		UID:        atomic.AddUint64(&lastUID, 1),
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform: &Transform{
			Position: mgl32.Vec3{0, 0, 0},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{1, 1, 1},
		},
	}
	obj.Transform.SetGameObject(obj)
	return obj
}

// HasTag reports whether the object carries the given tag
func (obj *GameObject) HasTag(tag string) bool {
	return obj.Tag == tag
}

// HasAnyTag reports whether the object carries one of the tags
func (obj *GameObject) HasAnyTag(tags ...string) bool {
	for _, tag := range tags {
		if obj.Tag == tag {
			return true
		}
	}
	return false
}

// Scene returns the manager this object is registered with, or nil
func (obj *GameObject) Scene() *ComponentManager {
	return obj.scene
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	component.Awake()
}

// GetComponent returns the first component whose type name matches
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

func (obj *GameObject) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			result = append(result, comp)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			return
		}
	}
}

// FindComponent returns the first component on obj assignable to T.
// T may be a concrete pointer type or an interface (capability lookup).
func FindComponent[T any](obj *GameObject) (T, bool) {
	var zero T
	if obj == nil {
		return zero, false
	}
	for _, comp := range obj.Components {
		if c, ok := comp.(T); ok {
			return c, true
		}
		// Scripts are wrapped, look through the wrapper as well
		if sc, ok := comp.(*ScriptComponent); ok && sc.Script != nil {
			if c, ok := sc.Script.(T); ok {
				return c, true
			}
		}
	}
	return zero, false
}

func (obj *GameObject) internalUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update()
		}
	}
}

func (obj *GameObject) internalFixedUpdate() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate()
		}
	}
}

func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Start()
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Transform.Detach()
	for len(obj.Transform.Children) > 0 {
		obj.Transform.Children[0].Detach()
	}
	obj.Active = false
	obj.scene = nil
}
