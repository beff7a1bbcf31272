package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeScript    ComponentType = "Script"
	ComponentTypeRenderer  ComponentType = "Renderer"
	ComponentTypeCollider  ComponentType = "Collider"
	ComponentTypeRigidbody ComponentType = "Rigidbody"
	ComponentTypeData      ComponentType = "Data"
	ComponentTypeCustom    ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// Gravity applied to rigidbodies that use it
var Gravity = mgl32.Vec3{0, -9.81, 0}

// RigidbodyConstraints is a bit set of frozen degrees of freedom
type RigidbodyConstraints uint8

const (
	FreezeRotationX RigidbodyConstraints = 1 << iota
	FreezeRotationY
	FreezeRotationZ

	ConstraintsNone RigidbodyConstraints = 0
	FreezeRotation                       = FreezeRotationX | FreezeRotationY | FreezeRotationZ
)

// RigidbodyComponent is the physics body handle of an object.
// Integration is deliberately simple: gravity, linear drag and velocity.
// Bodies attached to a parent are carried by the hierarchy and not moved.
type RigidbodyComponent struct {
	BaseComponent
	Mass        float32              `yaml:"mass"`
	UseGravity  bool                 `yaml:"use_gravity"`
	Drag        float32              `yaml:"drag"`
	Constraints RigidbodyConstraints `yaml:"constraints"`
	Velocity    mgl32.Vec3           `yaml:"-"`
}

func NewRigidbodyComponent() *RigidbodyComponent {
	return &RigidbodyComponent{
		Mass:       1.0,
		UseGravity: true,
		Drag:       1.0,
	}
}

func (r *RigidbodyComponent) GetComponentType() ComponentType {
	return ComponentTypeRigidbody
}

func (r *RigidbodyComponent) GetTypeName() string {
	return "RigidbodyComponent"
}

func (r *RigidbodyComponent) GravityEnabled() bool { return r.UseGravity }

func (r *RigidbodyComponent) SetUseGravity(on bool) { r.UseGravity = on }

func (r *RigidbodyComponent) LinearDrag() float32 { return r.Drag }

func (r *RigidbodyComponent) SetDrag(drag float32) { r.Drag = drag }

func (r *RigidbodyComponent) RotationFrozen() bool {
	return r.Constraints&FreezeRotation == FreezeRotation
}

func (r *RigidbodyComponent) SetConstraints(c RigidbodyConstraints) { r.Constraints = c }

// ApplyImpulse adds an instantaneous change of momentum along direction
func (r *RigidbodyComponent) ApplyImpulse(direction mgl32.Vec3, magnitude float32) {
	if direction.Len() == 0 {
		return
	}
	mass := r.Mass
	if mass <= 0 {
		mass = 1
	}
	r.Velocity = r.Velocity.Add(direction.Normalize().Mul(magnitude / mass))
}

func (r *RigidbodyComponent) FixedUpdate() {
	obj := r.GetGameObject()
	if obj == nil || obj.scene == nil {
		return
	}
	dt := obj.scene.clock.FixedDeltaTime()
	if dt <= 0 {
		return
	}

	if r.UseGravity {
		r.Velocity = r.Velocity.Add(Gravity.Mul(dt))
	}
	damp := 1 - r.Drag*dt
	if damp < 0 {
		damp = 0
	}
	r.Velocity = r.Velocity.Mul(damp)

	if obj.Transform.Parent != nil {
		return
	}
	obj.Transform.Translate(r.Velocity.Mul(dt))
}

// SphereColliderComponent makes an object visible to raycasts
type SphereColliderComponent struct {
	BaseComponent
	Radius float32 `yaml:"radius"`
}

func NewSphereColliderComponent(radius float32) *SphereColliderComponent {
	return &SphereColliderComponent{Radius: radius}
}

func (s *SphereColliderComponent) GetComponentType() ComponentType {
	return ComponentTypeCollider
}

func (s *SphereColliderComponent) GetTypeName() string {
	return "SphereColliderComponent"
}

// WorldRadius scales the radius by the largest scale axis
func (s *SphereColliderComponent) WorldRadius() float32 {
	obj := s.GetGameObject()
	if obj == nil {
		return s.Radius
	}
	sc := obj.Transform.Scale
	m := sc.X()
	if sc.Y() > m {
		m = sc.Y()
	}
	if sc.Z() > m {
		m = sc.Z()
	}
	return s.Radius * m
}

// RendererComponent holds the material state scripts may tint
type RendererComponent struct {
	BaseComponent
	DiffuseColor    mgl32.Vec3 `yaml:"diffuse_color"`
	Emission        mgl32.Vec3 `yaml:"emission_color"`
	EmissionEnabled bool       `yaml:"-"`
}

func NewRendererComponent() *RendererComponent {
	return &RendererComponent{
		DiffuseColor: mgl32.Vec3{0.8, 0.8, 0.8},
	}
}

func (m *RendererComponent) GetComponentType() ComponentType {
	return ComponentTypeRenderer
}

func (m *RendererComponent) GetTypeName() string {
	return "RendererComponent"
}

func (m *RendererComponent) EmissionColor() mgl32.Vec3 {
	return m.Emission
}

// SetEmissionColor sets the emission color; black switches emission off
func (m *RendererComponent) SetEmissionColor(color mgl32.Vec3) {
	m.Emission = color
	m.EmissionEnabled = color != (mgl32.Vec3{})
}

// PickUpDataComponent carries per-object pick-up prompt text
type PickUpDataComponent struct {
	BaseComponent
	Text string `yaml:"text"`
}

func (p *PickUpDataComponent) GetComponentType() ComponentType {
	return ComponentTypeData
}

func (p *PickUpDataComponent) GetTypeName() string {
	return "PickUpDataComponent"
}

// ScriptComponent is a wrapper for user scripts to identify them as scripts
type ScriptComponent struct {
	BaseComponent
	ScriptName string
	Script     Component // The actual script implementation
}

func NewScriptComponent(scriptName string, script Component) *ScriptComponent {
	return &ScriptComponent{
		ScriptName: scriptName,
		Script:     script,
	}
}

func (s *ScriptComponent) GetComponentType() ComponentType {
	return ComponentTypeScript
}

func (s *ScriptComponent) GetTypeName() string {
	return s.ScriptName
}

func (s *ScriptComponent) Awake() {
	if s.Script != nil {
		s.Script.SetGameObject(s.GetGameObject())
		s.Script.SetEnabled(true)
		s.Script.Awake()
	}
}

func (s *ScriptComponent) Start() {
	if s.Script != nil {
		s.Script.Start()
	}
}

func (s *ScriptComponent) Update() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.Update()
	}
}

func (s *ScriptComponent) FixedUpdate() {
	if s.Script != nil && s.GetEnabled() {
		s.Script.FixedUpdate()
	}
}

func (s *ScriptComponent) OnDestroy() {
	if s.Script != nil {
		s.Script.OnDestroy()
	}
}

// Helper function to get component type name
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// Helper function to get component category
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}

// BuiltInComponents returns a list of built-in component types that can be added
func BuiltInComponents() []string {
	return []string{
		"RigidbodyComponent",
		"SphereColliderComponent",
		"RendererComponent",
		"PickUpDataComponent",
	}
}

// CreateBuiltInComponent creates a built-in component by name
func CreateBuiltInComponent(name string) Component {
	switch name {
	case "RigidbodyComponent":
		return NewRigidbodyComponent()
	case "SphereColliderComponent":
		return NewSphereColliderComponent(0.5)
	case "RendererComponent":
		return NewRendererComponent()
	case "PickUpDataComponent":
		return &PickUpDataComponent{}
	default:
		return nil
	}
}
