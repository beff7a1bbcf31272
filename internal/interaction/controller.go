package interaction

import (
	"Gopher3DPickup/internal/behaviour"
	"Gopher3DPickup/internal/config"
	"Gopher3DPickup/internal/input"
	"Gopher3DPickup/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Probe answers ray queries against the scene
type Probe interface {
	Raycast(origin, direction mgl32.Vec3, maxDistance float32, ignore ...uint64) (behaviour.RaycastHit, bool)
}

// Clock is the frame clock the controller reads time from
type Clock interface {
	Now() float64
	DeltaTime() float32
}

// World is everything the controller needs from the scene.
// behaviour.ComponentManager implements it.
type World interface {
	Probe
	Clock
	behaviour.ObjectLookup
}

// Presenter shows the pick-up prompt and the throw force indicator
type Presenter interface {
	ShowPrompt(text string)
	HidePrompt()
	ShowProgress()
	HideProgress()
	SetProgress(v float32)
}

// Highlighter is implemented by components that can be tinted
type Highlighter interface {
	EmissionColor() mgl32.Vec3
	SetEmissionColor(color mgl32.Vec3)
}

// Body is the physics handle of a pickable object
type Body interface {
	SetUseGravity(on bool)
	SetDrag(drag float32)
	SetConstraints(c behaviour.RigidbodyConstraints)
	ApplyImpulse(direction mgl32.Vec3, magnitude float32)
}

// PickUpController lets its owner pick up, carry, rotate and throw
// tagged objects in front of it. Attach it to the camera/player object.
type PickUpController struct {
	behaviour.BaseComponent

	Config config.PickUpConfig `yaml:"config"`
	// HoldPointName names the anchor object when HoldPoint is not set directly
	HoldPointName string               `yaml:"hold_point"`
	HoldPoint     *behaviour.Transform `yaml:"-"`
	Input         input.Source         `yaml:"-"`
	HUD           Presenter            `yaml:"-"`
	// World defaults to the scene the owner is registered with
	World World `yaml:"-"`

	state     HoldState
	held      behaviour.ObjectRef
	candidate behaviour.ObjectRef

	// Emission captured before the candidate was highlighted
	savedEmission mgl32.Vec3
	highlighted   bool
}

func NewPickUpController(cfg config.PickUpConfig, holdPoint *behaviour.Transform, src input.Source, hud Presenter) *PickUpController {
	return &PickUpController{
		Config:    cfg,
		HoldPoint: holdPoint,
		Input:     src,
		HUD:       hud,
		state:     Idle{},
	}
}

func (c *PickUpController) Start() {
	if c.state == nil {
		c.state = Idle{}
	}
	if c.World == nil {
		if scene := c.Scene(); scene != nil {
			c.World = scene
		}
	}
}

// Update samples input and advances the controller by one frame
func (c *PickUpController) Update() {
	var frame input.Frame
	if c.Input != nil {
		frame = c.Input.Poll()
	}
	c.Step(frame)
}

// Step runs one frame of controller logic against an explicit input frame
func (c *PickUpController) Step(frame input.Frame) {
	if c.World == nil || c.GetGameObject() == nil {
		return
	}
	c.checkHeld()
	c.UpdateTarget()
	c.HandleAction(frame.Action)
	c.RotateHeld(frame.MouseX, frame.MouseY)
}

// State returns the current hold state
func (c *PickUpController) State() HoldState {
	if c.state == nil {
		return Idle{}
	}
	return c.state
}

// Held returns the held object, or nil
func (c *PickUpController) Held() *behaviour.GameObject {
	return c.held.Get(c.World)
}

// Candidate returns the object currently targeted, or nil
func (c *PickUpController) Candidate() *behaviour.GameObject {
	return c.candidate.Get(c.World)
}

// Force is the throw force a release would apply now
func (c *PickUpController) Force() float32 {
	if s, ok := c.state.(Charging); ok {
		return s.Force
	}
	return c.Config.MinThrowForce
}

// Progress maps a force onto [0, 1] for the charge indicator
func (c *PickUpController) Progress(force float32) float32 {
	span := c.Config.MaxThrowForce - c.Config.MinThrowForce
	if span <= 0 {
		return 1
	}
	return mgl32.Clamp((force-c.Config.MinThrowForce)/span, 0, 1)
}

// UpdateTarget casts the forward ray and moves the highlight and prompt
// to whatever pickable object it hits this frame.
func (c *PickUpController) UpdateTarget() {
	var next *behaviour.GameObject
	owner := c.GetGameObject()
	origin := owner.Transform
	hit, ok := c.World.Raycast(origin.WorldPosition(), origin.Forward(), c.Config.PickUpRange, c.probeIgnores(owner)...)
	if ok && hit.GameObject.HasAnyTag(c.Config.PickUpTags...) {
		next = hit.GameObject
	}

	if c.candidate.UID == behaviour.RefTo(next).UID {
		return
	}

	c.clearCandidate()
	if next == nil {
		return
	}

	c.candidate.Set(next)
	if h, ok := behaviour.FindComponent[Highlighter](next); ok {
		c.savedEmission = h.EmissionColor()
		c.highlighted = true
		h.SetEmissionColor(mgl32.Vec3(c.Config.HighlightColor))
	}
	c.showPrompt(next)
}

// probeIgnores lists the objects the forward ray passes through: the
// owner, the hold anchor and whatever sits on it.
func (c *PickUpController) probeIgnores(owner *behaviour.GameObject) []uint64 {
	ignore := []uint64{owner.UID}
	if c.held.IsValid() {
		ignore = append(ignore, c.held.UID)
	}
	if c.HoldPoint != nil {
		if anchor := c.HoldPoint.GetGameObject(); anchor != nil {
			ignore = append(ignore, anchor.UID)
		}
	}
	return ignore
}

func (c *PickUpController) clearCandidate() {
	if !c.candidate.IsValid() {
		return
	}
	if prev := c.candidate.Get(c.World); prev != nil && c.highlighted {
		if h, ok := behaviour.FindComponent[Highlighter](prev); ok {
			h.SetEmissionColor(c.savedEmission)
		}
	}
	c.highlighted = false
	c.candidate.Clear()
	if c.HUD != nil {
		c.HUD.HidePrompt()
	}
}

func (c *PickUpController) showPrompt(obj *behaviour.GameObject) {
	if c.HUD == nil {
		return
	}
	text := c.Config.DefaultPromptText
	if data, ok := behaviour.FindComponent[*behaviour.PickUpDataComponent](obj); ok && data.Text != "" {
		text = data.Text
	}
	c.HUD.ShowPrompt(text)
}

// HandleAction applies one frame of action key edges to the state machine
func (c *PickUpController) HandleAction(a input.Action) {
	if a.Pressed {
		c.press()
	}
	if a.Held {
		c.charge()
	}
	if a.Released {
		c.release()
	}
}

func (c *PickUpController) press() {
	now := c.World.Now()
	switch s := c.State().(type) {
	case Idle:
		if target := c.Candidate(); target != nil {
			c.PickUp(target)
		}
	case Waiting:
		c.setState(Waiting{Since: now})
	case Charging:
		c.setState(Charging{Since: now, Force: s.Force})
	}
}

func (c *PickUpController) charge() {
	switch s := c.State().(type) {
	case Idle:
	case Waiting:
		if c.World.Now()-s.Since > float64(c.Config.ChargeDuration) {
			c.setState(Charging{Since: s.Since, Force: c.Config.MinThrowForce})
		}
	case Charging:
		span := c.Config.MaxThrowForce - c.Config.MinThrowForce
		s.Force = mgl32.Clamp(s.Force+c.World.DeltaTime()*span, c.Config.MinThrowForce, c.Config.MaxThrowForce)
		c.state = s
		if c.HUD != nil {
			c.HUD.SetProgress(c.Progress(s.Force))
		}
	}
}

func (c *PickUpController) release() {
	switch c.State().(type) {
	case Idle, Waiting:
		// Released before the threshold: keep holding
	case Charging:
		if !c.Throw() {
			// Body went away mid-charge: stop charging, keep holding
			c.setState(Waiting{Since: c.World.Now()})
			if c.HUD != nil {
				c.HUD.HideProgress()
			}
		}
	}
}

// PickUp grabs obj if nothing is held, obj is the current candidate and
// it has a physics body.
func (c *PickUpController) PickUp(obj *behaviour.GameObject) bool {
	if obj == nil || IsHolding(c.State()) {
		return false
	}
	if !c.candidate.IsValid() || obj.UID != c.candidate.UID {
		logger.Log.Debug("Pick up ignored, object is not targeted", zap.String("object", obj.Name))
		return false
	}
	body, ok := behaviour.FindComponent[Body](obj)
	if !ok {
		logger.Log.Debug("Pick up ignored, object has no body", zap.String("object", obj.Name))
		return false
	}

	body.SetUseGravity(false)
	body.SetDrag(c.Config.HoldDamping)
	body.SetConstraints(behaviour.FreezeRotation)
	if anchor := c.holdPoint(); anchor != nil {
		obj.Transform.AttachTo(anchor, mgl32.Vec3{}, mgl32.QuatIdent())
	}

	c.held.Set(obj)
	c.setState(Waiting{Since: c.World.Now()})
	if c.HUD != nil {
		c.HUD.ShowProgress()
		c.HUD.SetProgress(0)
	}
	logger.Log.Debug("Picked up object", zap.String("object", obj.Name), zap.Uint64("uid", obj.UID))
	return true
}

func (c *PickUpController) holdPoint() *behaviour.Transform {
	if c.HoldPoint != nil || c.HoldPointName == "" {
		return c.HoldPoint
	}
	if scene := c.Scene(); scene != nil {
		if anchor := scene.FindGameObject(c.HoldPointName); anchor != nil {
			c.HoldPoint = anchor.Transform
		}
	}
	if c.HoldPoint == nil {
		logger.Log.Warn("Hold point not found", zap.String("name", c.HoldPointName))
	}
	return c.HoldPoint
}

// Throw releases the held object with an impulse along the controller's
// forward axis scaled by the current charge.
func (c *PickUpController) Throw() bool {
	obj := c.Held()
	if obj == nil {
		return false
	}
	body, ok := behaviour.FindComponent[Body](obj)
	if !ok {
		return false
	}

	force := c.Force()
	c.restoreBody(obj, body)
	body.ApplyImpulse(c.GetGameObject().Transform.Forward(), force)
	c.letGo()
	logger.Log.Debug("Threw object", zap.String("object", obj.Name), zap.Float32("force", force))
	return true
}

// Drop releases the held object without any impulse
func (c *PickUpController) Drop() bool {
	obj := c.Held()
	if obj == nil {
		return false
	}
	body, ok := behaviour.FindComponent[Body](obj)
	if !ok {
		return false
	}

	c.restoreBody(obj, body)
	c.letGo()
	logger.Log.Debug("Dropped object", zap.String("object", obj.Name))
	return true
}

func (c *PickUpController) restoreBody(obj *behaviour.GameObject, body Body) {
	obj.Transform.Detach()
	body.SetUseGravity(true)
	body.SetDrag(c.Config.DefaultDamping)
	body.SetConstraints(behaviour.ConstraintsNone)
}

func (c *PickUpController) letGo() {
	c.held.Clear()
	c.setState(Idle{})
	if c.HUD != nil {
		c.HUD.HideProgress()
	}
}

// checkHeld returns to Idle when the held object left the scene
func (c *PickUpController) checkHeld() {
	if !IsHolding(c.State()) || c.Held() != nil {
		return
	}
	logger.Log.Warn("Held object disappeared, releasing", zap.Uint64("uid", c.held.UID))
	c.letGo()
}

// RotateHeld spins the held object from pointer motion: horizontal motion
// turns it about world up, vertical motion about world right.
func (c *PickUpController) RotateHeld(mouseX, mouseY float32) {
	obj := c.Held()
	if obj == nil || (mouseX == 0 && mouseY == 0) {
		return
	}
	dt := c.World.DeltaTime()
	rx := mouseX * c.Config.RotationSpeed * dt
	ry := mouseY * c.Config.RotationSpeed * dt

	obj.Transform.RotateWorld(behaviour.WorldUp, -rx)
	obj.Transform.RotateWorld(behaviour.WorldRight, ry)
}

func (c *PickUpController) setState(s HoldState) {
	if c.state != nil && c.state.String() != s.String() {
		logger.Log.Debug("Hold state changed", zap.Stringer("from", c.state), zap.Stringer("to", s))
	}
	c.state = s
}
