package behaviour

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
	clock       FrameClock
}

var GlobalComponentManager = NewComponentManager()

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	obj.scene = cm
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			obj.Destroy()
			return
		}
	}
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindByUID resolves a UID to a live GameObject, or nil if it is gone
func (cm *ComponentManager) FindByUID(uid uint64) *GameObject {
	if uid == 0 {
		return nil
	}
	for _, obj := range cm.gameObjects {
		if obj.UID == uid {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// Now is the scene time in seconds at the start of the current frame
func (cm *ComponentManager) Now() float64 {
	return cm.clock.Now()
}

// DeltaTime is the duration of the current frame in seconds
func (cm *ComponentManager) DeltaTime() float32 {
	return cm.clock.DeltaTime()
}

// Clock exposes the scene clock
func (cm *ComponentManager) Clock() *FrameClock {
	return &cm.clock
}

// UpdateAll advances the clock by deltaTime and calls Update on all active GameObjects
func (cm *ComponentManager) UpdateAll(deltaTime float32) {
	cm.clock.Advance(deltaTime)

	// Process destroyed objects
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalUpdate()
		}
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll(fixedDelta float32) {
	cm.clock.fixedDelta = fixedDelta
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalFixedUpdate()
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
	cm.clock = FrameClock{}
}
