package behaviour

// ObjectLookup resolves UIDs to live objects. ComponentManager implements it.
type ObjectLookup interface {
	FindByUID(uid uint64) *GameObject
}

// ObjectRef is a weak reference to a GameObject by UID.
// The scene owns the object; a ref only remembers which one it was and
// resolves to nil once the object has been removed.
type ObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to obj (an empty one for nil)
func RefTo(obj *GameObject) ObjectRef {
	var r ObjectRef
	r.Set(obj)
	return r
}

// Get resolves the reference, returning nil if it is empty or stale
func (r ObjectRef) Get(scene ObjectLookup) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points to something.
// It does not check that the object still exists.
func (r ObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *ObjectRef) Set(obj *GameObject) {
	if obj == nil {
		r.UID = 0
	} else {
		r.UID = obj.UID
	}
}

func (r *ObjectRef) Clear() {
	r.UID = 0
}
