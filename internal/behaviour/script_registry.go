package behaviour

import "sort"

type ScriptConstructor func() Component

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

// GetAvailableScripts returns registered script names in sorted order
func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CreateScript(name string) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor()
	}
	return nil
}

// AttachScript creates the named script and adds it to obj wrapped in a
// ScriptComponent. It returns nil when no such script is registered.
func AttachScript(obj *GameObject, name string) *ScriptComponent {
	script := CreateScript(name)
	if script == nil {
		return nil
	}
	sc := NewScriptComponent(name, script)
	obj.AddComponent(sc)
	return sc
}
