package scene

import (
	"fmt"
	"os"

	"Gopher3DPickup/internal/behaviour"
	"Gopher3DPickup/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Scene data structures (YAML on disk)
type SceneData struct {
	GameObjects []SceneGameObject `yaml:"game_objects"`
}

type SceneGameObject struct {
	Name       string           `yaml:"name"`
	Tag        string           `yaml:"tag,omitempty"`
	Parent     string           `yaml:"parent,omitempty"`
	Inactive   bool             `yaml:"inactive,omitempty"`
	Position   [3]float32       `yaml:"position"`
	Rotation   [3]float32       `yaml:"rotation"` // Euler degrees, applied X then Y then Z
	Scale      *[3]float32      `yaml:"scale,omitempty"`
	Components []SceneComponent `yaml:"components,omitempty"`
}

// SceneComponent is either a built-in component (Type) or a registered
// script (Type "Script" plus Script). Properties are decoded straight into
// the component's yaml-tagged fields.
type SceneComponent struct {
	Type       string    `yaml:"type"`
	Script     string    `yaml:"script,omitempty"`
	Properties yaml.Node `yaml:"properties,omitempty"`
}

func Parse(data []byte) (*SceneData, error) {
	var sd SceneData
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &sd, nil
}

func Load(path string) (*SceneData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	sd, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return sd, nil
}

// Build creates the scene's objects and registers them with cm in file
// order. Parents must appear before their children.
func Build(cm *behaviour.ComponentManager, sd *SceneData) ([]*behaviour.GameObject, error) {
	byName := make(map[string]*behaviour.GameObject, len(sd.GameObjects))
	objects := make([]*behaviour.GameObject, 0, len(sd.GameObjects))

	for _, so := range sd.GameObjects {
		obj, err := buildObject(so)
		if err != nil {
			return nil, err
		}
		if so.Parent != "" {
			parent, ok := byName[so.Parent]
			if !ok {
				return nil, fmt.Errorf("object %q: unknown parent %q", so.Name, so.Parent)
			}
			obj.Transform.AttachTo(parent.Transform, obj.Transform.Position, obj.Transform.Rotation)
		}
		byName[so.Name] = obj
		objects = append(objects, obj)
	}

	for _, obj := range objects {
		cm.RegisterGameObject(obj)
	}
	logger.Log.Info("Scene built", zap.Int("objects", len(objects)))
	return objects, nil
}

func buildObject(so SceneGameObject) (*behaviour.GameObject, error) {
	obj := behaviour.NewGameObject(so.Name)
	obj.Tag = so.Tag
	obj.Active = !so.Inactive
	obj.Transform.Position = mgl32.Vec3(so.Position)
	obj.Transform.Rotation = mgl32.AnglesToQuat(
		mgl32.DegToRad(so.Rotation[0]),
		mgl32.DegToRad(so.Rotation[1]),
		mgl32.DegToRad(so.Rotation[2]),
		mgl32.XYZ,
	)
	if so.Scale != nil {
		obj.Transform.Scale = mgl32.Vec3(*so.Scale)
	}

	for _, sc := range so.Components {
		comp, err := buildComponent(sc)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", so.Name, err)
		}
		obj.AddComponent(comp)
	}
	return obj, nil
}

func buildComponent(sc SceneComponent) (behaviour.Component, error) {
	var comp behaviour.Component
	var target any

	if sc.Type == "Script" {
		script := behaviour.CreateScript(sc.Script)
		if script == nil {
			return nil, fmt.Errorf("unknown script %q", sc.Script)
		}
		comp = behaviour.NewScriptComponent(sc.Script, script)
		target = script
	} else {
		comp = behaviour.CreateBuiltInComponent(sc.Type)
		if comp == nil {
			return nil, fmt.Errorf("unknown component type %q", sc.Type)
		}
		target = comp
	}

	if !sc.Properties.IsZero() {
		if err := sc.Properties.Decode(target); err != nil {
			return nil, fmt.Errorf("component %s: %w", componentLabel(sc), err)
		}
	}

	// Keep derived renderer state in sync with the decoded color
	if r, ok := comp.(*behaviour.RendererComponent); ok {
		r.SetEmissionColor(r.Emission)
	}
	return comp, nil
}

func componentLabel(sc SceneComponent) string {
	if sc.Type == "Script" {
		return sc.Script
	}
	return sc.Type
}
