package main

import (
	_ "embed"
	"flag"
	"os"
	"path/filepath"

	"Gopher3DPickup/internal/behaviour"
	"Gopher3DPickup/internal/config"
	"Gopher3DPickup/internal/engine"
	"Gopher3DPickup/internal/input"
	"Gopher3DPickup/internal/input/glfwinput"
	"Gopher3DPickup/internal/interaction"
	"Gopher3DPickup/internal/logger"
	"Gopher3DPickup/internal/scene"
	"Gopher3DPickup/internal/ui"

	"go.uber.org/zap"

	// Import scripts package to register all scripts via init()
	_ "Gopher3DPickup/scripts"
)

//go:embed assets/scene.yaml
var defaultScene []byte

var (
	configPath = flag.String("config", "", "controller config file (YAML)")
	scenePath  = flag.String("scene", "", "scene file (YAML), the built-in demo scene when empty")
	windowed   = flag.Bool("window", false, "read live input from a GLFW window instead of the demo script")
	frames     = flag.Int("frames", 360, "frames to run headless")
	realtime   = flag.Bool("realtime", false, "pace headless frames against the wall clock")
)

func main() {
	flag.Parse()
	logger.Init()
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		logger.Log.Fatal("Could not load config", zap.Error(err))
	}

	cm := behaviour.GlobalComponentManager
	if err := loadScene(cm, cfg); err != nil {
		logger.Log.Fatal("Could not load scene", zap.Error(err))
	}

	ctrl := findController(cm)
	if ctrl == nil {
		logger.Log.Fatal("Scene has no PickUpScript")
	}
	ctrl.Config = cfg.Controller
	hud := ui.NewHUD()
	ctrl.HUD = hud

	gameEngine := engine.NewGopher(cm)
	gameEngine.FrameRate = cfg.FrameRate

	lastHUD := ""
	gameEngine.SetOnRenderCallback(func(deltaTime float64) {
		if *windowed && ctrl.Input == nil && gameEngine.GetWindow() != nil {
			ctrl.Input = glfwinput.NewSource(gameEngine.GetWindow(), glfwinput.KeyFromName(ctrl.Config.ActionKey))
		}
		if out := hud.Render(); out != lastHUD {
			logger.Log.Info("HUD", zap.String("hud", out), zap.Stringer("state", ctrl.State()))
			lastHUD = out
		}
	})

	if *windowed {
		if err := gameEngine.Render(-1, -1); err != nil {
			logger.Log.Fatal("Could not open window", zap.Error(err))
		}
	} else {
		ctrl.Input = demoScript(cfg.FrameRate)
		gameEngine.MaxFrames = *frames
		gameEngine.RunHeadless(*realtime)
	}

	report(cm, ctrl)
}

func loadConfig() (config.File, error) {
	path := *configPath
	if path == "" {
		path = findAsset("pickup.yaml")
	}
	if path == "" {
		logger.Log.Info("No config file found, using defaults")
		return config.Parse(nil)
	}
	logger.Log.Info("Loading config", zap.String("path", path))
	return config.Load(path)
}

func loadScene(cm *behaviour.ComponentManager, cfg config.File) error {
	path := *scenePath
	if path == "" {
		path = cfg.Scene
	}

	var (
		sd  *scene.SceneData
		err error
	)
	if path != "" {
		logger.Log.Info("Loading scene", zap.String("path", path))
		sd, err = scene.Load(path)
	} else {
		logger.Log.Info("No scene file given, using the built-in demo scene")
		sd, err = scene.Parse(defaultScene)
	}
	if err != nil {
		return err
	}
	_, err = scene.Build(cm, sd)
	return err
}

func findController(cm *behaviour.ComponentManager) *interaction.PickUpController {
	for _, obj := range cm.GetAllGameObjects() {
		if ctrl, ok := behaviour.FindComponent[*interaction.PickUpController](obj); ok {
			return ctrl
		}
	}
	return nil
}

// demoScript grabs whatever is in front of the player, turns it, then
// charges and throws it.
func demoScript(rate int) *input.Scripted {
	if rate <= 0 {
		rate = 60
	}
	src := input.NewScripted()
	src.Push(input.Repeat(input.Idle(), rate/4)...)
	// Tap: pick up, releasing early keeps holding
	src.Push(input.Press(), input.Release())
	src.Push(input.Repeat(input.Move(3, 0), rate/2)...)
	src.Push(input.Repeat(input.Move(0, -2), rate/4)...)
	// Press again to rearm, hold past the threshold and throw
	src.Push(input.Press())
	src.Push(input.Repeat(input.Hold(), rate*3/2)...)
	src.Push(input.Release())
	return src
}

func report(cm *behaviour.ComponentManager, ctrl *interaction.PickUpController) {
	for _, obj := range cm.GetAllGameObjects() {
		if !obj.HasAnyTag(ctrl.Config.PickUpTags...) {
			continue
		}
		pos := obj.Transform.WorldPosition()
		fields := []zap.Field{
			zap.String("object", obj.Name),
			zap.Float32s("position", pos[:]),
		}
		if body, ok := behaviour.FindComponent[*behaviour.RigidbodyComponent](obj); ok {
			fields = append(fields, zap.Float32s("velocity", body.Velocity[:]))
		}
		logger.Log.Info("Final state", fields...)
	}
	logger.Log.Info("Controller", zap.Stringer("state", ctrl.State()), zap.Float64("time", cm.Now()))
}

func findAsset(name string) string {
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	paths := []string{
		filepath.Join(exeDir, "assets", name),
		filepath.Join(exeDir, name),
		filepath.Join("assets", name),
		filepath.Join("runtime", "assets", name),
		name,
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
