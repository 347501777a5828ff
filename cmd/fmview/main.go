// Command fmview opens a scene in a window and edits it with the scene graph
// panel and keyboard shortcuts.
//
//	fmview [-config fullmetal.yaml] [-v] [scene.json]
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/pkg/errors"

	"fullmetal/assets"
	"fullmetal/config"
	"fullmetal/core"
	"fullmetal/editor"
	"fullmetal/gui"
	"fullmetal/opengl"
	"fullmetal/platform"
	"fullmetal/scene"
	"fullmetal/sceneio"
)

var skyColor = core.RGB(0.12, 0.13, 0.16)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()

	if err := run(*configPath, *verbose, flag.Arg(0)); err != nil {
		slog.Error("fmview failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool, scenePath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if scenePath != "" {
		cfg.Scene = scenePath
	}
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cache := assets.NewCache(cfg.AssetRoot)
	table := sceneio.NewDefaultTable(cache)

	window, err := platform.NewWindow(platform.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer(cache)
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	ed := editor.New(scene.NewGraph(), table, cfg.Scene, editor.Bindings{
		Delete:        platform.KeyDelete,
		Clone:         platform.KeyD,
		Save:          platform.KeyS,
		SelectNext:    platform.KeyTab,
		ToggleEnabled: platform.KeyE,
		AddNode:       platform.KeyN,
		PrevType:      platform.KeyLeft,
		NextType:      platform.KeyRight,
		MoveUp:        platform.KeyUp,
		MoveDown:      platform.KeyDown,
		Rotate:        platform.KeyR,
		OrbitButton:   platform.MouseRight,
	})
	if err := ed.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		slog.Info("no scene file, starting from the demo scene", "path", cfg.Scene)
		ed.Graph = demoScene()
	}

	imguiContext := imgui.CreateContext(nil)
	defer imguiContext.Destroy()
	io := imgui.CurrentIO()
	guiPlatform := gui.NewPlatform(io, window)
	guiRenderer := gui.NewRenderer(io)
	defer guiRenderer.Destroy()
	graphWindow := gui.NewGraphWindow()

	input := platform.NewInputManager(window)
	hud := &DebugOverlay{}
	frames, lastTitle := 0, time.Now()

	for !window.ShouldClose() {
		window.PollEvents()
		input.Update()

		guiPlatform.NewFrame(input)
		imgui.NewFrame()
		graphWindow.Draw(ed)

		edInput := gui.Uncaptured(input, io)
		if edInput.IsKeyPressed(platform.KeyEscape) {
			window.Close()
		}
		ed.Update(edInput)

		width, height := window.GetFramebufferSize()
		renderer.SetViewport(width, height)
		ed.Camera.UpdateAspectRatio(width, height)
		renderer.BeginFrame(ed.Camera.ViewMatrix(), ed.Camera.ProjectionMatrix(), skyColor)
		ed.Render(renderer)
		imgui.Render()
		guiRenderer.Render(guiPlatform.DisplaySize(), guiPlatform.FramebufferSize(), imgui.RenderedDrawData())
		window.SwapBuffers()
		input.EndFrame()

		frames++
		if now := time.Now(); now.Sub(lastTitle) >= time.Second {
			hud.Clear()
			hud.AddLine("%s", cfg.Window.Title)
			hud.AddLine("FPS: %d", frames)
			hud.AddLine("Nodes: %d", ed.Graph.NodeCount())
			hud.AddLine("Models: %d", cache.ModelCount())
			hud.AddLine("New: %s", ed.CurrentType())
			hud.AddLine("%s", ed.StatusText)
			window.SetTitle(hud.Title())
			frames, lastTitle = 0, now
		}
	}

	slog.Info("exiting")
	return nil
}
