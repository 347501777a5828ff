// Command fmscene inspects and converts scene files without opening a
// window.
//
//	fmscene [-assets dir] [-v] types
//	fmscene [-assets dir] [-v] inspect scene.json
//	fmscene [-assets dir] [-v] dump scene.json
//	fmscene [-assets dir] [-v] convert in.json out.json
//	fmscene [-assets dir] [-v] new scene.json
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"fullmetal/assets"
	"fullmetal/core"
	"fullmetal/inspect"
	"fullmetal/nodetype"
	"fullmetal/scene"
	"fullmetal/sceneio"
)

var errUsage = errors.New("usage: fmscene [-assets dir] [-v] types | inspect FILE | dump FILE | convert IN OUT | new FILE")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("fmscene", flag.ContinueOnError)
	flags.SetOutput(stderr)
	assetRoot := flags.String("assets", "", "directory relative model paths are resolved against")
	verbose := flags.Bool("v", false, "log at debug level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	table := sceneio.NewDefaultTable(assets.NewCache(*assetRoot))
	cmd, rest := flags.Arg(0), flags.Args()
	if len(rest) > 0 {
		rest = rest[1:]
	}

	switch {
	case cmd == "types" && len(rest) == 0:
		for _, id := range table.IDs() {
			fmt.Fprintln(stdout, id)
		}
		return nil
	case cmd == "inspect" && len(rest) == 1:
		return inspectFile(stdout, rest[0], table)
	case cmd == "dump" && len(rest) == 1:
		return dumpFile(stdout, rest[0], table)
	case cmd == "convert" && len(rest) == 2:
		g, err := sceneio.LoadFile(rest[0], table)
		if err != nil {
			return err
		}
		return sceneio.SaveFile(rest[1], g, table)
	case cmd == "new" && len(rest) == 1:
		return sceneio.SaveFile(rest[0], starterScene(), table)
	}
	return errUsage
}

func inspectFile(w io.Writer, path string, table *nodetype.Table) error {
	g, err := sceneio.LoadFile(path, table)
	if err != nil {
		return err
	}
	printer := inspect.NewPrinter(w)
	printer.LabelText("Scene Node Count", fmt.Sprint(g.NodeCount()))
	g.Walk(func(n scene.Node, depth int) bool {
		id, _ := table.IDOf(n)
		printer.Text("%s[%s] %s", strings.Repeat("  ", depth), id, n.Base().Name)
		printer.Indent()
		table.Introspect(printer, n)
		printer.Unindent()
		return true
	})
	return printer.Err()
}

func dumpFile(w io.Writer, path string, table *nodetype.Table) error {
	g, err := sceneio.LoadFile(path, table)
	if err != nil {
		return err
	}
	cfg := spew.NewDefaultConfig()
	cfg.DisableCapacities = true
	cfg.DisablePointerAddresses = true
	// children are dumped on their own
	cfg.MaxDepth = 3

	var werr error
	g.Walk(func(n scene.Node, depth int) bool {
		if werr != nil {
			return false
		}
		id, _ := table.IDOf(n)
		_, werr = fmt.Fprintf(w, "%s (depth %d)\n%s\n", id, depth, cfg.Sdump(n))
		return true
	})
	return werr
}

// starterScene is a lit cube on a floor.
func starterScene() *scene.Graph {
	g := scene.NewGraph()

	light := scene.NewAmbientLightNode(core.RGB(0.2, 0.2, 0.2))
	light.Transform.Position = mgl32.Vec3{0, 5, 5}
	g.AddNode(light)

	floor := scene.NewPlaneNode(core.RGB(0.5, 0.5, 0.5), 1, 8, 8)
	floor.Name = "Floor"
	g.AddNode(floor)

	cube := scene.NewCubeNode(core.ColorRed)
	cube.Transform.Position = mgl32.Vec3{0, 1, 0}
	g.AddNode(cube)
	return g
}
