package main

import (
	"fmt"
	"os"

	"github.com/mkbrown/photonmap/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "photonmap",
		Usage:     "render scenes with progressive photon mapping",
		Version:   "0.0.1",
		ArgsUsage: "width height spp photonsGlobal kGlobal causticMultiplier kCaustic finalGatheringDepth maxDepth",
		Description: `
Traces a global photon pass and, when finalGatheringDepth > 0, a caustic
photon pass, then renders the scene with a camera pass that consults both
photon maps for indirect illumination. The result is written to output.ppm.`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "base RNG seed",
			},
			&cli.IntFlag{
				Name:  "threads",
				Value: 0,
				Usage: "worker thread count (0 selects runtime.NumCPU())",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "scene",
				Value: "lambertian-box",
				Usage: "built-in scene name (ignored if --mesh is set)",
			},
			&cli.StringFlag{
				Name:  "mesh",
				Usage: "wavefront obj file to render on a plain floor, overriding --scene",
			},
		},
		Action: cmd.RenderFrame,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
