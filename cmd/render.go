// Package cmd wires the CLI surface to the renderer: parsing the nine
// positional arguments, running the two photon passes and the camera
// pass, and writing the PPM output.
package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/mkbrown/photonmap/pkg/config"
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/geometry"
	"github.com/mkbrown/photonmap/pkg/integrator"
	"github.com/mkbrown/photonmap/pkg/loaders"
	"github.com/mkbrown/photonmap/pkg/material"
	"github.com/mkbrown/photonmap/pkg/photon"
	"github.com/mkbrown/photonmap/pkg/renderer"
	"github.com/mkbrown/photonmap/pkg/scene"
	"github.com/urfave/cli/v2"
)

const outputPath = "output.ppm"
const tileSize = 32

// RenderFrame parses the positional arguments, runs the global and
// (if enabled) caustic photon passes, then the camera pass, and writes
// output.ppm.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts, err := parseOptions(ctx)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	preset, err := loadPreset(ctx, opts)
	if err != nil {
		return err
	}

	var stats renderer.RunStats
	stats.Width, stats.Height, stats.SamplesPerPixel = opts.Width, opts.Height, opts.SamplesPerPixel
	totalStart := time.Now()

	tracer := photon.NewTracer(preset.Scene, opts.MaxDepth, opts.Seed, opts.Threads, logger)

	logger.Noticef("tracing global photon pass (%d photons)", opts.PhotonsGlobal)
	start := time.Now()
	globalPhotons := tracer.TracePass(photon.Global, opts.PhotonsGlobal)
	globalStore := photon.NewStore()
	globalStore.SetPhotons(globalPhotons)
	globalStore.Build()
	stats.Passes = append(stats.Passes, renderer.PassStats{Name: "global", PhotonCount: globalStore.Size(), Elapsed: time.Since(start)})

	causticStore := photon.NewStore()
	if opts.FinalGatheringDepth > 0 {
		logger.Noticef("tracing caustic photon pass (%d photons)", opts.PhotonsCaustic())
		start = time.Now()
		causticPhotons := tracer.TracePass(photon.Caustic, opts.PhotonsCaustic())
		causticStore.SetPhotons(causticPhotons)
		causticStore.Build()
		stats.Passes = append(stats.Passes, renderer.PassStats{Name: "caustic", PhotonCount: causticStore.Size(), Elapsed: time.Since(start)})
	} else {
		causticStore.Build()
		logger.Notice("final-gathering depth is 0: skipping caustic pass")
	}

	estimatorConfig := integrator.Config{
		MaxDepth:            opts.MaxDepth,
		FinalGatheringDepth: opts.FinalGatheringDepth,
		KGlobal:             opts.KGlobal,
		KCaustic:            opts.KCaustic,
		NPhotonsGlobal:      opts.PhotonsGlobal,
		NPhotonsCaustic:     opts.PhotonsCaustic(),
	}
	estimator := integrator.NewEstimator(preset.Scene, globalStore, causticStore, estimatorConfig, logger)

	aspectRatio := float64(opts.Width) / float64(opts.Height)
	camera := renderer.NewCamera(preset.LookFrom, preset.LookAt, preset.Up, preset.VFov, aspectRatio)
	rend := renderer.NewRenderer(camera, estimator, opts.Width, opts.Height, opts.SamplesPerPixel, logger)

	logger.Noticef("rendering %dx%d at %d spp", opts.Width, opts.Height, opts.SamplesPerPixel)
	start = time.Now()
	tiles := renderer.MakeTiles(opts.Width, opts.Height, tileSize)
	pool := renderer.NewWorkerPool(rend, opts.Threads)
	pool.RenderAll(tiles, opts.Seed)
	stats.Passes = append(stats.Passes, renderer.PassStats{Name: "camera", Elapsed: time.Since(start)})
	stats.TotalElapsed = time.Since(totalStart)

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := renderer.WritePPM(out, rend.Pixels(), opts.Width, opts.Height); err != nil {
		return err
	}
	logger.Noticef("wrote %s", outputPath)

	renderer.DisplayStats(logger, stats)
	return nil
}

// parseOptions reads the nine positional arguments and the optional
// seed/threads/verbose flags into config.Options.
func parseOptions(ctx *cli.Context) (config.Options, error) {
	args := ctx.Args()
	if args.Len() != 9 {
		return config.Options{}, cli.Exit("photonmap: expected 9 positional arguments (width height spp photonsGlobal kGlobal causticMultiplier kCaustic finalGatheringDepth maxDepth)", 1)
	}

	ints := make([]int, 0, 7)
	for _, i := range []int{0, 1, 2, 3, 4, 6, 7, 8} {
		v, err := strconv.Atoi(args.Get(i))
		if err != nil {
			return config.Options{}, cli.Exit("photonmap: positional argument "+strconv.Itoa(i+1)+" must be an integer", 1)
		}
		ints = append(ints, v)
	}
	causticMultiplier, err := strconv.ParseFloat(args.Get(5), 64)
	if err != nil {
		return config.Options{}, cli.Exit("photonmap: caustic photon multiplier must be a number", 1)
	}

	opts := config.Default()
	opts.Width = ints[0]
	opts.Height = ints[1]
	opts.SamplesPerPixel = ints[2]
	opts.PhotonsGlobal = ints[3]
	opts.KGlobal = ints[4]
	opts.CausticMultiplier = causticMultiplier
	opts.KCaustic = ints[5]
	opts.FinalGatheringDepth = ints[6]
	opts.MaxDepth = ints[7]

	if ctx.IsSet("seed") {
		opts.Seed = ctx.Int64("seed")
	}
	opts.Threads = ctx.Int("threads")
	opts.Verbose = ctx.Bool("verbose")

	return opts, nil
}

// loadPreset resolves the scene to render: a built-in named scenario
// by default, or a mesh file loaded onto a plain floor if --mesh is
// given.
func loadPreset(ctx *cli.Context, opts config.Options) (*scene.Preset, error) {
	if meshPath := ctx.String("mesh"); meshPath != "" {
		mat := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
		mesh, err := loaders.LoadOBJ(meshPath, mat, 1.0)
		if err != nil {
			return nil, err
		}
		preset, err := scene.Builtin("empty")
		if err != nil {
			return nil, err
		}
		preset.Scene = scene.New([]geometry.Shape{mesh}, nil)
		return preset, nil
	}
	return scene.Builtin(ctx.String("scene"))
}
