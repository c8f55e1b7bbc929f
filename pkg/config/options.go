// Package config defines the renderer's command-line options and
// their validation.
package config

import "fmt"

// Options holds every value the CLI surface accepts: the nine
// positional arguments plus the optional seed/threads/verbose flags.
type Options struct {
	Width               int
	Height              int
	SamplesPerPixel     int
	PhotonsGlobal       int
	KGlobal             int
	CausticMultiplier   float64
	KCaustic            int
	FinalGatheringDepth int
	MaxDepth            int

	Seed    int64
	Threads int
	Verbose bool
}

// Default returns options with the optional flags at their defaults;
// the positional fields are zero and must be set by the caller.
func Default() Options {
	return Options{Seed: 1, Threads: 0, Verbose: false}
}

// PhotonsCaustic returns the caustic-map photon count, derived from
// the global count and the caustic multiplier.
func (o Options) PhotonsCaustic() int {
	return int(float64(o.PhotonsGlobal) * o.CausticMultiplier)
}

// Validate checks every positional argument's stated constraint.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("photonmap: image width must be > 0, got %d", o.Width)
	}
	if o.Height <= 0 {
		return fmt.Errorf("photonmap: image height must be > 0, got %d", o.Height)
	}
	if o.SamplesPerPixel < 1 {
		return fmt.Errorf("photonmap: samples per pixel must be >= 1, got %d", o.SamplesPerPixel)
	}
	if o.PhotonsGlobal < 0 {
		return fmt.Errorf("photonmap: global photon count must be >= 0, got %d", o.PhotonsGlobal)
	}
	if o.KGlobal < 1 {
		return fmt.Errorf("photonmap: k for global-map estimation must be >= 1, got %d", o.KGlobal)
	}
	if o.CausticMultiplier < 0 {
		return fmt.Errorf("photonmap: caustic photon multiplier must be >= 0, got %f", o.CausticMultiplier)
	}
	if o.KCaustic < 1 {
		return fmt.Errorf("photonmap: k for caustic-map estimation must be >= 1, got %d", o.KCaustic)
	}
	if o.FinalGatheringDepth < 0 {
		return fmt.Errorf("photonmap: final-gathering depth must be >= 0, got %d", o.FinalGatheringDepth)
	}
	if o.MaxDepth < 1 {
		return fmt.Errorf("photonmap: maximum path depth must be >= 1, got %d", o.MaxDepth)
	}
	return nil
}
