package lights

// UniformSampler selects one of a fixed set of lights with equal
// probability, independent of the shading point.
type UniformSampler struct {
	lights []Light
}

// NewUniformSampler creates a sampler with equal weight for every
// light. An empty slice is legal; SampleLight then always fails.
func NewUniformSampler(lights []Light) *UniformSampler {
	return &UniformSampler{lights: lights}
}

// SampleLight implements Sampler using the cumulative-probability
// technique: partition [0,1) into equal-width bins, one per light.
func (s *UniformSampler) SampleLight(u float64) (Light, float64) {
	n := len(s.lights)
	if n == 0 {
		return nil, 0
	}
	pdf := 1.0 / float64(n)
	idx := int(u * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return s.lights[idx], pdf
}

// Count implements Sampler.
func (s *UniformSampler) Count() int { return len(s.lights) }
