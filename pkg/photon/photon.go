// Package photon implements the light-transport pass: tracing photon
// paths from the scene's lights and depositing them into k-d-tree-
// backed stores the camera pass later queries for density estimates.
package photon

import "github.com/mkbrown/photonmap/pkg/core"

// Photon is one deposited light-path sample. Immutable once appended
// to a Store.
type Photon struct {
	// Power is the path throughput at the point of deposition: a
	// non-negative radiometric quantity per color channel.
	Power core.Vec3
	// Position is the world-space point of deposition.
	Position core.Vec3
	// Wi points toward the source of incoming light along the traced
	// path, i.e. the negation of the ray direction at the hit.
	Wi core.Vec3
}
