package photon

import (
	"github.com/mkbrown/photonmap/pkg/core"
	"github.com/mkbrown/photonmap/pkg/spatial"
)

// Store is an append-only vector of Photons plus a spatial index over
// their positions. Build must be called exactly once before any query;
// after that the store is frozen and safe for concurrent read-only use.
type Store struct {
	photons []Photon
	tree    *spatial.KDTree
	built   bool
}

// NewStore creates an empty, unbuilt store.
func NewStore() *Store {
	return &Store{}
}

// SetPhotons replaces the store's contents. Must be called before Build.
func (s *Store) SetPhotons(photons []Photon) {
	s.photons = photons
	s.built = false
}

// Build constructs the spatial index over the current photon
// positions. Calling it more than once rebuilds the index in place.
func (s *Store) Build() {
	positions := make([]core.Vec3, len(s.photons))
	for i, p := range s.photons {
		positions[i] = p.Position
	}
	s.tree = spatial.Build(positions)
	s.built = true
}

// Size returns the number of photons in the store.
func (s *Store) Size() int { return len(s.photons) }

// GetIthPhoton returns the photon at index i.
func (s *Store) GetIthPhoton(i int) Photon { return s.photons[i] }

// QueryKNearestPhotons returns the indices of the k photons nearest to
// position and the squared radius of the ball enclosing them. Querying
// an unbuilt store returns an empty result rather than panicking, since
// programmer error here should degrade to zero contribution.
func (s *Store) QueryKNearestPhotons(position core.Vec3, k int) ([]int, float64) {
	if !s.built || s.tree == nil {
		return nil, 0
	}
	return s.tree.KNN(position, k)
}
