package spatial

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/mkbrown/photonmap/pkg/core"
)

func bruteForceKNN(points []core.Vec3, query core.Vec3, k int) ([]int, float64) {
	type cand struct {
		idx    int
		distSq float64
	}
	cands := make([]cand, len(points))
	for i, p := range points {
		d := p.Subtract(query)
		cands[i] = cand{i, d.LengthSquared()}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].distSq < cands[j].distSq })
	if k > len(cands) {
		k = len(cands)
	}
	indices := make([]int, k)
	maxSq := 0.0
	for i := 0; i < k; i++ {
		indices[i] = cands[i].idx
		if cands[i].distSq > maxSq {
			maxSq = cands[i].distSq
		}
	}
	return indices, maxSq
}

func TestKDTreeKNNMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]core.Vec3, 200)
	for i := range points {
		points[i] = core.NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)
	}
	tree := Build(points)

	for trial := 0; trial < 20; trial++ {
		query := core.NewVec3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)
		k := 1 + trial%10

		got, gotMaxSq := tree.KNN(query, k)
		want, wantMaxSq := bruteForceKNN(points, query, k)

		if len(got) != len(want) {
			t.Fatalf("trial %d: got %d neighbors, want %d", trial, len(got), len(want))
		}
		if math.Abs(gotMaxSq-wantMaxSq) > 1e-3 {
			t.Fatalf("trial %d: got maxSq %f, want %f", trial, gotMaxSq, wantMaxSq)
		}

		gotSet := make(map[int]bool, len(got))
		for _, idx := range got {
			gotSet[idx] = true
		}
		for _, idx := range want {
			if !gotSet[idx] {
				t.Fatalf("trial %d: brute-force neighbor %d missing from k-d tree result", trial, idx)
			}
		}
	}
}

func TestKDTreeEmpty(t *testing.T) {
	tree := Build(nil)
	indices, maxSq := tree.KNN(core.NewVec3(0, 0, 0), 5)
	if indices != nil || maxSq != 0 {
		t.Fatalf("expected empty result on empty tree, got %v %f", indices, maxSq)
	}
	if tree.Len() != 0 {
		t.Fatalf("expected Len() == 0, got %d", tree.Len())
	}
}

func TestKDTreeFewerPointsThanK(t *testing.T) {
	points := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)}
	tree := Build(points)
	indices, _ := tree.KNN(core.NewVec3(0, 0, 0), 10)
	if len(indices) != 2 {
		t.Fatalf("expected all 2 points returned when k > len(points), got %d", len(indices))
	}
}

func TestBoundedQueueKeepsClosest(t *testing.T) {
	bq := NewBoundedQueue(2)
	bq.Add(0, 9)
	bq.Add(1, 1)
	bq.Add(2, 4)
	if !bq.Full() {
		t.Fatal("expected queue to be full")
	}
	indices, maxSq := bq.Results()
	if maxSq != 4 {
		t.Fatalf("expected worst kept distance 4, got %f", maxSq)
	}
	set := map[int]bool{}
	for _, i := range indices {
		set[i] = true
	}
	if !set[1] || !set[2] || set[0] {
		t.Fatalf("expected indices {1,2} kept, got %v", indices)
	}
}
