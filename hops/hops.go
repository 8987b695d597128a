package hops

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/karuvel/demograv/mesh"
)

// Resolve computes, for every vertex of adj, the sorted set of vertices
// within n hops, always including the vertex itself. The resolver is a
// pure transform of the graph: it never looks at coordinates or
// weights. opts may be nil for defaults.
// Returns ErrNilAdjacency, ErrNegativeHops, or ErrOptionViolation.
// Complexity: O(V · d̄ⁿ) worst-case time, O(V + Σ|set|) memory.
func Resolve(adj *mesh.Adjacency, n int, opts *Options) ([][]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeHops, n)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return nil, fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, o.Workers)
	}

	order := adj.Order()
	sets := make([][]int, order)
	if order == 0 {
		return sets, nil
	}

	workers := o.Workers
	if workers <= 1 || order == 1 {
		resolveRange(adj, n, 0, order, sets)

		return sets, nil
	}
	if workers > order {
		workers = order
	}

	// Split the vertex range into one contiguous block per worker; each
	// block writes only its own slice of sets, so no locking is needed.
	g := new(errgroup.Group)
	g.SetLimit(workers)
	blockSize := (order + workers - 1) / workers
	for lo := 0; lo < order; lo += blockSize {
		lo, hi := lo, lo+blockSize
		if hi > order {
			hi = order
		}
		g.Go(func() error {
			resolveRange(adj, n, lo, hi, sets)

			return nil
		})
	}
	// Workers cannot fail; Wait is the gather barrier.
	_ = g.Wait()

	return sets, nil
}

// resolveRange runs the level-limited BFS for vertices [lo, hi),
// reusing one scratch visit-stamp array across starts.
func resolveRange(adj *mesh.Adjacency, n, lo, hi int, sets [][]int) {
	order := adj.Order()
	// seen[v] == stamp marks v visited for the current start vertex;
	// bumping the stamp resets the whole array in O(1).
	seen := make([]int, order)
	stamp := 0
	var frontier, next []int

	for start := lo; start < hi; start++ {
		stamp++
		seen[start] = stamp
		set := []int{start}
		frontier = append(frontier[:0], start)

		for depth := 0; depth < n && len(frontier) > 0; depth++ {
			next = next[:0]
			for _, v := range frontier {
				for _, u := range adj.Neighbors(v) {
					if seen[u] == stamp {
						continue
					}
					seen[u] = stamp
					set = append(set, u)
					next = append(next, u)
				}
			}
			frontier, next = next, frontier
		}

		sort.Ints(set)
		sets[start] = set
	}
}

// CentroidSets composes per-centroid exclusion lists: for each triangle
// (a,b,c) the union of sets[a], sets[b], and sets[c], sorted ascending.
// The result aligns 1:1 with triangles, ready to pass as the potential
// engine's per-sample exclusions when sampling at centroids.
// Returns ErrVertexRange if a triangle indexes past len(sets).
// Complexity: O(t · s) time for average set size s.
func CentroidSets(triangles []mesh.Triangle, sets [][]int) ([][]int, error) {
	out := make([][]int, len(triangles))
	for i, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= len(sets) {
				return nil, fmt.Errorf("%w: triangle %d references vertex %d of %d", ErrVertexRange, i, v, len(sets))
			}
		}
		merged := make([]int, 0, len(sets[tri[0]])+len(sets[tri[1]])+len(sets[tri[2]]))
		merged = append(merged, sets[tri[0]]...)
		merged = append(merged, sets[tri[1]]...)
		merged = append(merged, sets[tri[2]]...)
		sort.Ints(merged)

		dst := merged[:0]
		prev := -1
		for _, v := range merged {
			if v != prev {
				dst = append(dst, v)
				prev = v
			}
		}
		out[i] = dst
	}

	return out, nil
}
