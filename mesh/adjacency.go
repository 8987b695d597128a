package mesh

import "sort"

// Adjacency derives the undirected vertex-adjacency graph: for each
// triangle (a,b,c) the edges a–b, b–c, c–a, deduplicated across
// triangles. Neighbor lists are sorted ascending for deterministic
// iteration.
// Complexity: O(t + V + E log d) time, O(V + E) memory.
func (t *Triangulation) Adjacency() *Adjacency {
	n := t.NumPoints()

	// First pass: per-vertex half-edge counts (each triangle contributes
	// two half-edges per vertex), then prefix sums into raw offsets.
	counts := make([]int, n+1)
	for _, tri := range t.Triangles {
		counts[tri[0]+1] += 2
		counts[tri[1]+1] += 2
		counts[tri[2]+1] += 2
	}
	for v := 0; v < n; v++ {
		counts[v+1] += counts[v]
	}

	// Second pass: scatter raw half-edges.
	raw := make([]int, counts[n])
	cursor := make([]int, n)
	put := func(u, v int) {
		raw[counts[u]+cursor[u]] = v
		cursor[u]++
	}
	for _, tri := range t.Triangles {
		a, b, c := tri[0], tri[1], tri[2]
		put(a, b)
		put(a, c)
		put(b, a)
		put(b, c)
		put(c, a)
		put(c, b)
	}

	// Third pass: sort and deduplicate each vertex's list, compacting
	// into the final arena.
	adj := &Adjacency{
		offsets: make([]int, n+1),
		edges:   make([]int, 0, counts[n]),
	}
	for v := 0; v < n; v++ {
		list := raw[counts[v] : counts[v]+cursor[v]]
		sort.Ints(list)
		adj.offsets[v] = len(adj.edges)
		prev := -1
		for _, u := range list {
			if u != prev {
				adj.edges = append(adj.edges, u)
				prev = u
			}
		}
	}
	adj.offsets[n] = len(adj.edges)

	return adj
}
