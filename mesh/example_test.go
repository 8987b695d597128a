package mesh_test

import (
	"fmt"

	"github.com/karuvel/demograv/mesh"
	"github.com/karuvel/demograv/pointset"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleTriangulate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Triangulate a triangle with one interior point (index 3). The only
//	valid triangulation is a three-triangle fan around the interior
//	vertex, so the derived adjacency is the complete graph K4.
//
//	      (2,3)
//	       /\
//	      /  \
//	     /(2,1)\
//	    /______\
//	(0,0)      (4,0)
//
// Complexity: O(n log n) expected
func ExampleTriangulate() {
	points, _ := pointset.FromSlices(
		[]float64{0, 4, 2, 2},
		[]float64{0, 0, 3, 1},
		nil,
	)
	tri, err := mesh.Triangulate(points)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	adj := tri.Adjacency()
	fmt.Printf("triangles=%d centroids=%d\n", tri.NumTriangles(), tri.Centroids().Len())
	fmt.Printf("neighbors(3)=%v\n", adj.Neighbors(3))
	// Output:
	// triangles=3 centroids=3
	// neighbors(3)=[0 1 2]
}
