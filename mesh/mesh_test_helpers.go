package mesh

import "fmt"

// Standard meshes shared by the mesh, reader and writer tests

// Marker values used by the standard test meshes
const (
	MarkerWall     = 7
	MarkerInflow   = 8
	MarkerOutflow  = 9
	MarkerPeriodic = 11
)

func mustBuild(points [][]float64, elements, faces [][]int, faceMarkers []int) *Mesh {
	m := NewMesh()
	if err := m.SetPoints(points, nil); err != nil {
		panic(err)
	}
	if err := m.SetElements(elements); err != nil {
		panic(err)
	}
	if faces != nil {
		if err := m.SetFaces(faces, faceMarkers); err != nil {
			panic(err)
		}
	}
	return m
}

// NewSingleTriangleMesh is the unit right triangle with edge {0,1} tagged as a wall
func NewSingleTriangleMesh() *Mesh {
	return mustBuild(
		[][]float64{{0, 0}, {1, 0}, {0, 1}},
		[][]int{{0, 1, 2}},
		[][]int{{0, 1}, {1, 2}, {2, 0}},
		[]int{MarkerWall, 0, 0},
	)
}

/*
NewUnitSquareMesh splits the unit square along its diagonal

	3-----2
	|   / |
	| /   |
	0-----1

Bottom is a wall, right is outflow, top is a wall, left is inflow. The diagonal is listed untagged.
*/
func NewUnitSquareMesh() *Mesh {
	return mustBuild(
		[][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{0, 1, 2}, {0, 2, 3}},
		[][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}},
		[]int{MarkerWall, MarkerOutflow, MarkerWall, MarkerInflow, 0},
	)
}

// NewSingleTetMesh is the unit tetrahedron with all four faces tagged as walls
func NewSingleTetMesh() *Mesh {
	return mustBuild(
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][]int{{0, 1, 2, 3}},
		[][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}},
		[]int{MarkerWall, MarkerWall, MarkerInflow, MarkerWall},
	)
}

// NewTwoTetMesh has two tetrahedra sharing face {1,2,3}. The shared face is listed with the wall marker
// when tagShared is set, which makes the mesh unexportable.
func NewTwoTetMesh(tagShared bool) *Mesh {
	sharedMarker := 0
	if tagShared {
		sharedMarker = MarkerWall
	}
	return mustBuild(
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}},
		[][]int{{0, 1, 2, 3}, {1, 2, 3, 4}},
		[][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 4}, {1, 4, 3}, {2, 3, 4}, {1, 2, 3}},
		[]int{MarkerWall, MarkerWall, MarkerWall, MarkerOutflow, MarkerOutflow, MarkerOutflow, sharedMarker},
	)
}

/*
NewTriangleStripMesh builds a strip of n triangles between two rows of points

	t0----t1----t2 ...
	| \ 1 | \ 3 |
	|0  \ | 2 \ |
	b0----b1----b2 ...

Bottom row points are 0..nc-1, top row points are nc..2nc-1. Bottom edges carry the wall marker and the
leftmost edge carries the periodic marker.
*/
func NewTriangleStripMesh(n int) *Mesh {
	if n < 1 {
		panic(fmt.Errorf("need at least one triangle, have %d", n))
	}
	var (
		nc       = (n+1)/2 + 1
		points   = make([][]float64, 2*nc)
		elements = make([][]int, n)
		faces    [][]int
		markers  []int
	)
	for i := 0; i < nc; i++ {
		points[i] = []float64{float64(i), 0}
		points[nc+i] = []float64{float64(i), 1}
	}
	b := func(i int) int { return i }
	t := func(i int) int { return nc + i }
	for j := 0; j < n; j++ {
		c := j / 2
		if j%2 == 0 {
			elements[j] = []int{b(c), b(c + 1), t(c)}
			faces = append(faces, []int{b(c), b(c + 1)})
			markers = append(markers, MarkerWall)
		} else {
			elements[j] = []int{b(c + 1), t(c + 1), t(c)}
		}
	}
	faces = append(faces, []int{t(0), b(0)})
	markers = append(markers, MarkerPeriodic)
	return mustBuild(points, elements, faces, markers)
}

// ClosedTriangleSurface is the surface of a tetrahedron as four triangles. Every edge is shared by two of them.
var ClosedTriangleSurface = [][]int{
	{0, 1, 2},
	{0, 3, 1},
	{1, 3, 2},
	{2, 3, 0},
}
