package mesh

import (
	"fmt"
	"io"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Statistics summarizes a mesh's size and face topology
type Statistics struct {
	Dim         int
	NumPoints   int
	NumElements int
	NumHoles    int
	NumFaces    int // Entries of the face list

	// Derived from element connectivity
	BoundaryFaces    int // Referenced by exactly one element
	InteriorFaces    int // Referenced by two elements
	NonManifoldFaces int // Referenced by more than two elements
	UnusedPoints     int // Not referenced by any element
	MaxValence       int // Largest number of elements sharing a point

	MarkerCounts map[int]int // Tagged faces per non-zero face marker
}

func (m *Mesh) Statistics() (st Statistics, err error) {
	st = Statistics{
		Dim:          m.Dim(),
		NumPoints:    m.NumPoints(),
		NumElements:  m.NumElements(),
		NumHoles:     m.NumHoles(),
		NumFaces:     m.NumFaces(),
		MarkerCounts: make(map[int]int),
	}
	for _, fm := range m.faceMarkers {
		if fm != 0 {
			st.MarkerCounts[fm]++
		}
	}
	if st.NumPoints == 0 || st.NumElements == 0 {
		st.UnusedPoints = st.NumPoints
		return
	}
	var adj FaceAdjacency
	if adj, err = BuildFaceAdjacency(m.elements, st.Dim); err != nil {
		return
	}
	st.BoundaryFaces, st.InteriorFaces, st.NonManifoldFaces = adj.Count()

	valence := m.pointValence()
	for i := 0; i < valence.Len(); i++ {
		v := int(valence.AtVec(i))
		if v == 0 {
			st.UnusedPoints++
		}
		if v > st.MaxValence {
			st.MaxValence = v
		}
	}
	return
}

// pointValence counts the elements touching each point using the element/point incidence matrix
func (m *Mesh) pointValence() (valence *mat.VecDense) {
	var (
		ne, np = m.NumElements(), m.NumPoints()
	)
	inc := sparse.NewDOK(ne, np)
	for k, el := range m.elements {
		for _, v := range el {
			inc.Set(k, v, 1)
		}
	}
	ones := mat.NewVecDense(ne, nil)
	for k := 0; k < ne; k++ {
		ones.SetVec(k, 1)
	}
	valence = mat.NewVecDense(np, nil)
	valence.MulVec(inc.ToCSR().T(), ones)
	return
}

func (st Statistics) Print(w io.Writer) {
	fmt.Fprintf(w, "Mesh Statistics:\n")
	fmt.Fprintf(w, "  Dimensions: %d\n", st.Dim)
	fmt.Fprintf(w, "  Points: %d (%d unused)\n", st.NumPoints, st.UnusedPoints)
	fmt.Fprintf(w, "  Elements: %d\n", st.NumElements)
	fmt.Fprintf(w, "  Holes: %d\n", st.NumHoles)
	fmt.Fprintf(w, "  Faces: %d boundary, %d interior, %d non-manifold\n",
		st.BoundaryFaces, st.InteriorFaces, st.NonManifoldFaces)
	fmt.Fprintf(w, "  Max point valence: %d\n", st.MaxValence)
	fmt.Fprintf(w, "  Face list: %d faces\n", st.NumFaces)
	markers := make([]int, 0, len(st.MarkerCounts))
	for mk := range st.MarkerCounts {
		markers = append(markers, mk)
	}
	sort.Ints(markers)
	for _, mk := range markers {
		fmt.Fprintf(w, "    marker %d: %d faces\n", mk, st.MarkerCounts[mk])
	}
}
