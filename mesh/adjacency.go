package mesh

import (
	"fmt"

	"github.com/notargets/neumesh/types"
)

// FaceRef identifies one side of a face: the element and the element's local face number (1-based)
type FaceRef struct {
	Element   int
	LocalFace int
}

// FaceAdjacency maps each face's vertex set to the element faces that share it
type FaceAdjacency map[types.FaceKey][]FaceRef

/*
LocalFaces returns the faces of an element in local face order, oriented per the neutral file convention.

	Triangle (v0,v1,v2):      1:{v0,v1}  2:{v1,v2}  3:{v2,v0}
	Tetrahedron (v0,v1,v2,v3): 1:{v1,v0,v2}  2:{v0,v1,v3}  3:{v1,v2,v3}  4:{v2,v0,v3}
*/
func LocalFaces(dim int, el []int) (faces [][]int, err error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("%w: %d, need 2 or 3", ErrUnsupportedDimension, dim)
	}
	if len(el) != types.VerticesPerElement(dim) {
		return nil, fmt.Errorf("%w: element with %d vertices in %d dimensions", ErrInvalidArgument, len(el), dim)
	}
	for _, v := range el {
		if v < 0 {
			return nil, fmt.Errorf("%w: element %v has negative vertex %d", ErrInvalidArgument, el, v)
		}
	}
	if dim == 2 {
		faces = [][]int{
			{el[0], el[1]},
			{el[1], el[2]},
			{el[2], el[0]},
		}
		return
	}
	faces = [][]int{
		{el[1], el[0], el[2]},
		{el[0], el[1], el[3]},
		{el[1], el[2], el[3]},
		{el[2], el[0], el[3]},
	}
	return
}

// BuildFaceAdjacency enumerates the faces of every element and records which elements reference each face.
// Entries list elements in increasing element order.
func BuildFaceAdjacency(elements [][]int, dim int) (adj FaceAdjacency, err error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("%w: %d, need 2 or 3", ErrUnsupportedDimension, dim)
	}
	adj = make(FaceAdjacency, len(elements)*types.VerticesPerElement(dim))
	var faces [][]int
	for k, el := range elements {
		if faces, err = LocalFaces(dim, el); err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		for lf, f := range faces {
			key := types.NewFaceKey(f...)
			adj[key] = append(adj[key], FaceRef{Element: k, LocalFace: lf + 1})
		}
	}
	return
}

// Lookup returns the element faces sharing the face with the given vertices, in any order
func (adj FaceAdjacency) Lookup(verts ...int) []FaceRef {
	return adj[types.NewFaceKey(verts...)]
}

// Count tallies faces by the number of elements that reference them
func (adj FaceAdjacency) Count() (boundary, interior, nonManifold int) {
	for _, refs := range adj {
		switch len(refs) {
		case 1:
			boundary++
		case 2:
			interior++
		default:
			nonManifold++
		}
	}
	return
}
