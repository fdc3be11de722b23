package types

import (
	"fmt"
	"sort"
)

/*
FaceKey stores a face's vertices as indices in a way that can be compared and hashed.
A face between vertices [4], [0] and [2] is always stored as [0,2,4], in ascending order of the index values.
An edge (the face of a triangle) uses the first two slots and stores -1 in the last one, so {4,0} is [0,4,-1].
*/
type FaceKey [3]int

func NewFaceKey(verts ...int) (fk FaceKey) {
	var (
		nv = len(verts)
	)
	if nv < 2 || nv > 3 {
		panic(fmt.Errorf("a face has 2 or 3 vertices, have %d: %v", nv, verts))
	}
	for _, vert := range verts {
		if vert < 0 {
			panic(fmt.Errorf("negative vertex index in face %v", verts))
		}
	}
	fk = FaceKey{-1, -1, -1}
	copy(fk[:], verts)
	sort.Ints(fk[:nv])
	return
}

// Len returns the number of vertices in the face, 2 for an edge and 3 for a triangle
func (fk FaceKey) Len() int {
	if fk[2] < 0 {
		return 2
	}
	return 3
}

// Vertices returns the sorted vertex indices
func (fk FaceKey) Vertices() (verts []int) {
	verts = make([]int, fk.Len())
	copy(verts, fk[:])
	return
}

func (fk FaceKey) String() string {
	return fmt.Sprintf("%v", fk.Vertices())
}

/*
A Face stores the face vertices in their original order, so that the orientation can be recovered, alongside the
canonical key used for matching faces between elements
*/
type Face struct {
	Key   FaceKey
	Verts []int // Display order, as supplied
}

func NewFace(verts ...int) (f Face) {
	f = Face{
		Key:   NewFaceKey(verts...),
		Verts: make([]int, len(verts)),
	}
	copy(f.Verts, verts)
	return
}

