package mesh

import (
	"fmt"
	"sort"
)

// BoundaryCondition names a physical boundary and carries its numeric code
type BoundaryCondition struct {
	Name string
	Code int
}

// BCSpec maps a face marker to the boundary condition its faces are exported under
type BCSpec map[int]BoundaryCondition

// Periodicity declares the marker of the periodic boundary and the period along each coordinate axis (0 if none)
type Periodicity struct {
	Marker  int
	Periods []float64
}

// BoundaryGroup is the set of element faces carrying one marker, in face list order
type BoundaryGroup struct {
	Marker    int
	Periodic  bool
	Condition BoundaryCondition // Named boundaries only
	Periods   []float64         // Periodic boundary only
	Faces     []FaceRef
}

// BoundaryMarkers returns the markers to export: named markers in ascending order, followed by the periodic
// marker if it is not also a named one
func BoundaryMarkers(bcs BCSpec, per *Periodicity) (markers []int) {
	markers = make([]int, 0, len(bcs)+1)
	for marker := range bcs {
		markers = append(markers, marker)
	}
	sort.Ints(markers)
	if per != nil {
		if _, named := bcs[per.Marker]; !named {
			markers = append(markers, per.Marker)
		}
	}
	return
}

// ClassifyBoundaries groups the tagged faces by marker and resolves each face to the single element that owns it
func (m *Mesh) ClassifyBoundaries(bcs BCSpec, per *Periodicity, adj FaceAdjacency) (groups []BoundaryGroup, err error) {
	markers := BoundaryMarkers(bcs, per)
	if len(markers) == 0 {
		return
	}
	if !m.FacesComputed() {
		return nil, fmt.Errorf("%w: boundary markers %v requested", ErrFacesNotComputed, markers)
	}
	groups = make([]BoundaryGroup, len(markers))
	for ig, marker := range markers {
		grp := BoundaryGroup{Marker: marker}
		if bc, named := bcs[marker]; named {
			grp.Condition = bc
		} else {
			grp.Periodic = true
			grp.Periods = per.Periods
		}
		for i, fm := range m.faceMarkers {
			if fm != marker {
				continue
			}
			face := m.faces[i]
			owners := adj[face.Key]
			if len(owners) != 1 {
				return nil, fmt.Errorf("%w: face %d %v with marker %d has %d owning elements, need 1",
					ErrBoundaryFaceNotManifold, i, face.Verts, marker, len(owners))
			}
			grp.Faces = append(grp.Faces, owners[0])
		}
		groups[ig] = grp
	}
	return
}
