package types

import "fmt"

// GambitElementType is the NTYPE code of an element in a Gambit neutral file
type GambitElementType uint8

const (
	GambitEdge        GambitElementType = 1
	GambitQuad        GambitElementType = 2
	GambitTriangle    GambitElementType = 3
	GambitBrick       GambitElementType = 4
	GambitWedge       GambitElementType = 5
	GambitTetrahedron GambitElementType = 6
	GambitPyramid     GambitElementType = 7
)

func (et GambitElementType) String() string {
	switch et {
	case GambitEdge:
		return "Edge"
	case GambitQuad:
		return "Quadrilateral"
	case GambitTriangle:
		return "Triangle"
	case GambitBrick:
		return "Brick"
	case GambitWedge:
		return "Wedge"
	case GambitTetrahedron:
		return "Tetrahedron"
	case GambitPyramid:
		return "Pyramid"
	}
	return fmt.Sprintf("GambitElementType(%d)", uint8(et))
}

// ElementTypeCode returns the simplex element type used for a mesh of the given space dimension
func ElementTypeCode(dim int) (et GambitElementType, err error) {
	switch dim {
	case 2:
		et = GambitTriangle
	case 3:
		et = GambitTetrahedron
	default:
		err = fmt.Errorf("no simplex element type for %d space dimensions", dim)
	}
	return
}

// VerticesPerElement returns the number of vertices of the simplex in dim space dimensions
func VerticesPerElement(dim int) int {
	return dim + 1
}
