package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/neumesh/types"
)

// Mesh holds a finished simplex mesh as handed over by a mesh generator.
// It is filled once through the setters and then read during export.
type Mesh struct {
	// Geometry
	points       *mat.Dense // [npoints][dim], nil when empty
	pointMarkers []int
	holes        *mat.Dense // Interior seed points of cavities, [nholes][dim]

	// Element to vertex connectivity [nelems][3 or 4], 0-based point indices
	elements [][]int

	// Face data, populated by the generator's face computation step
	faces          []types.Face
	faceMarkers    []int
	facesAllocated bool
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// SetPoints replaces the point sequence. When pointMarkers is given it must have one marker per point,
// otherwise all point markers are reset to zero.
func (m *Mesh) SetPoints(points [][]float64, pointMarkers []int) (err error) {
	if pointMarkers != nil && len(pointMarkers) != len(points) {
		return fmt.Errorf("%w: %d point markers for %d points", ErrInvalidArgument,
			len(pointMarkers), len(points))
	}
	var pts *mat.Dense
	if pts, err = toDense(points); err != nil {
		return
	}
	if pts != nil {
		if _, dim := pts.Dims(); dim != 2 && dim != 3 {
			return fmt.Errorf("%w: points have %d coordinates, need 2 or 3", ErrUnsupportedDimension, dim)
		}
	}
	m.points = pts
	m.pointMarkers = make([]int, len(points))
	copy(m.pointMarkers, pointMarkers)
	return
}

// SetHoles replaces the hole sequence with the given seed points
func (m *Mesh) SetHoles(holeStarts [][]float64) (err error) {
	var holes *mat.Dense
	if holes, err = toDense(holeStarts); err != nil {
		return
	}
	m.holes = holes
	return
}

// SetElements replaces the element connectivity. All elements must share one arity, 3 (triangles)
// or 4 (tetrahedra), and reference existing points.
func (m *Mesh) SetElements(elements [][]int) (err error) {
	var (
		np    = m.NumPoints()
		els   = make([][]int, len(elements))
		arity int
	)
	for k, el := range elements {
		if k == 0 {
			arity = len(el)
			if arity != 3 && arity != 4 {
				return fmt.Errorf("%w: element 0 has %d vertices, need 3 or 4", ErrInvalidArgument, arity)
			}
		}
		if len(el) != arity {
			return fmt.Errorf("%w: element %d has %d vertices, element 0 has %d",
				ErrInvalidArgument, k, len(el), arity)
		}
		for _, v := range el {
			if v < 0 || v >= np {
				return fmt.Errorf("%w: element %d references point %d, have %d points",
					ErrInvalidArgument, k, v, np)
			}
		}
		els[k] = make([]int, arity)
		copy(els[k], el)
	}
	m.elements = els
	return
}

// SetFaces replaces the face list and its parallel markers. A marker of zero means untagged.
func (m *Mesh) SetFaces(faces [][]int, faceMarkers []int) (err error) {
	if faceMarkers != nil && len(faceMarkers) != len(faces) {
		return fmt.Errorf("%w: %d face markers for %d faces", ErrInvalidArgument,
			len(faceMarkers), len(faces))
	}
	fcs := make([]types.Face, len(faces))
	for i, f := range faces {
		if len(f) != 2 && len(f) != 3 {
			return fmt.Errorf("%w: face %d has %d vertices, need 2 or 3", ErrInvalidArgument, i, len(f))
		}
		for _, v := range f {
			if v < 0 {
				return fmt.Errorf("%w: face %d has negative vertex %d", ErrInvalidArgument, i, v)
			}
		}
		fcs[i] = types.NewFace(f...)
	}
	m.faces = fcs
	m.faceMarkers = make([]int, len(faces))
	copy(m.faceMarkers, faceMarkers)
	m.facesAllocated = true
	return
}

func (m *Mesh) NumPoints() int { return rows(m.points) }

// Dim returns the number of coordinates per point, 0 for an empty mesh
func (m *Mesh) Dim() int {
	if m.points == nil {
		return 0
	}
	_, c := m.points.Dims()
	return c
}

func (m *Mesh) Point(i int) []float64 { return mat.Row(nil, i, m.points) }

func (m *Mesh) Points() [][]float64 { return toSlices(m.points) }

func (m *Mesh) PointMarkers() []int { return m.pointMarkers }

func (m *Mesh) NumElements() int { return len(m.elements) }

func (m *Mesh) Element(k int) []int { return m.elements[k] }

func (m *Mesh) Elements() [][]int { return m.elements }

func (m *Mesh) NumHoles() int { return rows(m.holes) }

func (m *Mesh) Hole(i int) []float64 { return mat.Row(nil, i, m.holes) }

func (m *Mesh) Holes() [][]float64 { return toSlices(m.holes) }

func (m *Mesh) NumFaces() int { return len(m.faces) }

func (m *Mesh) Face(i int) types.Face { return m.faces[i] }

func (m *Mesh) Faces() []types.Face { return m.faces }

func (m *Mesh) FaceMarkers() []int { return m.faceMarkers }

// FacesComputed reports whether the face list has been populated, even if it is empty
func (m *Mesh) FacesComputed() bool { return m.facesAllocated }

func toDense(pts [][]float64) (d *mat.Dense, err error) {
	if len(pts) == 0 {
		return
	}
	dim := len(pts[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: point 0 has no coordinates", ErrInvalidArgument)
	}
	data := make([]float64, 0, len(pts)*dim)
	for i, pt := range pts {
		if len(pt) != dim {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, point 0 has %d",
				ErrInvalidArgument, i, len(pt), dim)
		}
		data = append(data, pt...)
	}
	d = mat.NewDense(len(pts), dim, data)
	return
}

func toSlices(d *mat.Dense) (pts [][]float64) {
	n := rows(d)
	pts = make([][]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = mat.Row(nil, i, d)
	}
	return
}

func rows(d *mat.Dense) int {
	if d == nil {
		return 0
	}
	r, _ := d.Dims()
	return r
}
