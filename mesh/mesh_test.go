package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/neumesh/types"
)

func TestSetPoints(t *testing.T) {
	m := NewMesh()
	assert.Equal(t, 0, m.NumPoints())
	assert.Equal(t, 0, m.Dim())
	assert.False(t, m.FacesComputed())

	require.NoError(t, m.SetPoints([][]float64{{0, 0}, {1, 0}, {0, 1}}, []int{1, 2, 3}))
	assert.Equal(t, 3, m.NumPoints())
	assert.Equal(t, 2, m.Dim())
	assert.Equal(t, []float64{1, 0}, m.Point(1))
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {0, 1}}, m.Points())
	assert.Equal(t, []int{1, 2, 3}, m.PointMarkers())

	// Replacing points without markers resets them
	require.NoError(t, m.SetPoints([][]float64{{0, 0, 0}, {1, 0, 0}}, nil))
	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, []int{0, 0}, m.PointMarkers())

	// Marker length must agree with point count in both directions
	err := m.SetPoints([][]float64{{0, 0}, {1, 0}}, []int{1})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	err = m.SetPoints([][]float64{{0, 0}}, []int{1, 2})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	// A failed call leaves the container untouched
	assert.Equal(t, 2, m.NumPoints())
	assert.Equal(t, 3, m.Dim())

	err = m.SetPoints([][]float64{{0, 0}, {1, 0, 0}}, nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	err = m.SetPoints([][]float64{{0, 0, 0, 0}}, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedDimension))

	require.NoError(t, m.SetPoints(nil, nil))
	assert.Equal(t, 0, m.NumPoints())
	assert.Equal(t, 0, m.Dim())
}

func TestSetHoles(t *testing.T) {
	m := NewMesh()
	require.NoError(t, m.SetHoles([][]float64{{0.5, 0.5}, {2, 2}}))
	assert.Equal(t, 2, m.NumHoles())
	assert.Equal(t, []float64{2, 2}, m.Hole(1))
	require.NoError(t, m.SetHoles([][]float64{{0.25, 0.25}}))
	assert.Equal(t, [][]float64{{0.25, 0.25}}, m.Holes())
	assert.Error(t, m.SetHoles([][]float64{{0, 0}, {1}}))
	require.NoError(t, m.SetHoles(nil))
	assert.Equal(t, 0, m.NumHoles())
}

func TestSetElements(t *testing.T) {
	m := NewMesh()
	require.NoError(t, m.SetPoints([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, nil))
	els := [][]int{{0, 1, 2}, {1, 3, 2}}
	require.NoError(t, m.SetElements(els))
	assert.Equal(t, 2, m.NumElements())
	assert.Equal(t, []int{1, 3, 2}, m.Element(1))
	// The container keeps its own copy
	els[0][0] = 3
	assert.Equal(t, []int{0, 1, 2}, m.Element(0))

	assert.True(t, errors.Is(m.SetElements([][]int{{0, 1, 4}}), ErrInvalidArgument))
	assert.True(t, errors.Is(m.SetElements([][]int{{0, 1, -1}}), ErrInvalidArgument))
	assert.True(t, errors.Is(m.SetElements([][]int{{0, 1}}), ErrInvalidArgument))
	assert.True(t, errors.Is(m.SetElements([][]int{{0, 1, 2}, {0, 1, 2, 3}}), ErrInvalidArgument))
	assert.Equal(t, 2, m.NumElements())
}

func TestSetFaces(t *testing.T) {
	m := NewMesh()
	require.NoError(t, m.SetFaces([][]int{{1, 0}, {2, 1}}, []int{5, 0}))
	assert.True(t, m.FacesComputed())
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, []int{1, 0}, m.Face(0).Verts)
	assert.Equal(t, types.NewFaceKey(0, 1), m.Face(0).Key)
	assert.Equal(t, []int{5, 0}, m.FaceMarkers())

	assert.True(t, errors.Is(m.SetFaces([][]int{{1, 0}}, []int{1, 2}), ErrInvalidArgument))
	assert.True(t, errors.Is(m.SetFaces([][]int{{1}}, nil), ErrInvalidArgument))
	assert.True(t, errors.Is(m.SetFaces([][]int{{1, -2}}, nil), ErrInvalidArgument))

	// Faces without markers are untagged
	require.NoError(t, m.SetFaces([][]int{{0, 1, 2}}, nil))
	assert.Equal(t, []int{0}, m.FaceMarkers())

	// An empty face list still counts as computed
	empty := NewMesh()
	require.NoError(t, empty.SetFaces([][]int{}, []int{}))
	assert.True(t, empty.FacesComputed())
	assert.Equal(t, 0, empty.NumFaces())
}

func TestStandardMeshes(t *testing.T) {
	for _, n := range []int{1, 2, 8, 9, 16} {
		m := NewTriangleStripMesh(n)
		assert.Equal(t, n, m.NumElements())
		assert.Equal(t, 2, m.Dim())
	}
	assert.Panics(t, func() { NewTriangleStripMesh(0) })
	assert.Equal(t, 3, NewSingleTetMesh().Dim())
	assert.Equal(t, 2, NewTwoTetMesh(false).NumElements())
}
