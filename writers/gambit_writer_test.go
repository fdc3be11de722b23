package writers

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/neumesh/mesh"
)

func fixedWriter(description string) *NeutralWriter {
	nw := NewNeutralWriter()
	nw.Description = description
	nw.Now = func() time.Time { return time.Date(2026, 10, 5, 9, 3, 7, 0, time.UTC) }
	return nw
}

func writeString(t *testing.T, m *mesh.Mesh, bcs mesh.BCSpec, per *mesh.Periodicity) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, fixedWriter(DefaultDescription).Write(&buf, m, bcs, per))
	return buf.String()
}

// sections splits output into the lines of each section, dropping the ENDOFSECTION terminators
func sections(t *testing.T, out string) (secs [][]string) {
	t.Helper()
	require.True(t, strings.HasSuffix(out, SectionEnd+"\n"))
	var cur []string
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if line == SectionEnd {
			secs = append(secs, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	require.Nil(t, cur)
	return
}

func TestWriteSingleTriangle(t *testing.T) {
	out := writeString(t, mesh.NewSingleTriangleMesh(), mesh.BCSpec{mesh.MarkerWall: {Name: "wall", Code: 4}}, nil)
	expected := strings.Join([]string{
		"CONTROL INFO 2.1.2",
		"** GAMBIT NEUTRAL FILE",
		"neumesh Output",
		"PROGRAM: neumesh VERSION: 0.1.0",
		"Mon Oct  5 09:03:07 2026",
		"NUMNP NELEM NGRPS NBSETS NDFCD NDFVL",
		"3     1     1     1      2     2    ",
		"ENDOFSECTION",
		"NODAL COORDINATES 2.1.2",
		"1\t0.0\t0.0",
		"2\t1.0\t0.0",
		"3\t0.0\t1.0",
		"ENDOFSECTION",
		"ELEMENTS/CELLS 2.1.2",
		"1\t3\t3\t1\t2\t3",
		"ENDOFSECTION",
		"ELEMENT GROUP 1.3.0",
		"GROUP: 1 ELEMENTS: 1 MATERIAL: 1.0 NFLAGS: 0",
		"epsilon: 1.0",
		"0",
		"1",
		"ENDOFSECTION",
		"BOUNDARY CONDITIONS 2.1.2",
		"wall\t1\t1\t0\t4",
		"1\t3\t1",
		"ENDOFSECTION",
		"",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestWriteHeaderCounts(t *testing.T) {
	m := mesh.NewTwoTetMesh(false)
	bcs := mesh.BCSpec{mesh.MarkerWall: {Name: "wall", Code: 3}, mesh.MarkerOutflow: {Name: "outflow", Code: 2}}
	secs := sections(t, writeString(t, m, bcs, nil))
	require.Equal(t, 6, len(secs))
	header := secs[0]
	require.Equal(t, 7, len(header))
	assert.Equal(t, strings.Fields("NUMNP NELEM NGRPS NBSETS NDFCD NDFVL"), strings.Fields(header[5]))
	assert.Equal(t, []string{"5", "2", "1", "2", "3", "3"}, strings.Fields(header[6]))
	// Columns line up
	assert.Equal(t, len(header[5]), len(header[6]))

	// 3D nodes and tetrahedra, one-based
	assert.Equal(t, "NODAL COORDINATES 2.1.2", secs[1][0])
	assert.Equal(t, 6, len(secs[1]))
	assert.Equal(t, "5\t1.0\t1.0\t1.0", secs[1][5])
	assert.Equal(t, []string{"ELEMENTS/CELLS 2.1.2", "1\t6\t4\t1\t2\t3\t4", "2\t6\t4\t2\t3\t4\t5"}, secs[2])
	assert.Equal(t, "GROUP: 1 ELEMENTS: 2 MATERIAL: 1.0 NFLAGS: 0", secs[3][1])
	assert.Equal(t, "1\t2", secs[3][4])

	// Wall (7) before outflow (9)
	assert.Equal(t, []string{"BOUNDARY CONDITIONS 2.1.2", "wall\t1\t3\t0\t3", "1\t6\t1", "1\t6\t2", "1\t6\t4"}, secs[4])
	assert.Equal(t, []string{"BOUNDARY CONDITIONS 2.1.2", "outflow\t1\t3\t0\t2", "2\t6\t2", "2\t6\t4", "2\t6\t3"}, secs[5])
}

func TestWriteElementGroupWrapping(t *testing.T) {
	cases := map[int][]string{
		8:  {"1\t2\t3\t4\t5\t6\t7\t8"},
		9:  {"1\t2\t3\t4\t5\t6\t7\t8", "9"},
		16: {"1\t2\t3\t4\t5\t6\t7\t8", "9\t10\t11\t12\t13\t14\t15\t16"},
		17: {"1\t2\t3\t4\t5\t6\t7\t8", "9\t10\t11\t12\t13\t14\t15\t16", "17"},
	}
	for n, lines := range cases {
		secs := sections(t, writeString(t, mesh.NewTriangleStripMesh(n), nil, nil))
		require.Equal(t, 4, len(secs), "no boundary sections requested")
		group := secs[3]
		assert.Equal(t, SectionGroup, group[0])
		assert.Equal(t, "0", group[3])
		assert.Equal(t, lines, group[4:], "%d elements", n)
		assert.Equal(t, "0", strings.Fields(secs[0][6])[3])
	}
}

func TestWriteBoundaryCounts(t *testing.T) {
	m := mesh.NewTriangleStripMesh(9)
	per := &mesh.Periodicity{Marker: mesh.MarkerPeriodic, Periods: []float64{5, 0}}
	secs := sections(t, writeString(t, m, mesh.BCSpec{mesh.MarkerWall: {Name: "bottom", Code: 3}}, per))
	require.Equal(t, 6, len(secs))
	assert.Equal(t, "2", strings.Fields(secs[0][6])[3])

	wall := secs[4]
	assert.Equal(t, "bottom\t1\t5\t0\t3", wall[1])
	assert.Equal(t, 5, len(wall[2:]))
	for i, line := range wall[2:] {
		// Bottom edges belong to the even triangles, local face 1
		assert.Equal(t, []string{strconv.Itoa(2*i + 1), "3", "1"}, strings.Split(line, "\t"))
	}

	periodic := secs[5]
	assert.Equal(t, []string{SectionBoundary, "periodic\t5.0\t0.0\t1\t0\t0", "1\t3\t3"}, periodic)
}

func TestWriteDescription(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNeu(&buf, mesh.NewSingleTriangleMesh(), nil, nil, "airfoil"))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "airfoil", lines[2])
	assert.Equal(t, "PROGRAM: neumesh VERSION: 0.1.0", lines[3])
	_, err := time.Parse(time.ANSIC, lines[4])
	assert.NoError(t, err)

	buf.Reset()
	require.NoError(t, WriteNeu(&buf, mesh.NewSingleTriangleMesh(), nil, nil))
	assert.Equal(t, DefaultDescription, strings.Split(buf.String(), "\n")[2])
}

type closingBuffer struct {
	bytes.Buffer
	closed bool
}

func (cb *closingBuffer) Close() error {
	cb.closed = true
	return nil
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSink(t *testing.T) {
	cb := &closingBuffer{}
	require.NoError(t, WriteNeu(cb, mesh.NewUnitSquareMesh(), nil, nil))
	assert.True(t, cb.closed)
	assert.True(t, strings.HasPrefix(cb.String(), SectionControl))

	err := WriteNeu(failingWriter{}, mesh.NewUnitSquareMesh(), nil, nil)
	assert.EqualError(t, err, "disk full")
}

func TestWriteErrors(t *testing.T) {
	{ // No points, nothing written and the sink stays open
		cb := &closingBuffer{}
		err := WriteNeu(cb, mesh.NewMesh(), nil, nil)
		assert.True(t, errors.Is(err, mesh.ErrEmptyMesh))
		assert.Equal(t, 0, cb.Len())
		assert.False(t, cb.closed)
	}
	{ // Tagged face shared by two tetrahedra
		var buf bytes.Buffer
		err := WriteNeu(&buf, mesh.NewTwoTetMesh(true), mesh.BCSpec{mesh.MarkerWall: {Name: "wall", Code: 3}}, nil)
		assert.True(t, errors.Is(err, mesh.ErrBoundaryFaceNotManifold))
		assert.Equal(t, 0, buf.Len())
	}
	{ // Boundary sections need the face list
		m := mesh.NewMesh()
		require.NoError(t, m.SetPoints([][]float64{{0, 0}, {1, 0}, {0, 1}}, nil))
		require.NoError(t, m.SetElements([][]int{{0, 1, 2}}))
		var buf bytes.Buffer
		err := WriteNeu(&buf, m, mesh.BCSpec{1: {Name: "wall", Code: 3}}, nil)
		assert.True(t, errors.Is(err, mesh.ErrFacesNotComputed))
		assert.Equal(t, 0, buf.Len())
		require.NoError(t, WriteNeu(&buf, m, nil, nil))
	}
	{ // Tetrahedra on planar points
		m := mesh.NewMesh()
		require.NoError(t, m.SetPoints([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, nil))
		require.NoError(t, m.SetElements([][]int{{0, 1, 2, 3}}))
		var buf bytes.Buffer
		err := WriteNeu(&buf, m, nil, nil)
		assert.True(t, errors.Is(err, mesh.ErrInvalidArgument))
		assert.Equal(t, 0, buf.Len())
	}
}
