package writers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/notargets/neumesh/mesh"
	"github.com/notargets/neumesh/types"
	"github.com/notargets/neumesh/utils"
)

const (
	ProgramName        = "neumesh"
	ProgramVersion     = "0.1.0"
	DefaultDescription = "neumesh Output"

	// Element group values, every element goes into one group
	groupMaterial    = 1.
	groupFlags       = 0
	groupMaterialTag = "epsilon"
	elementsPerLine  = 8
)

// Section headers of the neutral file, matched verbatim by readers
const (
	SectionControl    = "CONTROL INFO 2.1.2"
	SectionNodes      = "NODAL COORDINATES 2.1.2"
	SectionElements   = "ELEMENTS/CELLS 2.1.2"
	SectionGroup      = "ELEMENT GROUP 1.3.0"
	SectionBoundary   = "BOUNDARY CONDITIONS 2.1.2"
	SectionEnd        = "ENDOFSECTION"
	neutralFileBanner = "** GAMBIT NEUTRAL FILE"
	periodicBCName    = "periodic"
)

// NeutralWriter writes meshes in Gambit neutral (.neu) format
type NeutralWriter struct {
	Description string
	Program     string
	Version     string
	Now         func() time.Time // Clock for the header timestamp
}

func NewNeutralWriter() *NeutralWriter {
	return &NeutralWriter{
		Description: DefaultDescription,
		Program:     ProgramName,
		Version:     ProgramVersion,
		Now:         time.Now,
	}
}

// WriteNeu writes m to sink with the default writer settings. The first description, if any, replaces the
// default description line.
func WriteNeu(sink io.Writer, m *mesh.Mesh, bcs mesh.BCSpec, per *mesh.Periodicity, description ...string) error {
	nw := NewNeutralWriter()
	if len(description) != 0 {
		nw.Description = description[0]
	}
	return nw.Write(sink, m, bcs, per)
}

/*
Write serializes m and its boundary faces to sink. bcs maps face markers to named boundary conditions, per
optionally declares a periodic boundary. Adjacency and boundary classification are computed before anything is
written, so a malformed mesh produces no output. If sink is an io.Closer it is closed after the last section.
*/
func (nw *NeutralWriter) Write(sink io.Writer, m *mesh.Mesh, bcs mesh.BCSpec, per *mesh.Periodicity) (err error) {
	var (
		dim    = m.Dim()
		eltype types.GambitElementType
		adj    mesh.FaceAdjacency
		groups []mesh.BoundaryGroup
	)
	if m.NumPoints() == 0 {
		return fmt.Errorf("unable to write neutral file: %w", mesh.ErrEmptyMesh)
	}
	if eltype, err = types.ElementTypeCode(dim); err != nil {
		return fmt.Errorf("%w: %s", mesh.ErrUnsupportedDimension, err.Error())
	}
	if adj, err = mesh.BuildFaceAdjacency(m.Elements(), dim); err != nil {
		return
	}
	if groups, err = m.ClassifyBoundaries(bcs, per, adj); err != nil {
		return
	}

	w := bufio.NewWriter(sink)
	nw.writeControl(w, m, len(groups))
	writeNodes(w, m)
	writeElements(w, m, eltype)
	writeGroup(w, m)
	for _, grp := range groups {
		writeBoundary(w, grp, eltype)
	}
	if err = w.Flush(); err != nil {
		return
	}
	if closer, ok := sink.(io.Closer); ok {
		err = closer.Close()
	}
	return
}

func (nw *NeutralWriter) writeControl(w *bufio.Writer, m *mesh.Mesh, nbsets int) {
	var (
		now = time.Now
		dim = m.Dim()
	)
	if nw.Now != nil {
		now = nw.Now
	}
	fmt.Fprintln(w, SectionControl)
	fmt.Fprintln(w, neutralFileBanner)
	fmt.Fprintln(w, nw.Description)
	fmt.Fprintf(w, "PROGRAM: %s VERSION: %s\n", nw.Program, nw.Version)
	fmt.Fprintln(w, now().Format(time.ANSIC))

	tbl := utils.NewTable()
	tbl.AddRow("NUMNP", "NELEM", "NGRPS", "NBSETS", "NDFCD", "NDFVL")
	tbl.AddRow(
		strconv.Itoa(m.NumPoints()),
		strconv.Itoa(m.NumElements()),
		"1",
		strconv.Itoa(nbsets),
		strconv.Itoa(dim),
		strconv.Itoa(dim),
	)
	fmt.Fprintln(w, tbl.String())
	fmt.Fprintln(w, SectionEnd)
}

func writeNodes(w *bufio.Writer, m *mesh.Mesh) {
	fmt.Fprintln(w, SectionNodes)
	for i := 0; i < m.NumPoints(); i++ {
		fmt.Fprintf(w, "%d\t%s\n", i+1, strings.Join(utils.FormatReals(m.Point(i)), "\t"))
	}
	fmt.Fprintln(w, SectionEnd)
}

func writeElements(w *bufio.Writer, m *mesh.Mesh, eltype types.GambitElementType) {
	fmt.Fprintln(w, SectionElements)
	for k, el := range m.Elements() {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", k+1, eltype, len(el),
			strings.Join(utils.FormatInts(el, 1), "\t"))
	}
	fmt.Fprintln(w, SectionEnd)
}

func writeGroup(w *bufio.Writer, m *mesh.Mesh) {
	var (
		ne  = m.NumElements()
		ids = make([]int, ne)
	)
	for k := range ids {
		ids[k] = k
	}
	fmt.Fprintln(w, SectionGroup)
	fmt.Fprintf(w, "GROUP: %d ELEMENTS: %d MATERIAL: %s NFLAGS: %d\n",
		1, ne, utils.FormatReal(groupMaterial), groupFlags)
	fmt.Fprintf(w, "%s: %s\n", groupMaterialTag, utils.FormatReal(groupMaterial))
	fmt.Fprintln(w, "0")
	fmt.Fprintln(w, utils.LineBreakList(utils.FormatInts(ids, 1), elementsPerLine))
	fmt.Fprintln(w, SectionEnd)
}

func writeBoundary(w *bufio.Writer, grp mesh.BoundaryGroup, eltype types.GambitElementType) {
	fmt.Fprintln(w, SectionBoundary)
	if grp.Periodic {
		// ITYPE is replaced by the periods, zero values per face and a zero code
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", periodicBCName,
			strings.Join(utils.FormatReals(grp.Periods), "\t"), len(grp.Faces), 0, 0)
	} else {
		// ITYPE 1 is a face (element/cell) boundary, zero values per face
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", grp.Condition.Name, 1, len(grp.Faces), 0, grp.Condition.Code)
	}
	for _, f := range grp.Faces {
		fmt.Fprintf(w, "%d\t%d\t%d\n", f.Element+1, eltype, f.LocalFace)
	}
	fmt.Fprintln(w, SectionEnd)
}
