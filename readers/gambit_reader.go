package readers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/neumesh/mesh"
)

// MeshFile is a mesh together with the boundary setup it was stored with
type MeshFile struct {
	Mesh        *mesh.Mesh
	Description string
	BCs         mesh.BCSpec       // nil when the source carries no named boundaries
	Periodicity *mesh.Periodicity // nil when the source has no periodic boundary
}

// ReadGambitNeutral reads a Gambit neutral file (.neu)
func ReadGambitNeutral(filename string, verbose bool) (mf *MeshFile, err error) {
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	if verbose {
		log.Debugf("Reading Gambit Neutral file named: %s", filename)
	}
	if mf, err = ParseGambitNeutral(file, verbose); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

/*
ParseGambitNeutral reads simplex meshes (triangles or tetrahedra) in neutral format. Boundary condition sections
are turned into the mesh's face list: each section's faces get the marker 1, 2, 3... in section order, and the
section's name and code are returned under that marker. A section named "periodic" becomes the periodicity.
At most one periodic section is accepted. Writing the result back emits named sections first, so a periodic
section that is not last in the file moves to the end.
*/
func ParseGambitNeutral(r io.Reader, verbose bool) (mf *MeshFile, err error) {
	var (
		scanner                            = bufio.NewScanner(r)
		numnp, nelem, ngrps, nbsets, ndfcd int
		points                             [][]float64
		elements                           [][]int
		faces                              [][]int
		faceMarkers                        []int
		bcIndex, lineNumber                int
		sawControl, sawNodes, sawElements  bool
	)
	mf = &MeshFile{}
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	nextLine := func() (line string, err error) {
		if !scanner.Scan() {
			if err = scanner.Err(); err == nil {
				err = io.ErrUnexpectedEOF
			}
			return
		}
		lineNumber++
		line = strings.TrimSpace(scanner.Text())
		return
	}
	lineError := func(format string, args ...interface{}) error {
		return fmt.Errorf("line %d: "+format, append([]interface{}{lineNumber}, args...)...)
	}

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || line == "ENDOFSECTION":
			continue

		case strings.HasPrefix(line, "CONTROL INFO"):
			// Banner, description, program, date, table titles, table values
			var hdr [6]string
			for i := range hdr {
				if hdr[i], err = nextLine(); err != nil {
					return nil, lineError("reading control info: %v", err)
				}
			}
			mf.Description = hdr[1]
			values := strings.Fields(hdr[5])
			if len(values) < 5 {
				return nil, lineError("control info has %d values, need at least 5", len(values))
			}
			dims := make([]int, 5)
			for i := range dims {
				if dims[i], err = strconv.Atoi(values[i]); err != nil {
					return nil, lineError("control info: %v", err)
				}
			}
			numnp, nelem, ngrps, nbsets, ndfcd = dims[0], dims[1], dims[2], dims[3], dims[4]
			if numnp < 0 || nelem < 0 || nbsets < 0 {
				return nil, lineError("%w: negative counts in control info %v", mesh.ErrInvalidArgument, dims)
			}
			if ndfcd != 2 && ndfcd != 3 {
				return nil, lineError("%w: %d space dimensions", mesh.ErrUnsupportedDimension, ndfcd)
			}
			if verbose {
				log.Debugf("Nv = %d, K = %d, Ngroups = %d, Nbcs = %d, %d space dimensions",
					numnp, nelem, ngrps, nbsets, ndfcd)
			}
			sawControl = true

		case strings.HasPrefix(line, "NODAL COORDINATES"):
			if !sawControl {
				return nil, lineError("nodal coordinates before control info")
			}
			points = make([][]float64, numnp)
			for i := 0; i < numnp; i++ {
				if line, err = nextLine(); err != nil {
					return nil, lineError("reading nodes: %v", err)
				}
				fields := strings.Fields(line)
				if len(fields) < 1+ndfcd {
					return nil, lineError("node has %d fields, need %d", len(fields), 1+ndfcd)
				}
				var id int
				if id, err = strconv.Atoi(fields[0]); err != nil {
					return nil, lineError("node id: %v", err)
				}
				if id < 1 || id > numnp {
					return nil, lineError("node id %d out of range 1..%d", id, numnp)
				}
				pt := make([]float64, ndfcd)
				for j := range pt {
					if pt[j], err = strconv.ParseFloat(fields[1+j], 64); err != nil {
						return nil, lineError("node %d: %v", id, err)
					}
				}
				points[id-1] = pt
			}
			sawNodes = true

		case strings.HasPrefix(line, "ELEMENTS/CELLS"):
			elements = make([][]int, nelem)
			for k := 0; k < nelem; k++ {
				if line, err = nextLine(); err != nil {
					return nil, lineError("reading elements: %v", err)
				}
				ints, perr := parseInts(strings.Fields(line))
				if perr != nil {
					return nil, lineError("element: %v", perr)
				}
				if len(ints) < 3 {
					return nil, lineError("element line is short")
				}
				id, gambitType, nv := ints[0], ints[1], ints[2]
				if nv < 3 || nv > 4 {
					return nil, lineError("%w: element %d has %d vertices, need 3 or 4", mesh.ErrInvalidArgument, id, nv)
				}
				if len(ints) < 3+nv {
					return nil, lineError("element line is short")
				}
				if id < 1 || id > nelem {
					return nil, lineError("element id %d out of range 1..%d", id, nelem)
				}
				if gambitType != 3 && gambitType != 6 {
					return nil, lineError("%w: element type %d, only triangles (3) and tetrahedra (6) are supported",
						mesh.ErrInvalidArgument, gambitType)
				}
				el := make([]int, nv)
				for j := range el {
					// Gambit uses 1-based node IDs
					el[j] = ints[3+j] - 1
				}
				elements[id-1] = el
			}
			sawElements = true

		case strings.HasPrefix(line, "ELEMENT GROUP"):
			// Group membership is not kept, every exported mesh has a single group
			for {
				if line, err = nextLine(); err != nil {
					return nil, lineError("reading element group: %v", err)
				}
				if line == "ENDOFSECTION" {
					break
				}
				if verbose && strings.HasPrefix(line, "GROUP:") {
					log.Debugf("Skipping %s", line)
				}
			}

		case strings.HasPrefix(line, "BOUNDARY CONDITIONS"):
			if !sawElements {
				return nil, lineError("boundary conditions before elements")
			}
			if line, err = nextLine(); err != nil {
				return nil, lineError("reading boundary header: %v", err)
			}
			bcIndex++
			marker := bcIndex
			var (
				name          string
				itype, nentry int
			)
			if name, itype, nentry, err = parseBCHeader(mf, marker, line); err != nil {
				return nil, lineError("%w", err)
			}
			if verbose {
				log.Debugf("Boundary %q: %d entries, marker %d", name, nentry, marker)
			}
			for i := 0; i < nentry; i++ {
				if line, err = nextLine(); err != nil {
					return nil, lineError("reading boundary %s: %v", name, err)
				}
				if itype != 1 {
					// Nodal boundary data is not representable as faces
					continue
				}
				ints, perr := parseInts(strings.Fields(line))
				if perr != nil || len(ints) < 3 {
					return nil, lineError("boundary face entry %q", line)
				}
				k, localFace := ints[0]-1, ints[2]
				if k < 0 || k >= len(elements) || elements[k] == nil {
					return nil, lineError("boundary face references element %d", k+1)
				}
				lfs, lerr := mesh.LocalFaces(ndfcd, elements[k])
				if lerr != nil {
					return nil, lineError("%w", lerr)
				}
				if localFace < 1 || localFace > len(lfs) {
					return nil, lineError("local face %d out of range 1..%d", localFace, len(lfs))
				}
				faces = append(faces, lfs[localFace-1])
				faceMarkers = append(faceMarkers, marker)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	if !sawNodes {
		return nil, fmt.Errorf("%w: no nodal coordinates", mesh.ErrEmptyMesh)
	}
	if bcIndex != nbsets && verbose {
		log.Warnf("header lists %d boundary sets, read %d", nbsets, bcIndex)
	}

	mf.Mesh = mesh.NewMesh()
	if err = mf.Mesh.SetPoints(points, nil); err != nil {
		return nil, err
	}
	for k, el := range elements {
		if el == nil {
			return nil, fmt.Errorf("%w: element %d missing", mesh.ErrInvalidArgument, k+1)
		}
	}
	if err = mf.Mesh.SetElements(elements); err != nil {
		return nil, err
	}
	if faces == nil {
		faces, faceMarkers = [][]int{}, []int{}
	}
	if err = mf.Mesh.SetFaces(faces, faceMarkers); err != nil {
		return nil, err
	}
	return
}

// parseBCHeader decodes a boundary section header: "name itype nentry nvalues code" or
// "periodic p1 .. pd nentry nvalues code"
func parseBCHeader(mf *MeshFile, marker int, line string) (name string, itype, nentry int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		err = fmt.Errorf("boundary header %q has %d fields, need at least 4", line, len(fields))
		return
	}
	name = fields[0]
	if strings.ToLower(name) == "periodic" {
		if mf.Periodicity != nil {
			err = fmt.Errorf("%w: second periodic boundary, first has marker %d",
				mesh.ErrInvalidArgument, mf.Periodicity.Marker)
			return
		}
		nf := len(fields)
		if nf < 5 {
			err = fmt.Errorf("periodic boundary header %q is short", line)
			return
		}
		periods := make([]float64, nf-4)
		for i := range periods {
			if periods[i], err = strconv.ParseFloat(fields[1+i], 64); err != nil {
				return
			}
		}
		if nentry, err = strconv.Atoi(fields[nf-3]); err != nil {
			return
		}
		itype = 1
		mf.Periodicity = &mesh.Periodicity{Marker: marker, Periods: periods}
		return
	}
	var ints []int
	if ints, err = parseInts(fields[1:]); err != nil {
		return
	}
	itype, nentry = ints[0], ints[1]
	var code int
	if len(ints) > 3 {
		code = ints[3]
	}
	if mf.BCs == nil {
		mf.BCs = make(mesh.BCSpec)
	}
	mf.BCs[marker] = mesh.BoundaryCondition{Name: name, Code: code}
	return
}

func parseInts(fields []string) (ints []int, err error) {
	ints = make([]int, len(fields))
	for i, f := range fields {
		if ints[i], err = strconv.Atoi(f); err != nil {
			return
		}
	}
	return
}
