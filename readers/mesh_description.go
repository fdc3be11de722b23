package readers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/tidwall/jsonc"

	"github.com/notargets/neumesh/mesh"
)

/*
MeshDescription is a mesh generator's output written as a YAML or JSON document:

	description: channel
	points: [[0, 0], [1, 0], [0, 1]]
	elements: [[0, 1, 2]]
	faces: [[0, 1], [1, 2], [2, 0]]
	face_markers: [7, 0, 0]

Point markers and holes are optional, faces are only needed when boundaries are exported.
*/
type MeshDescription struct {
	Description  string      `json:"description,omitempty"`
	Points       [][]float64 `json:"points"`
	PointMarkers []int       `json:"point_markers,omitempty"`
	Elements     [][]int     `json:"elements"`
	Holes        [][]float64 `json:"holes,omitempty"`
	Faces        [][]int     `json:"faces,omitempty"`
	FaceMarkers  []int       `json:"face_markers,omitempty"`
}

// ParseMeshDescription decodes YAML or JSON
func ParseMeshDescription(data []byte) (md *MeshDescription, err error) {
	md = &MeshDescription{}
	if err = yaml.Unmarshal(data, md); err != nil {
		return nil, fmt.Errorf("unable to parse mesh description: %w", err)
	}
	return
}

// ReadMeshDescription reads a .yaml, .yml, .json or .jsonc mesh description. JSON files may carry comments and
// trailing commas.
func ReadMeshDescription(filename string) (md *MeshDescription, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	if md, err = ParseMeshDescription(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

// Mesh fills a mesh container from the description
func (md *MeshDescription) Mesh() (m *mesh.Mesh, err error) {
	m = mesh.NewMesh()
	if err = m.SetPoints(md.Points, md.PointMarkers); err != nil {
		return nil, err
	}
	if err = m.SetHoles(md.Holes); err != nil {
		return nil, err
	}
	if err = m.SetElements(md.Elements); err != nil {
		return nil, err
	}
	if md.Faces != nil {
		if err = m.SetFaces(md.Faces, md.FaceMarkers); err != nil {
			return nil, err
		}
	}
	return
}

// NewMeshDescription captures a mesh container's contents so it can be stored
func NewMeshDescription(m *mesh.Mesh, description string) (md *MeshDescription) {
	md = &MeshDescription{
		Description:  description,
		Points:       m.Points(),
		PointMarkers: m.PointMarkers(),
		Elements:     m.Elements(),
		Holes:        m.Holes(),
	}
	if m.FacesComputed() {
		md.Faces = make([][]int, m.NumFaces())
		for i, f := range m.Faces() {
			md.Faces[i] = f.Verts
		}
		md.FaceMarkers = m.FaceMarkers()
	}
	return
}

// Marshal renders the description as YAML
func (md *MeshDescription) Marshal() ([]byte, error) {
	return yaml.Marshal(md)
}

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string, verbose bool) (mf *MeshFile, err error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".neu":
		return ReadGambitNeutral(filename, verbose)
	case ".yaml", ".yml", ".json", ".jsonc":
		var md *MeshDescription
		if md, err = ReadMeshDescription(filename); err != nil {
			return
		}
		mf = &MeshFile{Description: md.Description}
		if mf.Mesh, err = md.Mesh(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}
