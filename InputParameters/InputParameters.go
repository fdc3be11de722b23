package InputParameters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"github.com/spf13/cast"
	"github.com/tidwall/jsonc"

	"github.com/notargets/neumesh/mesh"
	"github.com/notargets/neumesh/utils"
)

// BCParameters names the boundary exported for one face marker. A missing Code is derived from the name.
type BCParameters struct {
	Name string `json:"Name" toml:"Name"`
	Code *int   `json:"Code,omitempty" toml:"Code"`
}

type PeriodicParameters struct {
	Marker  int       `json:"Marker" toml:"Marker"`
	Periods []float64 `json:"Periods" toml:"Periods"`
}

// Parameters obtained from the export input file
type ExportParameters struct {
	Title       string               `json:"Title"`
	BCs         map[int]BCParameters `json:"BCs"` // Keyed by face marker
	Periodicity *PeriodicParameters  `json:"Periodicity,omitempty"`
}

// Parse reads YAML or JSON
func (ip *ExportParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// tomlParameters mirrors ExportParameters, TOML table keys are always strings
type tomlParameters struct {
	Title       string
	BCs         map[string]BCParameters
	Periodicity *PeriodicParameters
}

// ParseTOML reads TOML, where markers are written as quoted keys:
//
//	[BCs."7"]
//	Name = "wall"
func (ip *ExportParameters) ParseTOML(data []byte) (err error) {
	var tp tomlParameters
	if _, err = toml.Decode(string(data), &tp); err != nil {
		return
	}
	ip.Title = tp.Title
	ip.Periodicity = tp.Periodicity
	ip.BCs = make(map[int]BCParameters, len(tp.BCs))
	for key, bc := range tp.BCs {
		var marker int
		if marker, err = cast.ToIntE(strings.TrimSpace(key)); err != nil {
			return fmt.Errorf("BC marker %q: %w", key, err)
		}
		ip.BCs[marker] = bc
	}
	return
}

// ReadExportParameters parses a .yaml, .yml, .json, .jsonc or .toml file
func ReadExportParameters(filename string) (ip *ExportParameters, err error) {
	var data []byte
	if data, err = os.ReadFile(filename); err != nil {
		return
	}
	ip = &ExportParameters{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = ip.ParseTOML(data)
	case ".json", ".jsonc":
		err = ip.Parse(jsonc.ToJSON(data))
	default:
		err = ip.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

// BCSpec converts the parameters to the exporter's boundary specification
func (ip *ExportParameters) BCSpec() (bcs mesh.BCSpec) {
	bcs = make(mesh.BCSpec, len(ip.BCs))
	for marker, bc := range ip.BCs {
		code := utils.ParseBCName(bc.Name).Code()
		if bc.Code != nil {
			code = *bc.Code
		}
		bcs[marker] = mesh.BoundaryCondition{Name: bc.Name, Code: code}
	}
	return
}

func (ip *ExportParameters) PeriodicitySpec() *mesh.Periodicity {
	if ip.Periodicity == nil {
		return nil
	}
	periods := make([]float64, len(ip.Periodicity.Periods))
	copy(periods, ip.Periodicity.Periods)
	return &mesh.Periodicity{Marker: ip.Periodicity.Marker, Periods: periods}
}

func (ip *ExportParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	markers := make([]int, 0, len(ip.BCs))
	for marker := range ip.BCs {
		markers = append(markers, marker)
	}
	sort.Ints(markers)
	bcs := ip.BCSpec()
	for _, marker := range markers {
		fmt.Fprintf(w, "BCs[%d] = %s, code %d\n", marker, bcs[marker].Name, bcs[marker].Code)
	}
	if per := ip.Periodicity; per != nil {
		fmt.Fprintf(w, "Periodic[%d] = %v\n", per.Marker, per.Periods)
	}
}
