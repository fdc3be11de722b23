package utils

import "strings"

// BCType is the numeric boundary condition code written to a boundary condition section
type BCType uint16

const (
	// BCNone indicates an untagged (interior) face
	BCNone BCType = iota

	// Flow boundary conditions
	BCInflow
	BCOutflow
	BCWall
	BCSlipWall
	BCSymmetry
	BCPeriodic
	BCFarfield

	// Thermal boundary conditions
	BCIsothermal
	BCAdiabatic
	BCHeatFlux

	// Mathematical boundary conditions
	BCDirichlet
	BCNeumann
	BCRobin

	BCInterface
)

var bcNames = [...]string{
	BCNone:       "None",
	BCInflow:     "Inflow",
	BCOutflow:    "Outflow",
	BCWall:       "Wall",
	BCSlipWall:   "SlipWall",
	BCSymmetry:   "Symmetry",
	BCPeriodic:   "Periodic",
	BCFarfield:   "Farfield",
	BCIsothermal: "Isothermal",
	BCAdiabatic:  "Adiabatic",
	BCHeatFlux:   "HeatFlux",
	BCDirichlet:  "Dirichlet",
	BCNeumann:    "Neumann",
	BCRobin:      "Robin",
	BCInterface:  "Interface",
}

func (bc BCType) String() string {
	if int(bc) < len(bcNames) {
		return bcNames[bc]
	}
	return "Unknown"
}

// Code is the integer written as IBCODE1 in a boundary condition section header
func (bc BCType) Code() int {
	return int(bc)
}

// BCNameMap maps the boundary names found in mesh generator output to a BCType.
// Keys are lowercase, applications can add their own naming conventions.
var BCNameMap = map[string]BCType{
	"inlet":          BCInflow,
	"inflow":         BCInflow,
	"in":             BCInflow,
	"velocity_inlet": BCInflow,

	"outlet":          BCOutflow,
	"outflow":         BCOutflow,
	"out":             BCOutflow,
	"exit":            BCOutflow,
	"pressure_outlet": BCOutflow,

	"wall":          BCWall,
	"no_slip":       BCWall,
	"noslip":        BCWall,
	"slip":          BCSlipWall,
	"slip_wall":     BCSlipWall,
	"inviscid_wall": BCSlipWall,

	"symmetry":   BCSymmetry,
	"symmetric":  BCSymmetry,
	"farfield":   BCFarfield,
	"far_field":  BCFarfield,
	"far":        BCFarfield,
	"freestream": BCFarfield,
	"periodic":   BCPeriodic,

	"isothermal": BCIsothermal,
	"adiabatic":  BCAdiabatic,
	"heat_flux":  BCHeatFlux,

	"dirichlet": BCDirichlet,
	"neumann":   BCNeumann,
	"neuman":    BCNeumann,
	"robin":     BCRobin,

	"interface": BCInterface,
	"internal":  BCInterface,
}

// ParseBCName converts a boundary name to a BCType, case-insensitive.
// Unknown names are treated as walls.
func ParseBCName(name string) BCType {
	if bcType, ok := BCNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return bcType
	}
	return BCWall
}
