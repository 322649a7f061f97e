package disasm

import "fmt"

// RegionType classifies what an address holds.
type RegionType uint8

// Region types.
const (
	RegionLabel RegionType = iota + 1
	RegionFunction
	RegionSection
	RegionSigned8
	RegionUnsigned8
	RegionSigned16
	RegionUnsigned16
	RegionPointer
)

// String returns the region type name.
func (r RegionType) String() string {
	switch r {
	case RegionLabel:
		return "label"
	case RegionFunction:
		return "function"
	case RegionSection:
		return "section"
	case RegionSigned8:
		return "i8"
	case RegionUnsigned8:
		return "u8"
	case RegionSigned16:
		return "i16"
	case RegionUnsigned16:
		return "u16"
	case RegionPointer:
		return "pointer"
	}
	return "???"
}

// DataSize returns the number of bytes a single entry of this type occupies
// in memory, 0 for the code region types that do not consume bytes by
// themselves.
func (r RegionType) DataSize() int {
	switch r {
	case RegionSigned8, RegionUnsigned8:
		return 1
	case RegionSigned16, RegionUnsigned16, RegionPointer:
		return 2
	default:
		return 0
	}
}

// Region is the classification of a single address: its type, a declared
// byte size, a symbol name and the addresses referencing it. Regions are
// created lazily as the flow analyzer discovers references.
type Region struct {
	Type  RegionType
	Size  int
	Name  string
	Array bool

	refs []uint16
}

// NewRegion creates a new region.
func NewRegion(typ RegionType, size int, name string) *Region {
	return &Region{
		Type: typ,
		Size: size,
		Name: name,
	}
}

// AddRef records an address that references the region. References are kept
// in discovery order, duplicates are dropped.
func (r *Region) AddRef(address uint16) {
	for _, ref := range r.refs {
		if ref == address {
			return
		}
	}
	r.refs = append(r.refs, address)
}

// Refs returns the referencing addresses in discovery order.
func (r *Region) Refs() []uint16 {
	return r.refs
}

// LabelToFunc upgrades a label region to a function region and renames it.
// Any other region type is left untouched, classifications are never
// downgraded.
func (r *Region) LabelToFunc(name string) {
	if r.Type != RegionLabel {
		return
	}
	r.Type = RegionFunction
	r.Name = name
}

// Conflict records a decode ambiguity: the walk re-entered the middle of a
// previously decoded instruction, usually caused by self-modifying code or
// overlapping branches. The earlier classification wins.
type Conflict struct {
	// Address is the target that fell inside an existing instruction.
	Address uint16
	// Instruction is the start of the instruction already covering it.
	Instruction uint16
}

// String implements the fmt.Stringer interface.
func (c Conflict) String() string {
	return fmt.Sprintf("$%04X inside instruction at $%04X", c.Address, c.Instruction)
}

func functionName(address uint16) string {
	return fmt.Sprintf("FUN_%04X", address)
}

func labelName(address uint16) string {
	return fmt.Sprintf("LAB_%04X", address)
}

func dataName(address uint16) string {
	return fmt.Sprintf("DAT_%04X", address)
}

func pointerName(address uint16) string {
	return fmt.Sprintf("PTR_%04X", address)
}
