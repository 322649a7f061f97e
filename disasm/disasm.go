// Package disasm implements a flow-sensitive disassembler for the MOS 6502.
// It walks the reachable code starting at the hardware vectors without
// executing it, classifies every visited address into a region and records
// backward references, then renders a labeled listing from the region map.
package disasm

import (
	"sort"

	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/mos6502/m6502"
	"github.com/retroenv/mos6502/memory"
)

// Disasm is the flow analyzer. It borrows the bus read-only, a host that
// runs it against a live machine has to synchronize externally.
type Disasm struct {
	logger  *log.Logger
	bus     *memory.Bus
	options Options

	regions   map[uint16]*Region
	conflicts []Conflict

	// covered maps every byte of a decoded instruction to the instruction
	// start, instructionStarts marks the starts themselves. Together they
	// detect both already-walked code and mid-instruction re-entry.
	covered           map[uint16]uint16
	instructionStarts map[uint16]bool

	callStack []uint16 // pending return addresses of walked calls
	jumpQueue []uint16 // pending branch targets not yet walked
}

// New creates a new disassembler for the given bus.
func New(logger *log.Logger, bus *memory.Bus, options Options) *Disasm {
	return &Disasm{
		logger:            logger,
		bus:               bus,
		options:           options,
		regions:           map[uint16]*Region{},
		covered:           map[uint16]uint16{},
		instructionStarts: map[uint16]bool{},
	}
}

// Run seeds the hardware regions and walks the code reachable from the
// reset, IRQ and NMI vectors.
func (d *Disasm) Run() {
	nmiTarget := d.bus.Read16(m6502.NMIAddress)
	resetTarget := d.bus.Read16(m6502.ResetAddress)
	irqTarget := d.bus.Read16(m6502.IRQAddress)

	d.ensureFunction(nmiTarget, m6502.NMIAddress)
	d.ensureFunction(resetTarget, m6502.ResetAddress)
	d.ensureFunction(irqTarget, m6502.IRQAddress)

	d.addRegion(m6502.NMIAddress, NewRegion(RegionPointer, 2, "NMI"))
	d.addRegion(m6502.ResetAddress, NewRegion(RegionPointer, 2, "RES"))
	d.addRegion(m6502.IRQAddress, NewRegion(RegionPointer, 2, "IRQ"))

	zeroPage := NewRegion(RegionSection, 0x100, "ZERO_PAGE")
	d.addRegion(0x0000, zeroPage)

	stack := NewRegion(RegionUnsigned8, 0x100, "STACK")
	stack.Array = true
	d.addRegion(m6502.StackBase, stack)

	d.logger.Debug("walking vectors",
		log.Hex("reset", resetTarget),
		log.Hex("irq", irqTarget),
		log.Hex("nmi", nmiTarget))

	d.walk(resetTarget)
	d.walk(irqTarget)
	d.walk(nmiTarget)
}

// Region returns the region at the given address.
func (d *Disasm) Region(address uint16) (*Region, bool) {
	r, ok := d.regions[address]
	return r, ok
}

// Regions returns all regions ordered by address.
func (d *Disasm) Regions() []AddressedRegion {
	regions := make([]AddressedRegion, 0, len(d.regions))
	for address, region := range d.regions {
		regions = append(regions, AddressedRegion{Address: address, Region: region})
	}
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Address < regions[j].Address
	})
	return regions
}

// AddressedRegion pairs a region with its address.
type AddressedRegion struct {
	Address uint16
	Region  *Region
}

// Conflicts returns the decode ambiguities found during the walk.
func (d *Disasm) Conflicts() []Conflict {
	return d.conflicts
}

// addRegion adds a region if the address is still unclassified and reports
// whether it was added.
func (d *Disasm) addRegion(address uint16, region *Region) bool {
	if _, ok := d.regions[address]; ok {
		return false
	}
	d.regions[address] = region
	return true
}

// walk disassembles forward from start, following calls and jumps and
// queueing branch targets, until all pending continuations are exhausted.
func (d *Disasm) walk(start uint16) {
	offset := int(start)

	for {
		if offset >= d.bus.Size() {
			var ok bool
			if offset, ok = d.continueAt(); !ok {
				return
			}
			continue
		}

		address := uint16(offset)

		if d.instructionStarts[address] {
			// path merged into already-walked code
			var ok bool
			if offset, ok = d.continueAt(); !ok {
				return
			}
			continue
		}
		if instruction, hit := d.covered[address]; hit {
			d.conflicts = append(d.conflicts, Conflict{
				Address:     address,
				Instruction: instruction,
			})
			d.logger.Debug("decode conflict",
				log.Hex("address", address),
				log.Hex("instruction", instruction))

			var ok bool
			if offset, ok = d.continueAt(); !ok {
				return
			}
			continue
		}

		opcode := m6502.Opcodes[d.bus.Read8(address)]
		size := 1 + opcode.Mode.OperandSize()
		if offset+size > d.bus.Size() {
			var ok bool
			if offset, ok = d.continueAt(); !ok {
				return
			}
			continue
		}

		d.instructionStarts[address] = true
		for i := range size {
			d.covered[address+uint16(i)] = address
		}

		offset = d.processInstruction(address, opcode, size)
		if offset >= 0 {
			continue
		}

		var ok bool
		if offset, ok = d.continueAt(); !ok {
			return
		}
	}
}

// processInstruction classifies the operand of the instruction at address
// and returns the next offset to walk, or -1 if the path ends here.
func (d *Disasm) processInstruction(address uint16, opcode m6502.Opcode, size int) int {
	next := int(address) + size

	switch {
	case opcode.Mode == m6502.ModeRelative:
		target := branchTarget(address, d.bus.ReadInt8(address+1))
		d.ensureLabel(target, address)
		d.jumpQueue = append(d.jumpQueue, target)
		return next

	case opcode.Name == "JSR":
		target := d.bus.Read16(address + 1)
		d.ensureFunction(target, address)
		d.callStack = append(d.callStack, uint16(next))
		return int(target)

	case opcode.Name == "JMP" && opcode.Mode == m6502.ModeAbsolute:
		target := d.bus.Read16(address + 1)
		d.ensureLabel(target, address)
		return int(target)

	case opcode.Name == "JMP" && opcode.Mode == m6502.ModeIndirect:
		pointer := d.bus.Read16(address + 1)
		if d.addRegion(pointer, NewRegion(RegionPointer, 2, pointerName(pointer))) {
			d.logger.Debug("jump pointer", log.Hex("address", pointer))
		}
		d.regions[pointer].AddRef(address)

		target := d.bus.Read16(pointer)
		d.ensureLabel(target, address)
		return int(target)

	case opcode.Name == "RTS" || opcode.Name == "RTI":
		return -1

	case opcode.Mode == m6502.ModeZeroPage:
		d.ensureData(uint16(d.bus.Read8(address+1)), address)
		return next

	case opcode.Mode == m6502.ModeAbsolute,
		opcode.Mode == m6502.ModeAbsoluteX,
		opcode.Mode == m6502.ModeAbsoluteY:
		d.ensureData(d.bus.Read16(address+1), address)
		return next

	default:
		return next
	}
}

// continueAt pops the next pending continuation: the return address of the
// innermost walked call first, an unvisited queued branch target otherwise.
func (d *Disasm) continueAt() (int, bool) {
	if n := len(d.callStack); n > 0 {
		offset := d.callStack[n-1]
		d.callStack = d.callStack[:n-1]
		return int(offset), true
	}

	for len(d.jumpQueue) > 0 {
		offset := d.jumpQueue[0]
		d.jumpQueue = d.jumpQueue[1:]
		if !d.instructionStarts[offset] {
			return int(offset), true
		}
	}
	return 0, false
}

// ensureFunction creates a function region at address or upgrades an
// existing label, and records the reference.
func (d *Disasm) ensureFunction(address, from uint16) {
	region, ok := d.regions[address]
	if !ok {
		region = NewRegion(RegionFunction, 0, functionName(address))
		d.regions[address] = region
		d.logger.Debug("function", log.Hex("address", address), log.Hex("from", from))
	} else {
		region.LabelToFunc(functionName(address))
	}
	region.AddRef(from)
}

// ensureLabel creates a label region at address, leaving any existing
// classification untouched, and records the reference.
func (d *Disasm) ensureLabel(address, from uint16) {
	region, ok := d.regions[address]
	if !ok {
		region = NewRegion(RegionLabel, 0, labelName(address))
		d.regions[address] = region
		d.logger.Debug("label", log.Hex("address", address), log.Hex("from", from))
	}
	region.AddRef(from)
}

// ensureData creates a byte data region at address, leaving any existing
// classification untouched, and records the reference.
func (d *Disasm) ensureData(address, from uint16) {
	region, ok := d.regions[address]
	if !ok {
		region = NewRegion(RegionUnsigned8, 1, dataName(address))
		d.regions[address] = region
		d.logger.Debug("data", log.Hex("address", address), log.Hex("from", from))
	}
	region.AddRef(from)
}

// branchTarget resolves the target of a relative branch at address.
func branchTarget(address uint16, displacement int8) uint16 {
	return address + 2 + uint16(int16(displacement))
}
