package disasm

import (
	"slices"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/mos6502/m6502"
	"github.com/retroenv/mos6502/memory"
)

// newTestDisasm loads code at 0x8000, points all hardware vectors at
// useful addresses and runs the analyzer.
func newTestDisasm(t *testing.T, options Options, code ...byte) (*Disasm, *memory.Bus) {
	t.Helper()

	bus := memory.New(0x10000)
	bus.Write(0x8000, code)
	bus.Write16(m6502.ResetAddress, 0x8000)

	// park the interrupt vectors on a lone RTI
	bus.Write8(0x7FFF, 0x40)
	bus.Write16(m6502.NMIAddress, 0x7FFF)
	bus.Write16(m6502.IRQAddress, 0x7FFF)

	d := New(log.NewTestLogger(t), bus, options)
	d.Run()
	return d, bus
}

func TestRunClassifiesFlow(t *testing.T) {
	d, _ := newTestDisasm(t, Options{},
		0xA9, 0x01, // 8000: lda #1
		0x8D, 0x00, 0x02, // 8002: sta $0200
		0x20, 0x0B, 0x80, // 8005: jsr $800B
		0x4C, 0x08, 0x80, // 8008: jmp $8008
		0xA6, 0x40, // 800B: ldx $40
		0x60, // 800D: rts
	)

	start, ok := d.Region(0x8000)
	assert.True(t, ok)
	assert.Equal(t, RegionFunction, start.Type)
	assert.Equal(t, "FUN_8000", start.Name)
	assert.True(t, slices.Equal([]uint16{m6502.ResetAddress}, start.Refs()))

	sub, ok := d.Region(0x800B)
	assert.True(t, ok)
	assert.Equal(t, RegionFunction, sub.Type)
	assert.True(t, slices.Equal([]uint16{0x8005}, sub.Refs()))

	loop, ok := d.Region(0x8008)
	assert.True(t, ok)
	assert.Equal(t, RegionLabel, loop.Type)
	assert.Equal(t, "LAB_8008", loop.Name)
	assert.True(t, slices.Equal([]uint16{0x8008}, loop.Refs()))

	data, ok := d.Region(0x0200)
	assert.True(t, ok)
	assert.Equal(t, RegionUnsigned8, data.Type)
	assert.Equal(t, "DAT_0200", data.Name)
	assert.True(t, slices.Equal([]uint16{0x8002}, data.Refs()))

	zpData, ok := d.Region(0x0040)
	assert.True(t, ok)
	assert.Equal(t, "DAT_0040", zpData.Name)
	assert.True(t, slices.Equal([]uint16{0x800B}, zpData.Refs()))

	assert.Equal(t, 0, len(d.Conflicts()))
}

func TestRunSeedsHardwareRegions(t *testing.T) {
	d, _ := newTestDisasm(t, Options{}, 0x60)

	for _, tt := range []struct {
		address uint16
		typ     RegionType
		name    string
	}{
		{0x0000, RegionSection, "ZERO_PAGE"},
		{m6502.StackBase, RegionUnsigned8, "STACK"},
		{m6502.NMIAddress, RegionPointer, "NMI"},
		{m6502.ResetAddress, RegionPointer, "RES"},
		{m6502.IRQAddress, RegionPointer, "IRQ"},
	} {
		r, ok := d.Region(tt.address)
		assert.True(t, ok, "region at $%04X", tt.address)
		assert.Equal(t, tt.typ, r.Type, "type at $%04X", tt.address)
		assert.Equal(t, tt.name, r.Name)
	}

	stack, _ := d.Region(m6502.StackBase)
	assert.True(t, stack.Array)
	assert.Equal(t, 0x100, stack.Size)

	handler, ok := d.Region(0x7FFF)
	assert.True(t, ok)
	assert.Equal(t, RegionFunction, handler.Type)
	assert.True(t, slices.Equal([]uint16{m6502.NMIAddress, m6502.IRQAddress}, handler.Refs()))
}

func TestLabelUpgradesToFunction(t *testing.T) {
	d, _ := newTestDisasm(t, Options{},
		0xD0, 0x06, // 8000: bne $8008
		0x20, 0x08, 0x80, // 8002: jsr $8008
		0x60,       // 8005: rts
		0xEA, 0xEA, // padding
		0x60, // 8008: rts
	)

	r, ok := d.Region(0x8008)
	assert.True(t, ok)
	assert.Equal(t, RegionFunction, r.Type)
	assert.Equal(t, "FUN_8008", r.Name)
	assert.True(t, slices.Equal([]uint16{0x8000, 0x8002}, r.Refs()))
}

func TestFunctionIsNeverDowngraded(t *testing.T) {
	d, _ := newTestDisasm(t, Options{},
		0x20, 0x09, 0x80, // 8000: jsr $8009
		0x8D, 0x09, 0x80, // 8003: sta $8009, a data reference to the function
		0x4C, 0x09, 0x80, // 8006: jmp $8009
		0x60, // 8009: rts
	)

	r, ok := d.Region(0x8009)
	assert.True(t, ok)
	assert.Equal(t, RegionFunction, r.Type)
	assert.Equal(t, "FUN_8009", r.Name)
	assert.True(t, slices.Equal([]uint16{0x8000, 0x8003, 0x8006}, r.Refs()))
}

func TestConflictKeepsExistingClassification(t *testing.T) {
	d, _ := newTestDisasm(t, Options{},
		0xD0, 0x01, // 8000: bne $8003, into the middle of the lda
		0xA9, 0x00, // 8002: lda #0
		0x60, // 8004: rts
	)

	conflicts := d.Conflicts()
	assert.Equal(t, 1, len(conflicts))
	assert.Equal(t, uint16(0x8003), conflicts[0].Address)
	assert.Equal(t, uint16(0x8002), conflicts[0].Instruction)

	// the branch target label survives the conflict
	r, ok := d.Region(0x8003)
	assert.True(t, ok)
	assert.Equal(t, RegionLabel, r.Type)
}

func TestIndirectJumpCreatesPointerRegion(t *testing.T) {
	bus := memory.New(0x10000)
	bus.Write(0x8000, []byte{0x6C, 0x00, 0x03}) // jmp ($0300)
	bus.Write16(0x0300, 0x8010)
	bus.Write8(0x8010, 0x60) // rts
	bus.Write16(m6502.ResetAddress, 0x8000)

	d := New(log.NewTestLogger(t), bus, Options{})
	d.Run()

	pointer, ok := d.Region(0x0300)
	assert.True(t, ok)
	assert.Equal(t, RegionPointer, pointer.Type)
	assert.True(t, slices.Equal([]uint16{0x8000}, pointer.Refs()))

	target, ok := d.Region(0x8010)
	assert.True(t, ok)
	assert.Equal(t, RegionLabel, target.Type)
}

// Mirrors the minimal program of a load, a store and a jump back to the
// start, with all hardware vectors holding zero.
func TestMinimalProgram(t *testing.T) {
	bus := memory.New(0x10000)
	bus.Write(0x0000, []byte{0xA9, 0x00, 0x8D, 0x00, 0x02, 0x4C, 0x00, 0x00})

	d := New(log.NewTestLogger(t), bus, Options{})
	d.Run()

	start, ok := d.Region(0x0000)
	assert.True(t, ok)
	assert.Equal(t, RegionFunction, start.Type)
	assert.True(t, slices.Contains(start.Refs(), uint16(0x0005)))

	data, ok := d.Region(0x0200)
	assert.True(t, ok)
	assert.Equal(t, RegionUnsigned8, data.Type)
	assert.True(t, slices.Equal([]uint16{0x0002}, data.Refs()))

	// besides the seeded stack and vector pointer regions, the walk
	// discovers exactly the entry function and the store target
	discovered := 0
	for _, r := range d.Regions() {
		switch r.Address {
		case m6502.StackBase, m6502.NMIAddress, m6502.ResetAddress, m6502.IRQAddress:
			continue
		}
		discovered++
	}
	assert.Equal(t, 2, discovered)
}

func TestRegionsOrdered(t *testing.T) {
	d, _ := newTestDisasm(t, Options{}, 0x60)

	regions := d.Regions()
	assert.True(t, len(regions) > 0)
	for i := 1; i < len(regions); i++ {
		assert.True(t, regions[i-1].Address < regions[i].Address)
	}
}

func TestAbsoluteIndexedOperandsCreateDataRegions(t *testing.T) {
	d, _ := newTestDisasm(t, Options{},
		0xBD, 0x00, 0x02, // 8000: lda $0200,x
		0x99, 0x00, 0x03, // 8003: sta $0300,y
		0xB5, 0x40, // 8006: lda $40,x
		0x60, // 8008: rts
	)

	data, ok := d.Region(0x0200)
	assert.True(t, ok)
	assert.Equal(t, RegionUnsigned8, data.Type)
	assert.Equal(t, "DAT_0200", data.Name)
	assert.True(t, slices.Equal([]uint16{0x8000}, data.Refs()))

	store, ok := d.Region(0x0300)
	assert.True(t, ok)
	assert.True(t, slices.Equal([]uint16{0x8003}, store.Refs()))

	// zero page indexed operands stay unclassified
	_, ok = d.Region(0x0040)
	assert.False(t, ok)
}
