// Package m6502 implements a cycle-accurate emulator for the MOS 6500/6502
// family of 8 bit processors.
package m6502

import (
	"fmt"

	"github.com/retroenv/mos6502/memory"
)

const (
	// StackBase is the start address of the fixed 256 byte stack page.
	StackBase = 0x0100
	// InitialStack is the hardware documented stack pointer offset after a
	// reset.
	InitialStack = 0xFD

	// NMIAddress is the address of the non-maskable interrupt vector.
	NMIAddress = 0xFFFA
	// ResetAddress is the address of the reset vector.
	ResetAddress = 0xFFFC
	// IRQAddress is the address of the interrupt request vector.
	IRQAddress = 0xFFFE
)

// Interrupt entry cycle costs measured on the original hardware.
const (
	resetCycles = 8
	nmiCycles   = 8
	irqCycles   = 7
)

// Memory is the bus interface that the CPU drives. It is owned by the host
// embedding the CPU, the CPU only borrows it.
type Memory interface {
	Read8(address uint16) byte
	Write8(address uint16, data byte)
	Read16(address uint16) uint16
}

// cache contains the transient per-instruction execution state. It is
// populated at fetch time and consumed during the same instruction, only the
// remaining cycle count persists across instruction boundaries to gate the
// next fetch.
type cache struct {
	opcode  byte   // last fetched opcode byte
	data    byte   // last fetched operand byte
	mode    Mode   // active addressing mode of the in-flight instruction
	absAddr uint16 // resolved effective address
	relAddr uint16 // sign-extended relative branch offset
	cycles  uint8  // remaining cycles of the in-flight instruction
}

// CPU emulates a MOS 6502 processor. It is a single-threaded synchronous
// state machine: a host advances it one clock pulse at a time and delivers
// interrupts between instructions, when RemainingCycles reports 0.
type CPU struct {
	a  byte
	x  byte
	y  byte
	sp byte
	pc uint16
	p  Flags

	mem   Memory
	cache cache
}

// New creates a new CPU attached to the given memory bus and resets it.
func New(mem Memory) *CPU {
	c := &CPU{
		mem: mem,
	}
	c.Reset()
	return c
}

// Clock advances the CPU by one clock pulse. If no instruction is in flight
// it fetches, decodes and executes the next instruction and charges its full
// cycle cost, the pulse itself counts as the first spent cycle. An extra
// cycle is only charged when both the addressing mode and the operation
// agree that one is owed.
func (c *CPU) Clock() {
	if c.cache.cycles == 0 {
		c.p.Set(FlagU, true)

		c.cache.opcode = c.mem.Read8(c.pc)
		c.pc++

		op := &Opcodes[c.cache.opcode]
		modeExtra := op.mode(c)
		opExtra := op.op(c)
		c.cache.cycles += op.Cycles + modeExtra&opExtra
	}

	if c.cache.cycles > 0 {
		c.cache.cycles--
	}
}

// Step runs the CPU until the current instruction finishes and the next one
// is due, returning the number of clock pulses consumed.
func (c *CPU) Step() int {
	pulses := 1
	c.Clock()
	for c.cache.cycles > 0 {
		c.Clock()
		pulses++
	}
	return pulses
}

// Reset puts the CPU into its power-on state: registers and flags cleared
// except for the unused flag, stack pointer at its documented initial
// offset and the program counter loaded from the reset vector. The stack
// content is not touched.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = FlagU
	c.sp = InitialStack
	c.pc = c.mem.Read16(ResetAddress)
	c.cache = cache{
		cycles: resetCycles,
	}
}

// NMI delivers a non-maskable interrupt. It is honored regardless of the
// interrupt disable flag.
func (c *CPU) NMI() {
	c.interrupt(NMIAddress, nmiCycles)
}

// IRQ delivers a maskable interrupt request. It is ignored while the
// interrupt disable flag is set.
func (c *CPU) IRQ() {
	if c.p.Has(FlagI) {
		return
	}
	c.interrupt(IRQAddress, irqCycles)
}

// interrupt pushes the program counter and status to the stack, with the
// break flag cleared and the unused flag set, and redirects the program
// counter through the vector at the given address.
func (c *CPU) interrupt(vector uint16, cycles uint8) {
	c.push16(c.pc)

	c.p.Set(FlagB, false)
	c.p.Set(FlagU|FlagI, true)
	c.push8(byte(c.p))

	c.pc = c.mem.Read16(vector)
	c.cache.cycles = cycles
}

// A returns the accumulator.
func (c *CPU) A() byte { return c.a }

// X returns the X index register.
func (c *CPU) X() byte { return c.x }

// Y returns the Y index register.
func (c *CPU) Y() byte { return c.y }

// SP returns the stack pointer offset into the stack page.
func (c *CPU) SP() byte { return c.sp }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// Flags returns the status flags.
func (c *CPU) Flags() Flags { return c.p }

// RemainingCycles returns the remaining cycle count of the in-flight
// instruction. 0 means the CPU is idle and the next clock pulse fetches a
// new instruction, this is the point at which a host delivers pending
// interrupts.
func (c *CPU) RemainingCycles() uint8 {
	return c.cache.cycles
}

// StackDump returns the stack page as a hexdump for debugger display.
func (c *CPU) StackDump() string {
	data := make([]byte, 0x100)
	for i := range data {
		data[i] = c.mem.Read8(StackBase + uint16(i))
	}
	return memory.Hexdump(data, 2)
}

// String returns the register and flag state for debugger display.
func (c *CPU) String() string {
	return fmt.Sprintf("P: %s\nPC: $%04X\tSP: $%02X\nA: $%02X\tX: $%02X\tY: $%02X",
		c.p, c.pc, c.sp, c.a, c.x, c.y)
}

// flag sets and clears status flags.
func (c *CPU) setFlag(flag Flags, value bool) {
	c.p.Set(flag, value)
}

// setFlagsZN sets the zero and negative flags based on value.
func (c *CPU) setFlagsZN(value byte) {
	c.p.Set(FlagZ, value == 0)
	c.p.Set(FlagN, value&0x80 != 0)
}

// carry returns the carry flag as 0 or 1 for arithmetic.
func (c *CPU) carry() uint16 {
	if c.p.Has(FlagC) {
		return 1
	}
	return 0
}

// readPC8 reads the byte at the program counter and advances it.
func (c *CPU) readPC8() byte {
	data := c.mem.Read8(c.pc)
	c.pc++
	return data
}

// readPC16 reads the little-endian word at the program counter and advances
// it past both bytes.
func (c *CPU) readPC16() uint16 {
	low := uint16(c.readPC8())
	high := uint16(c.readPC8())
	return high<<8 | low
}

// The stack pointer is logically 8 bit, pushes and pops wrap modulo 256
// within the stack page.
func (c *CPU) push8(data byte) {
	c.mem.Write8(StackBase|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) push16(data uint16) {
	c.push8(byte(data >> 8))
	c.push8(byte(data))
}

func (c *CPU) pop8() byte {
	c.sp++
	return c.mem.Read8(StackBase | uint16(c.sp))
}

func (c *CPU) pop16() uint16 {
	low := uint16(c.pop8())
	high := uint16(c.pop8())
	return high<<8 | low
}

// fetch returns the operand of the in-flight instruction: the cached
// accumulator copy for the implied mode, the byte at the resolved effective
// address otherwise.
func (c *CPU) fetch() byte {
	if c.cache.mode != ModeImplied {
		c.cache.data = c.mem.Read8(c.cache.absAddr)
	}
	return c.cache.data
}

// storeResult writes a read-modify-write result back to the accumulator if
// the active addressing mode is implied, to the resolved effective address
// otherwise.
func (c *CPU) storeResult(value byte) {
	if c.cache.mode == ModeImplied {
		c.a = value
	} else {
		c.mem.Write8(c.cache.absAddr, value)
	}
}
