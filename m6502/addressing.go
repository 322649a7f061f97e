package m6502

// Mode is the addressing mode of an instruction. The accumulator operand is
// part of the implied mode: the mode resolver copies the accumulator into
// the cached operand byte.
type Mode uint8

// Addressing modes.
const (
	ModeImmediate Mode = iota + 1
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
	ModeImplied
)

// String returns the assembler notation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeImmediate:
		return "IMM"
	case ModeZeroPage:
		return "ZPG"
	case ModeZeroPageX:
		return "ZPG X"
	case ModeZeroPageY:
		return "ZPG Y"
	case ModeAbsolute:
		return "ABS"
	case ModeAbsoluteX:
		return "ABS X"
	case ModeAbsoluteY:
		return "ABS Y"
	case ModeIndirect:
		return "IND"
	case ModeIndirectX:
		return "IND X"
	case ModeIndirectY:
		return "IND Y"
	case ModeRelative:
		return "REL"
	case ModeImplied:
		return "IMP"
	}
	return "???"
}

// OperandSize returns the number of operand bytes following the opcode byte.
func (m Mode) OperandSize() int {
	switch m {
	case ModeImplied:
		return 0
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return 2
	default:
		return 1
	}
}

// Each addressing mode resolver advances the program counter past the
// operand bytes it consumes, tags the execution cache with the active mode,
// stores the resolved effective address and returns whether it incurred an
// extra bus cycle.

// pageCrossExtra returns 1 if the resolved effective address lies on a
// different 256 byte page than the base address.
func (c *CPU) pageCrossExtra(base uint16) uint8 {
	if c.cache.absAddr&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

// imm treats the byte after the opcode as the operand.
func (c *CPU) imm() uint8 {
	c.cache.mode = ModeImmediate
	c.cache.absAddr = c.pc
	c.pc++
	return 0
}

// zpg addresses the first 256 bytes of memory.
func (c *CPU) zpg() uint8 {
	c.cache.mode = ModeZeroPage
	c.cache.absAddr = uint16(c.readPC8())
	return 0
}

// zpx addresses the zero page offset by X, wrapping within the page.
func (c *CPU) zpx() uint8 {
	c.cache.mode = ModeZeroPageX
	c.cache.absAddr = uint16(c.readPC8() + c.x)
	return 0
}

// zpy addresses the zero page offset by Y, wrapping within the page.
func (c *CPU) zpy() uint8 {
	c.cache.mode = ModeZeroPageY
	c.cache.absAddr = uint16(c.readPC8() + c.y)
	return 0
}

// abs addresses a full 16 bit location.
func (c *CPU) abs() uint8 {
	c.cache.mode = ModeAbsolute
	c.cache.absAddr = c.readPC16()
	return 0
}

// abx addresses a full 16 bit location offset by X. Crossing a page
// boundary costs an extra cycle.
func (c *CPU) abx() uint8 {
	c.cache.mode = ModeAbsoluteX
	base := c.readPC16()
	c.cache.absAddr = base + uint16(c.x)
	return c.pageCrossExtra(base)
}

// aby addresses a full 16 bit location offset by Y. Crossing a page
// boundary costs an extra cycle.
func (c *CPU) aby() uint8 {
	c.cache.mode = ModeAbsoluteY
	base := c.readPC16()
	c.cache.absAddr = base + uint16(c.y)
	return c.pageCrossExtra(base)
}

// ind reads the effective address through a pointer. It reproduces the
// hardware page wrap bug: if the pointer's low byte is 0xFF the high byte of
// the target is fetched from the start of the same page instead of the next
// page.
func (c *CPU) ind() uint8 {
	c.cache.mode = ModeIndirect
	ptr := c.readPC16()

	low := uint16(c.mem.Read8(ptr))
	highAddr := ptr&0xFF00 | uint16(byte(ptr)+1)
	high := uint16(c.mem.Read8(highAddr))

	c.cache.absAddr = high<<8 | low
	return 0
}

// izx reads the effective address from a zero page pointer offset by X,
// both pointer bytes wrapping within the zero page.
func (c *CPU) izx() uint8 {
	c.cache.mode = ModeIndirectX
	zp := c.readPC8() + c.x

	low := uint16(c.mem.Read8(uint16(zp)))
	high := uint16(c.mem.Read8(uint16(zp + 1)))

	c.cache.absAddr = high<<8 | low
	return 0
}

// izy reads the base address from a zero page pointer, then offsets it by
// Y. Crossing a page boundary costs an extra cycle.
func (c *CPU) izy() uint8 {
	c.cache.mode = ModeIndirectY
	zp := c.readPC8()

	low := uint16(c.mem.Read8(uint16(zp)))
	high := uint16(c.mem.Read8(uint16(zp + 1)))

	base := high<<8 | low
	c.cache.absAddr = base + uint16(c.y)
	return c.pageCrossExtra(base)
}

// rel resolves the signed 8 bit branch displacement, sign-extended to 16
// bits. The extra cycles for taking the branch and for crossing a page are
// charged by the branch operation, not here, since whether the branch is
// taken is not known yet.
func (c *CPU) rel() uint8 {
	c.cache.mode = ModeRelative
	c.cache.relAddr = uint16(c.readPC8())
	if c.cache.relAddr&0x80 != 0 {
		c.cache.relAddr |= 0xFF00
	}
	return 0
}

// imp has no memory operand, the accumulator is copied into the cached
// operand byte for the read-modify-write operations that work on it.
func (c *CPU) imp() uint8 {
	c.cache.mode = ModeImplied
	c.cache.data = c.a
	return 0
}
