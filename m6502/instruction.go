package m6502

// Operations are pure functions of the registers, flags, execution cache and
// bus. The returned value reports whether the operation is willing to pay a
// page-cross extra cycle, the execution engine only charges it when the
// addressing mode reports one as well.

// addBinary adds value, the accumulator and the incoming carry in a 16 bit
// wide addition and derives carry, overflow, zero and negative from it.
func (c *CPU) addBinary(value byte) {
	sum := uint16(c.a) + uint16(value) + c.carry()
	result := byte(sum)

	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (c.a^result)&(value^result)&0x80 != 0)
	c.setFlagsZN(result)
	c.a = result
}

// addDecimal adds value to the accumulator with nibble-wise BCD correction,
// following the NMOS behavior including invalid BCD inputs.
func (c *CPU) addDecimal(value byte) {
	low := uint16(c.a&0x0F) + uint16(value&0x0F) + c.carry()

	var carryLow uint16
	if low >= 0x0A {
		carryLow = 0x10
		low -= 0x0A
	}

	high := uint16(c.a&0xF0) + uint16(value&0xF0) + carryLow
	if high >= 0xA0 {
		c.setFlag(FlagC, true)
		high -= 0xA0
	} else {
		c.setFlag(FlagC, false)
	}

	result := high | low
	c.setFlag(FlagV, (uint16(c.a)^result)&0x80 != 0 && (c.a^value)&0x80 == 0)
	c.a = byte(result)
	c.setFlagsZN(c.a)
}

// subDecimal subtracts value from the accumulator with nibble-wise BCD
// correction, following the NMOS behavior.
func (c *CPU) subDecimal(value byte) {
	low := 0x0F + uint16(c.a&0x0F) - uint16(value&0x0F) + c.carry()

	var carryLow uint16
	if low < 0x10 {
		low -= 0x06
	} else {
		low -= 0x10
		carryLow = 0x10
	}

	high := 0xF0 + uint16(c.a&0xF0) - uint16(value&0xF0) + carryLow
	if high < 0x100 {
		c.setFlag(FlagC, false)
		high -= 0x60
	} else {
		c.setFlag(FlagC, true)
		high -= 0x100
	}

	result := high | low
	c.setFlag(FlagV, (uint16(c.a)^result)&0x80 != 0 && (c.a^value)&0x80 != 0)
	c.a = byte(result)
	c.setFlagsZN(c.a)
}

// Add with carry: A = A + M + C. Flags: C, Z, N, V.
func (c *CPU) adc() uint8 {
	value := c.fetch()
	if c.p.Has(FlagD) {
		c.addDecimal(value)
	} else {
		c.addBinary(value)
	}
	return 1
}

// Subtract with carry: A = A - M - (1 - C). Flags: C, Z, N, V. The binary
// path adds the operand with its bits inverted so that the carry and
// overflow logic is shared with adc.
func (c *CPU) sbc() uint8 {
	value := c.fetch()
	if c.p.Has(FlagD) {
		c.subDecimal(value)
	} else {
		c.addBinary(^value)
	}
	return 1
}

// Logical and: A = A & M. Flags: Z, N.
func (c *CPU) and() uint8 {
	c.a &= c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Logical inclusive or: A = A | M. Flags: Z, N.
func (c *CPU) ora() uint8 {
	c.a |= c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Exclusive or: A = A ^ M. Flags: Z, N.
func (c *CPU) eor() uint8 {
	c.a ^= c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Arithmetic shift left on the accumulator or memory. Flags: C, Z, N.
func (c *CPU) asl() uint8 {
	value := c.fetch()
	result := value << 1

	c.setFlag(FlagC, value&0x80 != 0)
	c.setFlagsZN(result)
	c.storeResult(result)
	return 0
}

// Logical shift right on the accumulator or memory. Flags: C, Z, N.
func (c *CPU) lsr() uint8 {
	value := c.fetch()
	result := value >> 1

	c.setFlag(FlagC, value&0x01 != 0)
	c.setFlagsZN(result)
	c.storeResult(result)
	return 0
}

// Rotate left through the carry flag. Flags: C, Z, N.
func (c *CPU) rol() uint8 {
	value := c.fetch()
	result := value<<1 | byte(c.carry())

	c.setFlag(FlagC, value&0x80 != 0)
	c.setFlagsZN(result)
	c.storeResult(result)
	return 0
}

// Rotate right through the carry flag. Flags: C, Z, N.
func (c *CPU) ror() uint8 {
	value := c.fetch()
	result := value>>1 | byte(c.carry())<<7

	c.setFlag(FlagC, value&0x01 != 0)
	c.setFlagsZN(result)
	c.storeResult(result)
	return 0
}

// Bit test: Z from A & M, N and V copied from bits 7 and 6 of M.
func (c *CPU) bit() uint8 {
	value := c.fetch()

	c.setFlag(FlagZ, c.a&value == 0)
	c.setFlag(FlagN, value&0x80 != 0)
	c.setFlag(FlagV, value&0x40 != 0)
	return 0
}

// compare subtracts value from reg and sets C, Z and N.
func (c *CPU) compare(reg, value byte) {
	c.setFlag(FlagC, reg >= value)
	c.setFlagsZN(reg - value)
}

// Compare accumulator. Flags: C, Z, N.
func (c *CPU) cmp() uint8 {
	c.compare(c.a, c.fetch())
	return 1
}

// Compare X register. Flags: C, Z, N.
func (c *CPU) cpx() uint8 {
	c.compare(c.x, c.fetch())
	return 0
}

// Compare Y register. Flags: C, Z, N.
func (c *CPU) cpy() uint8 {
	c.compare(c.y, c.fetch())
	return 0
}

// Decrement memory. Flags: Z, N.
func (c *CPU) dec() uint8 {
	result := c.fetch() - 1
	c.setFlagsZN(result)
	c.storeResult(result)
	return 0
}

// Increment memory. Flags: Z, N.
func (c *CPU) inc() uint8 {
	result := c.fetch() + 1
	c.setFlagsZN(result)
	c.storeResult(result)
	return 0
}

// Decrement X register. Flags: Z, N.
func (c *CPU) dex() uint8 {
	c.x--
	c.setFlagsZN(c.x)
	return 0
}

// Decrement Y register. Flags: Z, N.
func (c *CPU) dey() uint8 {
	c.y--
	c.setFlagsZN(c.y)
	return 0
}

// Increment X register. Flags: Z, N.
func (c *CPU) inx() uint8 {
	c.x++
	c.setFlagsZN(c.x)
	return 0
}

// Increment Y register. Flags: Z, N.
func (c *CPU) iny() uint8 {
	c.y++
	c.setFlagsZN(c.y)
	return 0
}

// branch takes the pending relative branch: one extra cycle for taking it,
// another if the target lies on a different page than the instruction that
// follows the branch.
func (c *CPU) branch() {
	c.cache.cycles++

	addr := c.pc + c.cache.relAddr
	if addr&0xFF00 != c.pc&0xFF00 {
		c.cache.cycles++
	}

	c.cache.absAddr = addr
	c.pc = addr
}

// Branch if carry clear.
func (c *CPU) bcc() uint8 {
	if !c.p.Has(FlagC) {
		c.branch()
	}
	return 0
}

// Branch if carry set.
func (c *CPU) bcs() uint8 {
	if c.p.Has(FlagC) {
		c.branch()
	}
	return 0
}

// Branch if equal (zero set).
func (c *CPU) beq() uint8 {
	if c.p.Has(FlagZ) {
		c.branch()
	}
	return 0
}

// Branch if not equal (zero clear).
func (c *CPU) bne() uint8 {
	if !c.p.Has(FlagZ) {
		c.branch()
	}
	return 0
}

// Branch if minus (negative set).
func (c *CPU) bmi() uint8 {
	if c.p.Has(FlagN) {
		c.branch()
	}
	return 0
}

// Branch if plus (negative clear).
func (c *CPU) bpl() uint8 {
	if !c.p.Has(FlagN) {
		c.branch()
	}
	return 0
}

// Branch if overflow clear.
func (c *CPU) bvc() uint8 {
	if !c.p.Has(FlagV) {
		c.branch()
	}
	return 0
}

// Branch if overflow set.
func (c *CPU) bvs() uint8 {
	if c.p.Has(FlagV) {
		c.branch()
	}
	return 0
}

// Jump to address.
func (c *CPU) jmp() uint8 {
	c.pc = c.cache.absAddr
	return 0
}

// Jump to subroutine: pushes the address of the next instruction, rts
// resumes there.
func (c *CPU) jsr() uint8 {
	c.push16(c.pc)
	c.pc = c.cache.absAddr
	return 0
}

// Return from subroutine.
func (c *CPU) rts() uint8 {
	c.pc = c.pop16()
	return 0
}

// Return from interrupt: restores status and program counter.
func (c *CPU) rti() uint8 {
	c.p = Flags(c.pop8())
	c.p.Set(FlagB, false)
	c.p.Set(FlagU, true)
	c.pc = c.pop16()
	return 0
}

// Force interrupt: performs the IRQ sequence with the break flag set during
// the status push and skips the signature byte following the opcode.
func (c *CPU) brk() uint8 {
	c.pc++
	c.setFlag(FlagI, true)
	c.push16(c.pc)

	c.p.Set(FlagB|FlagU, true)
	c.push8(byte(c.p))
	c.p.Set(FlagB, false)

	c.pc = c.mem.Read16(IRQAddress)
	return 0
}

// Load accumulator. Flags: Z, N.
func (c *CPU) lda() uint8 {
	c.a = c.fetch()
	c.setFlagsZN(c.a)
	return 1
}

// Load X register. Flags: Z, N.
func (c *CPU) ldx() uint8 {
	c.x = c.fetch()
	c.setFlagsZN(c.x)
	return 1
}

// Load Y register. Flags: Z, N.
func (c *CPU) ldy() uint8 {
	c.y = c.fetch()
	c.setFlagsZN(c.y)
	return 1
}

// Store accumulator. Stores never pay the page-cross extra cycle, their
// base cycle count already covers it.
func (c *CPU) sta() uint8 {
	c.mem.Write8(c.cache.absAddr, c.a)
	return 0
}

// Store X register.
func (c *CPU) stx() uint8 {
	c.mem.Write8(c.cache.absAddr, c.x)
	return 0
}

// Store Y register.
func (c *CPU) sty() uint8 {
	c.mem.Write8(c.cache.absAddr, c.y)
	return 0
}

// Push accumulator to the stack.
func (c *CPU) pha() uint8 {
	c.push8(c.a)
	return 0
}

// Push status to the stack, with the break and unused flags set in the
// pushed copy.
func (c *CPU) php() uint8 {
	c.p.Set(FlagB|FlagU, true)
	c.push8(byte(c.p))
	c.p.Set(FlagB, false)
	return 0
}

// Pull accumulator from the stack. Flags: Z, N.
func (c *CPU) pla() uint8 {
	c.a = c.pop8()
	c.setFlagsZN(c.a)
	return 0
}

// Pull status from the stack, the break flag is discarded and the unused
// flag forced set.
func (c *CPU) plp() uint8 {
	c.p = Flags(c.pop8())
	c.p.Set(FlagB, false)
	c.p.Set(FlagU, true)
	return 0
}

// Transfer accumulator to X. Flags: Z, N.
func (c *CPU) tax() uint8 {
	c.x = c.a
	c.setFlagsZN(c.x)
	return 0
}

// Transfer accumulator to Y. Flags: Z, N.
func (c *CPU) tay() uint8 {
	c.y = c.a
	c.setFlagsZN(c.y)
	return 0
}

// Transfer stack pointer to X. Flags: Z, N.
func (c *CPU) tsx() uint8 {
	c.x = c.sp
	c.setFlagsZN(c.x)
	return 0
}

// Transfer X to accumulator. Flags: Z, N.
func (c *CPU) txa() uint8 {
	c.a = c.x
	c.setFlagsZN(c.a)
	return 0
}

// Transfer X to stack pointer.
func (c *CPU) txs() uint8 {
	c.sp = c.x
	return 0
}

// Transfer Y to accumulator. Flags: Z, N.
func (c *CPU) tya() uint8 {
	c.a = c.y
	c.setFlagsZN(c.a)
	return 0
}

// Clear carry flag.
func (c *CPU) clc() uint8 {
	c.setFlag(FlagC, false)
	return 0
}

// Clear decimal mode flag.
func (c *CPU) cld() uint8 {
	c.setFlag(FlagD, false)
	return 0
}

// Clear interrupt disable flag.
func (c *CPU) cli() uint8 {
	c.setFlag(FlagI, false)
	return 0
}

// Clear overflow flag.
func (c *CPU) clv() uint8 {
	c.setFlag(FlagV, false)
	return 0
}

// Set carry flag.
func (c *CPU) sec() uint8 {
	c.setFlag(FlagC, true)
	return 0
}

// Set decimal mode flag.
func (c *CPU) sed() uint8 {
	c.setFlag(FlagD, true)
	return 0
}

// Set interrupt disable flag.
func (c *CPU) sei() uint8 {
	c.setFlag(FlagI, true)
	return 0
}

// No operation. It also stands in for the undocumented opcode byte values:
// their only observable effect is the cycle cost recorded in the opcode
// table, with the absolute-X variants additionally owing the page-cross
// extra cycle.
func (c *CPU) nop() uint8 {
	switch c.cache.opcode {
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 1
	}
	return 0
}
