package m6502

// Opcode describes a single opcode byte value: its mnemonic, addressing
// mode, base cycle count and the functions executing it. The exported
// fields form the read-only instruction metadata used by the disassembler.
type Opcode struct {
	Name   string
	Mode   Mode
	Cycles uint8

	mode func(*CPU) uint8
	op   func(*CPU) uint8
}

// Opcodes maps every opcode byte value to its instruction. Undocumented
// opcodes execute as NOP with their documented timing, the jam opcodes
// carry a base cycle count of zero.
var Opcodes = [256]Opcode{
	0x00: {Name: "BRK", Mode: ModeImplied, Cycles: 7, mode: (*CPU).imp, op: (*CPU).brk},
	0x01: {Name: "ORA", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).ora},
	0x02: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x03: {Name: "NOP", Mode: ModeIndirectX, Cycles: 8, mode: (*CPU).izx, op: (*CPU).nop},
	0x04: {Name: "NOP", Mode: ModeZeroPage, Cycles: 2, mode: (*CPU).zpg, op: (*CPU).nop},
	0x05: {Name: "ORA", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).ora},
	0x06: {Name: "ASL", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).asl},
	0x07: {Name: "NOP", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).nop},
	0x08: {Name: "PHP", Mode: ModeImplied, Cycles: 3, mode: (*CPU).imp, op: (*CPU).php},
	0x09: {Name: "ORA", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).ora},
	0x0A: {Name: "ASL", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).asl},
	0x0B: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x0C: {Name: "NOP", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).nop},
	0x0D: {Name: "ORA", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).ora},
	0x0E: {Name: "ASL", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).asl},
	0x0F: {Name: "NOP", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).nop},
	0x10: {Name: "BPL", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bpl},
	0x11: {Name: "ORA", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).ora},
	0x12: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x13: {Name: "NOP", Mode: ModeIndirectY, Cycles: 8, mode: (*CPU).izy, op: (*CPU).nop},
	0x14: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).nop},
	0x15: {Name: "ORA", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).ora},
	0x16: {Name: "ASL", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).asl},
	0x17: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).nop},
	0x18: {Name: "CLC", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).clc},
	0x19: {Name: "ORA", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).ora},
	0x1A: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0x1B: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 7, mode: (*CPU).aby, op: (*CPU).nop},
	0x1C: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).nop},
	0x1D: {Name: "ORA", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).ora},
	0x1E: {Name: "ASL", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).asl},
	0x1F: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).nop},
	0x20: {Name: "JSR", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).jsr},
	0x21: {Name: "AND", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).and},
	0x22: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x23: {Name: "NOP", Mode: ModeIndirectX, Cycles: 8, mode: (*CPU).izx, op: (*CPU).nop},
	0x24: {Name: "BIT", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).bit},
	0x25: {Name: "AND", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).and},
	0x26: {Name: "ROL", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).rol},
	0x27: {Name: "NOP", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).nop},
	0x28: {Name: "PLP", Mode: ModeImplied, Cycles: 4, mode: (*CPU).imp, op: (*CPU).plp},
	0x29: {Name: "AND", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).and},
	0x2A: {Name: "ROL", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).rol},
	0x2B: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x2C: {Name: "BIT", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).bit},
	0x2D: {Name: "AND", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).and},
	0x2E: {Name: "ROL", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).rol},
	0x2F: {Name: "NOP", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).nop},
	0x30: {Name: "BMI", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bmi},
	0x31: {Name: "AND", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).and},
	0x32: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x33: {Name: "NOP", Mode: ModeIndirectY, Cycles: 8, mode: (*CPU).izy, op: (*CPU).nop},
	0x34: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).nop},
	0x35: {Name: "AND", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).and},
	0x36: {Name: "ROL", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).rol},
	0x37: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).nop},
	0x38: {Name: "SEC", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).sec},
	0x39: {Name: "AND", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).and},
	0x3A: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0x3B: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 7, mode: (*CPU).aby, op: (*CPU).nop},
	0x3C: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).nop},
	0x3D: {Name: "AND", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).and},
	0x3E: {Name: "ROL", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).rol},
	0x3F: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).nop},
	0x40: {Name: "RTI", Mode: ModeImplied, Cycles: 6, mode: (*CPU).imp, op: (*CPU).rti},
	0x41: {Name: "EOR", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).eor},
	0x42: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x43: {Name: "NOP", Mode: ModeIndirectX, Cycles: 8, mode: (*CPU).izx, op: (*CPU).nop},
	0x44: {Name: "NOP", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).nop},
	0x45: {Name: "EOR", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).eor},
	0x46: {Name: "LSR", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).lsr},
	0x47: {Name: "NOP", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).nop},
	0x48: {Name: "PHA", Mode: ModeImplied, Cycles: 3, mode: (*CPU).imp, op: (*CPU).pha},
	0x49: {Name: "EOR", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).eor},
	0x4A: {Name: "LSR", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).lsr},
	0x4B: {Name: "NOP", Mode: ModeAbsolute, Cycles: 2, mode: (*CPU).abs, op: (*CPU).nop},
	0x4C: {Name: "JMP", Mode: ModeAbsolute, Cycles: 3, mode: (*CPU).abs, op: (*CPU).jmp},
	0x4D: {Name: "EOR", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).eor},
	0x4E: {Name: "LSR", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).lsr},
	0x4F: {Name: "NOP", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).nop},
	0x50: {Name: "BVC", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bvc},
	0x51: {Name: "EOR", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).eor},
	0x52: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x53: {Name: "NOP", Mode: ModeIndirectY, Cycles: 8, mode: (*CPU).izy, op: (*CPU).nop},
	0x54: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).nop},
	0x55: {Name: "EOR", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).eor},
	0x56: {Name: "LSR", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).lsr},
	0x57: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).nop},
	0x58: {Name: "CLI", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).cli},
	0x59: {Name: "EOR", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).eor},
	0x5A: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0x5B: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 7, mode: (*CPU).aby, op: (*CPU).nop},
	0x5C: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).nop},
	0x5D: {Name: "EOR", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).eor},
	0x5E: {Name: "LSR", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).lsr},
	0x5F: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).nop},
	0x60: {Name: "RTS", Mode: ModeImplied, Cycles: 6, mode: (*CPU).imp, op: (*CPU).rts},
	0x61: {Name: "ADC", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).adc},
	0x62: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x63: {Name: "NOP", Mode: ModeIndirectX, Cycles: 8, mode: (*CPU).izx, op: (*CPU).nop},
	0x64: {Name: "NOP", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).nop},
	0x65: {Name: "ADC", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).adc},
	0x66: {Name: "ROR", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).ror},
	0x67: {Name: "NOP", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).nop},
	0x68: {Name: "PLA", Mode: ModeImplied, Cycles: 4, mode: (*CPU).imp, op: (*CPU).pla},
	0x69: {Name: "ADC", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).adc},
	0x6A: {Name: "ROR", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).ror},
	0x6B: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x6C: {Name: "JMP", Mode: ModeIndirect, Cycles: 5, mode: (*CPU).ind, op: (*CPU).jmp},
	0x6D: {Name: "ADC", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).adc},
	0x6E: {Name: "ROR", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).ror},
	0x6F: {Name: "NOP", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).nop},
	0x70: {Name: "BVS", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bvs},
	0x71: {Name: "ADC", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).adc},
	0x72: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x73: {Name: "NOP", Mode: ModeIndirectY, Cycles: 8, mode: (*CPU).izy, op: (*CPU).nop},
	0x74: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).nop},
	0x75: {Name: "ADC", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).adc},
	0x76: {Name: "ROR", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).ror},
	0x77: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).nop},
	0x78: {Name: "SEI", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).sei},
	0x79: {Name: "ADC", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).adc},
	0x7A: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0x7B: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 7, mode: (*CPU).aby, op: (*CPU).nop},
	0x7C: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).nop},
	0x7D: {Name: "ADC", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).adc},
	0x7E: {Name: "ROR", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).ror},
	0x7F: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).nop},
	0x80: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x81: {Name: "STA", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).sta},
	0x82: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x83: {Name: "NOP", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).nop},
	0x84: {Name: "STY", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).sty},
	0x85: {Name: "STA", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).sta},
	0x86: {Name: "STX", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).stx},
	0x87: {Name: "NOP", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).nop},
	0x88: {Name: "DEY", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).dey},
	0x89: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x8A: {Name: "TXA", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).txa},
	0x8B: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0x8C: {Name: "STY", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).sty},
	0x8D: {Name: "STA", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).sta},
	0x8E: {Name: "STX", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).stx},
	0x8F: {Name: "NOP", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).nop},
	0x90: {Name: "BCC", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bcc},
	0x91: {Name: "STA", Mode: ModeIndirectY, Cycles: 6, mode: (*CPU).izy, op: (*CPU).sta},
	0x92: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0x93: {Name: "NOP", Mode: ModeIndirectY, Cycles: 6, mode: (*CPU).izy, op: (*CPU).nop},
	0x94: {Name: "STY", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).sty},
	0x95: {Name: "STA", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).sta},
	0x96: {Name: "STX", Mode: ModeZeroPageY, Cycles: 4, mode: (*CPU).zpy, op: (*CPU).stx},
	0x97: {Name: "NOP", Mode: ModeZeroPageY, Cycles: 4, mode: (*CPU).zpy, op: (*CPU).nop},
	0x98: {Name: "TYA", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).tya},
	0x99: {Name: "STA", Mode: ModeAbsoluteY, Cycles: 5, mode: (*CPU).aby, op: (*CPU).sta},
	0x9A: {Name: "TXS", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).txs},
	0x9B: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 5, mode: (*CPU).aby, op: (*CPU).nop},
	0x9C: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 5, mode: (*CPU).abx, op: (*CPU).nop},
	0x9D: {Name: "STA", Mode: ModeAbsoluteX, Cycles: 5, mode: (*CPU).abx, op: (*CPU).sta},
	0x9E: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 6, mode: (*CPU).aby, op: (*CPU).nop},
	0x9F: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 5, mode: (*CPU).aby, op: (*CPU).nop},
	0xA0: {Name: "LDY", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).ldy},
	0xA1: {Name: "LDA", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).lda},
	0xA2: {Name: "LDX", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).ldx},
	0xA3: {Name: "NOP", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).nop},
	0xA4: {Name: "LDY", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).ldy},
	0xA5: {Name: "LDA", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).lda},
	0xA6: {Name: "LDX", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).ldx},
	0xA7: {Name: "NOP", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).nop},
	0xA8: {Name: "TAY", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).tay},
	0xA9: {Name: "LDA", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).lda},
	0xAA: {Name: "TAX", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).tax},
	0xAB: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0xAC: {Name: "LDY", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).ldy},
	0xAD: {Name: "LDA", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).lda},
	0xAE: {Name: "LDX", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).ldx},
	0xAF: {Name: "NOP", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).nop},
	0xB0: {Name: "BCS", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bcs},
	0xB1: {Name: "LDA", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).lda},
	0xB2: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0xB3: {Name: "NOP", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).nop},
	0xB4: {Name: "LDY", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).ldy},
	0xB5: {Name: "LDA", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).lda},
	0xB6: {Name: "LDX", Mode: ModeZeroPageY, Cycles: 4, mode: (*CPU).zpy, op: (*CPU).ldx},
	0xB7: {Name: "NOP", Mode: ModeZeroPageY, Cycles: 4, mode: (*CPU).zpy, op: (*CPU).nop},
	0xB8: {Name: "CLV", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).clv},
	0xB9: {Name: "LDA", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).lda},
	0xBA: {Name: "TSX", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).tsx},
	0xBB: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).nop},
	0xBC: {Name: "LDY", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).ldy},
	0xBD: {Name: "LDA", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).lda},
	0xBE: {Name: "LDX", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).ldx},
	0xBF: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).nop},
	0xC0: {Name: "CPY", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).cpy},
	0xC1: {Name: "CMP", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).cmp},
	0xC2: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0xC3: {Name: "NOP", Mode: ModeIndirectX, Cycles: 8, mode: (*CPU).izx, op: (*CPU).nop},
	0xC4: {Name: "CPY", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).cpy},
	0xC5: {Name: "CMP", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).cmp},
	0xC6: {Name: "DEC", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).dec},
	0xC7: {Name: "NOP", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).nop},
	0xC8: {Name: "INY", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).iny},
	0xC9: {Name: "CMP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).cmp},
	0xCA: {Name: "DEX", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).dex},
	0xCB: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0xCC: {Name: "CPY", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).cpy},
	0xCD: {Name: "CMP", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).cmp},
	0xCE: {Name: "DEC", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).dec},
	0xCF: {Name: "NOP", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).nop},
	0xD0: {Name: "BNE", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).bne},
	0xD1: {Name: "CMP", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).cmp},
	0xD2: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0xD3: {Name: "NOP", Mode: ModeIndirectY, Cycles: 8, mode: (*CPU).izy, op: (*CPU).nop},
	0xD4: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).nop},
	0xD5: {Name: "CMP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).cmp},
	0xD6: {Name: "DEC", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).dec},
	0xD7: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).nop},
	0xD8: {Name: "CLD", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).cld},
	0xD9: {Name: "CMP", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).cmp},
	0xDA: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0xDB: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 7, mode: (*CPU).aby, op: (*CPU).nop},
	0xDC: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).nop},
	0xDD: {Name: "CMP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).cmp},
	0xDE: {Name: "DEC", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).dec},
	0xDF: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).nop},
	0xE0: {Name: "CPX", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).cpx},
	0xE1: {Name: "SBC", Mode: ModeIndirectX, Cycles: 6, mode: (*CPU).izx, op: (*CPU).sbc},
	0xE2: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0xE3: {Name: "NOP", Mode: ModeIndirectX, Cycles: 8, mode: (*CPU).izx, op: (*CPU).nop},
	0xE4: {Name: "CPX", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).cpx},
	0xE5: {Name: "SBC", Mode: ModeZeroPage, Cycles: 3, mode: (*CPU).zpg, op: (*CPU).sbc},
	0xE6: {Name: "INC", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).inc},
	0xE7: {Name: "NOP", Mode: ModeZeroPage, Cycles: 5, mode: (*CPU).zpg, op: (*CPU).nop},
	0xE8: {Name: "INX", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).inx},
	0xE9: {Name: "SBC", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).sbc},
	0xEA: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0xEB: {Name: "NOP", Mode: ModeImmediate, Cycles: 2, mode: (*CPU).imm, op: (*CPU).nop},
	0xEC: {Name: "CPX", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).cpx},
	0xED: {Name: "SBC", Mode: ModeAbsolute, Cycles: 4, mode: (*CPU).abs, op: (*CPU).sbc},
	0xEE: {Name: "INC", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).inc},
	0xEF: {Name: "NOP", Mode: ModeAbsolute, Cycles: 6, mode: (*CPU).abs, op: (*CPU).nop},
	0xF0: {Name: "BEQ", Mode: ModeRelative, Cycles: 2, mode: (*CPU).rel, op: (*CPU).beq},
	0xF1: {Name: "SBC", Mode: ModeIndirectY, Cycles: 5, mode: (*CPU).izy, op: (*CPU).sbc},
	0xF2: {Name: "NOP", Mode: ModeImplied, Cycles: 0, mode: (*CPU).imp, op: (*CPU).nop},
	0xF3: {Name: "NOP", Mode: ModeIndirectY, Cycles: 4, mode: (*CPU).izy, op: (*CPU).nop},
	0xF4: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).nop},
	0xF5: {Name: "SBC", Mode: ModeZeroPageX, Cycles: 4, mode: (*CPU).zpx, op: (*CPU).sbc},
	0xF6: {Name: "INC", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).inc},
	0xF7: {Name: "NOP", Mode: ModeZeroPageX, Cycles: 6, mode: (*CPU).zpx, op: (*CPU).nop},
	0xF8: {Name: "SED", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).sed},
	0xF9: {Name: "SBC", Mode: ModeAbsoluteY, Cycles: 4, mode: (*CPU).aby, op: (*CPU).sbc},
	0xFA: {Name: "NOP", Mode: ModeImplied, Cycles: 2, mode: (*CPU).imp, op: (*CPU).nop},
	0xFB: {Name: "NOP", Mode: ModeAbsoluteY, Cycles: 7, mode: (*CPU).aby, op: (*CPU).nop},
	0xFC: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).nop},
	0xFD: {Name: "SBC", Mode: ModeAbsoluteX, Cycles: 4, mode: (*CPU).abx, op: (*CPU).sbc},
	0xFE: {Name: "INC", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).inc},
	0xFF: {Name: "NOP", Mode: ModeAbsoluteX, Cycles: 7, mode: (*CPU).abx, op: (*CPU).nop},
}
