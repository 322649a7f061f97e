package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/mos6502/m6502"
)

// Render writes the listing of the address range [start, end) to the
// writer.
func (d *Disasm) Render(w io.Writer, start, end uint16) error {
	_, err := io.WriteString(w, d.Listing(start, end))
	return err
}

// Listing renders the address range [start, end) as a labeled listing.
// Every line holds one instruction or one data entry, addresses with a
// region get a symbol header with its cross references prepended. Known
// branch, jump and data operands are substituted with their symbol names.
func (d *Disasm) Listing(start, end uint16) string {
	var sb strings.Builder

	offset := int(start)
	for offset < int(end) {
		address := uint16(offset)

		region, ok := d.regions[address]
		if ok {
			d.renderHeader(&sb, region)

			if n := d.renderData(&sb, address, region, int(end)-offset); n > 0 {
				offset += n
				continue
			}
		}

		offset += d.renderInstruction(&sb, address)
	}

	return sb.String()
}

// renderHeader writes the symbol line of a region with its recorded cross
// references.
func (d *Disasm) renderHeader(sb *strings.Builder, region *Region) {
	fmt.Fprintf(sb, "\t%s:", region.Name)

	if refs := region.Refs(); len(refs) > 0 {
		sb.WriteString("\t; REFS:")
		for _, ref := range refs {
			fmt.Fprintf(sb, " %04X", ref)
		}
	}
	sb.WriteByte('\n')
}

// renderData writes the data entries of a region and returns the number of
// bytes consumed, 0 if the region does not hold data. Array regions render
// one entry per line until their declared size or the listing end is
// reached.
func (d *Disasm) renderData(sb *strings.Builder, address uint16, region *Region, remaining int) int {
	entrySize := region.Type.DataSize()
	if entrySize == 0 {
		return 0
	}

	size := entrySize
	if region.Array && region.Size > size {
		size = region.Size
	}
	if size > remaining {
		size = remaining
	}

	consumed := 0
	for ; consumed+entrySize <= size; consumed += entrySize {
		entry := address + uint16(consumed)
		d.renderOffset(sb, entry)
		sb.WriteString(d.formatDataEntry(entry, region.Type))
		sb.WriteByte('\n')
	}

	// an entry cut off by the listing end degrades to single bytes
	for ; consumed < size; consumed++ {
		entry := address + uint16(consumed)
		d.renderOffset(sb, entry)
		sb.WriteString(d.formatDataEntry(entry, RegionUnsigned8))
		sb.WriteByte('\n')
	}
	return size
}

func (d *Disasm) formatDataEntry(address uint16, typ RegionType) string {
	switch typ {
	case RegionSigned8:
		if d.options.Decimal {
			return fmt.Sprintf("i8\t%d", d.bus.ReadInt8(address))
		}
		return d.lower(fmt.Sprintf("i8\t$%02X", d.bus.Read8(address)))

	case RegionUnsigned8:
		if d.options.Decimal {
			return fmt.Sprintf("u8\t%d", d.bus.Read8(address))
		}
		return d.lower(fmt.Sprintf("u8\t$%02X", d.bus.Read8(address)))

	case RegionSigned16:
		if d.options.Decimal {
			return fmt.Sprintf("i16\t%d", d.bus.ReadInt16(address))
		}
		return d.lower(fmt.Sprintf("i16\t$%04X", d.bus.Read16(address)))

	case RegionUnsigned16:
		if d.options.Decimal {
			return fmt.Sprintf("u16\t%d", d.bus.Read16(address))
		}
		return d.lower(fmt.Sprintf("u16\t$%04X", d.bus.Read16(address)))

	case RegionPointer:
		target := d.bus.Read16(address)
		if targetRegion, ok := d.regions[target]; ok {
			return "*\t" + targetRegion.Name
		}
		if d.options.Decimal {
			return fmt.Sprintf("*\t%d", target)
		}
		return d.lower(fmt.Sprintf("*\t$%04X", target))
	}
	return ""
}

// renderInstruction writes one decoded instruction line and returns its
// byte size.
func (d *Disasm) renderInstruction(sb *strings.Builder, address uint16) int {
	opcode := m6502.Opcodes[d.bus.Read8(address)]
	size := 1 + opcode.Mode.OperandSize()

	d.renderOffset(sb, address)

	name := opcode.Name
	if d.options.Lowercase {
		name = strings.ToLower(name)
	}
	sb.WriteString(name)
	sb.WriteString(d.formatOperand(address, opcode))
	sb.WriteByte('\n')

	return size
}

func (d *Disasm) renderOffset(sb *strings.Builder, address uint16) {
	if d.options.Offsets {
		fmt.Fprintf(sb, "%04X:\t", address)
	}
}

func (d *Disasm) lower(s string) string {
	if d.options.Lowercase {
		return strings.ToLower(s)
	}
	return s
}

// symbol returns the region name at address, or the given fallback literal.
func (d *Disasm) symbol(address uint16, fallback string) string {
	if region, ok := d.regions[address]; ok {
		return region.Name
	}
	return d.lower(fallback)
}

// formatOperand renders the operand of the instruction at address in
// assembler notation, substituting symbol names where a region resolves.
func (d *Disasm) formatOperand(address uint16, opcode m6502.Opcode) string {
	operand := address + 1

	switch opcode.Mode {
	case m6502.ModeImmediate:
		return d.lower(" #" + d.formatByte(d.bus.Read8(operand)))

	case m6502.ModeZeroPage:
		target := uint16(d.bus.Read8(operand))
		return " " + d.symbol(target, d.formatByte(d.bus.Read8(operand)))

	case m6502.ModeZeroPageX:
		return d.lower(" " + d.formatByte(d.bus.Read8(operand)) + ",X")

	case m6502.ModeZeroPageY:
		return d.lower(" " + d.formatByte(d.bus.Read8(operand)) + ",Y")

	case m6502.ModeAbsolute:
		target := d.bus.Read16(operand)
		return " " + d.symbol(target, d.formatWord(target))

	case m6502.ModeAbsoluteX:
		return d.lower(" " + d.formatWord(d.bus.Read16(operand)) + ",X")

	case m6502.ModeAbsoluteY:
		return d.lower(" " + d.formatWord(d.bus.Read16(operand)) + ",Y")

	case m6502.ModeIndirect:
		pointer := d.bus.Read16(operand)
		return " (" + d.symbol(pointer, d.formatWord(pointer)) + ")"

	case m6502.ModeIndirectX:
		return d.lower(" (" + d.formatByte(d.bus.Read8(operand)) + ",X)")

	case m6502.ModeIndirectY:
		return d.lower(" (" + d.formatByte(d.bus.Read8(operand)) + "),Y")

	case m6502.ModeRelative:
		target := branchTarget(address, d.bus.ReadInt8(operand))
		return " " + d.symbol(target, d.formatWord(target))
	}
	return ""
}

func (d *Disasm) formatByte(value byte) string {
	if d.options.Decimal {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("$%02X", value)
}

func (d *Disasm) formatWord(value uint16) string {
	if d.options.Decimal {
		return fmt.Sprintf("%d", value)
	}
	return fmt.Sprintf("$%04X", value)
}
