package memory

import (
	"fmt"
	"strings"
)

// Dump renders the RAM as a 16 column hexdump with an ASCII view. The address
// column width follows the RAM size.
func (b *Bus) Dump() string {
	return Hexdump(b.ram, addressDigits(len(b.ram)))
}

// DumpRange renders length bytes starting at address as a hexdump.
func (b *Bus) DumpRange(address, length int) string {
	b.checkRange(address, length)
	return Hexdump(b.ram[address:address+length], addressDigits(len(b.ram)))
}

func addressDigits(size int) int {
	switch {
	case size <= 0x100:
		return 2
	case size <= 0x10000:
		return 4
	default:
		return 8
	}
}

// Hexdump renders data as a 16 column hexdump with an ASCII view, using the
// given number of hex digits for the address column.
func Hexdump(data []byte, addressDigits int) string {
	var sb strings.Builder

	for i := 0; i < len(data); i += 16 {
		line := data[i:min(i+16, len(data))]

		fmt.Fprintf(&sb, "%0*X:\t", addressDigits, i)

		for _, value := range line {
			fmt.Fprintf(&sb, " %02X", value)
		}
		for range 16 - len(line) {
			sb.WriteString("   ")
		}
		sb.WriteByte('\t')

		for _, value := range line {
			if value >= 0x20 && value <= 0x7e {
				sb.WriteByte(value)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
