// Package memory implements the flat memory bus shared by the CPU core and
// the disassembler.
package memory

import "fmt"

// Bus is a flat, fixed-size addressable byte array. It has no notion of
// banking or mirroring, a host maps its address space before attaching the
// bus to a CPU or disassembler.
//
// Accesses outside of the fixed size are addressing faults: the hardware has
// no bus error trap, so the bus does not try to recover and panics instead of
// corrupting unrelated memory.
type Bus struct {
	ram []byte
}

// New creates a new bus with the given RAM size in bytes.
func New(size int) *Bus {
	return &Bus{
		ram: make([]byte, size),
	}
}

// Size returns the RAM size in bytes.
func (b *Bus) Size() int {
	return len(b.ram)
}

// Read returns a copy of length bytes starting at address.
func (b *Bus) Read(address, length int) []byte {
	b.checkRange(address, length)
	data := make([]byte, length)
	copy(data, b.ram[address:address+length])
	return data
}

// Write stores data starting at address.
func (b *Bus) Write(address int, data []byte) {
	b.checkRange(address, len(data))
	copy(b.ram[address:], data)
}

// Read8 returns the byte at address.
func (b *Bus) Read8(address uint16) byte {
	return b.ram[b.checkAddress(address)]
}

// Write8 stores a byte at address.
func (b *Bus) Write8(address uint16, data byte) {
	b.ram[b.checkAddress(address)] = data
}

// ReadInt8 returns the byte at address as a signed value.
func (b *Bus) ReadInt8(address uint16) int8 {
	return int8(b.Read8(address))
}

// Read16 returns the little-endian word at address.
func (b *Bus) Read16(address uint16) uint16 {
	low := uint16(b.Read8(address))
	high := uint16(b.Read8(address + 1))
	return high<<8 | low
}

// Write16 stores a word at address in little-endian order.
func (b *Bus) Write16(address uint16, data uint16) {
	b.Write8(address, byte(data))
	b.Write8(address+1, byte(data>>8))
}

// ReadInt16 returns the little-endian word at address as a signed value.
func (b *Bus) ReadInt16(address uint16) int16 {
	return int16(b.Read16(address))
}

// Read16BE returns the big-endian word at address.
func (b *Bus) Read16BE(address uint16) uint16 {
	high := uint16(b.Read8(address))
	low := uint16(b.Read8(address + 1))
	return high<<8 | low
}

// Write16BE stores a word at address in big-endian order.
func (b *Bus) Write16BE(address uint16, data uint16) {
	b.Write8(address, byte(data>>8))
	b.Write8(address+1, byte(data))
}

func (b *Bus) checkAddress(address uint16) int {
	if int(address) >= len(b.ram) {
		panic(fmt.Sprintf("memory: address $%04X outside of %d byte RAM", address, len(b.ram)))
	}
	return int(address)
}

func (b *Bus) checkRange(address, length int) {
	if address < 0 || length < 0 || address+length > len(b.ram) {
		panic(fmt.Sprintf("memory: range $%04X+%d outside of %d byte RAM", address, length, len(b.ram)))
	}
}
