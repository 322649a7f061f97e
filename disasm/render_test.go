package disasm

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/mos6502/m6502"
	"github.com/retroenv/mos6502/memory"
)

var listingProgram = []byte{
	0xA9, 0x01, // 8000: lda #1
	0x8D, 0x00, 0x02, // 8002: sta $0200
	0x20, 0x0B, 0x80, // 8005: jsr $800B
	0x4C, 0x08, 0x80, // 8008: jmp $8008
	0xA6, 0x40, // 800B: ldx $40
	0x60, // 800D: rts
}

func TestListing(t *testing.T) {
	d, _ := newTestDisasm(t, Options{Offsets: true}, listingProgram...)

	want := "\tFUN_8000:\t; REFS: FFFC\n" +
		"8000:\tLDA #$01\n" +
		"8002:\tSTA DAT_0200\n" +
		"8005:\tJSR FUN_800B\n" +
		"\tLAB_8008:\t; REFS: 8008\n" +
		"8008:\tJMP LAB_8008\n" +
		"\tFUN_800B:\t; REFS: 8005\n" +
		"800B:\tLDX DAT_0040\n" +
		"800D:\tRTS\n"

	assert.Equal(t, want, d.Listing(0x8000, 0x800E))
}

func TestListingLowercase(t *testing.T) {
	d, _ := newTestDisasm(t, Options{Offsets: true, Lowercase: true}, listingProgram...)

	want := "\tFUN_8000:\t; REFS: FFFC\n" +
		"8000:\tlda #$01\n" +
		"8002:\tsta DAT_0200\n" +
		"8005:\tjsr FUN_800B\n" +
		"\tLAB_8008:\t; REFS: 8008\n" +
		"8008:\tjmp LAB_8008\n" +
		"\tFUN_800B:\t; REFS: 8005\n" +
		"800B:\tldx DAT_0040\n" +
		"800D:\trts\n"

	assert.Equal(t, want, d.Listing(0x8000, 0x800E))
}

func TestListingDecimal(t *testing.T) {
	d, _ := newTestDisasm(t, Options{Decimal: true}, listingProgram...)

	want := "\tFUN_8000:\t; REFS: FFFC\n" +
		"LDA #1\n" +
		"STA DAT_0200\n" +
		"JSR FUN_800B\n" +
		"\tLAB_8008:\t; REFS: 8008\n" +
		"JMP LAB_8008\n" +
		"\tFUN_800B:\t; REFS: 8005\n" +
		"LDX DAT_0040\n" +
		"RTS\n"

	assert.Equal(t, want, d.Listing(0x8000, 0x800E))
}

func TestListingOperandFormats(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want string
	}{
		{name: "immediate", code: []byte{0xA9, 0x42}, want: "LDA #$42\n"},
		{name: "zero page x", code: []byte{0xB5, 0x42}, want: "LDA $42,X\n"},
		{name: "zero page y", code: []byte{0xB6, 0x42}, want: "LDX $42,Y\n"},
		{name: "absolute x", code: []byte{0xBD, 0x34, 0x12}, want: "LDA $1234,X\n"},
		{name: "absolute y", code: []byte{0xB9, 0x34, 0x12}, want: "LDA $1234,Y\n"},
		{name: "indirect x", code: []byte{0xA1, 0x42}, want: "LDA ($42,X)\n"},
		{name: "indirect y", code: []byte{0xB1, 0x42}, want: "LDA ($42),Y\n"},
		{name: "implied", code: []byte{0xEA}, want: "NOP\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := memory.New(0x10000)
			bus.Write(0x8000, tt.code)

			d := New(log.NewTestLogger(t), bus, Options{})
			got := d.Listing(0x8000, 0x8000+uint16(len(tt.code)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingRelativeOperand(t *testing.T) {
	d, _ := newTestDisasm(t, Options{},
		0xD0, 0x02, // 8000: bne $8004
		0xA9, 0x00, // 8002: lda #0
		0x60, // 8004: rts
	)

	want := "\tFUN_8000:\t; REFS: FFFC\n" +
		"BNE LAB_8004\n" +
		"LDA #$00\n" +
		"\tLAB_8004:\t; REFS: 8000\n" +
		"RTS\n"

	assert.Equal(t, want, d.Listing(0x8000, 0x8005))
}

func TestListingPointerRegion(t *testing.T) {
	bus := memory.New(0x10000)
	bus.Write(0x8000, []byte{0x6C, 0x00, 0x03}) // jmp ($0300)
	bus.Write16(0x0300, 0x8010)
	bus.Write8(0x8010, 0x60)
	bus.Write16(m6502.ResetAddress, 0x8000)

	d := New(log.NewTestLogger(t), bus, Options{})
	d.Run()

	want := "\tPTR_0300:\t; REFS: 8000\n" +
		"*\tLAB_8010\n"
	assert.Equal(t, want, d.Listing(0x0300, 0x0302))

	assert.Equal(t, "\tFUN_8000:\t; REFS: FFFC\nJMP (PTR_0300)\n", d.Listing(0x8000, 0x8003))
}

func TestListingDataRegion(t *testing.T) {
	d, bus := newTestDisasm(t, Options{Offsets: true},
		0x8D, 0x00, 0x02, // 8000: sta $0200
		0x60, // 8003: rts
	)
	bus.Write8(0x0200, 0x7F)

	want := "\tDAT_0200:\t; REFS: 8000\n" +
		"0200:\tu8\t$7F\n"
	assert.Equal(t, want, d.Listing(0x0200, 0x0201))
}

func TestListingStackArray(t *testing.T) {
	d, bus := newTestDisasm(t, Options{Offsets: true}, 0x60)
	bus.Write8(0x0100, 0x11)
	bus.Write8(0x0101, 0x22)

	got := d.Listing(0x0100, 0x0102)
	want := "\tSTACK:\n" +
		"0100:\tu8\t$11\n" +
		"0101:\tu8\t$22\n"
	assert.Equal(t, want, got)
}

func TestListingPointerRegionTruncated(t *testing.T) {
	bus := memory.New(0x10000)
	bus.Write(0x8000, []byte{0x6C, 0x00, 0x03}) // jmp ($0300)
	bus.Write16(0x0300, 0x8010)
	bus.Write8(0x8010, 0x60)
	bus.Write16(m6502.ResetAddress, 0x8000)

	d := New(log.NewTestLogger(t), bus, Options{Offsets: true})
	d.Run()

	// only one byte of the two byte pointer fits the range
	want := "\tPTR_0300:\t; REFS: 8000\n" +
		"0300:\tu8\t$10\n"
	assert.Equal(t, want, d.Listing(0x0300, 0x0301))
}
