package disasm

// Options configure the listing renderer. The flow analysis itself is not
// affected by any of them.
type Options struct {
	// Decimal renders operand values as decimal numbers instead of hex
	// literals.
	Decimal bool

	// Offsets prefixes every line with its address.
	Offsets bool

	// Lowercase renders mnemonics and hex literals in lowercase. Symbol
	// names keep their case.
	Lowercase bool
}
