package m6502

import "strings"

// Flags contains the 6502 status flags as a bit-set. The unused flag reads
// as 1 at all externally observable points, the execution engine forces it
// set after every instruction and before every status push.
type Flags uint8

// Status flag bits.
const (
	FlagC Flags = 1 << iota // carry
	FlagZ                   // zero
	FlagI                   // interrupt disable
	FlagD                   // decimal mode
	FlagB                   // break command
	FlagU                   // unused, always set
	FlagV                   // overflow
	FlagN                   // negative
)

// Has returns whether all given flag bits are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Set sets or clears the given flag bits.
func (f *Flags) Set(flag Flags, value bool) {
	if value {
		*f |= flag
	} else {
		*f &= ^flag
	}
}

// String returns the flags in the order CZIDBUVN, unset flags are shown
// as x.
func (f Flags) String() string {
	var sb strings.Builder
	for i, name := range [8]byte{'C', 'Z', 'I', 'D', 'B', 'U', 'V', 'N'} {
		if f.Has(1 << i) {
			sb.WriteByte(name)
		} else {
			sb.WriteByte('x')
		}
	}
	return sb.String()
}
