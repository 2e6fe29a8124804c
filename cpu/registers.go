package cpu

import "dmgcore/mask"

// Flag holds the four boolean condition flags packed into the high
// nibble of the F register: Z at bit 7, N at bit 6, H at bit 5, C at
// bit 4. The low nibble of F is always zero when read.
//
// Modelled as four bools rather than a raw byte, same as the teacher's
// Flags struct -- packing only happens at the AF boundary (Byte/SetByte
// below), which keeps every instruction's flag-setting code a plain
// bool assignment instead of masked bit twiddling.
type Flag struct {
	Zero      bool
	Subtract  bool // N
	HalfCarry bool // H
	Carry     bool // C
}

// Byte packs the flag into the canonical F layout (ZNHC0000).
func (f Flag) Byte() byte {
	var b byte
	b = mask.Set(b, mask.I1, boolBit(f.Zero))
	b = mask.Set(b, mask.I2, boolBit(f.Subtract))
	b = mask.Set(b, mask.I3, boolBit(f.HalfCarry))
	b = mask.Set(b, mask.I4, boolBit(f.Carry))
	return b
}

// SetByte restores the four flags from an F byte; the low nibble of v
// is ignored, matching AF's write semantics.
func (f *Flag) SetByte(v byte) {
	f.Zero = mask.IsSet(v, mask.I1)
	f.Subtract = mask.IsSet(v, mask.I2)
	f.HalfCarry = mask.IsSet(v, mask.I3)
	f.Carry = mask.IsSet(v, mask.I4)
}

// boolBit renders a bool as a single set bit at position 1 (the MSB),
// the shape mask.Set expects for its bits argument: a nonzero value is
// shifted down to line up with pos, so the leading 1 of 0b1000_0000 is
// what actually lands.
func boolBit(b bool) byte {
	if b {
		return 0b1000_0000
	}
	return 0
}

// Registers is the DMG-CPU register file: seven one-byte registers (A
// plus B,C,D,E,H,L), two one-word registers (SP, PC), and the packed
// Flag. Value-typed, like the teacher's Cpu fields -- a zero Registers
// is already the correct "all zero, all flags clear" reset state.
type Registers struct {
	A byte
	B byte
	C byte
	D byte
	E byte
	H byte
	L byte

	SP uint16
	PC uint16

	F Flag
}

// pair reads a register pair as (high<<8)|low.
func pair(hi, lo byte) uint16 { return uint16(hi)<<8 | uint16(lo) }

// setPair splits v into its high/low halves via the given setters.
func setPair(v uint16, setHi, setLo func(byte)) {
	setHi(byte(v >> 8))
	setLo(byte(v))
}

func (r *Registers) BC() uint16 { return pair(r.B, r.C) }
func (r *Registers) DE() uint16 { return pair(r.D, r.E) }
func (r *Registers) HL() uint16 { return pair(r.H, r.L) }

func (r *Registers) SetBC(v uint16) { setPair(v, func(b byte) { r.B = b }, func(b byte) { r.C = b }) }
func (r *Registers) SetDE(v uint16) { setPair(v, func(b byte) { r.D = b }, func(b byte) { r.E = b }) }
func (r *Registers) SetHL(v uint16) { setPair(v, func(b byte) { r.H = b }, func(b byte) { r.L = b }) }

// AF reads A concatenated with the packed flag byte; bits 3..0 are
// always zero.
func (r *Registers) AF() uint16 { return pair(r.A, r.F.Byte()) }

// SetAF writes A from the high byte and restores the four flags from
// the low byte; the low nibble of the low byte is ignored.
func (r *Registers) SetAF(v uint16) {
	r.A = byte(v >> 8)
	r.F.SetByte(byte(v))
}
