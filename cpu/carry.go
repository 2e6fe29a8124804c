package cpu

// CarryArith: bit-exact add/sub on 8 and 16 bits, reporting (result,
// half-carry, full-carry) for both operand widths. Pure, total
// functions -- no Cpu, no flags, no side effects; the ADD/ADC/SUB/SBC/
// CP, ADD HL,rr, ADD SP,r8 and LD HL,SP+r8 handlers call one of these
// and then assign the result into Registers/Flag themselves.

// addU8 returns a+b truncated to 8 bits, half-carry out of bit 3, and
// full carry out of bit 7.
func addU8(a, b byte) (v byte, halfCarry, carry bool) {
	sum := uint16(a) + uint16(b)
	halfCarry = (a&0x0F)+(b&0x0F) >= 0x10
	carry = sum >= 0x100
	return byte(sum), halfCarry, carry
}

// addU8Carry is addU8 plus an incoming carry-in bit (for ADC), with
// half/full carry being the logical OR of the two micro-additions: a+b,
// then (a+b)+carryIn.
func addU8Carry(a, b byte, carryIn bool) (v byte, halfCarry, carry bool) {
	var cin byte
	if carryIn {
		cin = 1
	}
	sum := uint16(a) + uint16(b) + uint16(cin)
	halfCarry = (a&0x0F)+(b&0x0F)+cin >= 0x10
	carry = sum >= 0x100
	return byte(sum), halfCarry, carry
}

// subU8 returns a-b truncated to 8 bits, half-borrow out of bit 4, and
// full borrow (a < b).
func subU8(a, b byte) (v byte, halfCarry, carry bool) {
	halfCarry = a&0x0F < b&0x0F
	carry = a < b
	return a - b, halfCarry, carry
}

// subU8Carry is subU8 plus an incoming borrow (for SBC).
func subU8Carry(a, b byte, carryIn bool) (v byte, halfCarry, carry bool) {
	var cin int
	if carryIn {
		cin = 1
	}
	full := int(a) - int(b) - cin
	halfCarry = int(a&0x0F)-int(b&0x0F)-cin < 0
	carry = full < 0
	return byte(full), halfCarry, carry
}

// addU16 is addU8's 16-bit counterpart: half-carry out of bit 11, full
// carry out of bit 15.
func addU16(a, b uint16) (v uint16, halfCarry, carry bool) {
	sum := uint32(a) + uint32(b)
	halfCarry = (a&0x0FFF)+(b&0x0FFF) >= 0x1000
	carry = sum >= 0x10000
	return uint16(sum), halfCarry, carry
}

// addSPSigned implements the ADD SP,r8 / LD HL,SP+r8 quirk: r8 is sign-
// extended and added to sp, but H and C are computed on the unsigned
// low byte of sp against the unsigned byte pattern of the displacement,
// per spec.md 4.1 -- not on the signed 16-bit addition. This is the
// standard DMG rule; the original Rust source's sign-dependent version
// is treated as a bug and not reproduced (see SPEC_FULL.md).
func addSPSigned(sp uint16, r8 int8) (v uint16, halfCarry, carry bool) {
	_, halfCarry, carry = addU8(byte(sp), byte(r8))
	return uint16(int32(sp) + int32(r8)), halfCarry, carry
}
