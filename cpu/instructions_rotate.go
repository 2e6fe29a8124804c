package cpu

// Rotates and shifts. The four A-only base-plane opcodes (RLCA, RLA,
// RRCA, RRA) force Z=0 regardless of the result; the CB-prefixed forms
// operating on any r or (HL) set Z from the result. Both share the same
// bit-manipulation core, so the base-plane handlers delegate into the
// generic ones and then clear Z.

func rlc(v byte) (result byte, carryOut bool) {
	carryOut = v&0x80 != 0
	result = v << 1
	if carryOut {
		result |= 0x01
	}
	return
}

func rl(v byte, carryIn bool) (result byte, carryOut bool) {
	carryOut = v&0x80 != 0
	result = v << 1
	if carryIn {
		result |= 0x01
	}
	return
}

func rrc(v byte) (result byte, carryOut bool) {
	carryOut = v&0x01 != 0
	result = v >> 1
	if carryOut {
		result |= 0x80
	}
	return
}

func rr(v byte, carryIn bool) (result byte, carryOut bool) {
	carryOut = v&0x01 != 0
	result = v >> 1
	if carryIn {
		result |= 0x80
	}
	return
}

func sla(v byte) (result byte, carryOut bool) {
	carryOut = v&0x80 != 0
	result = v << 1
	return
}

// sra is an arithmetic right shift: bit 7 is preserved (sign-extended).
func sra(v byte) (result byte, carryOut bool) {
	carryOut = v&0x01 != 0
	result = (v >> 1) | (v & 0x80)
	return
}

func srl(v byte) (result byte, carryOut bool) {
	carryOut = v&0x01 != 0
	result = v >> 1
	return
}

func swap(v byte) byte {
	return v<<4 | v>>4
}

// rlca/rla/rrca/rra: the A-only forms, 1 byte, 4 cycles, Z always 0.
func rlca(c *CPU) (int, int) {
	v, carry := rlc(c.Reg.A)
	c.Reg.A = v
	c.setRotateFlags(false, carry)
	return 4, 1
}

func rla(c *CPU) (int, int) {
	v, carry := rl(c.Reg.A, c.Reg.F.Carry)
	c.Reg.A = v
	c.setRotateFlags(false, carry)
	return 4, 1
}

func rrca(c *CPU) (int, int) {
	v, carry := rrc(c.Reg.A)
	c.Reg.A = v
	c.setRotateFlags(false, carry)
	return 4, 1
}

func rra(c *CPU) (int, int) {
	v, carry := rr(c.Reg.A, c.Reg.F.Carry)
	c.Reg.A = v
	c.setRotateFlags(false, carry)
	return 4, 1
}

// setRotateFlags applies the shared N=0,H=0 + Z/C contract every
// rotate/shift instruction uses.
func (c *CPU) setRotateFlags(zero, carry bool) {
	c.Reg.F.Zero = zero
	c.Reg.F.Subtract = false
	c.Reg.F.HalfCarry = false
	c.Reg.F.Carry = carry
}

// cbRLC et al. generate the CB-plane handlers for a given reg8 operand;
// Z is set from the result (unlike the A-only base-plane forms).
func cbRLC(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := rlc(c.get(r))
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

func cbRL(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := rl(c.get(r), c.Reg.F.Carry)
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

func cbRRC(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := rrc(c.get(r))
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

func cbRR(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := rr(c.get(r), c.Reg.F.Carry)
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

func cbSLA(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := sla(c.get(r))
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

func cbSRA(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := sra(c.get(r))
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

func cbSRL(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, carry := srl(c.get(r))
		c.set(r, v)
		c.setRotateFlags(v == 0, carry)
		return cbCycles(r), 2
	}
}

// cbSWAP: exchange the nibbles; Z by result; N=0,H=0,C=0.
func cbSWAP(r reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		v := swap(c.get(r))
		c.set(r, v)
		c.setRotateFlags(v == 0, false)
		return cbCycles(r), 2
	}
}

// cbCycles is 16 for the (HL) operand form, 8 for any register.
func cbCycles(r reg8) int {
	if r == regHLInd {
		return 16
	}
	return 8
}
