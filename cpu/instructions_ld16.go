package cpu

// 16-bit LD family: LD rr,d16; LD (a16),SP; LD SP,HL; LD HL,SP+r8.
// Flags: unaffected except LD HL,SP+r8, which forces Z=0,N=0 and
// computes H/C via the signed-displacement rule (carry.go
// addSPSigned).

// ldRRD16 generates "LD rr,d16" for BC/DE/HL/SP.
func ldRRD16(dst reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set16(dst, c.readWordArg(1))
		return 12, 3
	}
}

// ldA16SP is LD (a16),SP: store SP (little-endian, per the cartridge
// convention) at a16/a16+1.
func ldA16SP(c *CPU) (int, int) {
	addr := c.readWordArg(1)
	c.mustWriteByte(addr, byte(c.Reg.SP))
	c.mustWriteByte(addr+1, byte(c.Reg.SP>>8))
	return 20, 3
}

func ldSPHL(c *CPU) (int, int) {
	c.Reg.SP = c.Reg.HL()
	return 8, 1
}

// ldHLSPR8 is LD HL,SP+r8.
func ldHLSPR8(c *CPU) (int, int) {
	r8 := int8(c.readByteArg(1))
	v, h, carry := addSPSigned(c.Reg.SP, r8)
	c.Reg.SetHL(v)
	c.Reg.F.Zero = false
	c.Reg.F.Subtract = false
	c.Reg.F.HalfCarry = h
	c.Reg.F.Carry = carry
	return 12, 2
}

// Stack moves: PUSH rr / POP rr on AF,BC,DE,HL. PUSH decrements SP by 2
// then stores; POP loads then increments SP by 2. POP AF masks the low
// nibble of F to zero (handled by Registers.SetAF/Flag.SetByte).

func pushRR(src reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.push(c.get16(src))
		return 16, 1
	}
}

func popRR(dst reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set16(dst, c.pop())
		return 12, 1
	}
}
