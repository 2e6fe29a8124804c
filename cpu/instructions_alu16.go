package cpu

// 16-bit arithmetic: INC rr/DEC rr (flags unaffected), ADD HL,rr
// (preserves Z; N=0; H/C from bit 11/15 carry), ADD SP,r8 (signed
// displacement, Z=0,N=0, H/C per the unsigned-low-byte rule).

func incRR(dst reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set16(dst, c.get16(dst)+1)
		return 8, 1
	}
}

func decRR(dst reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set16(dst, c.get16(dst)-1)
		return 8, 1
	}
}

func addHLRR(src reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		v, h, carry := addU16(c.Reg.HL(), c.get16(src))
		c.Reg.SetHL(v)
		c.Reg.F.Subtract = false
		c.Reg.F.HalfCarry = h
		c.Reg.F.Carry = carry
		return 8, 1
	}
}

func addSPR8(c *CPU) (int, int) {
	r8 := int8(c.readByteArg(1))
	v, h, carry := addSPSigned(c.Reg.SP, r8)
	c.Reg.SP = v
	c.Reg.F.Zero = false
	c.Reg.F.Subtract = false
	c.Reg.F.HalfCarry = h
	c.Reg.F.Carry = carry
	return 16, 2
}
