package cpu

// 8-bit LD family: reg<-reg, reg<-d8, reg<-(rr), (rr)<-reg, (HL)<-d8,
// LDH, LD (C),A / LD A,(C), LD (a16),A / LD A,(a16), and the (HL+)/
// (HL-) post-increment/decrement variants. Flags: none affected by any
// LD (the family carries "- - - -" throughout), matching spec.md's LD
// family contract.

// ldRR generates the 63 "LD r,r'" handlers (0x40-0x7F minus 0x76/HALT)
// from the reg8 index rather than writing each one by hand -- same
// idea as the teacher building its Opcodes map from shared method
// values, generalized one step further since every entry here really
// is the same one-line body.
func ldRR(dst, src reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set(dst, c.get(src))
		cycles := 4
		if dst == regHLInd || src == regHLInd {
			cycles = 8
		}
		return cycles, 1
	}
}

// ldRD8 generates "LD r,d8".
func ldRD8(dst reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set(dst, c.readByteArg(1))
		cycles := 8
		if dst == regHLInd {
			cycles = 12
		}
		return cycles, 2
	}
}

// ldRPairDeref generates "LD r, (rr)" for BC/DE.
func ldRPairDeref(dst reg8, src reg16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.set(dst, c.Mem.ReadByte(c.get16(src)))
		return 8, 1
	}
}

// ldPairDerefR generates "LD (rr), r" for BC/DE.
func ldPairDerefR(dst reg16, src reg8) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.mustWriteByte(c.get16(dst), c.get(src))
		return 8, 1
	}
}

func ldAHLIncr(c *CPU) (int, int) {
	hl := c.Reg.HL()
	c.Reg.A = c.Mem.ReadByte(hl)
	c.Reg.SetHL(hl + 1)
	return 8, 1
}

func ldAHLDecr(c *CPU) (int, int) {
	hl := c.Reg.HL()
	c.Reg.A = c.Mem.ReadByte(hl)
	c.Reg.SetHL(hl - 1)
	return 8, 1
}

func ldHLIncrA(c *CPU) (int, int) {
	hl := c.Reg.HL()
	c.mustWriteByte(hl, c.Reg.A)
	c.Reg.SetHL(hl + 1)
	return 8, 1
}

func ldHLDecrA(c *CPU) (int, int) {
	hl := c.Reg.HL()
	c.mustWriteByte(hl, c.Reg.A)
	c.Reg.SetHL(hl - 1)
	return 8, 1
}

func ldHLDerefD8(c *CPU) (int, int) {
	c.mustWriteByte(c.Reg.HL(), c.readByteArg(1))
	return 12, 2
}

// ldhA8A is LDH (a8),A: store A at 0xFF00+a8.
func ldhA8A(c *CPU) (int, int) {
	addr := 0xFF00 + uint16(c.readByteArg(1))
	c.mustWriteByte(addr, c.Reg.A)
	return 12, 2
}

// ldhAA8 is LDH A,(a8): load A from 0xFF00+a8.
func ldhAA8(c *CPU) (int, int) {
	addr := 0xFF00 + uint16(c.readByteArg(1))
	c.Reg.A = c.Mem.ReadByte(addr)
	return 12, 2
}

// ldCA is LD (C),A: store A at 0xFF00+C.
func ldCA(c *CPU) (int, int) {
	c.mustWriteByte(0xFF00+uint16(c.Reg.C), c.Reg.A)
	return 8, 1
}

// ldAC is LD A,(C): load A from 0xFF00+C.
func ldAC(c *CPU) (int, int) {
	c.Reg.A = c.Mem.ReadByte(0xFF00 + uint16(c.Reg.C))
	return 8, 1
}

// ldA16A is LD (a16),A.
func ldA16A(c *CPU) (int, int) {
	c.mustWriteByte(c.readWordArg(1), c.Reg.A)
	return 16, 3
}

// ldAA16 is LD A,(a16).
func ldAA16(c *CPU) (int, int) {
	c.Reg.A = c.Mem.ReadByte(c.readWordArg(1))
	return 16, 3
}
