package cpu

// Jumps and control flow: JP a16, JP (HL), JP cc,a16, JR r8, JR cc,r8,
// CALL a16, CALL cc,a16, RET, RET cc, RETI, RST n. Every handler here
// that transfers control sets PC to its final value directly and
// returns length 0, so Step's unconditional PC += length never
// double-advances past a jump target; a conditional branch that is not
// taken leaves PC alone and returns its instruction length instead.

func jpA16(c *CPU) (int, int) {
	c.Reg.PC = c.readWordArg(1)
	return 16, 0
}

// jpHL jumps to the HL register's *value*, not mem[HL].
func jpHL(c *CPU) (int, int) {
	c.Reg.PC = c.Reg.HL()
	return 4, 0
}

func jpCC(cc cond) opcodeHandler {
	return func(c *CPU) (int, int) {
		target := c.readWordArg(1)
		if c.checkCond(cc) {
			c.Reg.PC = target
			return 16, 0
		}
		return 12, 3
	}
}

// jrR8 is JR r8: PC <- PC + signed r8, measured after the 2-byte
// instruction has been fully read (i.e. relative to the *next*
// instruction, per spec.md).
func jrR8(c *CPU) (int, int) {
	r8 := int8(c.readByteArg(1))
	c.Reg.PC = uint16(int32(c.Reg.PC) + 2 + int32(r8))
	return 12, 0
}

func jrCC(cc cond) opcodeHandler {
	return func(c *CPU) (int, int) {
		r8 := int8(c.readByteArg(1))
		if c.checkCond(cc) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + 2 + int32(r8))
			return 12, 0
		}
		return 8, 2
	}
}

// callA16 pushes the address of the instruction after CALL (PC+3),
// then jumps to a16.
func callA16(c *CPU) (int, int) {
	target := c.readWordArg(1)
	c.push(c.Reg.PC + 3)
	c.Reg.PC = target
	return 24, 0
}

func callCC(cc cond) opcodeHandler {
	return func(c *CPU) (int, int) {
		target := c.readWordArg(1)
		if c.checkCond(cc) {
			c.push(c.Reg.PC + 3)
			c.Reg.PC = target
			return 24, 0
		}
		return 12, 3
	}
}

func ret(c *CPU) (int, int) {
	c.Reg.PC = c.pop()
	return 16, 0
}

func retCC(cc cond) opcodeHandler {
	return func(c *CPU) (int, int) {
		if c.checkCond(cc) {
			c.Reg.PC = c.pop()
			return 20, 0
		}
		return 8, 1
	}
}

// reti behaves as RET and additionally sets IME=1 immediately (no
// EI-style delay).
func reti(c *CPU) (int, int) {
	c.Reg.PC = c.pop()
	c.SetIME(true)
	return 16, 0
}

// rst generates RST n: push the address after RST (PC+1), PC <- n.
func rst(n uint16) opcodeHandler {
	return func(c *CPU) (int, int) {
		c.push(c.Reg.PC + 1)
		c.Reg.PC = n
		return 16, 0
	}
}
