package cpu

// baseOpcodes is the 0x00-0xFF dispatch table for the non-CB-prefixed
// plane. Built once in init(): the handful of singleton opcodes are
// listed explicitly, and the three large regular families (LD r,r',
// the 8-bit ALU block, and INC/DEC r) are generated by looping over
// reg8 rather than hand-written 64 entries at a time -- the opcode
// encoding genuinely is "family base + 8*row + column", so a loop is
// the literal shape of the encoding, not just a DRY convenience.
var baseOpcodes [256]opcodeEntry

func init() {
	set := func(op byte, name string, h opcodeHandler) {
		baseOpcodes[op] = opcodeEntry{Name: name, Handler: h}
	}

	set(0x00, "NOP", nop)
	set(0x10, "STOP", stop)
	set(0x76, "HALT", halt)

	set(0x07, "RLCA", rlca)
	set(0x0F, "RRCA", rrca)
	set(0x17, "RLA", rla)
	set(0x1F, "RRA", rra)
	set(0x27, "DAA", daa)
	set(0x2F, "CPL", cpl)
	set(0x37, "SCF", scf)
	set(0x3F, "CCF", ccf)

	set(0x18, "JR r8", jrR8)
	set(0x20, "JR NZ,r8", jrCC(condNZ))
	set(0x28, "JR Z,r8", jrCC(condZ))
	set(0x30, "JR NC,r8", jrCC(condNC))
	set(0x38, "JR C,r8", jrCC(condC))

	set(0xC2, "JP NZ,a16", jpCC(condNZ))
	set(0xCA, "JP Z,a16", jpCC(condZ))
	set(0xD2, "JP NC,a16", jpCC(condNC))
	set(0xDA, "JP C,a16", jpCC(condC))
	set(0xC3, "JP a16", jpA16)
	set(0xE9, "JP (HL)", jpHL)

	set(0xC4, "CALL NZ,a16", callCC(condNZ))
	set(0xCC, "CALL Z,a16", callCC(condZ))
	set(0xD4, "CALL NC,a16", callCC(condNC))
	set(0xDC, "CALL C,a16", callCC(condC))
	set(0xCD, "CALL a16", callA16)

	set(0xC0, "RET NZ", retCC(condNZ))
	set(0xC8, "RET Z", retCC(condZ))
	set(0xD0, "RET NC", retCC(condNC))
	set(0xD8, "RET C", retCC(condC))
	set(0xC9, "RET", ret)
	set(0xD9, "RETI", reti)

	set(0xC7, "RST 00H", rst(0x00))
	set(0xCF, "RST 08H", rst(0x08))
	set(0xD7, "RST 10H", rst(0x10))
	set(0xDF, "RST 18H", rst(0x18))
	set(0xE7, "RST 20H", rst(0x20))
	set(0xEF, "RST 28H", rst(0x28))
	set(0xF7, "RST 30H", rst(0x30))
	set(0xFF, "RST 38H", rst(0x38))

	set(0x01, "LD BC,d16", ldRRD16(regBC))
	set(0x11, "LD DE,d16", ldRRD16(regDE))
	set(0x21, "LD HL,d16", ldRRD16(regHL))
	set(0x31, "LD SP,d16", ldRRD16(regSP))
	set(0x08, "LD (a16),SP", ldA16SP)
	set(0xF9, "LD SP,HL", ldSPHL)
	set(0xF8, "LD HL,SP+r8", ldHLSPR8)

	set(0x02, "LD (BC),A", ldPairDerefR(regBC, regA))
	set(0x12, "LD (DE),A", ldPairDerefR(regDE, regA))
	set(0x0A, "LD A,(BC)", ldRPairDeref(regA, regBC))
	set(0x1A, "LD A,(DE)", ldRPairDeref(regA, regDE))
	set(0x22, "LD (HL+),A", ldHLIncrA)
	set(0x2A, "LD A,(HL+)", ldAHLIncr)
	set(0x32, "LD (HL-),A", ldHLDecrA)
	set(0x3A, "LD A,(HL-)", ldAHLDecr)
	set(0x36, "LD (HL),d8", ldHLDerefD8)

	set(0xE0, "LDH (a8),A", ldhA8A)
	set(0xF0, "LDH A,(a8)", ldhAA8)
	set(0xE2, "LD (C),A", ldCA)
	set(0xF2, "LD A,(C)", ldAC)
	set(0xEA, "LD (a16),A", ldA16A)
	set(0xFA, "LD A,(a16)", ldAA16)

	set(0x03, "INC BC", incRR(regBC))
	set(0x13, "INC DE", incRR(regDE))
	set(0x23, "INC HL", incRR(regHL))
	set(0x33, "INC SP", incRR(regSP))
	set(0x0B, "DEC BC", decRR(regBC))
	set(0x1B, "DEC DE", decRR(regDE))
	set(0x2B, "DEC HL", decRR(regHL))
	set(0x3B, "DEC SP", decRR(regSP))
	set(0x09, "ADD HL,BC", addHLRR(regBC))
	set(0x19, "ADD HL,DE", addHLRR(regDE))
	set(0x29, "ADD HL,HL", addHLRR(regHL))
	set(0x39, "ADD HL,SP", addHLRR(regSP))
	set(0xE8, "ADD SP,r8", addSPR8)

	set(0xC1, "POP BC", popRR(regBC))
	set(0xD1, "POP DE", popRR(regDE))
	set(0xE1, "POP HL", popRR(regHL))
	set(0xF1, "POP AF", popRR(regAF))
	set(0xC5, "PUSH BC", pushRR(regBC))
	set(0xD5, "PUSH DE", pushRR(regDE))
	set(0xE5, "PUSH HL", pushRR(regHL))
	set(0xF5, "PUSH AF", pushRR(regAF))

	set(0xC6, "ADD A,d8", addAD8)
	set(0xCE, "ADC A,d8", adcAD8)
	set(0xD6, "SUB d8", subAD8)
	set(0xDE, "SBC A,d8", sbcAD8)
	set(0xE6, "AND d8", andAD8)
	set(0xEE, "XOR d8", xorAD8)
	set(0xF6, "OR d8", orAD8)
	set(0xFE, "CP d8", cpAD8)

	set(0xF3, "DI", di)
	set(0xFB, "EI", ei)

	regs := [8]reg8{regB, regC, regD, regE, regH, regL, regHLInd, regA}

	// LD r,r' -- opcode 0x40 + dst*8 + src. 0x76 (dst=6,src=6) is HALT,
	// already set above, and is skipped here.
	for dstIdx, dst := range regs {
		for srcIdx, src := range regs {
			op := byte(0x40 + dstIdx*8 + srcIdx)
			if op == 0x76 {
				continue
			}
			set(op, "LD "+dst.String()+","+src.String(), ldRR(dst, src))
		}
	}

	// LD r,d8 -- opcode 0x06 + dst*8, skipping dst==regHLInd (0x36,
	// handled above as LD (HL),d8 with its own length/cycles).
	d8Opcodes := [8]byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for i, dst := range regs {
		if dst == regHLInd {
			continue
		}
		set(d8Opcodes[i], "LD "+dst.String()+",d8", ldRD8(dst))
	}

	// INC r / DEC r -- opcode 0x04+dst*8 / 0x05+dst*8.
	incOpcodes := [8]byte{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	decOpcodes := [8]byte{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}
	for i, dst := range regs {
		set(incOpcodes[i], "INC "+dst.String(), incR8(dst))
		set(decOpcodes[i], "DEC "+dst.String(), decR8(dst))
	}

	// 8-bit ALU A,r -- opcode 0x80 + op*8 + src, op in
	// {ADD,ADC,SUB,SBC,AND,XOR,OR,CP}.
	aluNames := [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	aluGens := [8]func(reg8) opcodeHandler{addAReg, adcAReg, subAReg, sbcAReg, andAReg, xorAReg, orAReg, cpAReg}
	for opIdx := range aluGens {
		for srcIdx, src := range regs {
			op := byte(0x80 + opIdx*8 + srcIdx)
			set(op, aluNames[opIdx]+src.String(), aluGens[opIdx](src))
		}
	}
}
