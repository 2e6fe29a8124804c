package cpu

// cbOpcodes is the 0x00-0xFF dispatch table for the CB-prefixed plane.
// Unlike the base plane, every single entry here follows the same
// "family base + 8*row + operand" encoding, so the whole table is
// generated by nested loops rather than listed by hand.
var cbOpcodes [256]opcodeEntry

func init() {
	regs := [8]reg8{regB, regC, regD, regE, regH, regL, regHLInd, regA}

	type rotFamily struct {
		name string
		gen  func(reg8) opcodeHandler
	}
	rotFamilies := [8]rotFamily{
		{"RLC", cbRLC},
		{"RRC", cbRRC},
		{"RL", cbRL},
		{"RR", cbRR},
		{"SLA", cbSLA},
		{"SRA", cbSRA},
		{"SWAP", cbSWAP},
		{"SRL", cbSRL},
	}

	// 0x00-0x3F: RLC/RRC/RL/RR/SLA/SRA/SWAP/SRL, one row of 8 operands each.
	for famIdx, fam := range rotFamilies {
		for opIdx, r := range regs {
			op := byte(famIdx*8 + opIdx)
			cbOpcodes[op] = opcodeEntry{Name: fam.name + " " + r.String(), Handler: fam.gen(r)}
		}
	}

	// 0x40-0x7F: BIT n,r -- base 0x40, n*8 per bit index, operand column.
	for n := uint(0); n < 8; n++ {
		for opIdx, r := range regs {
			op := byte(0x40 + n*8 + uint(opIdx))
			cbOpcodes[op] = opcodeEntry{Name: bitOpName("BIT", n, r), Handler: cbBIT(n, r)}
		}
	}

	// 0x80-0xBF: RES n,r.
	for n := uint(0); n < 8; n++ {
		for opIdx, r := range regs {
			op := byte(0x80 + n*8 + uint(opIdx))
			cbOpcodes[op] = opcodeEntry{Name: bitOpName("RES", n, r), Handler: cbRES(n, r)}
		}
	}

	// 0xC0-0xFF: SET n,r.
	for n := uint(0); n < 8; n++ {
		for opIdx, r := range regs {
			op := byte(0xC0 + n*8 + uint(opIdx))
			cbOpcodes[op] = opcodeEntry{Name: bitOpName("SET", n, r), Handler: cbSET(n, r)}
		}
	}
}

func bitOpName(mnemonic string, n uint, r reg8) string {
	digits := "01234567"
	return mnemonic + " " + string(digits[n]) + "," + r.String()
}
