package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// load writes a sequence of bytes starting at addr and returns a CPU
// whose PC starts there.
func load(addr uint16, program ...byte) *CPU {
	c := New(nil)
	for i, b := range program {
		_ = c.Mem.WriteByte(addr+uint16(i), b)
	}
	c.Reg.PC = addr
	return c
}

func TestAddRegisterToAccumulator(t *testing.T) {
	// LD B,0x42; ADD A,B
	c := load(0x0100, 0x06, 0x42, 0x80)
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.Equal(t, byte(0x42), c.Reg.A)
	assert.False(t, c.Reg.F.Zero)
	assert.False(t, c.Reg.F.Carry)
}

func TestAddSetsHalfCarry(t *testing.T) {
	// LD A,0x0F; ADD A,0x01
	c := load(0x0100, 0x3E, 0x0F, 0xC6, 0x01)
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.Equal(t, byte(0x10), c.Reg.A)
	assert.True(t, c.Reg.F.HalfCarry)
	assert.False(t, c.Reg.F.Carry)
}

func TestSubBelowZeroWrapsAndSetsCarry(t *testing.T) {
	// LD A,0x00; SUB 0x01
	c := load(0x0100, 0x3E, 0x00, 0xD6, 0x01)
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.Equal(t, byte(0xFF), c.Reg.A)
	assert.False(t, c.Reg.F.Zero)
	assert.True(t, c.Reg.F.Carry)
	assert.True(t, c.Reg.F.Subtract)
}

func TestLoadHLIncrementStoresAndAdvances(t *testing.T) {
	// LD HL,0x8000; LD (HL+),A
	c := load(0x0100, 0x21, 0x00, 0x80, 0x22)
	c.Reg.A = 0x99
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.Equal(t, byte(0x99), c.Mem.ReadByte(0x8000))
	assert.Equal(t, uint16(0x8001), c.Reg.HL())
}

func TestCallThenRetRestoresPCAndSP(t *testing.T) {
	// LD SP,0xFFFE; CALL 0x1234; (at 0x1234) RET
	c := load(0x0100, 0x31, 0xFE, 0xFF, 0xCD, 0x34, 0x12)
	_ = c.Mem.WriteByte(0x1234, 0xC9) // RET
	_, err := c.Step() // LD SP,0xFFFE
	assert.Nil(t, err)
	pcAfterCall := c.Reg.PC + 3 // CALL's own length, pushed as the return address
	_, err = c.Step()           // CALL 0x1234
	assert.Nil(t, err)
	assert.Equal(t, uint16(0x1234), c.Reg.PC)
	assert.Equal(t, uint16(0xFFFC), c.Reg.SP)
	_, err = c.Step() // RET
	assert.Nil(t, err)
	assert.Equal(t, pcAfterCall, c.Reg.PC)
	assert.Equal(t, uint16(0xFFFE), c.Reg.SP)
}

func TestAddSPSignedSmallDisplacement(t *testing.T) {
	// LD SP,0x000F; ADD SP,0x01
	c := load(0x0100, 0x31, 0x0F, 0x00, 0xE8, 0x01)
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.Equal(t, uint16(0x0010), c.Reg.SP)
	assert.True(t, c.Reg.F.HalfCarry)
	assert.False(t, c.Reg.F.Carry)
	assert.False(t, c.Reg.F.Zero)
}

func TestAddSPSignedCarriesOutOfLowByte(t *testing.T) {
	// LD SP,0x00FF; ADD SP,0x01
	c := load(0x0100, 0x31, 0xFF, 0x00, 0xE8, 0x01)
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.Equal(t, uint16(0x0100), c.Reg.SP)
	assert.True(t, c.Reg.F.HalfCarry)
	assert.True(t, c.Reg.F.Carry)
}

func TestConditionalJumpNotTakenStillAdvancesPastOperand(t *testing.T) {
	// JR Z,0x05 with Z clear: not taken, PC advances by 2 (not 0x05+2)
	c := load(0x0100, 0x28, 0x05)
	before := c.Reg.PC
	cycles, err := c.Step()
	assert.Nil(t, err)
	assert.Equal(t, before+2, c.Reg.PC)
	assert.Equal(t, 8, cycles)
}

func TestConditionalJumpTakenUsesHigherCycleCount(t *testing.T) {
	c := load(0x0100, 0x28, 0x05)
	c.Reg.F.Zero = true
	cycles, err := c.Step()
	assert.Nil(t, err)
	assert.Equal(t, uint16(0x0107), c.Reg.PC) // 0x0100 + 2 + 5
	assert.Equal(t, 12, cycles)
}

func TestPushThenPopRoundTrips(t *testing.T) {
	c := New(nil)
	c.Reg.SP = 0xFFFE
	c.Reg.SetBC(0xBEEF)
	c.push(c.Reg.BC())
	c.Reg.SetBC(0)
	c.Reg.SetBC(c.pop())
	assert.Equal(t, uint16(0xBEEF), c.Reg.BC())
	assert.Equal(t, uint16(0xFFFE), c.Reg.SP)
}

func TestEIEnablesAfterFollowingInstruction(t *testing.T) {
	// EI; NOP; NOP -- IME should still be false right after EI, true
	// only once the instruction following EI has completed.
	c := load(0x0100, 0xFB, 0x00, 0x00)
	_, err := c.Step() // EI
	assert.Nil(t, err)
	assert.False(t, c.IME())
	_, err = c.Step() // NOP: the deferred enable commits here
	assert.Nil(t, err)
	assert.True(t, c.IME())
}

func TestCBBitOnHLDerefReadsThroughMemory(t *testing.T) {
	// LD HL,0x8000; BIT 3,(HL) against mem[0x8000]=0x08
	c := load(0x0100, 0x21, 0x00, 0x80, 0xCB, 0x5E)
	_ = c.Mem.WriteByte(0x8000, 0x08)
	_, err := c.Step()
	assert.Nil(t, err)
	_, err = c.Step()
	assert.Nil(t, err)
	assert.False(t, c.Reg.F.Zero)
	assert.True(t, c.Reg.F.HalfCarry)
}

func TestStrictModeReturnsErrorOnUnmappedIllegalOpcode(t *testing.T) {
	c := load(0x0100, 0xD3) // illegal base-plane byte
	c.Strict = true
	_, err := c.Step()
	assert.Error(t, err)
	var unimpl *UnimplementedOpcodeError
	assert.ErrorAs(t, err, &unimpl)
}

func TestNonStrictModeTreatsUnmappedOpcodeAsNop(t *testing.T) {
	c := load(0x0100, 0xD3)
	cycles, err := c.Step()
	assert.Nil(t, err)
	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x0101), c.Reg.PC)
}
