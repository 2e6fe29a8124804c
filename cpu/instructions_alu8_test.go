package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDAA mirrors the original's opcode-family test house style
// (construct a CPU, run the instruction, assert on the resulting
// state) as a Go table. Add mode covers no adjustment, +0x06 only
// (from half-carry and from a low nibble over 9) and +0x66 together;
// subtract mode covers no adjustment, -0x06 only and -0x60 only.
func TestDAA(t *testing.T) {
	cases := []struct {
		name            string
		a               byte
		subtract        bool
		halfCarryBefore bool
		carryBefore     bool
		wantA           byte
		wantCarry       bool
	}{
		{
			name:  "add, no adjustment needed",
			a:     0x45, subtract: false,
			wantA: 0x45, wantCarry: false,
		},
		{
			name:  "add, half-carry set forces low nibble +0x06",
			a:     0x10, subtract: false, halfCarryBefore: true,
			wantA: 0x16, wantCarry: false,
		},
		{
			name:  "add, low nibble over 9 forces +0x06 even without half-carry",
			a:     0x0A, subtract: false,
			wantA: 0x10, wantCarry: false,
		},
		{
			name:  "add, value over 0x99 with low nibble over 9 forces +0x66 and sets carry",
			a:     0x9A, subtract: false,
			wantA: 0x00, wantCarry: true,
		},
		{
			name:  "subtract, no adjustment needed",
			a:     0x45, subtract: true,
			wantA: 0x45, wantCarry: false,
		},
		{
			name:  "subtract, half-borrow forces low nibble -0x06",
			a:     0x0F, subtract: true, halfCarryBefore: true,
			wantA: 0x09, wantCarry: false,
		},
		{
			name:  "subtract, borrow forces high nibble -0x60",
			a:     0x00, subtract: true, carryBefore: true,
			wantA: 0xA0, wantCarry: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(nil)
			c.Reg.A = tc.a
			c.Reg.F.Subtract = tc.subtract
			c.Reg.F.HalfCarry = tc.halfCarryBefore
			c.Reg.F.Carry = tc.carryBefore

			cycles, length := daa(c)

			assert.Equal(t, tc.wantA, c.Reg.A)
			assert.Equal(t, tc.wantA == 0, c.Reg.F.Zero)
			assert.Equal(t, tc.wantCarry, c.Reg.F.Carry)
			assert.False(t, c.Reg.F.HalfCarry)
			assert.Equal(t, tc.subtract, c.Reg.F.Subtract)
			assert.Equal(t, 4, cycles)
			assert.Equal(t, 1, length)
		})
	}
}
