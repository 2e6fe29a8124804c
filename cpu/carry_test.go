package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddU8(t *testing.T) {
	v, h, c := addU8(0x0F, 0x01)
	assert.Equal(t, byte(0x10), v)
	assert.True(t, h)
	assert.False(t, c)

	v, h, c = addU8(0xFF, 0x01)
	assert.Equal(t, byte(0x00), v)
	assert.True(t, h)
	assert.True(t, c)

	v, h, c = addU8(0x10, 0x42)
	assert.Equal(t, byte(0x52), v)
	assert.False(t, h)
	assert.False(t, c)
}

func TestSubU8(t *testing.T) {
	v, h, c := subU8(0x00, 0x01)
	assert.Equal(t, byte(0xFF), v)
	assert.True(t, h)
	assert.True(t, c)

	v, h, c = subU8(0x10, 0x01)
	assert.Equal(t, byte(0x0F), v)
	assert.True(t, h)
	assert.False(t, c)
}

func TestAddU8CarryIsOrOfBothMicroAdds(t *testing.T) {
	// 0x0F + 0x00 + carryIn(1) half-carries on the second micro-add even
	// though the first (0x0F+0x00) alone does not.
	v, h, c := addU8Carry(0x0F, 0x00, true)
	assert.Equal(t, byte(0x10), v)
	assert.True(t, h)
	assert.False(t, c)
}

func TestAddU16(t *testing.T) {
	v, h, c := addU16(0x0FFF, 0x0001)
	assert.Equal(t, uint16(0x1000), v)
	assert.True(t, h)
	assert.False(t, c)

	v, h, c = addU16(0xFFFF, 0x0001)
	assert.Equal(t, uint16(0x0000), v)
	assert.True(t, h)
	assert.True(t, c)
}

func TestAddSPSigned(t *testing.T) {
	v, h, c := addSPSigned(0x000F, 1)
	assert.Equal(t, uint16(0x0010), v)
	assert.True(t, h)
	assert.False(t, c)

	v, h, c = addSPSigned(0x00FF, 1)
	assert.Equal(t, uint16(0x0100), v)
	assert.True(t, h)
	assert.True(t, c)

	v, _, _ = addSPSigned(0x0010, -1)
	assert.Equal(t, uint16(0x000F), v)
}
