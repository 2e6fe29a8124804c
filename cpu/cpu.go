// Package cpu implements the Sharp LR35902 (DMG-CPU) instruction set: a
// cycle-counting interpreter over a Registers file and a 16-bit
// addressable Memory. It owns fetch/decode/dispatch/execute; the host
// supplies the initial memory image and drives Step in a loop.
package cpu

import (
	"fmt"
	"log"

	"dmgcore/mem"
)

// UnimplementedOpcodeError is returned by Step when dispatch lands on a
// byte with no handler. Every documented DMG opcode (base and CB plane)
// has a handler, so this is unreachable on real ROM bytes; the slot
// exists because spec.md requires the core to distinguish this failure
// mode from a write failure, and because dispatch is a plain array
// lookup that has to resolve to *something* for every byte 0x00-0xFF.
type UnimplementedOpcodeError struct {
	Opcode byte
	PC     uint16
	CB     bool
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.CB {
		return fmt.Sprintf("cpu: unimplemented CB opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode 0x%02X at PC 0x%04X", e.Opcode, e.PC)
}

// CPU owns exactly one Registers and one Memory, plus the interrupt
// master enable flag, the pending-EI flag, the Halted flag and the
// Strict opcode policy described below. Single-threaded and
// cooperative, same contract as the teacher's Cpu (one goroutine, no
// locks, step() is a pure function of (pre-state, memory contents)).
type CPU struct {
	Reg Registers
	Mem *mem.Memory

	ime bool

	// eiPending models the hardware EI-delay quirk: EI does not
	// take effect until after the *next* instruction completes. eiPending
	// is set by EI's handler; Step commits IME=true once one full
	// instruction has executed since.
	eiPending bool

	// Halted is set by HALT. Its bus-quirk interaction with pending
	// interrupts is out of scope (see SPEC_FULL.md Non-goals); the host
	// is expected to stop calling Step, or to clear it itself, once an
	// interrupt would wake the core.
	Halted bool

	// Strict controls out-of-range opcode policy (spec.md 9, "caller
	// configurable"). When true, Step returns UnimplementedOpcodeError
	// immediately. When false (default), Step logs and treats the byte
	// as a 1-byte, 4-cycle no-op so a debugger loop keeps making forward
	// progress. Every documented DMG opcode is implemented, so this only
	// matters for non-standard bytes a host might feed in deliberately.
	Strict bool
}

// New returns a CPU with the given initial memory image and all
// registers/flags zeroed, IME false.
func New(initial []byte) *CPU {
	return &CPU{Mem: mem.New(initial)}
}

// IME reports the interrupt master enable flag.
func (c *CPU) IME() bool { return c.ime }

// SetIME sets the interrupt master enable flag immediately, bypassing
// the EI-delay quirk. RETI and DI use this directly; EI does not (see
// eiPending above).
func (c *CPU) SetIME(b bool) {
	c.ime = b
	c.eiPending = false
}

// readByteArg reads the byte at PC+i, the standard way instruction
// handlers fetch their d8/r8 operand.
func (c *CPU) readByteArg(i uint16) byte {
	return c.Mem.ReadByte(c.Reg.PC + i)
}

// readWordArg reads the little-endian d16/a16 operand at PC+i: low byte
// at PC+i, high byte at PC+i+1, per spec.md 6 (cartridge immediates are
// little-endian, independent of Memory's own big-endian ReadWord).
func (c *CPU) readWordArg(i uint16) uint16 {
	lo := uint16(c.Mem.ReadByte(c.Reg.PC + i))
	hi := uint16(c.Mem.ReadByte(c.Reg.PC + i + 1))
	return hi<<8 | lo
}

// readHLDeref reads the byte at (HL).
func (c *CPU) readHLDeref() byte {
	return c.Mem.ReadByte(c.Reg.HL())
}

// mustWriteByte writes through to Memory; a failure here is a fatal
// core error (spec.md 4.5) -- the DMG memory map has no genuinely
// unmapped hole in this core (see mem.Memory), so this only panics if a
// host wraps Memory with one that can fail.
func (c *CPU) mustWriteByte(addr uint16, v byte) {
	if err := c.Mem.WriteByte(addr, v); err != nil {
		panic(fmt.Errorf("cpu: fatal write failure at 0x%04X: %w", addr, err))
	}
}

func (c *CPU) mustWriteWord(addr uint16, v uint16) {
	if err := c.Mem.WriteWord(addr, v); err != nil {
		panic(fmt.Errorf("cpu: fatal write failure at 0x%04X: %w", addr, err))
	}
}

// push decrements SP by 2, then stores v at the new SP (high byte
// first, low byte second, per Memory.WriteWord).
func (c *CPU) push(v uint16) {
	c.Reg.SP -= 2
	c.mustWriteWord(c.Reg.SP, v)
}

// pop reads the word at SP, then increments SP by 2.
func (c *CPU) pop() uint16 {
	v := c.Mem.ReadWord(c.Reg.SP)
	c.Reg.SP += 2
	return v
}

// opcodeHandler is the signature every dispatch table entry carries:
// mutate Cpu state, and report (cycles consumed, instruction length in
// bytes). Jump/call/ret/rst handlers that take the branch set PC to its
// final value themselves and return length 0; a conditional branch not
// taken returns its instruction length like any other handler, so
// Step's unconditional `PC += length` is always correct.
type opcodeHandler func(c *CPU) (cycles int, length int)

type opcodeEntry struct {
	Name    string
	Handler opcodeHandler
}

// Step fetches the opcode at PC, dispatches it (through the CB plane if
// the byte is the 0xCB prefix), applies its state mutation, advances PC
// by the reported instruction length, and returns the number of cycles
// consumed.
func (c *CPU) Step() (int, error) {
	pc := c.Reg.PC
	op := c.Mem.ReadByte(pc)

	eiWasPending := c.eiPending

	var cycles, length int
	if op == 0xCB {
		op2 := c.readByteArg(1)
		entry := cbOpcodes[op2]
		if entry.Handler == nil {
			return 0, &UnimplementedOpcodeError{Opcode: op2, PC: pc, CB: true}
		}
		cycles, length = entry.Handler(c)
	} else {
		entry := baseOpcodes[op]
		if entry.Handler == nil {
			if c.Strict {
				return 0, &UnimplementedOpcodeError{Opcode: op, PC: pc}
			}
			log.Printf("cpu: unimplemented opcode 0x%02X at PC 0x%04X, treating as NOP", op, pc)
			cycles, length = 4, 1
		} else {
			cycles, length = entry.Handler(c)
		}
	}

	c.Reg.PC += uint16(length)

	// EI's effect is deferred to after the instruction following it.
	if eiWasPending {
		c.ime = true
		c.eiPending = false
	}

	return cycles, nil
}
