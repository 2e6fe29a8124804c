package cpu

// Miscellaneous: NOP, HALT, STOP, EI, DI. HALT/STOP bus quirks are a
// documented Non-goal (SPEC_FULL.md); both still get a correct opcode
// length/cycle count and a minimal, honest state change.

func nop(c *CPU) (int, int) {
	return 4, 1
}

// halt marks the core as halted. Waking it back up on a pending
// interrupt is the host's job (IF/IE latch wiring is out of scope).
func halt(c *CPU) (int, int) {
	c.Halted = true
	return 4, 1
}

// stop is encoded as two bytes (0x10 0x00) on real hardware; the second
// byte is consumed here without interpretation, matching the documented
// length, but the DMG's STOP-mode quirks (display off, button-wake)
// are out of scope.
func stop(c *CPU) (int, int) {
	return 4, 2
}

// ei arms the deferred interrupt-enable; CPU.Step commits it after the
// instruction following this one completes.
func ei(c *CPU) (int, int) {
	c.eiPending = true
	return 4, 1
}

// di disables interrupts immediately (no delay, unlike EI).
func di(c *CPU) (int, int) {
	c.SetIME(false)
	return 4, 1
}
