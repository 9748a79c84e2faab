package cpu

// primaryTable is the 256-entry dispatch table for the unprefixed opcode
// page. A nil entry is an opcode the real hardware leaves undefined;
// Step logs it and treats it as a one-byte NOP rather than halting.
var primaryTable [256]func(*CPU) int

func init() {
	primaryTable[0x00] = opNOP
	primaryTable[0x10] = opSTOP
	primaryTable[0x76] = opHALT
	primaryTable[0xF3] = opDI
	primaryTable[0xFB] = opEI

	// LD rr,d16, INC rr, ADD HL,rr and DEC rr for the four pairs, spaced
	// 0x10 apart starting at 0x01/0x03/0x09/0x0B.
	for i := 0; i < 4; i++ {
		pair := i
		primaryTable[0x01+0x10*i] = func(c *CPU) int { writePair16(c, pair, c.fetch16()); return 12 }
		primaryTable[0x03+0x10*i] = func(c *CPU) int { writePair16(c, pair, readPair16(c, pair)+1); return 8 }
		primaryTable[0x09+0x10*i] = func(c *CPU) int { addHL16(c, readPair16(c, pair)); return 8 }
		primaryTable[0x0B+0x10*i] = func(c *CPU) int { writePair16(c, pair, readPair16(c, pair)-1); return 8 }
	}

	primaryTable[0x02] = func(c *CPU) int { c.mem.Write(c.BC(), c.A); return 8 }
	primaryTable[0x12] = func(c *CPU) int { c.mem.Write(c.DE(), c.A); return 8 }
	primaryTable[0x22] = func(c *CPU) int { c.mem.Write(c.HL(), c.A); c.SetHL(c.HL() + 1); return 8 }
	primaryTable[0x32] = func(c *CPU) int { c.mem.Write(c.HL(), c.A); c.SetHL(c.HL() - 1); return 8 }
	primaryTable[0x0A] = func(c *CPU) int { c.A = c.mem.Read(c.BC()); return 8 }
	primaryTable[0x1A] = func(c *CPU) int { c.A = c.mem.Read(c.DE()); return 8 }
	primaryTable[0x2A] = func(c *CPU) int { c.A = c.mem.Read(c.HL()); c.SetHL(c.HL() + 1); return 8 }
	primaryTable[0x3A] = func(c *CPU) int { c.A = c.mem.Read(c.HL()); c.SetHL(c.HL() - 1); return 8 }

	// INC r / DEC r / LD r,d8 for the eight 8-bit operand slots, spaced
	// 0x08 apart starting at 0x04/0x05/0x06.
	for i := 0; i < 8; i++ {
		reg := i
		primaryTable[0x04+0x08*i] = func(c *CPU) int {
			writeReg8(c, reg, inc8(c, readReg8(c, reg)))
			if reg == regHLInd {
				return 12
			}
			return 4
		}
		primaryTable[0x05+0x08*i] = func(c *CPU) int {
			writeReg8(c, reg, dec8(c, readReg8(c, reg)))
			if reg == regHLInd {
				return 12
			}
			return 4
		}
		primaryTable[0x06+0x08*i] = func(c *CPU) int {
			writeReg8(c, reg, c.fetch())
			if reg == regHLInd {
				return 12
			}
			return 8
		}
	}

	primaryTable[0x07] = opRLCA
	primaryTable[0x17] = opRLA
	primaryTable[0x0F] = opRRCA
	primaryTable[0x1F] = opRRA
	primaryTable[0x27] = func(c *CPU) int { daa(c); return 4 }
	primaryTable[0x2F] = func(c *CPU) int { c.A = ^c.A; c.setFlag(FlagN, true); c.setFlag(FlagH, true); return 4 }
	primaryTable[0x37] = func(c *CPU) int { c.setFlag(FlagN, false); c.setFlag(FlagH, false); c.setFlag(FlagC, true); return 4 }
	primaryTable[0x3F] = func(c *CPU) int {
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, !c.flag(FlagC))
		return 4
	}

	primaryTable[0x08] = func(c *CPU) int {
		addr := c.fetch16()
		c.mem.Write(addr, byte(c.SP))
		c.mem.Write(addr+1, byte(c.SP>>8))
		return 20
	}

	primaryTable[0x18] = func(c *CPU) int { c.jr(true); return 12 }
	primaryTable[0x20] = func(c *CPU) int { return jrCond(c, !c.flag(FlagZ)) }
	primaryTable[0x28] = func(c *CPU) int { return jrCond(c, c.flag(FlagZ)) }
	primaryTable[0x30] = func(c *CPU) int { return jrCond(c, !c.flag(FlagC)) }
	primaryTable[0x38] = func(c *CPU) int { return jrCond(c, c.flag(FlagC)) }

	// LD r,r' for every combination of the eight operand slots; 0x76
	// (HALT) is carved out above.
	for d := 0; d < 8; d++ {
		for s := 0; s < 8; s++ {
			opcode := 0x40 + d*8 + s
			if opcode == 0x76 {
				continue
			}
			dst, src := d, s
			cycles := 4
			if dst == regHLInd || src == regHLInd {
				cycles = 8
			}
			primaryTable[opcode] = func(c *CPU) int {
				writeReg8(c, dst, readReg8(c, src))
				return cycles
			}
		}
	}

	// ALU A,r for the eight operations (ADD,ADC,SUB,SBC,AND,XOR,OR,CP)
	// across the eight operand slots.
	aluOps := [8]func(c *CPU, a, b byte) byte{
		add8, adc8, sub8, sbc8, and8, xor8, or8, nil, // CP handled below
	}
	for op := 0; op < 8; op++ {
		for s := 0; s < 8; s++ {
			opcode := 0x80 + op*8 + s
			src := s
			operation := op
			cycles := 4
			if src == regHLInd {
				cycles = 8
			}
			if operation == 7 { // CP
				primaryTable[opcode] = func(c *CPU) int {
					cp8(c, c.A, readReg8(c, src))
					return cycles
				}
				continue
			}
			fn := aluOps[operation]
			primaryTable[opcode] = func(c *CPU) int {
				c.A = fn(c, c.A, readReg8(c, src))
				return cycles
			}
		}
	}

	// ALU A,d8 immediate forms.
	primaryTable[0xC6] = func(c *CPU) int { c.A = add8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xCE] = func(c *CPU) int { c.A = adc8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xD6] = func(c *CPU) int { c.A = sub8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xDE] = func(c *CPU) int { c.A = sbc8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xE6] = func(c *CPU) int { c.A = and8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xEE] = func(c *CPU) int { c.A = xor8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xF6] = func(c *CPU) int { c.A = or8(c, c.A, c.fetch()); return 8 }
	primaryTable[0xFE] = func(c *CPU) int { cp8(c, c.A, c.fetch()); return 8 }

	// Conditional/unconditional RET, JP, CALL and the eight RST vectors.
	conds := [4]func(c *CPU) bool{
		func(c *CPU) bool { return !c.flag(FlagZ) },
		func(c *CPU) bool { return c.flag(FlagZ) },
		func(c *CPU) bool { return !c.flag(FlagC) },
		func(c *CPU) bool { return c.flag(FlagC) },
	}
	for i, cond := range conds {
		cond := cond
		primaryTable[0xC0+0x08*i] = func(c *CPU) int {
			if cond(c) {
				c.PC = c.pop16()
				return 20
			}
			return 8
		}
		primaryTable[0xC2+0x08*i] = func(c *CPU) int {
			addr := c.fetch16()
			if cond(c) {
				c.PC = addr
				return 16
			}
			return 12
		}
		primaryTable[0xC4+0x08*i] = func(c *CPU) int {
			addr := c.fetch16()
			if cond(c) {
				c.push16(c.PC)
				c.PC = addr
				return 24
			}
			return 12
		}
	}
	primaryTable[0xC9] = func(c *CPU) int { c.PC = c.pop16(); return 16 }
	primaryTable[0xD9] = func(c *CPU) int { c.PC = c.pop16(); c.IME = true; return 16 }
	primaryTable[0xC3] = func(c *CPU) int { c.PC = c.fetch16(); return 16 }
	primaryTable[0xCD] = func(c *CPU) int { addr := c.fetch16(); c.push16(c.PC); c.PC = addr; return 24 }
	primaryTable[0xE9] = func(c *CPU) int { c.PC = c.HL(); return 4 }

	for i := 0; i < 8; i++ {
		vector := uint16(i * 8)
		primaryTable[0xC7+0x08*i] = func(c *CPU) int { c.push16(c.PC); c.PC = vector; return 16 }
	}

	// PUSH/POP for BC, DE, HL, AF.
	for i := 0; i < 4; i++ {
		pair := i
		primaryTable[0xC1+0x10*i] = func(c *CPU) int { writePopPair(c, pair, c.pop16()); return 12 }
		primaryTable[0xC5+0x10*i] = func(c *CPU) int { c.push16(readPushPair(c, pair)); return 16 }
	}

	primaryTable[0xE0] = func(c *CPU) int { c.mem.Write(0xFF00+uint16(c.fetch()), c.A); return 12 }
	primaryTable[0xF0] = func(c *CPU) int { c.A = c.mem.Read(0xFF00 + uint16(c.fetch())); return 12 }
	primaryTable[0xE2] = func(c *CPU) int { c.mem.Write(0xFF00+uint16(c.C), c.A); return 8 }
	primaryTable[0xF2] = func(c *CPU) int { c.A = c.mem.Read(0xFF00 + uint16(c.C)); return 8 }
	primaryTable[0xEA] = func(c *CPU) int { c.mem.Write(c.fetch16(), c.A); return 16 }
	primaryTable[0xFA] = func(c *CPU) int { c.A = c.mem.Read(c.fetch16()); return 16 }

	primaryTable[0xE8] = func(c *CPU) int { c.SP = addSPSigned(c, int8(c.fetch())); return 16 }
	primaryTable[0xF8] = func(c *CPU) int { c.SetHL(addSPSigned(c, int8(c.fetch()))); return 12 }
	primaryTable[0xF9] = func(c *CPU) int { c.SP = c.HL(); return 8 }

	primaryTable[0xCB] = opCBPrefix
}

func opNOP(c *CPU) int { return 4 }

func opSTOP(c *CPU) int {
	c.fetch() // STOP is followed by an ignored byte
	return 4
}

func opHALT(c *CPU) int {
	c.halted = true
	return 4
}

func opDI(c *CPU) int { c.IME = false; return 4 }
func opEI(c *CPU) int { c.IME = true; return 4 }

func opRLCA(c *CPU) int {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.setFlag(FlagZ, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
	return 4
}

func opRRCA(c *CPU) int {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.setFlag(FlagZ, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
	return 4
}

func opRLA(c *CPU) int {
	oldCarry := byte(0)
	if c.flag(FlagC) {
		oldCarry = 1
	}
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | oldCarry
	c.setFlag(FlagZ, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
	return 4
}

func opRRA(c *CPU) int {
	oldCarry := byte(0)
	if c.flag(FlagC) {
		oldCarry = 0x80
	}
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | oldCarry
	c.setFlag(FlagZ, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
	return 4
}

func daa(c *CPU) {
	a := c.A
	adjust := byte(0)
	carry := false

	if c.flag(FlagH) || (!c.flag(FlagN) && a&0x0F > 9) {
		adjust |= 0x06
	}
	if c.flag(FlagC) || (!c.flag(FlagN) && a > 0x99) {
		adjust |= 0x60
		carry = true
	}

	if c.flag(FlagN) {
		a -= adjust
	} else {
		a += adjust
	}

	c.A = a
	c.setFlag(FlagZ, a == 0)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
}

// jr reads the signed displacement byte and, if taken, applies it to PC.
// The displacement must always be consumed, taken or not.
func (c *CPU) jr(taken bool) {
	e := int8(c.fetch())
	if taken {
		c.PC = uint16(int32(c.PC) + int32(e))
	}
}

func jrCond(c *CPU, taken bool) int {
	c.jr(taken)
	if taken {
		return 12
	}
	return 8
}
