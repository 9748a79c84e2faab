package chip8

import "testing"

func TestDisassemble(t *testing.T) {
	cases := map[uint16]string{
		0x00E0: "CLS",
		0x00EE: "RET",
		0x1234: "JP 0x234",
		0xA2F0: "LD I, 0x2F0",
		0xD012: "DRW V0, V1, 0x2",
		0xF20A: "LD V2, K",
	}

	for opcode, want := range cases {
		if got := Disassemble(opcode); got != want {
			t.Errorf("Disassemble(0x%04X) = %q, want %q", opcode, got, want)
		}
	}
}
