package chip8

import "testing"

func TestArithmeticSequence(t *testing.T) {
	m := New(1)
	if err := m.LoadROM([]byte{0x60, 0x05, 0x61, 0x07, 0x80, 0x14}); err != nil {
		t.Fatalf("load: %v", err)
	}

	for i := 0; i < 3; i++ {
		m.step()
	}

	if m.v[0] != 0x0C {
		t.Errorf("V0 = 0x%02X, want 0x0C", m.v[0])
	}
	if m.v[1] != 0x07 {
		t.Errorf("V1 = 0x%02X, want 0x07", m.v[1])
	}
	if m.v[0xF] != 0 {
		t.Errorf("VF = %d, want 0", m.v[0xF])
	}
	if m.pc != 0x206 {
		t.Errorf("PC = 0x%03X, want 0x206", m.pc)
	}
}

func TestDrawCollisionRoundTrip(t *testing.T) {
	m := New(1)
	rom := make([]byte, 0x10+1)
	rom[0x00] = 0xA2
	rom[0x01] = 0x10
	rom[0x02] = 0xD0
	rom[0x03] = 0x01
	rom[0x10] = 0xFF
	if err := m.LoadROM(rom); err != nil {
		t.Fatalf("load: %v", err)
	}

	m.step() // LD I, 0x210
	m.step() // DRW V0, V1, 1

	for col := 0; col < 8; col++ {
		if m.gfx[0][col] != 1 {
			t.Errorf("pixel (%d,0) = %d, want 1", col, m.gfx[0][col])
		}
	}
	if m.v[0xF] != 0 {
		t.Errorf("VF after first draw = %d, want 0", m.v[0xF])
	}

	// re-execute the same DRW: rewind PC back onto the instruction.
	m.pc -= 2
	m.step()

	for col := 0; col < 8; col++ {
		if m.gfx[0][col] != 0 {
			t.Errorf("pixel (%d,0) after second draw = %d, want 0", col, m.gfx[0][col])
		}
	}
	if m.v[0xF] != 1 {
		t.Errorf("VF after second draw = %d, want 1", m.v[0xF])
	}
}

func TestDrawClipsAtEdges(t *testing.T) {
	m := New(1)
	rom := make([]byte, 0x10+4)
	rom[0x00] = 0x60
	rom[0x01] = 62 // V0 = 62
	rom[0x02] = 0x61
	rom[0x03] = 30 // V1 = 30
	rom[0x04] = 0xA2
	rom[0x05] = 0x10
	rom[0x06] = 0xD0
	rom[0x07] = 0x14 // DRW V0, V1, 4
	for i := 0; i < 4; i++ {
		rom[0x10+i] = 0xFF
	}
	if err := m.LoadROM(rom); err != nil {
		t.Fatalf("load: %v", err)
	}

	for i := 0; i < 4; i++ {
		m.step()
	}

	// only columns 62,63 and rows 30,31 exist; nothing wraps to column 0
	// or row 0.
	if m.gfx[0][0] != 0 {
		t.Errorf("expected no wraparound to (0,0)")
	}
	if m.gfx[30][62] != 1 || m.gfx[30][63] != 1 {
		t.Errorf("expected sprite drawn at clipped edge, row 30")
	}
	if m.gfx[31][62] != 1 || m.gfx[31][63] != 1 {
		t.Errorf("expected sprite drawn at clipped edge, row 31")
	}
}

func TestWaitForKey(t *testing.T) {
	m := New(1)
	if err := m.LoadROM([]byte{0xF2, 0x0A}); err != nil {
		t.Fatalf("load: %v", err)
	}

	m.StepFrame(1)
	if !m.waitingForKey {
		t.Fatalf("expected machine to be waiting for a key")
	}
	pcAfterFetch := m.pc

	m.StepFrame(1)
	if m.pc != pcAfterFetch {
		t.Errorf("PC changed while waiting for a key: 0x%03X -> 0x%03X", pcAfterFetch, m.pc)
	}

	m.SetKey(KeyMap['w'], true)
	if m.waitingForKey {
		t.Errorf("expected wait to clear once a key is pressed")
	}
	if m.v[2] != byte(KeyMap['w']) {
		t.Errorf("V2 = %d, want %d", m.v[2], KeyMap['w'])
	}
}

func TestROMTooLarge(t *testing.T) {
	m := New(1)
	err := m.LoadROM(make([]byte, maxROMSize+1))
	if err == nil {
		t.Fatalf("expected an error for an oversized ROM")
	}
}
