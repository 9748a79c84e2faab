package gameboy

import (
	"testing"

	"github.com/retrocores/retrocores/errors"
)

func makeROM(size int, title string) []byte {
	data := make([]byte, size)
	copy(data[0x0134:], title)
	return data
}

func TestStepFrameWithoutROMIsInvalidState(t *testing.T) {
	g := New()
	if _, err := g.StepFrame(1000); !errors.Is(err, errors.InvalidState) {
		t.Fatalf("StepFrame before a ROM is loaded = %v, want InvalidState", err)
	}
}

func TestResetWithoutROMIsInvalidState(t *testing.T) {
	g := New()
	if err := g.Reset(); !errors.Is(err, errors.InvalidState) {
		t.Fatalf("Reset before a ROM is loaded = %v, want InvalidState", err)
	}
}

func TestLoadROMTooSmallIsRejected(t *testing.T) {
	g := New()
	if err := g.LoadROM(make([]byte, 100)); err == nil {
		t.Fatalf("expected an error loading an undersized ROM")
	}
}

func TestLoadROMParsesHeaderAndResetsCPU(t *testing.T) {
	g := New()
	if err := g.LoadROM(makeROM(0x8000, "MYGAME")); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	if g.Header.Title != "MYGAME" {
		t.Errorf("Header.Title = %q, want MYGAME", g.Header.Title)
	}
	if g.cpu.PC != 0x0100 {
		t.Errorf("PC = 0x%04X, want 0x0100 after load", g.cpu.PC)
	}
}

func TestStepFrameStopsAtVBlank(t *testing.T) {
	g := New()
	if err := g.LoadROM(makeROM(0x8000, "SPIN")); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	// program: JR -2 (infinite loop), forever executing at 0x0100.
	rom := makeROM(0x8000, "SPIN")
	rom[0x0100] = 0x18 // JR e
	rom[0x0101] = 0xFE // -2
	if err := g.LoadROM(rom); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	ready, err := g.StepFrame(1_000_000)
	if err != nil {
		t.Fatalf("StepFrame: %v", err)
	}
	if !ready {
		t.Errorf("expected a frame to complete within the budget")
	}
}

func TestSetButtonReachesJoypad(t *testing.T) {
	g := New()
	g.SetButton(4, true) // A

	g.mmu.Write(0xFF00, 0x10) // select the action-button group
	if g.mmu.Read(0xFF00)&0x01 != 0 {
		t.Errorf("expected A's bit to read low once pressed and selected")
	}
}
