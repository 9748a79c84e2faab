package gameboy

import (
	"github.com/retrocores/retrocores/errors"
	"github.com/retrocores/retrocores/hardware/gameboy/cartridge"
	"github.com/retrocores/retrocores/hardware/gameboy/cpu"
	"github.com/retrocores/retrocores/hardware/gameboy/mmu"
	"github.com/retrocores/retrocores/hardware/gameboy/ppu"
	"github.com/retrocores/retrocores/logger"
)

const logID = "gameboy"

const (
	// FrameWidth and FrameHeight are the fixed LCD dimensions.
	FrameWidth  = ppu.Width
	FrameHeight = ppu.Height

	// NumButtons is the size of the joypad's eight-button latch.
	NumButtons = 8
)

// Machine wires the CPU, MMU, PPU and cartridge header parser into a
// single addressable Game Boy DMG. The zero value is not usable;
// construct with New.
type Machine struct {
	mmu    *mmu.MMU
	cpu    *cpu.CPU
	ppu    *ppu.PPU
	Header cartridge.Header

	loaded bool
}

// New returns a Machine with no cartridge attached.
func New() *Machine {
	m := mmu.New()
	c := cpu.New(m)
	p := ppu.New(m)
	return &Machine{mmu: m, cpu: c, ppu: p}
}

// LoadROM installs a cartridge image, parses its header, and resets the
// machine to its post-boot power-on state.
func (g *Machine) LoadROM(data []byte) error {
	if err := g.mmu.LoadROM(data); err != nil {
		return err
	}

	g.Header = cartridge.Parse(data)
	g.cpu.Reset()
	g.ppu.Reset()
	g.loaded = true

	logger.Logf(logger.Allow, logID, "loaded %q (%s)", g.Header.Title, g.Header.TypeLabel)

	return nil
}

// Reset restores CPU and PPU state without discarding the loaded ROM.
func (g *Machine) Reset() error {
	if !g.loaded {
		return errors.New(errors.InvalidState, "reset")
	}
	g.mmu.Reset()
	g.cpu.Reset()
	g.ppu.Reset()
	return nil
}

// SetButton updates the joypad latch for one of the eight buttons.
func (g *Machine) SetButton(index int, pressed bool) {
	g.mmu.Joypad.SetButton(index, pressed)
}

// StepFrame runs the CPU and PPU together for up to budget T-states,
// stopping early once the PPU reports a completed frame. It returns
// errors.InvalidState if no ROM has been loaded.
func (g *Machine) StepFrame(budget int) (bool, error) {
	if !g.loaded {
		return false, errors.New(errors.InvalidState, "step_frame")
	}

	spent := 0
	for spent < budget {
		cycles := g.cpu.Step()
		spent += cycles
		if g.ppu.Step(cycles) {
			return true, nil
		}
	}

	return false, nil
}

// Framebuffer returns a copy of the 160x144 2-bit indexed pixel plane.
func (g *Machine) Framebuffer() [FrameWidth * FrameHeight]byte {
	return g.ppu.Framebuffer()
}
