package scheduler

import (
	"github.com/retrocores/retrocores/hardware/chip8"
	"github.com/retrocores/retrocores/hardware/gameboy"
)

// Chip8Core adapts a chip8.Machine to Core, running a fixed instruction
// batch per tick and always reporting the frame as ready.
type Chip8Core struct {
	Machine   *chip8.Machine
	BatchSize int
}

// StepFrame implements Core.
func (c Chip8Core) StepFrame() (bool, error) {
	return c.Machine.StepFrame(c.BatchSize), nil
}

// GameBoyCore adapts a gameboy.Machine to Core, running up to a fixed
// T-state budget per tick and stopping early at VBlank.
type GameBoyCore struct {
	Machine       *gameboy.Machine
	CyclesPerTick int
}

// StepFrame implements Core.
func (g GameBoyCore) StepFrame() (bool, error) {
	return g.Machine.StepFrame(g.CyclesPerTick)
}
