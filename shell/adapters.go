package shell

import (
	"github.com/retrocores/retrocores/hardware/chip8"
	"github.com/retrocores/retrocores/hardware/gameboy"
)

// Chip8Machine adapts a chip8.Machine to the Machine interface.
type Chip8Machine struct {
	*chip8.Machine
}

// Framebuffer flattens the 64x32 bitmap into a row-major byte slice.
func (m Chip8Machine) Framebuffer() ([]byte, int, int) {
	fb := m.Machine.Framebuffer()
	pixels := make([]byte, chip8.DisplayWidth*chip8.DisplayHeight)
	for y := 0; y < chip8.DisplayHeight; y++ {
		copy(pixels[y*chip8.DisplayWidth:], fb[y][:])
	}
	return pixels, chip8.DisplayWidth, chip8.DisplayHeight
}

// SetInput forwards to SetKey.
func (m Chip8Machine) SetInput(index int, pressed bool) {
	m.Machine.SetKey(index, pressed)
}

// GameBoyMachine adapts a gameboy.Machine to the Machine interface.
type GameBoyMachine struct {
	*gameboy.Machine
}

// Framebuffer returns the 160x144 2-bit indexed plane already stored
// row-major.
func (m GameBoyMachine) Framebuffer() ([]byte, int, int) {
	fb := m.Machine.Framebuffer()
	pixels := make([]byte, len(fb))
	copy(pixels, fb[:])
	return pixels, gameboy.FrameWidth, gameboy.FrameHeight
}

// SetInput forwards to SetButton.
func (m GameBoyMachine) SetInput(index int, pressed bool) {
	m.Machine.SetButton(index, pressed)
}
