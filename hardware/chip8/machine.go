package chip8

import (
	"github.com/retrocores/retrocores/errors"
	"github.com/retrocores/retrocores/logger"
	"github.com/retrocores/retrocores/random"
)

const (
	logID = "chip8"

	// romBase is where program data is loaded and where PC begins.
	romBase = 0x200

	// memSize is the total addressable memory.
	memSize = 4096

	// maxROMSize is the largest program that fits between romBase and the
	// end of memory.
	maxROMSize = memSize - romBase

	// DisplayWidth and DisplayHeight are the fixed display dimensions.
	DisplayWidth  = 64
	DisplayHeight = 32

	// NumKeys is the size of the hex keypad.
	NumKeys = 16
)

// Machine is a complete, independently-owned CHIP-8 virtual machine. The
// zero value is not usable; construct with New.
type Machine struct {
	mem [memSize]byte

	v  [16]byte
	i  uint16
	pc uint16

	stack [16]uint16
	sp    uint8

	delay uint8
	sound uint8

	gfx [DisplayHeight][DisplayWidth]byte

	keys          [NumKeys]bool
	waitingForKey bool
	waitReg       int

	rng *random.Source

	loaded bool
}

// New returns a Machine seeded for reproducible CXNN output when seed is
// non-zero; a zero seed draws from the current time instead.
func New(seed int64) *Machine {
	m := &Machine{rng: random.NewSource(seed)}
	m.reset()
	return m
}

func (m *Machine) reset() {
	m.mem = [memSize]byte{}
	copy(m.mem[fontOffset:], font[:])

	m.v = [16]byte{}
	m.i = 0
	m.pc = romBase
	m.stack = [16]uint16{}
	m.sp = 0
	m.delay = 0
	m.sound = 0
	m.gfx = [DisplayHeight][DisplayWidth]byte{}
	m.keys = [NumKeys]bool{}
	m.waitingForKey = false
	m.waitReg = 0
}

// Reset restores the machine to its post-load power-on state, keeping
// whatever ROM is currently loaded.
func (m *Machine) Reset() {
	romCopy := make([]byte, maxROMSize)
	copy(romCopy, m.mem[romBase:])
	m.reset()
	copy(m.mem[romBase:], romCopy)
}

// LoadROM copies data into the program area starting at 0x200. A ROM
// larger than the available program area is rejected outright.
func (m *Machine) LoadROM(data []byte) error {
	if len(data) > maxROMSize {
		return errors.New(errors.RomTooLarge, len(data), maxROMSize)
	}

	m.reset()
	copy(m.mem[romBase:], data)
	m.loaded = true

	return nil
}

// SetKey updates the keypad latch for the given hex key index (0-15). If
// the machine is stalled on FX0A waiting for a key, a press resolves the
// wait: the key index is written to the target register and execution
// resumes at the instruction after FX0A.
func (m *Machine) SetKey(index int, pressed bool) {
	if index < 0 || index >= NumKeys {
		return
	}
	m.keys[index] = pressed

	if m.waitingForKey && pressed {
		m.v[m.waitReg] = byte(index)
		m.waitingForKey = false
	}
}

// StepFrame runs one 60Hz tick's worth of work: a fixed batch of
// instructions (honoring the FX0A stall) followed by an unconditional
// timer decrement. It always reports the frame as ready, since CHIP-8
// has no scanline concept gating framebuffer completion.
func (m *Machine) StepFrame(batchSize int) bool {
	for n := 0; n < batchSize; n++ {
		if m.waitingForKey {
			break
		}
		m.step()
	}

	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		if m.sound == 1 {
			logger.Logf(logger.Allow, logID, "sound timer reached 1, bell cue")
		}
		m.sound--
	}

	return true
}

// Framebuffer returns a row-major copy of the 64x32 display, one byte per
// pixel (0 or 1). It is safe for the caller to retain.
func (m *Machine) Framebuffer() [DisplayHeight][DisplayWidth]byte {
	return m.gfx
}
