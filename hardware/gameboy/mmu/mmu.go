package mmu

import (
	"github.com/retrocores/retrocores/errors"
	"github.com/retrocores/retrocores/hardware/gameboy/joypad"
	"github.com/retrocores/retrocores/logger"
)

const (
	logID = "gameboy.mmu"

	bankSize = 0x4000

	// MinROMSize is the smallest cartridge image this core will load.
	MinROMSize = 0x8000
)

// MMU is the Game Boy's full 64KiB address space.
type MMU struct {
	romBank0 [bankSize]byte
	romBanks [][bankSize]byte // index 0 unused; banks are selected 1-based
	romBank  byte

	ramEnabled bool
	eram       [0x2000]byte

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [0xA0]byte
	io   [0x80]byte
	hram [0x7F]byte
	ie   byte

	Joypad *joypad.Joypad
}

// New returns an MMU with no cartridge loaded.
func New() *MMU {
	m := &MMU{
		romBank: 1,
		Joypad:  joypad.New(),
	}
	m.Reset()
	return m
}

// Reset restores the fixed Game Boy power-on I/O register state (LCDC
// enabled with background/tile-map defaults, BGP 0xFC)
// without touching loaded ROM banks.
func (m *MMU) Reset() {
	m.io = [0x80]byte{}
	m.io[0x40] = 0x91 // LCDC: LCD+BG enabled, tile data 0x8000, tile map 0x9800
	m.io[0x47] = 0xFC // BGP: 11 11 11 00, color 0 stays 0, colors 1-3 map to 3
}

// LoadROM installs cartridge data. The first 16KiB is bank 0, mapped
// permanently at [0,0x4000); the remainder is split into 16KiB banks
// selected 1-based via the bank-select latch.
func (m *MMU) LoadROM(data []byte) error {
	if len(data) < MinROMSize {
		return errors.New(errors.RomTooSmall, len(data), MinROMSize)
	}

	copy(m.romBank0[:], data[:bankSize])

	nBanks := (len(data) - bankSize) / bankSize
	m.romBanks = make([][bankSize]byte, nBanks+1)
	for b := 1; b <= nBanks; b++ {
		start := bankSize + (b-1)*bankSize
		copy(m.romBanks[b][:], data[start:start+bankSize])
	}

	m.romBank = 1
	m.ramEnabled = false
	m.eram = [0x2000]byte{}
	m.vram = [0x2000]byte{}
	m.wram = [0x2000]byte{}
	m.oam = [0xA0]byte{}
	m.hram = [0x7F]byte{}
	m.ie = 0
	m.Reset()

	return nil
}

// RomBank returns the currently selected switchable ROM bank (invariant
// I3: always >= 1).
func (m *MMU) RomBank() byte {
	return m.romBank
}

// Read dispatches an address-space read by range.
func (m *MMU) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		return m.romBank0[addr]
	case addr < 0x8000:
		bank := int(m.romBank)
		if bank >= len(m.romBanks) {
			bank = len(m.romBanks) - 1
		}
		return m.romBanks[bank][addr-0x4000]
	case addr < 0xA000:
		return m.vram[addr-0x8000]
	case addr < 0xC000:
		if !m.ramEnabled {
			return 0xFF
		}
		return m.eram[addr-0xA000]
	case addr < 0xE000:
		return m.wram[addr-0xC000]
	case addr < 0xFE00:
		return m.wram[addr-0xE000] // echo
	case addr < 0xFEA0:
		return m.oam[addr-0xFE00]
	case addr < 0xFF00:
		return 0xFF
	case addr == 0xFF00:
		return m.Joypad.Read()
	case addr < 0xFF80:
		return m.io[addr-0xFF00]
	case addr < 0xFFFF:
		return m.hram[addr-0xFF80]
	default: // 0xFFFF
		return m.ie
	}
}

// Write dispatches an address-space write by range.
// Writes below 0x4000 never touch ROM; they latch the bank-enable or
// bank-select registers instead.
func (m *MMU) Write(addr uint16, val byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = val&0x0F == 0x0A
	case addr < 0x4000:
		bank := val & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr < 0x8000:
		// no RAM-bank or mode-select behavior beyond MBC1-style gating is
		// modelled; writes here are discarded.
	case addr < 0xA000:
		m.vram[addr-0x8000] = val
	case addr < 0xC000:
		if m.ramEnabled {
			m.eram[addr-0xA000] = val
		}
	case addr < 0xE000:
		m.wram[addr-0xC000] = val
	case addr < 0xFE00:
		m.wram[addr-0xE000] = val // echo
	case addr < 0xFEA0:
		m.oam[addr-0xFE00] = val
	case addr < 0xFF00:
		// unusable region, writes discarded
	case addr == 0xFF00:
		m.Joypad.WriteSelect(val)
	case addr < 0xFF80:
		m.io[addr-0xFF00] = val
		if addr == 0xFF46 {
			m.dma(val)
		}
	case addr < 0xFFFF:
		m.hram[addr-0xFF80] = val
	default: // 0xFFFF
		m.ie = val
	}
}

// dma performs the 160-byte OAM copy triggered by a write to FF46. The
// copy is modelled as instantaneous; there is no mid-transfer OAM state.
func (m *MMU) dma(hi byte) {
	src := uint16(hi) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.oam[i] = m.Read(src + i)
	}
	logger.Logf(logger.Allow, logID, "DMA from 0x%04X", src)
}

// RequestInterrupt sets a bit in IF (FF0F).
func (m *MMU) RequestInterrupt(bit byte) {
	m.io[0x0F] |= bit
}

// InterruptFlag returns IF (FF0F).
func (m *MMU) InterruptFlag() byte {
	return m.io[0x0F]
}

// InterruptEnable returns IE (FFFF).
func (m *MMU) InterruptEnable() byte {
	return m.ie
}

// ClearInterrupt clears a bit in IF (FF0F), used once an interrupt has
// been serviced.
func (m *MMU) ClearInterrupt(bit byte) {
	m.io[0x0F] &^= bit
}
