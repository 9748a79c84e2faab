package ppu

import "github.com/retrocores/retrocores/logger"

const logID = "gameboy.ppu"

const (
	Width  = 160
	Height = 144

	regLCDC = 0xFF40
	regSCY  = 0xFF42
	regSCX  = 0xFF43
	regLY   = 0xFF44
	regBGP  = 0xFF47
)

// memory is the subset of mmu.MMU the PPU depends on.
type memory interface {
	Read(addr uint16) byte
	Write(addr uint16, val byte)
	RequestInterrupt(bit byte)
}

// PPU renders the background tile plane one scanline at a time, driven
// by a T-state budget handed to it by the CPU each step.
type PPU struct {
	mem              memory
	scanlineCounter  int
	framebuffer      [Width * Height]byte
}

// New returns a PPU reading and writing LCD registers through mem.
func New(mem memory) *PPU {
	return &PPU{mem: mem}
}

// Reset clears the internal scanline counter and framebuffer. LY itself
// lives in memory and is reset by whoever reinitializes the MMU.
func (p *PPU) Reset() {
	p.scanlineCounter = 0
	p.framebuffer = [Width * Height]byte{}
	logger.Logf(logger.Allow, logID, "reset, scanline counter cleared")
}

// Step advances the PPU by cycles T-states and reports whether a full
// frame (LY reaching 144) completed during this call.
func (p *PPU) Step(cycles int) bool {
	if p.mem.Read(regLCDC)&0x80 == 0 {
		return false
	}

	p.scanlineCounter += cycles

	frameReady := false
	for p.scanlineCounter >= 456 {
		p.scanlineCounter -= 456

		ly := p.mem.Read(regLY)
		if ly < Height {
			p.renderScanline(ly)
		}

		ly = (ly + 1) % 154
		p.mem.Write(regLY, ly)

		if ly == Height {
			frameReady = true
			p.mem.RequestInterrupt(0x01)
		}
	}

	return frameReady
}

// Framebuffer returns a copy of the 160x144 2-bit indexed pixel plane.
func (p *PPU) Framebuffer() [Width * Height]byte {
	return p.framebuffer
}

func (p *PPU) renderScanline(ly byte) {
	lcdc := p.mem.Read(regLCDC)

	if lcdc&0x01 == 0 {
		for col := 0; col < Width; col++ {
			p.framebuffer[int(ly)*Width+col] = 0
		}
		return
	}

	scy := p.mem.Read(regSCY)
	scx := p.mem.Read(regSCX)
	pal := palette(p.mem.Read(regBGP))

	mapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		mapBase = 0x9C00
	}
	signedTiles := lcdc&0x10 == 0
	tileDataBase := uint16(0x8000)
	if signedTiles {
		tileDataBase = 0x9000
	}

	y := (uint16(ly) + uint16(scy)) % 256
	tileRow := y / 8
	lineInTile := y % 8

	for col := 0; col < Width; col++ {
		x := (uint16(col) + uint16(scx)) % 256
		tileCol := x / 8
		pixelInTile := uint(x % 8)

		tileIndex := p.mem.Read(mapBase + tileRow*32 + tileCol)

		var tileAddr uint16
		if signedTiles {
			tileAddr = uint16(int32(tileDataBase) + int32(int8(tileIndex))*16)
		} else {
			tileAddr = tileDataBase + uint16(tileIndex)*16
		}

		b1 := p.mem.Read(tileAddr + lineInTile*2)
		b2 := p.mem.Read(tileAddr + lineInTile*2 + 1)

		bit := 7 - pixelInTile
		colorIdx := (b2>>bit)&1<<1 | (b1>>bit)&1

		p.framebuffer[int(ly)*Width+col] = pal[colorIdx]
	}
}

// palette expands BGP's four 2-bit color-index pairs into a lookup
// table.
func palette(bgp byte) [4]byte {
	return [4]byte{
		bgp & 0x03,
		(bgp >> 2) & 0x03,
		(bgp >> 4) & 0x03,
		(bgp >> 6) & 0x03,
	}
}
