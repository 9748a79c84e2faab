package cartridge

import (
	"github.com/retrocores/retrocores/logger"
)

const logID = "gameboy.cartridge"

const (
	offLogo       = 0x0104
	offTitle      = 0x0134
	offCGBFlag    = 0x0143
	offType       = 0x0147
	offChecksum   = 0x014D
	checksumStart = 0x0134
)

// nintendoLogo is the fixed bitmap the boot ROM compares against; a
// mismatch here would halt on real hardware but is only logged here.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

var typeLabels = map[byte]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x03: "MBC1+RAM+BATTERY",
	0x13: "MBC3+RAM+BATTERY",
	0x1B: "MBC5+RAM+BATTERY",
}

// Header is the subset of a Game Boy cartridge header this core reads.
type Header struct {
	Title         string
	CGB           bool
	Type          byte
	TypeLabel     string
	ChecksumValid bool
	LogoValid     bool
}

// Parse reads a Header out of a full ROM image. data must be at least
// large enough to cover the header (0x0150 bytes); callers are expected
// to have already applied the minimum-size check on load.
func Parse(data []byte) Header {
	title := make([]byte, 0, 16)
	for i := offTitle; i < offTitle+16 && i < len(data); i++ {
		if data[i] == 0x00 {
			break
		}
		title = append(title, data[i])
	}

	cgbFlag := data[offCGBFlag]
	cgb := cgbFlag == 0x80 || cgbFlag == 0xC0

	typ := data[offType]
	label, known := typeLabels[typ]
	if !known {
		label = "unknown, treated as ROM ONLY"
	}

	h := Header{
		Title:         string(title),
		CGB:           cgb,
		Type:          typ,
		TypeLabel:     label,
		ChecksumValid: verifyChecksum(data),
		LogoValid:     verifyLogo(data),
	}

	if !h.ChecksumValid {
		logger.Logf(logger.Allow, logID, "header checksum mismatch for %q, loading anyway", h.Title)
	}
	if !h.LogoValid {
		logger.Logf(logger.Allow, logID, "Nintendo logo mismatch for %q, loading anyway", h.Title)
	}

	return h
}

// verifyChecksum reproduces the boot ROM's running-subtraction check over
// 0x0134..0x014C. A mismatch is informational only; this core never
// refuses to load on a bad header checksum.
func verifyChecksum(data []byte) bool {
	var c byte
	for i := checksumStart; i < offChecksum; i++ {
		c = c - data[i] - 1
	}
	return c == data[offChecksum]
}

func verifyLogo(data []byte) bool {
	if len(data) < offLogo+len(nintendoLogo) {
		return false
	}
	for i, b := range nintendoLogo {
		if data[offLogo+i] != b {
			return false
		}
	}
	return true
}

// ParseGBATitle extracts the title-only stub recognized from a .gba
// extension image; no other GBA header field is consumed and nothing is
// executed.
func ParseGBATitle(data []byte) string {
	const start, end = 0x00A0, 0x00AC
	if len(data) < end {
		return ""
	}
	title := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		if data[i] == 0x00 {
			break
		}
		title = append(title, data[i])
	}
	return string(title)
}
