package cartridge

import "testing"

func makeHeaderROM(title string, cgbFlag, cartType byte) []byte {
	data := make([]byte, 0x8000)
	copy(data[offLogo:], nintendoLogo[:])
	copy(data[offTitle:], title)
	data[offCGBFlag] = cgbFlag
	data[offType] = cartType

	var c byte
	for i := checksumStart; i < offChecksum; i++ {
		c = c - data[i] - 1
	}
	data[offChecksum] = c

	return data
}

func TestParseWellFormedHeader(t *testing.T) {
	data := makeHeaderROM("TESTGAME", 0x00, 0x01)

	h := Parse(data)

	if h.Title != "TESTGAME" {
		t.Errorf("Title = %q, want TESTGAME", h.Title)
	}
	if h.CGB {
		t.Errorf("CGB = true, want false for flag 0x00")
	}
	if h.TypeLabel != "MBC1" {
		t.Errorf("TypeLabel = %q, want MBC1", h.TypeLabel)
	}
	if !h.ChecksumValid {
		t.Errorf("expected checksum to validate")
	}
	if !h.LogoValid {
		t.Errorf("expected logo to validate")
	}
}

func TestParseCGBFlag(t *testing.T) {
	data := makeHeaderROM("CGBGAME", 0xC0, 0x00)
	h := Parse(data)
	if !h.CGB {
		t.Errorf("expected CGB flag 0xC0 to be recognized")
	}
}

func TestParseCorruptChecksumStillLoads(t *testing.T) {
	data := makeHeaderROM("BADSUM", 0x00, 0x00)
	data[offChecksum] ^= 0xFF

	h := Parse(data)

	if h.ChecksumValid {
		t.Errorf("expected checksum mismatch to be detected")
	}
	if h.Title != "BADSUM" {
		t.Errorf("Title = %q, want BADSUM despite bad checksum", h.Title)
	}
}

func TestParseUnknownCartridgeType(t *testing.T) {
	data := makeHeaderROM("WEIRD", 0x00, 0xFF)
	h := Parse(data)
	if h.TypeLabel != "unknown, treated as ROM ONLY" {
		t.Errorf("TypeLabel = %q, want fallback label", h.TypeLabel)
	}
}

func TestParseGBATitle(t *testing.T) {
	data := make([]byte, 0x00AC)
	copy(data[0x00A0:], "MINIGAME")

	got := ParseGBATitle(data)
	if got != "MINIGAME" {
		t.Errorf("ParseGBATitle = %q, want MINIGAME", got)
	}
}

func TestParseGBATitleTooShort(t *testing.T) {
	if got := ParseGBATitle([]byte{0x01, 0x02}); got != "" {
		t.Errorf("ParseGBATitle on truncated data = %q, want empty", got)
	}
}
