package errors

var messages = map[Errno]string{
	RomTooLarge:  "rom too large: %d bytes exceeds the %d bytes available from 0x200",
	RomTooSmall:  "rom too small: %d bytes is short of the required %d byte minimum",
	IoFailure:    "could not read rom: %s",
	InvalidState: "%s: no cartridge attached",
}
