package random

import (
	"math/rand"
	"time"
)

// Source is a seedable byte stream used by the CHIP-8 CXNN instruction.
type Source struct {
	rnd *rand.Rand
}

// NewSource is the preferred method of initialisation for Source. A seed of
// zero is treated as "no seed given" and is replaced with the current time;
// pass a non-zero seed explicitly for a reproducible stream.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Uint8 returns the next byte in the stream.
func (s *Source) Uint8() uint8 {
	return uint8(s.rnd.Intn(256))
}
