package termshell

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/retrocores/retrocores/hardware/gameboy/joypad"
	"github.com/retrocores/retrocores/logger"
	"github.com/retrocores/retrocores/shell"
)

const logID = "shell.termshell"

// GameBoyKeyMap is the terminal key binding used when no host-key table
// is imposed elsewhere, as with chip8.KeyMap for the CHIP-8 keypad.
var GameBoyKeyMap = map[rune]int{
	'w': joypad.Up,
	'a': joypad.Left,
	's': joypad.Down,
	'd': joypad.Right,
	'k': joypad.A,
	'j': joypad.B,
	'u': joypad.Select,
	'i': joypad.Start,
}

// keyHoldTime is how long a key stays "pressed" after a single raw stdin
// byte arrives; a terminal gives no key-up event to latch onto.
const keyHoldTime = 120 * time.Millisecond

// Shell renders a shell.Machine's framebuffer as block characters and
// reads raw stdin for key input, implementing shell.GuiCreator.
type Shell struct {
	machine shell.Machine
	keymap  map[rune]int

	fd          int
	oldState    *term.State
	nonblockSet bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	lastFrame string
}

// New puts stdin into raw mode and starts reading host key events in the
// background. keymap translates a raw byte into the machine's input
// index; unrecognized bytes are ignored.
func New(machine shell.Machine, keymap map[rune]int) (*Shell, error) {
	s := &Shell{
		machine: machine,
		keymap:  keymap,
		fd:      int(os.Stdin.Fd()),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}

	oldState, err := term.MakeRaw(s.fd)
	if err != nil {
		return nil, err
	}
	s.oldState = oldState

	if err := syscall.SetNonblock(s.fd, true); err != nil {
		_ = term.Restore(s.fd, s.oldState)
		return nil, err
	}
	s.nonblockSet = true

	go s.readLoop()

	return s, nil
}

func (s *Shell) readLoop() {
	defer close(s.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		n, err := syscall.Read(s.fd, buf)
		if n > 0 {
			s.routeKey(rune(buf[0]))
		}
		switch err {
		case syscall.EAGAIN, nil:
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		default:
			return
		}
	}
}

// routeKey translates and forwards one host key press, then schedules a
// matching release. The core's input latch is written to directly from
// this goroutine; per the concurrency model, a single bool write per key
// is treated as the atomic case the model allows.
func (s *Shell) routeKey(r rune) {
	index, ok := s.keymap[r]
	if !ok {
		return
	}

	s.machine.SetInput(index, true)
	time.AfterFunc(keyHoldTime, func() {
		s.machine.SetInput(index, false)
	})
}

// Service renders the current framebuffer to stdout. It never blocks.
func (s *Shell) Service() {
	pixels, width, height := s.machine.Framebuffer()
	frame := render(pixels, width, height)
	if frame == s.lastFrame {
		return
	}
	s.lastFrame = frame
	fmt.Print("\x1b[H\x1b[2J", frame)
}

// Destroy stops the input goroutine and restores the terminal.
func (s *Shell) Destroy() {
	s.stopped.Do(func() {
		close(s.stopCh)
	})
	<-s.done
	if s.nonblockSet {
		_ = syscall.SetNonblock(s.fd, false)
	}
	if s.oldState != nil {
		_ = term.Restore(s.fd, s.oldState)
	}
	logger.Logf(logger.Allow, logID, "terminal restored")
}

// shades maps a 0-3 palette index onto increasingly dense block glyphs;
// CHIP-8 sources only ever use indices 0 and 1.
var shades = [4]rune{' ', '░', '▒', '█'}

func render(pixels []byte, width, height int) string {
	out := make([]rune, 0, (width+1)*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := pixels[y*width+x]
			if int(idx) >= len(shades) {
				idx = byte(len(shades) - 1)
			}
			out = append(out, shades[idx])
		}
		out = append(out, '\n')
	}
	return string(out)
}
