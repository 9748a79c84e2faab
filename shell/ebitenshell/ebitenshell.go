package ebitenshell

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/retrocores/retrocores/hardware/gameboy/joypad"
	"github.com/retrocores/retrocores/logger"
	"github.com/retrocores/retrocores/scheduler"
	"github.com/retrocores/retrocores/shell"
)

const logID = "shell.ebitenshell"

// DefaultGameBoyKeyMap mirrors termshell's binding for hosts that have a
// real keyboard rather than raw stdin bytes to decode.
var DefaultGameBoyKeyMap = map[ebiten.Key]int{
	ebiten.KeyW: joypad.Up,
	ebiten.KeyA: joypad.Left,
	ebiten.KeyS: joypad.Down,
	ebiten.KeyD: joypad.Right,
	ebiten.KeyK: joypad.A,
	ebiten.KeyJ: joypad.B,
	ebiten.KeyU: joypad.Select,
	ebiten.KeyI: joypad.Start,
}

// grayPalette maps a 0-3 palette index onto a Game Boy-style four-shade
// green ramp, from the darkest shade at 0 to the brightest at 3; CHIP-8
// sources only ever populate indices 0 and 1, the two darkest shades.
var grayPalette = [4]color.RGBA{
	{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
	{R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
	{R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
	{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
}

// Shell is a windowed shell.GuiCreator built on ebiten's own run loop.
// Run blocks for the lifetime of the window; Service is a no-op since
// ebiten pumps its own events internally. Unlike termshell, it does not
// use the scheduler package's drift-corrected ticker: ebiten's own vsync
// loop supplies the ~60Hz cadence, so the core is stepped directly from
// Update.
type Shell struct {
	machine shell.Machine
	core    scheduler.Core
	scale   int
	keymap  map[ebiten.Key]int

	src *image.RGBA
	dst *image.RGBA
}

// New returns a Shell scaling the machine's framebuffer up by scale,
// stepping core once per ebiten frame and translating keymap's keys
// into input indices.
func New(machine shell.Machine, core scheduler.Core, scale int, keymap map[ebiten.Key]int) *Shell {
	return &Shell{machine: machine, core: core, scale: scale, keymap: keymap}
}

// Run configures and starts the ebiten window, blocking until it closes.
func (s *Shell) Run(title string) error {
	_, width, height := s.machine.Framebuffer()
	ebiten.SetWindowSize(width*s.scale, height*s.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)
	return ebiten.RunGame(s)
}

// Update forwards the current keyboard state to the machine's input
// latch and steps the core once, both at ebiten's own frame rate.
func (s *Shell) Update() error {
	for key, index := range s.keymap {
		s.machine.SetInput(index, ebiten.IsKeyPressed(key))
	}
	if _, err := s.core.StepFrame(); err != nil {
		logger.Logf(logger.Allow, logID, "step error: %v", err)
	}
	return nil
}

// Draw upscales the machine's indexed framebuffer with nearest-neighbour
// interpolation and writes the result directly into screen's pixels.
func (s *Shell) Draw(screen *ebiten.Image) {
	pixels, width, height := s.machine.Framebuffer()

	if s.src == nil || s.src.Bounds().Dx() != width || s.src.Bounds().Dy() != height {
		s.src = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	for i, idx := range pixels {
		s.src.SetRGBA(i%width, i/width, grayPalette[idx%4])
	}

	dstW, dstH := width*s.scale, height*s.scale
	if s.dst == nil || s.dst.Bounds().Dx() != dstW || s.dst.Bounds().Dy() != dstH {
		s.dst = image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	}
	draw.NearestNeighbor.Scale(s.dst, s.dst.Bounds(), s.src, s.src.Bounds(), draw.Src, nil)

	if screen.Bounds().Dx() != dstW || screen.Bounds().Dy() != dstH {
		logger.Logf(logger.Allow, logID, "window size %dx%d does not match scaled framebuffer %dx%d", screen.Bounds().Dx(), screen.Bounds().Dy(), dstW, dstH)
	}
	screen.WritePixels(s.dst.Pix)
}

// Layout fixes the window's internal resolution to the scaled
// framebuffer size; ebiten calls this before every Draw.
func (s *Shell) Layout(_, _ int) (int, int) {
	_, width, height := s.machine.Framebuffer()
	return width * s.scale, height * s.scale
}

// Service is a no-op: ebiten's own RunGame loop pumps window events.
func (s *Shell) Service() {}

// Destroy releases the shell's scratch image buffers. Ebiten itself has
// no separate teardown call; the window closes when RunGame returns.
func (s *Shell) Destroy() {
	s.src = nil
	s.dst = nil
	logger.Logf(logger.Allow, logID, "shell destroyed")
}
