package ebitenshell

import "testing"

type fakeMachine struct {
	pixels []byte
	width  int
	height int
	sets   map[int]bool
}

func (f *fakeMachine) Framebuffer() ([]byte, int, int) {
	return f.pixels, f.width, f.height
}

func (f *fakeMachine) SetInput(index int, pressed bool) {
	if f.sets == nil {
		f.sets = map[int]bool{}
	}
	f.sets[index] = pressed
}

type fakeCore struct{}

func (fakeCore) StepFrame() (bool, error) { return true, nil }

func TestLayoutScalesFramebufferDimensions(t *testing.T) {
	m := &fakeMachine{pixels: make([]byte, 64*32), width: 64, height: 32}
	s := New(m, fakeCore{}, 3, nil)

	w, h := s.Layout(0, 0)
	if w != 192 || h != 96 {
		t.Errorf("Layout() = (%d,%d), want (192,96)", w, h)
	}
}

func TestDefaultGameBoyKeyMapCoversAllEightButtons(t *testing.T) {
	seen := map[int]bool{}
	for _, idx := range DefaultGameBoyKeyMap {
		seen[idx] = true
	}
	for i := 0; i < 8; i++ {
		if !seen[i] {
			t.Errorf("button index %d has no key binding", i)
		}
	}
}

func TestGrayPaletteHasFourDistinctShades(t *testing.T) {
	seen := map[[4]byte]bool{}
	for _, c := range grayPalette {
		key := [4]byte{c.R, c.G, c.B, c.A}
		if seen[key] {
			t.Errorf("duplicate palette entry %v", c)
		}
		seen[key] = true
	}
}
