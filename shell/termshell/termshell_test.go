package termshell

import "testing"

func TestRenderMapsIndicesToShades(t *testing.T) {
	pixels := []byte{0, 1, 2, 3}
	got := render(pixels, 4, 1)
	want := string([]rune{' ', '░', '▒', '█', '\n'})

	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderClampsOutOfRangeIndices(t *testing.T) {
	pixels := []byte{9}
	got := render(pixels, 1, 1)
	want := string([]rune{'█', '\n'})

	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderMultipleRows(t *testing.T) {
	pixels := []byte{
		0, 0,
		1, 1,
	}
	got := render(pixels, 2, 2)
	want := "  \n░░\n"

	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestGameBoyKeyMapCoversAllEightButtons(t *testing.T) {
	seen := map[int]bool{}
	for _, idx := range GameBoyKeyMap {
		seen[idx] = true
	}
	for i := 0; i < 8; i++ {
		if !seen[i] {
			t.Errorf("button index %d has no key binding", i)
		}
	}
}
