package errors_test

import (
	"testing"

	"github.com/retrocores/retrocores/errors"
)

func TestError(t *testing.T) {
	e := errors.New(errors.RomTooLarge, 4000, 3584)
	want := "rom too large: 4000 bytes exceeds the 3584 bytes available from 0x200"
	if e.Error() != want {
		t.Errorf("unexpected error message: got %q want %q", e.Error(), want)
	}
}

func TestIs(t *testing.T) {
	var err error = errors.New(errors.InvalidState, "step")
	if !errors.Is(err, errors.InvalidState) {
		t.Errorf("expected err to be InvalidState")
	}
	if errors.Is(err, errors.RomTooSmall) {
		t.Errorf("did not expect err to be RomTooSmall")
	}
}
