package paths_test

import (
	"strings"
	"testing"

	"github.com/retrocores/retrocores/paths"
)

func TestResourcePath(t *testing.T) {
	pth := paths.ResourcePath("prefs.gob")
	if !strings.HasSuffix(pth, "prefs.gob") {
		t.Errorf("expected path to end with prefs.gob, got %q", pth)
	}
	if !strings.Contains(pth, "retrocores") {
		t.Errorf("expected path to reference the retrocores config dir, got %q", pth)
	}
}
