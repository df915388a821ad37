//go:build !libretro

package cli

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/spf13/afero"
	emucore "github.com/user-none/eblitui/api"

	bridge "github.com/user-none/softfilter/bridge/ebiten"
	"github.com/user-none/softfilter/scaler"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	core, err := scaler.NewCoreFromImage(image.NewRGBA(image.Rect(0, 0, 32, 32)), emucore.RegionNTSC)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(bridge.NewViewer(core), nil, nil, "/snapshots")
	r.fs = afero.NewMemMapFs()
	return r
}

func TestNextThreads(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 2}, {2, 4}, {4, 8}, {8, 1}, {3, 1},
	}
	for _, tc := range tests {
		if got := nextThreads(tc.in); got != tc.want {
			t.Errorf("nextThreads(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRunner_SaveSnapshot(t *testing.T) {
	r := newTestRunner(t)
	r.viewer.SetOption(scaler.OptionFilter, "scale3x")
	r.viewer.RunFrame()

	path, err := r.saveSnapshot()
	if err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}
	if !strings.HasPrefix(path, "/snapshots/scale3x-") || !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected snapshot path %q", path)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("snapshot is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != scaler.ScreenWidth || b.Dy() != scaler.MaxScreenHeight {
		t.Errorf("snapshot size: got %v", b)
	}
}

func TestStatusLine(t *testing.T) {
	if got := statusLine("SuperEagle", "RGB565", 1); got != "SuperEagle (RGB565, 1 thread)" {
		t.Errorf("got %q", got)
	}
	if got := statusLine("2xSaI", "XRGB8888", 4); got != "2xSaI (XRGB8888, 4 threads)" {
		t.Errorf("got %q", got)
	}
}
