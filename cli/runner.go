//go:build !libretro

// Package cli provides a windowed viewer for the filters.
// It polls input and redraws the filtered image without the full UI.
package cli

import (
	"bytes"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/afero"
	emucore "github.com/user-none/eblitui/api"
	"golang.design/x/clipboard"

	bridge "github.com/user-none/softfilter/bridge/ebiten"
	"github.com/user-none/softfilter/frameloader"
	"github.com/user-none/softfilter/scaler"
	"github.com/user-none/softfilter/storage"
)

// threadSteps are the band counts cycled by the T key
var threadSteps = []int{1, 2, 4, 8}

// Runner wraps a viewer for command-line mode.
// The core does not poll input itself; the runner reads the keyboard and
// gamepads and passes a button mask via SetInput.
type Runner struct {
	viewer *bridge.Viewer
	store  *storage.Store
	config *storage.Config

	// Snapshots are written here
	fs          afero.Fs
	snapshotDir string

	title  string
	notice *Notification

	// Last known window geometry; queries fail once the game has ended
	winW, winH int
	winX, winY int

	clipboardOnce sync.Once
	clipboardOK   bool
}

// NewRunner creates a new Runner. store may be nil, in which case settings
// are not saved on Close.
func NewRunner(v *bridge.Viewer, store *storage.Store, config *storage.Config, snapshotDir string) *Runner {
	return &Runner{
		viewer:      v,
		store:       store,
		config:      config,
		fs:          afero.NewOsFs(),
		snapshotDir: snapshotDir,
		notice:      NewNotification(),
	}
}

// Close saves the current filter settings and releases the viewer.
func (r *Runner) Close() {
	if r.store != nil && r.config != nil {
		r.config.Video.Filter = r.viewer.Filter().ID()
		r.config.Video.Format = strings.ToLower(r.viewer.Format().String())
		r.config.Video.Threads = r.viewer.Threads()
		if r.winW > 0 && r.winH > 0 {
			x, y := r.winX, r.winY
			r.config.Window.Width, r.config.Window.Height = r.winW, r.winH
			r.config.Window.X, r.config.Window.Y = &x, &y
		}
		if err := r.store.SaveConfig(r.config); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}
	r.viewer.Close()
}

// Update implements ebiten.Game.
func (r *Runner) Update() error {
	r.loadDropped()

	if ebiten.IsFocused() {
		r.pollInput()
		r.pollHotkeys()
	}

	r.viewer.RunFrame()
	r.updateTitle()

	if !ebiten.IsFullscreen() {
		r.winW, r.winH = ebiten.WindowSize()
		r.winX, r.winY = ebiten.WindowPosition()
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.viewer.DrawToScreen(screen)
	r.notice.Draw(screen)
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.viewer.Layout(outsideWidth, outsideHeight)
}

// pollInput reads keyboard and gamepad input and passes it to the core.
func (r *Runner) pollInput() {
	// Keyboard ([/], A/D and arrows cycle filters, F/J toggle the pixel format)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyBracketLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyBracketRight)
	format := ebiten.IsKeyPressed(ebiten.KeyF) || ebiten.IsKeyPressed(ebiten.KeyJ)

	// Gamepad support (all connected gamepads)
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
			left = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
			right = true
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			format = true
		}
	}

	var buttons uint32
	if left {
		buttons |= 1 << emucore.ButtonLeft
	}
	if right {
		buttons |= 1 << emucore.ButtonRight
	}
	if format {
		buttons |= 1 << scaler.ButtonFormat
	}
	r.viewer.SetInput(0, buttons)
}

// pollHotkeys handles keys that act on the runner rather than the core.
func (r *Runner) pollHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		r.viewer.SetThreads(nextThreads(r.viewer.Threads()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		path, err := r.saveSnapshot()
		if err != nil {
			log.Printf("Failed to save snapshot: %v", err)
			r.notice.ShowShort("Snapshot failed")
		} else {
			log.Printf("Saved snapshot to %s", path)
			r.notice.ShowShort("Saved " + filepath.Base(path))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := r.copySnapshot(); err != nil {
			log.Printf("Failed to copy snapshot: %v", err)
			r.notice.ShowShort("Copy failed")
		} else {
			r.notice.ShowShort("Copied to clipboard")
		}
	}
}

// loadDropped replaces the image with the first image or archive dropped on
// the window.
func (r *Runner) loadDropped() {
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return
	}
	entries, err := fs.ReadDir(dropped, ".")
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(dropped, e.Name())
		if err != nil {
			continue
		}
		encoded, _, err := frameloader.LoadFrameBytes(data, e.Name())
		if err != nil {
			log.Printf("Ignoring %s: %v", e.Name(), err)
			continue
		}
		img, _, err := frameloader.Decode(encoded)
		if err != nil {
			log.Printf("Ignoring %s: %v", e.Name(), err)
			continue
		}
		r.viewer.SetImage(img)
		r.notice.ShowShort("Loaded " + e.Name())
		return
	}
}

// updateTitle shows the filter settings in the window title and flashes
// them on screen when they change.
func (r *Runner) updateTitle() {
	status := statusLine(r.viewer.Filter().Name(), r.viewer.Format().String(), r.viewer.Threads())
	if status == r.title {
		return
	}
	if r.title != "" {
		r.notice.ShowShort(status)
	}
	r.title = status
	ebiten.SetWindowTitle("softfilter - " + status)
}

func statusLine(name, format string, threads int) string {
	s := fmt.Sprintf("%s (%s, %d thread", name, format, threads)
	if threads != 1 {
		s += "s"
	}
	return s + ")"
}

func (r *Runner) encodeSnapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.viewer.Snapshot()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// saveSnapshot writes the current output as a PNG into the snapshot
// directory and returns its path.
func (r *Runner) saveSnapshot() (string, error) {
	data, err := r.encodeSnapshot()
	if err != nil {
		return "", err
	}
	if err := r.fs.MkdirAll(r.snapshotDir, 0755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s.png", r.viewer.Filter().ID(), time.Now().Format("20060102-150405"))
	path := filepath.Join(r.snapshotDir, name)
	if err := afero.WriteFile(r.fs, path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// copySnapshot places the current output on the system clipboard as PNG.
func (r *Runner) copySnapshot() error {
	r.clipboardOnce.Do(func() {
		r.clipboardOK = clipboard.Init() == nil
	})
	if !r.clipboardOK {
		return fmt.Errorf("clipboard unavailable")
	}
	data, err := r.encodeSnapshot()
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

// nextThreads returns the band count after n in threadSteps.
func nextThreads(n int) int {
	for i, s := range threadSteps {
		if s == n {
			return threadSteps[(i+1)%len(threadSteps)]
		}
	}
	return threadSteps[0]
}
