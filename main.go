//go:build !libretro

package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/afero"
	"github.com/sqweek/dialog"
	emucore "github.com/user-none/eblitui/api"
	"golang.org/x/term"

	bridge "github.com/user-none/softfilter/bridge/ebiten"
	"github.com/user-none/softfilter/cli"
	"github.com/user-none/softfilter/filter"
	"github.com/user-none/softfilter/frameloader"
	"github.com/user-none/softfilter/pixel"
	"github.com/user-none/softfilter/scaler"
	"github.com/user-none/softfilter/storage"
)

func main() {
	imagePath := flag.String("image", "", "path to image file (opens a file picker if not provided)")
	filterName := flag.String("filter", "", "filter ID or name (default from config)")
	formatName := flag.String("format", "", "pixel format: rgb565 or xrgb8888 (default from config)")
	threads := flag.Int("threads", 0, "render bands per frame (default from config)")
	outPath := flag.String("out", "", "render one frame to a PNG file and exit; - writes to stdout")
	configPath := flag.String("config", "", "path to config file (default user config directory)")
	snapshotDir := flag.String("snapshots", ".", "directory for S key snapshots")
	list := flag.Bool("list", false, "list filters and exit")
	verbose := flag.Bool("v", false, "log filter activity to stderr")
	flag.Parse()

	if *verbose {
		filter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *list {
		listFilters(os.Stdout)
		return
	}

	store, config, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(config, *filterName, *formatName, *threads)

	if *imagePath == "" {
		if *outPath != "" {
			log.Fatal("-out requires -image")
		}
		*imagePath, err = dialog.File().
			Title("Select Image").
			Filter("Images and archives", pickerExtensions()...).
			Load()
		if err != nil {
			fmt.Println("Usage: softfilter -image <file> [-filter id] [-format rgb565|xrgb8888] [-threads n] [-out file.png]")
			os.Exit(1)
		}
	}

	img, name, err := frameloader.LoadImage(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	core, err := newCore(img, config)
	if err != nil {
		log.Fatalf("Failed to start filter: %v", err)
	}

	if *outPath != "" {
		defer core.Close()
		if err := renderOut(core, *outPath); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		return
	}

	// Settings are only persisted to the default store
	if *configPath != "" {
		store = nil
	}
	runner := cli.NewRunner(bridge.NewViewer(core), store, config, *snapshotDir)
	defer runner.Close()

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	if config.Window.X != nil && config.Window.Y != nil {
		ebiten.SetWindowPosition(*config.Window.X, *config.Window.Y)
	}
	ebiten.SetWindowTitle("softfilter - " + name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(scaler.CanvasWidth, scaler.CanvasHeight, -1, -1)
	ebiten.SetTPS(core.GetTiming().FPS)

	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads an explicit config file, or the user's config.json
// through the returned store.
func loadConfig(path string) (*storage.Store, *storage.Config, error) {
	if path != "" {
		config, err := storage.LoadConfigFile(afero.NewOsFs(), path)
		return nil, config, err
	}

	store, err := storage.NewOS()
	if err != nil {
		return nil, nil, err
	}
	config, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return store, config, nil
}

// applyFlags overrides config values with non-empty flags.
func applyFlags(config *storage.Config, filterName, format string, threads int) {
	if filterName != "" {
		config.Video.Filter = filterName
	}
	if format != "" {
		config.Video.Format = format
	}
	if threads > 0 {
		config.Video.Threads = threads
	}
}

// newCore creates a core and applies the video settings. Unlike the
// frontends, bad flag values are reported instead of ignored.
func newCore(img image.Image, config *storage.Config) (*scaler.Core, error) {
	core, err := scaler.NewCoreFromImage(img, emucore.RegionNTSC)
	if err != nil {
		return nil, err
	}
	if err := core.SetFilter(config.Video.Filter); err != nil {
		core.Close()
		return nil, err
	}
	format, err := pixel.ParseFormat(config.Video.Format)
	if err != nil {
		core.Close()
		return nil, err
	}
	core.SetFormat(format)
	core.SetThreads(config.Video.Threads)
	return core, nil
}

// renderOut runs one frame and writes it as PNG to path, or to stdout when
// path is "-". Binary output is refused when stdout is a terminal.
func renderOut(core *scaler.Core, path string) error {
	core.RunFrame()
	if err := core.Err(); err != nil {
		return err
	}

	if path == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write PNG data to a terminal")
		}
		return writePNG(os.Stdout, core.Snapshot())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writePNG(f, core.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
