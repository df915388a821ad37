package adapter

import (
	emucore "github.com/user-none/eblitui/api"

	"github.com/user-none/softfilter/filter"
	"github.com/user-none/softfilter/frameloader"
	"github.com/user-none/softfilter/scaler"
)

// Compile-time interface check.
var _ emucore.CoreFactory = (*Factory)(nil)

// Factory implements emucore.CoreFactory for the image scaler.
type Factory struct{}

// SystemInfo returns system metadata for UI configuration.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:            "softfilter",
		ConsoleName:     "Software Filters",
		Extensions:      append(frameloader.ImageExtensions(), frameloader.ArchiveExtensions()...),
		ScreenWidth:     scaler.ScreenWidth,
		MaxScreenHeight: scaler.MaxScreenHeight,
		AspectRatio:     float64(scaler.CanvasWidth) / float64(scaler.CanvasHeight),
		SampleRate:      48000,
		Buttons: []emucore.Button{
			{Name: "Format", ID: scaler.ButtonFormat, DefaultKey: "J", DefaultPad: "A"},
		},
		Players: 1,
		CoreOptions: []emucore.CoreOption{
			{
				Key:         scaler.OptionFilter,
				Label:       "Filter",
				Description: "Software scaling filter applied to the image",
				Type:        emucore.CoreOptionSelect,
				Default:     scaler.DefaultFilter,
				Values:      filter.IDs(),
				Category:    emucore.CoreOptionCategoryVideo,
			},
			{
				Key:         scaler.OptionFormat,
				Label:       "Pixel Format",
				Description: "Working pixel format of the filter",
				Type:        emucore.CoreOptionSelect,
				Default:     "xrgb8888",
				Values:      []string{"rgb565", "xrgb8888"},
				Category:    emucore.CoreOptionCategoryVideo,
			},
			{
				Key:         scaler.OptionThreads,
				Label:       "Filter Threads",
				Description: "Number of horizontal bands rendered in parallel",
				Type:        emucore.CoreOptionRange,
				Default:     "1",
				Min:         1,
				Max:         8,
				Step:        1,
				Category:    emucore.CoreOptionCategoryCore,
			},
		},
		DataDirName:   "softfilter",
		CoreName:      scaler.Name,
		CoreVersion:   scaler.Version,
		SerializeSize: 0,
	}
}

// CreateEmulator creates a new core showing the given image or the first
// image inside the given archive.
func (f *Factory) CreateEmulator(rom []byte, region emucore.Region) (emucore.Emulator, error) {
	c, err := scaler.NewCore(rom, region)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DetectRegion always reports NTSC. Images carry no region.
func (f *Factory) DetectRegion(rom []byte) (emucore.Region, bool) {
	return emucore.RegionNTSC, false
}
