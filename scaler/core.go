// Package scaler runs a still image through the filter registry as a frame
// source. Core implements the eblitui Emulator interface so the image can be
// shown by the standalone and libretro frontends: every frame re-presents the
// same canvas through the selected filter.
package scaler

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	emucore "github.com/user-none/eblitui/api"

	"github.com/user-none/softfilter/filter"
	"github.com/user-none/softfilter/frameloader"
	"github.com/user-none/softfilter/pixel"
)

// Compile-time interface check.
var _ emucore.Emulator = (*Core)(nil)

// Core identity reported to frontends.
const (
	Name    = "softfilter"
	Version = "0.1.0"
)

const (
	// CanvasWidth and CanvasHeight are the source resolution every image is
	// letterboxed into.
	CanvasWidth  = 256
	CanvasHeight = 240

	// MaxScale is the largest scale factor of a built-in filter.
	MaxScale = 3

	ScreenWidth     = CanvasWidth * MaxScale
	MaxScreenHeight = CanvasHeight * MaxScale

	sampleRate = 48000
)

// Core option keys
const (
	OptionFilter  = "filter"
	OptionFormat  = "format"
	OptionThreads = "threads"
)

// ButtonFormat is the input bit that toggles between RGB565 and XRGB8888.
const ButtonFormat = 4

// Defaults applied by NewCore
const (
	DefaultFilter = "super2xsai"
	DefaultFormat = pixel.FormatXRGB8888
)

// ErrNoImage is returned when a core is created without an image
var ErrNoImage = errors.New("no image")

// Timing per region. Scanlines reports the canvas height.
var (
	ntscTiming = emucore.Timing{FPS: 60, Scanlines: CanvasHeight}
	palTiming  = emucore.Timing{FPS: 50, Scanlines: CanvasHeight}
)

// Core holds the source canvas and the filtered output.
type Core struct {
	canvas *image.RGBA
	src    *pixel.Frame
	out    []byte
	cache  *filter.Cache

	filterID string
	format   pixel.Format
	threads  int

	region emucore.Region
	timing emucore.Timing

	// Input edge detection for filter cycling
	prevButtons uint32

	dirty    bool
	err      error
	frames   uint64
	fb       []byte
	fbWidth  int
	fbHeight int

	// Pre-allocated silent audio for one frame
	audioBuffer []int16
}

// NewCore decodes an encoded image, or the first image inside an archive,
// and returns a core showing it.
func NewCore(data []byte, region emucore.Region) (*Core, error) {
	encoded, _, err := frameloader.LoadFrameBytes(data, "")
	if err != nil {
		return nil, err
	}
	img, _, err := frameloader.Decode(encoded)
	if err != nil {
		return nil, err
	}
	return NewCoreFromImage(img, region)
}

// NewCoreFromImage returns a core showing img with the default filter.
func NewCoreFromImage(img image.Image, region emucore.Region) (*Core, error) {
	if img == nil {
		return nil, ErrNoImage
	}

	cache, err := filter.NewCache(filter.DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	c := &Core{
		cache:    cache,
		filterID: DefaultFilter,
		format:   DefaultFormat,
		threads:  1,
		out:      make([]byte, ScreenWidth*MaxScreenHeight*pixel.BPPXRGB8888),
		fb:       make([]byte, ScreenWidth*MaxScreenHeight*4),
	}
	c.SetImage(img)
	c.SetRegion(region)
	c.render()
	return c, nil
}

// SetImage replaces the source image.
func (c *Core) SetImage(img image.Image) {
	c.canvas = letterbox(img, CanvasWidth, CanvasHeight)
	c.src = pixel.FromImage(c.canvas, c.format)
	c.dirty = true
}

// RunFrame renders the canvas through the current filter when any setting
// changed since the last frame.
func (c *Core) RunFrame() {
	if c.dirty {
		c.render()
	}
	c.frames++
}

func (c *Core) render() {
	c.dirty = false
	c.err = c.renderOutput()
	if c.err != nil {
		filter.Logger().Warn("render failed", "filter", c.filterID, "format", c.format, "error", c.err)
	}
}

func (c *Core) renderOutput() error {
	inst, err := c.cache.Get(c.filterID, c.format, c.threads)
	if err != nil {
		return err
	}

	w, h := inst.OutputSize(c.src.Width, c.src.Height)
	if w > ScreenWidth || h > MaxScreenHeight {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", filter.ErrBufferTooSmall, w, h, ScreenWidth, MaxScreenHeight)
	}

	dst := &pixel.Frame{
		Format: c.format,
		Width:  w,
		Height: h,
		Stride: w * c.format.BytesPerPixel(),
		Pix:    c.out,
	}
	if err := filter.Apply(inst, dst, c.src); err != nil {
		return err
	}
	if err := dst.CopyToRGBA(c.fb, w*4); err != nil {
		return err
	}
	c.fbWidth, c.fbHeight = w, h
	return nil
}

// GetFramebuffer returns the filtered frame as RGBA pixel data.
func (c *Core) GetFramebuffer() []byte {
	return c.fb[:c.fbWidth*c.fbHeight*4]
}

// GetFramebufferStride returns the stride (bytes per row) of the framebuffer.
// It changes with the scale of the selected filter.
func (c *Core) GetFramebufferStride() int {
	return c.fbWidth * 4
}

// GetActiveHeight returns the height of the filtered frame
func (c *Core) GetActiveHeight() int {
	return c.fbHeight
}

// GetAudioSamples returns one frame of silence as 16-bit stereo PCM.
func (c *Core) GetAudioSamples() []int16 {
	return c.audioBuffer
}

// SetInput cycles filters on left/right and toggles the pixel format on
// ButtonFormat. Only player 1 is read and only presses (0->1) count.
func (c *Core) SetInput(player int, buttons uint32) {
	if player != 0 {
		return
	}
	pressed := buttons &^ c.prevButtons
	c.prevButtons = buttons

	if pressed&(1<<emucore.ButtonLeft) != 0 {
		c.StepFilter(-1)
	}
	if pressed&(1<<emucore.ButtonRight) != 0 {
		c.StepFilter(1)
	}
	if pressed&(1<<ButtonFormat) != 0 {
		c.ToggleFormat()
	}
}

// GetRegion returns the core's region setting
func (c *Core) GetRegion() emucore.Region {
	return c.region
}

// SetRegion selects 60 or 50 frames per second.
func (c *Core) SetRegion(region emucore.Region) {
	c.region = region
	c.timing = ntscTiming
	if region == emucore.RegionPAL {
		c.timing = palTiming
	}
	c.audioBuffer = make([]int16, sampleRate/c.timing.FPS*2)
}

// GetTiming returns FPS and scanline count for the current region.
func (c *Core) GetTiming() emucore.Timing {
	return c.timing
}

// SetOption applies a core option change identified by key. Invalid values
// are logged and ignored.
func (c *Core) SetOption(key string, value string) {
	var err error
	switch key {
	case OptionFilter:
		err = c.SetFilter(value)
	case OptionFormat:
		var f pixel.Format
		if f, err = pixel.ParseFormat(value); err == nil {
			c.SetFormat(f)
		}
	case OptionThreads:
		var n int
		if n, err = strconv.Atoi(value); err == nil {
			c.SetThreads(n)
		}
	}
	if err != nil {
		filter.Logger().Warn("ignoring core option", "key", key, "value", value, "error", err)
	}
}

// SetFilter selects a filter by ID or display name.
func (c *Core) SetFilter(name string) error {
	d, err := filter.Lookup(name)
	if err != nil {
		return err
	}
	if d.ID() != c.filterID {
		c.filterID = d.ID()
		c.dirty = true
	}
	return nil
}

// StepFilter moves step entries through the registry, wrapping at both ends.
func (c *Core) StepFilter(step int) {
	c.filterID = filter.Next(c.filterID, step).ID()
	c.dirty = true
}

// SetFormat converts the canvas to f. Invalid formats are ignored.
func (c *Core) SetFormat(f pixel.Format) {
	if !f.Valid() || f == c.format {
		return
	}
	c.format = f
	c.src = pixel.FromImage(c.canvas, f)
	c.dirty = true
}

// ToggleFormat switches between RGB565 and XRGB8888.
func (c *Core) ToggleFormat() {
	if c.format == pixel.FormatRGB565 {
		c.SetFormat(pixel.FormatXRGB8888)
	} else {
		c.SetFormat(pixel.FormatRGB565)
	}
}

// SetThreads sets the number of render bands, minimum 1.
func (c *Core) SetThreads(n int) {
	n = max(n, 1)
	if n != c.threads {
		c.threads = n
		c.dirty = true
	}
}

// Filter returns the descriptor of the selected filter.
func (c *Core) Filter() filter.Descriptor {
	d, _ := filter.Lookup(c.filterID)
	return d
}

// Format returns the working pixel format.
func (c *Core) Format() pixel.Format {
	return c.format
}

// Threads returns the number of render bands.
func (c *Core) Threads() int {
	return c.threads
}

// Frames returns the number of frames run.
func (c *Core) Frames() uint64 {
	return c.frames
}

// Err returns the error from the most recent render, if any.
func (c *Core) Err() error {
	return c.err
}

// Snapshot returns a copy of the current framebuffer as an image.
func (c *Core) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.fbWidth, c.fbHeight))
	copy(img.Pix, c.GetFramebuffer())
	return img
}

// Close releases the cached filter instances.
func (c *Core) Close() {
	c.cache.Purge()
}
