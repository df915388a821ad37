// Package filterios provides a gomobile-compatible interface to the filters.
package filterios

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"strings"

	emucore "github.com/user-none/eblitui/api"

	"github.com/user-none/softfilter/filter"
	"github.com/user-none/softfilter/frameloader"
	"github.com/user-none/softfilter/pixel"
	"github.com/user-none/softfilter/scaler"
)

// ExtractResult contains the result of image extraction
type ExtractResult struct {
	Crc32    string // Hex string, e.g., "AABBCCDD"
	Filename string // Original filename from archive, e.g., "title.png"
}

// current holds the viewer state (unexported)
var current *viewerState

type viewerState struct {
	core      *scaler.Core
	frameData []byte
}

// InitFromPath loads an image and starts a viewer.
// Automatically extracts from ZIP/7z/gzip/RAR if needed.
// filterID "" selects the default filter; format: 0=XRGB8888, 1=RGB565.
// Returns true on success, false on error.
func InitFromPath(path string, filterID string, format int) bool {
	img, _, err := frameloader.LoadImage(path)
	if err != nil {
		return false
	}
	core, err := scaler.NewCoreFromImage(img, emucore.RegionNTSC)
	if err != nil {
		return false
	}
	if filterID != "" {
		if err := core.SetFilter(filterID); err != nil {
			core.Close()
			return false
		}
	}
	Close()
	current = &viewerState{core: core}
	SetFormat(format)
	return true
}

// Close releases the viewer.
func Close() {
	if current != nil {
		current.core.Close()
	}
	current = nil
}

// RunFrame renders one frame and caches the RGBA output.
func RunFrame() {
	if current == nil {
		return
	}
	current.core.RunFrame()
	current.frameData = current.core.GetFramebuffer()
}

// FrameWidth returns the output width of the current filter.
func FrameWidth() int {
	if current == nil {
		return 0
	}
	return current.core.GetFramebufferStride() / 4
}

// FrameHeight returns the output height of the current filter.
func FrameHeight() int {
	if current == nil {
		return 0
	}
	return current.core.GetActiveHeight()
}

// GetFrameData returns the RGBA frame from the last RunFrame, packed with no
// row padding.
func GetFrameData() []byte {
	if current == nil {
		return nil
	}
	return current.frameData
}

// SetInput sets the d-pad and format button state. Presses cycle filters
// and toggle the format.
func SetInput(left, right, format bool) {
	if current == nil {
		return
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
	current.core.SetInput(0, buttons)
}

// SetFilter selects a filter by ID or name. Returns false if unknown.
func SetFilter(name string) bool {
	if current == nil {
		return false
	}
	return current.core.SetFilter(name) == nil
}

// FilterID returns the ID of the selected filter.
func FilterID() string {
	if current == nil {
		return ""
	}
	return current.core.Filter().ID()
}

// FilterIDs returns the registered filter IDs in order, comma separated.
func FilterIDs() string {
	return strings.Join(filter.IDs(), ",")
}

// FilterCount returns the number of registered filters.
func FilterCount() int {
	return len(filter.Registry())
}

// FilterIDAt returns the ID of the filter at index i in registry order.
func FilterIDAt(i int) string {
	reg := filter.Registry()
	if i < 0 || i >= len(reg) {
		return ""
	}
	return reg[i].ID()
}

// FilterNameAt returns the display name of the filter at index i.
func FilterNameAt(i int) string {
	reg := filter.Registry()
	if i < 0 || i >= len(reg) {
		return ""
	}
	return reg[i].Name()
}

// SetFormat selects the working pixel format (0=XRGB8888, 1=RGB565).
func SetFormat(code int) {
	if current == nil {
		return
	}
	if code == 1 {
		current.core.SetFormat(pixel.FormatRGB565)
	} else {
		current.core.SetFormat(pixel.FormatXRGB8888)
	}
}

// SetThreads sets the number of render bands.
func SetThreads(n int) {
	if current != nil {
		current.core.SetThreads(n)
	}
}

// GetCRC32FromPath calculates the CRC32 checksum of an image file.
// Automatically extracts from ZIP/7z/gzip/RAR if needed.
// Returns -1 on error.
func GetCRC32FromPath(path string) int64 {
	data, _, err := frameloader.LoadFrame(path)
	if err != nil {
		return -1
	}

	return int64(crc32.ChecksumIEEE(data))
}

// ExtractAndStoreImage extracts an image from an archive (or copies a raw
// image), calculates its CRC32, and stores it as {destDir}/{CRC32}{ext}.
// If a file with the same CRC32 already exists, it skips writing.
func ExtractAndStoreImage(srcPath, destDir string) (*ExtractResult, error) {
	data, filename, err := frameloader.LoadFrame(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	crcHex := fmt.Sprintf("%08X", crc32.ChecksumIEEE(data))
	destPath := filepath.Join(destDir, crcHex+strings.ToLower(filepath.Ext(filename)))

	// Same CRC = same content
	if _, err := os.Stat(destPath); err == nil {
		return &ExtractResult{Crc32: crcHex, Filename: filename}, nil
	}

	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	return &ExtractResult{Crc32: crcHex, Filename: filename}, nil
}
