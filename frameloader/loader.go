// Package frameloader loads source images for the filters from plain image
// files or from compressed archives (ZIP, 7z, gzip, tar.gz, RAR, XZ, LZ4,
// Brotli).
package frameloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Magic bytes for format detection
var (
	magicZIP    = []byte{0x50, 0x4B, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4B, 0x05, 0x06} // empty zip
	magic7z     = []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}
	magicGzip   = []byte{0x1F, 0x8B}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21} // "Rar!"
	magicXZ     = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
	magicLZ4    = []byte{0x04, 0x22, 0x4D, 0x18}

	magicPNG  = []byte{0x89, 0x50, 0x4E, 0x47}
	magicGIF  = []byte("GIF8")
	magicJPEG = []byte{0xFF, 0xD8, 0xFF}
	magicBMP  = []byte("BM")
	magicTIFI = []byte{0x49, 0x49, 0x2A, 0x00}
	magicTIFM = []byte{0x4D, 0x4D, 0x00, 0x2A}
	magicRIFF = []byte("RIFF")
	magicWEBP = []byte("WEBP")
)

// Maximum extracted image size (16MB safety limit)
const maxImageSize = 16 * 1024 * 1024

// ErrNoImageFile is returned when no image file is found in an archive
var ErrNoImageFile = errors.New("no image file found in archive")

// ErrUnsupportedFormat is returned for unrecognized file formats
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrFileTooLarge is returned when extracted content exceeds size limit
var ErrFileTooLarge = errors.New("file exceeds maximum size limit")

// imageExtensions are the file types Decode understands.
var imageExtensions = []string{".png", ".bmp", ".gif", ".jpg", ".jpeg", ".tif", ".tiff", ".webp"}

// archiveExtensions are the container types LoadFrame looks inside.
var archiveExtensions = []string{".zip", ".7z", ".gz", ".tgz", ".rar", ".xz", ".txz", ".lz4", ".br"}

// ArchiveExtensions returns a copy of the archive file extensions, dot
// included.
func ArchiveExtensions() []string {
	return slices.Clone(archiveExtensions)
}

// ImageExtensions returns a copy of the image file extensions, dot included.
func ImageExtensions() []string {
	return slices.Clone(imageExtensions)
}

// formatType represents the detected file format
type formatType int

const (
	formatUnknown formatType = iota
	formatRawImage
	formatZIP
	format7z
	formatGzip
	formatRAR
	formatXZ
	formatLZ4
	formatBrotli
)

// LoadFrame loads an image from a file path. It automatically detects and
// extracts from archives. Returns the encoded image data, the filename of the
// image (useful for display), and any error encountered.
func LoadFrame(path string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("failed to stat file: %w", err)
	}
	return load(f, info.Size(), path)
}

// LoadFrameBytes is LoadFrame for a file already in memory. name is used for
// the extension fallback and as the result name of a raw image.
func LoadFrameBytes(data []byte, name string) ([]byte, string, error) {
	return load(bytes.NewReader(data), int64(len(data)), name)
}

// source is satisfied by *os.File and *bytes.Reader
type source interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

func load(r source, size int64, path string) ([]byte, string, error) {
	// Read header for magic byte detection
	header := make([]byte, 16)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", fmt.Errorf("failed to read file header: %w", err)
	}
	header = header[:n]

	format := detectFormat(header, path)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("failed to seek file: %w", err)
	}

	switch format {
	case formatRawImage:
		data, err := limitedRead(r)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read image: %w", err)
		}
		return data, filepath.Base(path), nil

	case formatZIP:
		return extractFromZIP(r, size)

	case format7z:
		return extractFrom7z(r, size)

	case formatGzip:
		return extractFromStream(r, path, openGzip)

	case formatXZ:
		return extractFromStream(r, path, openXZ)

	case formatLZ4:
		return extractFromStream(r, path, openLZ4)

	case formatBrotli:
		return extractFromStream(r, path, openBrotli)

	case formatRAR:
		return extractFromRAR(r)

	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// detectFormat determines the file format based on magic bytes and extension
func detectFormat(header []byte, path string) formatType {
	// Check magic bytes first (more reliable)
	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEnd):
		return formatZIP
	case bytes.HasPrefix(header, magicRAR):
		return formatRAR
	case bytes.HasPrefix(header, magic7z):
		return format7z
	case bytes.HasPrefix(header, magicXZ):
		return formatXZ
	case bytes.HasPrefix(header, magicLZ4):
		return formatLZ4
	case bytes.HasPrefix(header, magicGzip):
		return formatGzip
	case isImageHeader(header):
		return formatRawImage
	}

	// Fall back to extension
	lower := strings.ToLower(path)
	if isImageFile(lower) {
		return formatRawImage
	}
	switch filepath.Ext(lower) {
	case ".zip":
		return formatZIP
	case ".7z":
		return format7z
	case ".gz", ".tgz":
		return formatGzip
	case ".rar":
		return formatRAR
	case ".xz", ".txz":
		return formatXZ
	case ".lz4":
		return formatLZ4
	case ".br":
		return formatBrotli
	}

	return formatUnknown
}

// isImageHeader reports whether header starts with the signature of a
// supported image encoding.
func isImageHeader(header []byte) bool {
	for _, m := range [][]byte{magicPNG, magicGIF, magicJPEG, magicTIFI, magicTIFM} {
		if bytes.HasPrefix(header, m) {
			return true
		}
	}
	if len(header) >= 12 && bytes.HasPrefix(header, magicRIFF) && bytes.Equal(header[8:12], magicWEBP) {
		return true
	}
	// "BM" alone is too weak; require the reserved header words to be zero.
	return len(header) >= 10 && bytes.HasPrefix(header, magicBMP) &&
		header[6] == 0 && header[7] == 0 && header[8] == 0 && header[9] == 0
}

// isImageFile checks if a filename has a supported image extension
// (case-insensitive)
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// limitedRead reads from r up to maxImageSize bytes, returning an error if
// exceeded
func limitedRead(r io.Reader) ([]byte, error) {
	lr := io.LimitReader(r, maxImageSize+1)
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
