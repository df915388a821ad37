package frameloader

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// extractFromZIP extracts the first image file from a ZIP archive
func extractFromZIP(ra io.ReaderAt, size int64) ([]byte, string, error) {
	r, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open zip: %w", err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImageFile(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", ErrNoImageFile
}

// extractFrom7z extracts the first image file from a 7z archive
func extractFrom7z(ra io.ReaderAt, size int64) ([]byte, string, error) {
	r, err := sevenzip.NewReader(ra, size)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open 7z: %w", err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImageFile(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		data, err := limitedRead(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", ErrNoImageFile
}

// streamOpener wraps a compressed stream in a decompressing reader.
type streamOpener func(r io.Reader) (io.Reader, error)

func openGzip(r io.Reader) (io.Reader, error) {
	return gzip.NewReader(r)
}

func openXZ(r io.Reader) (io.Reader, error) {
	return xz.NewReader(r)
}

func openLZ4(r io.Reader) (io.Reader, error) {
	return lz4.NewReader(r), nil
}

func openBrotli(r io.Reader) (io.Reader, error) {
	return brotli.NewReader(r), nil
}

// streamSuffixes are stripped from a single-stream file name to find the
// name of the payload.
var streamSuffixes = map[string]string{
	".gz":  "",
	".xz":  "",
	".lz4": "",
	".br":  "",
	".tgz": ".tar",
	".txz": ".tar",
}

// innerName returns the name of the file wrapped by a single-stream
// compressor, e.g. "shot.png.gz" -> "shot.png", "pics.tgz" -> "pics.tar".
func innerName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if repl, ok := streamSuffixes[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(base, ext) + repl
	}
	return base
}

// extractFromStream decompresses a single-stream file. A tar payload is
// searched for its first image; anything else is returned as the image.
func extractFromStream(r io.Reader, path string, open streamOpener) ([]byte, string, error) {
	dr, err := open(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	if c, ok := dr.(io.Closer); ok {
		defer c.Close()
	}

	name := innerName(path)
	if strings.EqualFold(filepath.Ext(name), ".tar") {
		return extractFromTar(dr)
	}

	data, err := limitedRead(dr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decompress %s: %w", filepath.Base(path), err)
	}
	return data, name, nil
}

// extractFromTar extracts the first image file from a tar stream
func extractFromTar(r io.Reader) ([]byte, string, error) {
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to read tar entry: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !isImageFile(header.Name) {
			continue
		}

		data, err := limitedRead(tr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", header.Name, err)
		}
		return data, filepath.Base(header.Name), nil
	}

	return nil, "", ErrNoImageFile
}
