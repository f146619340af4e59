package render

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects the file encoding used by Save.
type Format int

const (
	FormatPPM  Format = iota // Plain text P3
	FormatPNG                // Lossless PNG
	FormatBMP                // Uncompressed BMP
	FormatTIFF               // Deflate-compressed TIFF
)

func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks a format from the file extension. Unknown or
// missing extensions fall back to PPM.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPPM
	}
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatPPM:
		return c.WritePPM(w)
	case FormatPNG:
		return png.Encode(w, c)
	case FormatBMP:
		return bmp.Encode(w, c)
	case FormatTIFF:
		return tiff.Encode(w, c, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported format: %s", f)
}

// Save writes the canvas to path, choosing the format from its extension.
func (c *Canvas) Save(path string) error {
	return c.SaveFormat(path, FormatFromPath(path))
}

// SaveFormat writes the canvas to path in the given format. A file that
// cannot be created, fully written or closed is reported as an error.
func (c *Canvas) SaveFormat(path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}

	if err := c.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s %s: %w", format, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image %s: %w", path, err)
	}

	Logger().Debug("canvas saved",
		"path", path,
		"format", format.String(),
		"width", c.width,
		"height", c.height,
	)
	return nil
}
