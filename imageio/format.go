package imageio

import (
	"path/filepath"
	"strings"
)

// Format is a recognized image file format.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatGIF
	FormatBMP
)

// String returns the conventional lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	}
	return "unknown"
}

// FormatFromPath determines the file format from the path's extension.
// Matching is case-insensitive; "jpg" and "jpeg" both map to FormatJPEG.
// Unrecognized or missing extensions fail with *InvalidExtensionError.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	}
	return 0, &InvalidExtensionError{Path: path, Ext: ext}
}
