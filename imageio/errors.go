package imageio

import "fmt"

// InvalidExtensionError reports a path whose extension does not name a
// supported image format.
type InvalidExtensionError struct {
	Path string
	Ext  string
}

func (e *InvalidExtensionError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("imageio: %s: no file extension", e.Path)
	}
	return fmt.Sprintf("imageio: %s: unrecognized extension %q", e.Path, e.Ext)
}

// InvalidImageDepthError reports a decoded pixel layout that has no
// corresponding image variant, such as exotic color models the core does
// not represent.
type InvalidImageDepthError struct {
	Path  string
	Model string
}

func (e *InvalidImageDepthError) Error() string {
	return fmt.Sprintf("imageio: %s: unsupported pixel layout %s", e.Path, e.Model)
}

// InsufficientBufferError reports a flattened sample stream whose length
// disagrees with the image's declared dimensions, so no encode buffer could
// be constructed. This happens when a grid's dimension setters were used
// without replacing the backing rows.
type InsufficientBufferError struct {
	Path string
	Got  int
	Want int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("imageio: %s: flattened buffer holds %d samples, dimensions require %d",
		e.Path, e.Got, e.Want)
}
