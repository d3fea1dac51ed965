package visionx

import "fmt"

// InvalidColorTypeError reports an operation that is undefined for the
// source image format, such as converting a grayscale image to RGB or
// encoding an HSV image to a file.
type InvalidColorTypeError struct {
	From ColorType
	To   string
}

func (e *InvalidColorTypeError) Error() string {
	return fmt.Sprintf("visionx: cannot convert %s image to %s", e.From, e.To)
}
