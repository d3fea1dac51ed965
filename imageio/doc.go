// Package imageio is the file boundary around the visionx core: it decodes
// image files into pixel-grid variants and encodes variants back to disk.
//
// Reading recognizes PNG, JPEG, GIF, and BMP by file extension and maps the
// decoded pixel layout onto one of the supported variants. Writing flattens
// a variant to its row-major sample stream and hands it to the encoder
// selected by the output extension. HSV images have no file encoding and are
// rejected at write time.
//
// All codec and file-system failures surface here; the core packages never
// perform I/O.
package imageio
