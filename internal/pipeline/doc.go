// Package pipeline implements the source preprocessing stage.
//
// Raw source text is normalized before block classification:
//   - a leading UTF-8 byte order mark is removed
//   - \r\n and \r line endings become \n
//   - text is composed to Unicode NFC
//
// The normalized text is then split into lines for the blocks package.
// Classification and rendering live in their own packages; this package only
// guarantees that the classifier sees clean, consistently encoded lines.
package pipeline
