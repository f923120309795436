// Package frame wraps a raw LZW code stream in a self-describing container.
//
// A raw stream carries no header: the reader must already know the code
// width and must trust the data. A frame records the width, an optional
// secondary compression applied on top of the codes, the original size and an
// xxHash64 checksum, so Decode can both configure itself and verify its
// output.
//
//	+-----------------+---------------------------------------------+
//	| Header (32 B)   | payload = secondary.Compress(LZW stream)     |
//	+-----------------+---------------------------------------------+
//
// The flag in the first two bytes holds the magic number and the byte order
// of the remaining header fields. It is always little-endian.
//
// # Usage
//
//	framed, err := frame.Encode(text, frame.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	text, err = frame.Decode(framed)
//	if errors.Is(err, errs.ErrChecksumMismatch) {
//	    // corrupted payload
//	}
package frame
