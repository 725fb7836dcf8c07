// Package encode renders ir nodes as csd text.
//
// # Usage
//
//	// Stream to a writer in the standard format
//	err := encode.Encode(doc.Root, os.Stdout)
//
//	// Render compactly into a growable buffer
//	d, err := encode.EncodeBytes(doc.Root, encode.EncodeFormat(format.Compact))
//
//	// Render into a caller owned buffer; Status reports overflow
//	buf := make([]byte, 256)
//	fixed, err := encode.EncodeFixed(doc.Root, buf)
//	if fixed.Status == diag.WriteOverflow {
//	    // fixed.Overflow more bytes were needed
//	}
//
// Floats are written with six fractional digits. Strings are quoted with
// the format's quote, or with the other quote character when the string
// contains the configured one. Keys must be identifiers.
//
// # Related Packages
//
//   - github.com/csd-format/go-csd/ir - document model
//   - github.com/csd-format/go-csd/format - layout descriptors
//   - github.com/csd-format/go-csd/parse - parse text to ir
package encode
