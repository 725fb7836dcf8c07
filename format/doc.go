// Package format describes how the encoder lays out csd text.
//
// # Usage
//
//	f, err := format.ParseFormat("compact")
//
//	// Load a profile: a YAML document naming a base format and
//	// overriding some of its strings.
//	//
//	//	base: standard
//	//	sequence_indent: "  "
//	//	quote: "'"
//	f, err = format.LoadFile("two-space.yaml")
//
// # Related Packages
//
//   - github.com/csd-format/go-csd/encode - Encode IR to text
package format
