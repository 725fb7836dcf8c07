// Package parse parses csd text into ir documents.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`tetris { window { width: 1920 } }`))
//	if err != nil {
//	    return err // doc.Kind() and doc.Reason() describe the failure
//	}
//	width := doc.Root.Get("window").Get("width").Value.Int
//
//	// Parse a file, reporting diagnostics against its name
//	doc, err = parse.ParseFile("dialog.csd")
//
// Exactly one top level node is parsed; tokens after it are not examined.
// Empty input yields a document with a nil Root and no error.
//
// Every entry point returns a non-nil document. On failure the document
// holds the first diagnostic, its partially built nodes have been
// released, and the returned error is that diagnostic.
//
// # Related Packages
//
//   - github.com/csd-format/go-csd/ir - document model
//   - github.com/csd-format/go-csd/encode - render documents to text
//   - github.com/csd-format/go-csd/token - lexing
package parse
