// Package libdiff computes differences between csd trees.
//
// # Usage
//
//	for _, c := range libdiff.Diff(oldDoc.Root, newDoc.Root) {
//	    fmt.Println(c) // eg "~ $.window.width: 1920 -> 1024"
//	}
//
//	// Line diff of the standard renderings
//	text, err := libdiff.Text(oldDoc.Root, newDoc.Root)
//
// Sequence keys and array elements are aligned with
// github.com/sergi/go-diff before values are compared, so an inserted
// entry is reported once rather than shifting every entry after it.
//
// # Related Packages
//
//   - github.com/csd-format/go-csd/ir - document model
//   - github.com/csd-format/go-csd/encode - renderings used by Text
package libdiff
