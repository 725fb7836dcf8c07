// Package mergeop applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to csd trees.
//
// Trees are bridged through their JSON form, so a patched tree holds
// only JSON-representable values. Sequence entries keep their original
// order.
package mergeop
