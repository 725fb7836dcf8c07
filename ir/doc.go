// Package ir provides the in-memory tree for csd documents.
//
// # Overview
//
// A document is a tree of [Node] values. Each node has a key and a
// [Value], which is a tagged union of nil, int, float, boolean, string,
// [Array] and [Sequence]. A sequence is an ordered key-map: keys are
// unique within a sequence and entries keep the order in which their keys
// were first inserted. An array is an ordered list of values; array
// elements carry no keys.
//
// # Ownership
//
// Trees produced by parsing belong to a [Document], which holds the source
// buffer, the root node and the first diagnostic encountered. Nodes
// allocated through the Document's constructors are released together
// by [Document.Free]. Trees may also be built without a document using
// [NewNode] and the From* value constructors.
//
// # Equality and paths
//
// [Equal] and [EqualFunc] compare trees structurally. [Lookup] and [List]
// select values using a small path language such as "$.window.width" or
// "$.colors[1]".
//
// # JSON
//
// [MarshalJSON], [FromJSON] and [ToAny] convert between trees and JSON,
// which is how trees are handed to the json-patch and expression
// packages.
package ir
