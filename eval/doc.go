// Package eval evaluates expr-lang expressions over csd documents.
//
// The entries of a sequence root are the variables of an expression:
//
//	w, err := eval.Eval(doc.Root, "window.width * 2")
//
// The functions getpath, haspath and listpath take paths in the syntax of
// ir.Lookup and ir.List, so entries whose keys are not expression
// identifiers remain reachable:
//
//	eval.Eval(doc.Root, `getpath("$.en_US['play again']")`)
//
// ExpandString and ExpandTree substitute $[expr] references in strings.
package eval
