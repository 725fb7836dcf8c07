// Package csd matches csd documents against patterns.
//
// Parsing lives in the parse package, the document model in ir, and
// rendering in encode:
//
//	doc, err := parse.ParseFile("game.csd")
//	pattern, _ := parse.ParseString(`want { window { title: nil } }`)
//	if csd.Match(doc.Root, pattern.Root) {
//		fmt.Println(encode.MustString(csd.Trim(pattern.Root, doc.Root)))
//	}
package csd
