package token

import "fmt"

// Pos is a source position. Line is 1-based, Col is 0-based and counts
// characters, and Offset is the byte offset into the source.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func (p Pos) LineCol() (int, int) {
	return p.Line, p.Col
}
