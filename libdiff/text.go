package libdiff

import (
	"strings"

	"github.com/csd-format/go-csd/encode"
	"github.com/csd-format/go-csd/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines renders both trees and diffs the renderings line by line.
func Lines(from, to *ir.Node, opts ...encode.EncodeOption) ([]diffpatch.Diff, error) {
	a, err := encode.EncodeBytes(from, opts...)
	if err != nil {
		return nil, err
	}
	b, err := encode.EncodeBytes(to, opts...)
	if err != nil {
		return nil, err
	}
	diffCfg := diffpatch.New()
	ac, bc, lines := diffCfg.DiffLinesToChars(string(a)+"\n", string(b)+"\n")
	diffs := diffCfg.DiffMain(ac, bc, false)
	return diffCfg.DiffCharsToLines(diffs, lines), nil
}

// Text renders a line diff of the two trees, each line prefixed with
// "-", "+" or " ".
func Text(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	diffs, err := Lines(from, to, opts...)
	if err != nil {
		return "", err
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
		}
	}
	return buf.String(), nil
}

// Pretty renders a character diff of the two trees with terminal colors.
func Pretty(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	a, err := encode.EncodeBytes(from, opts...)
	if err != nil {
		return "", err
	}
	b, err := encode.EncodeBytes(to, opts...)
	if err != nil {
		return "", err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(a), string(b), true)
	return diffCfg.DiffPrettyText(diffCfg.DiffCleanupSemantic(diffs)), nil
}
