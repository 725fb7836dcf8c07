package libdiff

import (
	"strconv"
	"strings"

	"github.com/csd-format/go-csd/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex appends the changes between two arrays to dst.
//
// Each element is summarized as <type>-<value> for scalars and <type> for
// containers, and the summaries are aligned with a rune diff. Aligned
// containers are compared recursively. A removal directly followed by an
// insertion at the same index is a Replace. Paths of removed and aligned
// elements use indices in from; inserted elements use indices in to.
func DiffArrayByIndex(dst []Change, path string, from, to *ir.Array) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	delIndex := -1
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				v := *from.At(fi)
				delIndex = len(dst)
				dst = append(dst, Change{Op: Remove, Path: indexPath(path, fi), From: &v})
				fi++
			}
		case diffpatch.DiffEqual:
			delIndex = -1
			for range n {
				dst = diffValue(dst, indexPath(path, fi), *from.At(fi), *to.At(ti))
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				v := *to.At(ti)
				if delIndex >= 0 && dst[delIndex].Path == indexPath(path, ti) {
					dst[delIndex].Op = Replace
					dst[delIndex].To = &v
				} else {
					dst = append(dst, Change{Op: Add, Path: indexPath(path, ti), To: &v})
				}
				delIndex = -1
				ti++
			}
		}
	}
	return dst
}

func mapValues(m map[string]rune, a *ir.Array) []rune {
	rs := make([]rune, a.Len())
	for i, v := range a.All() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(v ir.Value) string {
	switch v.Type {
	case ir.SequenceType, ir.ArrayType, ir.NilType:
		return v.Type.String()
	case ir.BoolType:
		return v.Type.String() + "-" + strconv.FormatBool(v.Bool)
	case ir.StringType:
		if strings.Contains(v.String, "\n") {
			return v.Type.String() + "/m"
		}
		return v.Type.String() + "-" + v.String
	case ir.IntType:
		return v.Type.String() + "-" + strconv.FormatInt(v.Int, 10)
	case ir.FloatType:
		return v.Type.String() + "-" + strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		panic("type")
	}
}
