package libdiff

import (
	"github.com/csd-format/go-csd/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSequence appends the changes between two sequences to dst.
//
// The key lists are aligned with a rune diff, one rune per distinct key.
// Keys on both sides of the alignment are compared recursively; a key
// removed at one position and inserted at another is a Move.
func DiffSequence(dst []Change, path string, from, to *ir.Sequence) []Change {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, from)
	toRunes := mapKeysTo(keyMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var local []Change
	removed := map[string]int{}
	added := map[string]int{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				key := runeMap[r]
				v := from.Get(key).Value
				if j, ok := added[key]; ok {
					local[j].Op = Move
					local[j].From = &v
					continue
				}
				removed[key] = len(local)
				local = append(local, Change{Op: Remove, Path: fieldPath(path, key), From: &v})
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				key := runeMap[r]
				local = diffValue(local, fieldPath(path, key), from.Get(key).Value, to.Get(key).Value)
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				key := runeMap[r]
				v := to.Get(key).Value
				if j, ok := removed[key]; ok {
					local[j].Op = Move
					local[j].To = &v
					continue
				}
				added[key] = len(local)
				local = append(local, Change{Op: Add, Path: fieldPath(path, key), To: &v})
			}
		}
	}
	return append(dst, local...)
}

func mapKeysTo(m map[string]rune, im map[rune]string, s *ir.Sequence) []rune {
	keys := s.Keys()
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}
