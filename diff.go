package mojifix

// Fix records one string leaf that differs between an original document and
// its repaired counterpart.
type Fix struct {
	Path     Path
	Original string
	Repaired string
}

// Diff walks original and repaired in lock-step and returns a Fix for every
// string leaf whose content differs, in document order.
//
// Structural drift is tolerated: object keys missing from either side, array
// elements beyond the shorter length and kind mismatches are skipped.
func Diff(original, repaired Value) []Fix {
	return diffInto(nil, nil, original, repaired)
}

func diffInto(dst []Fix, at Path, a, b Value) []Fix {
	switch {
	case a.kind == KindObject && b.kind == KindObject:
		index := make(map[string]int, len(b.obj))
		for i := len(b.obj) - 1; i >= 0; i-- {
			index[b.obj[i].Key] = i
		}
		for _, m := range a.obj {
			j, ok := index[m.Key]
			if !ok {
				continue
			}
			dst = diffInto(dst, at.Key(m.Key), m.Value, b.obj[j].Value)
		}
	case a.kind == KindArray && b.kind == KindArray:
		n := min(len(a.arr), len(b.arr))
		for i := 0; i < n; i++ {
			dst = diffInto(dst, at.Index(i), a.arr[i], b.arr[i])
		}
	case a.kind == KindString && b.kind == KindString:
		if a.s != b.s {
			dst = append(dst, Fix{Path: at, Original: a.s, Repaired: b.s})
		}
	}
	return dst
}
