package mojifix

// Walk returns a copy of v with every string leaf repaired using the default
// marker set.
func Walk(v Value) Value { return defaultRepairer.Walk(v) }

// CountFlagged counts string leaves of v that match a corruption heuristic
// under the default marker set.
func CountFlagged(v Value) int { return defaultRepairer.CountFlagged(v) }

// Walk returns a new document with the same shape as v in which every string
// leaf has been passed through Repair. Object keys are not touched and v is
// never modified.
func (r *Repairer) Walk(v Value) Value {
	switch v.kind {
	case KindString:
		return String(r.Repair(v.s))
	case KindArray:
		out := make([]Value, len(v.arr))
		for i, e := range v.arr {
			out[i] = r.Walk(e)
		}
		return Value{kind: KindArray, arr: out}
	case KindObject:
		out := make([]Member, len(v.obj))
		for i, m := range v.obj {
			out[i] = Member{Key: m.Key, Value: r.Walk(m.Value)}
		}
		return Value{kind: KindObject, obj: out}
	default:
		return v
	}
}

// CountFlagged returns how many string leaves of v Classify reports as
// anything other than Clean. Keys are not inspected.
func (r *Repairer) CountFlagged(v Value) int {
	switch v.kind {
	case KindString:
		if r.Classify(v.s) != Clean {
			return 1
		}
		return 0
	case KindArray:
		n := 0
		for _, e := range v.arr {
			n += r.CountFlagged(e)
		}
		return n
	case KindObject:
		n := 0
		for _, m := range v.obj {
			n += r.CountFlagged(m.Value)
		}
		return n
	default:
		return 0
	}
}
