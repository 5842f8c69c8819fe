package diff

// zoom implements the Zoom algorithm (spec §4.3.1): bulk common
// prefix/suffix trimming over character units, O(n). It is the fastest,
// coarsest generator, and the one every other generator falls back to on
// verification failure (spec §4.3.7).
func zoom(source, destination string) []Op {
	s := clusters(source)
	d := clusters(destination)

	p := commonPrefixLen(s, d)
	suf := commonSuffixLen(s[p:], d[p:])

	var ops []Op
	if p > 0 {
		ops = append(ops, Retain(p))
	}
	if midDel := len(s) - p - suf; midDel > 0 {
		ops = append(ops, Delete(midDel))
	}
	if midIns := join(d[p : len(d)-suf]); midIns != "" {
		ops = append(ops, Insert(midIns))
	}
	if suf > 0 {
		ops = append(ops, Retain(suf))
	}
	return ops
}
