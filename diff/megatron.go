package diff

// megatron implements the Megatron algorithm (spec §4.3.5): the same
// line-LCS backbone as Starscream, but each run of unmatched lines is
// checked for high intra-line similarity before being emitted. A
// Delete/Insert pair whose texts share more than half their character
// units as a common prefix+suffix is replaced by Zoom applied to just
// that region, producing a Retain/Delete/Insert/Retain micro-sequence
// that preserves the unchanged run inside the changed line(s). Megatron
// is the default algorithm (spec §6).
func megatron(source, destination string) []Op {
	srcLines := splitLines(source)
	dstLines := splitLines(destination)
	anchors := lineLCS(srcLines, dstLines)

	var ops []Op
	emitGap := func(delLines, insLines []string) {
		delText := joinLines(delLines)
		insText := joinLines(insLines)
		switch {
		case delText == "" && insText == "":
			return
		case delText == "":
			ops = append(ops, Insert(insText))
		case insText == "":
			ops = append(ops, Delete(clusterLen(delText)))
		case intraLineSimilar(delText, insText):
			ops = append(ops, zoom(delText, insText)...)
		default:
			ops = append(ops, Delete(clusterLen(delText)))
			ops = append(ops, Insert(insText))
		}
	}

	prevI, prevJ := 0, 0
	for _, anc := range anchors {
		emitGap(srcLines[prevI:anc.I], dstLines[prevJ:anc.J])
		ops = append(ops, Retain(clusterLen(srcLines[anc.I])))
		prevI, prevJ = anc.I+1, anc.J+1
	}
	emitGap(srcLines[prevI:], dstLines[prevJ:])

	return coalesceRetains(ops)
}

// intraLineSimilar reports whether a and b share more than half their
// character units as a common prefix plus common suffix, relative to the
// longer of the two.
func intraLineSimilar(a, b string) bool {
	ac := clusters(a)
	bc := clusters(b)
	p := commonPrefixLen(ac, bc)
	s := commonSuffixLen(ac[p:], bc[p:])
	longer := max(len(ac), len(bc))
	if longer == 0 {
		return false
	}
	return float64(p+s)/float64(longer) > 0.5
}
