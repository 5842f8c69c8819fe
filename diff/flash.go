package diff

// flash implements the Flash algorithm (spec §4.3.2): the same bulk
// prefix/suffix shape as Zoom, but the initial trim walks whole lines
// before falling back to character-level trimming of the remaining middle
// span. On inputs where no common boundary falls mid-line, this produces
// the identical character-level result as Zoom; when a boundary falls
// mid-line, the line-first pass can stop short of (or overshoot, for the
// suffix side) the true maximal character boundary that Zoom would find,
// since it only ever commits to whole matched lines before handing the
// remainder to the character trimmer.
func flash(source, destination string) []Op {
	srcLines := splitLines(source)
	dstLines := splitLines(destination)

	lp := 0
	for lp < len(srcLines) && lp < len(dstLines) && srcLines[lp] == dstLines[lp] {
		lp++
	}

	maxSuf := min(len(srcLines)-lp, len(dstLines)-lp)
	ls := 0
	for ls < maxSuf &&
		srcLines[len(srcLines)-1-ls] == dstLines[len(dstLines)-1-ls] {
		ls++
	}

	prefixText := joinLines(srcLines[:lp])
	suffixText := joinLines(srcLines[len(srcLines)-ls:])
	midSource := joinLines(srcLines[lp : len(srcLines)-ls])
	midDest := joinLines(dstLines[lp : len(dstLines)-ls])

	// Character-level trim of the (line-aligned) middle span.
	ms := clusters(midSource)
	md := clusters(midDest)
	cp := commonPrefixLen(ms, md)
	csuf := commonSuffixLen(ms[cp:], md[cp:])

	p := clusterLen(prefixText) + cp
	suf := csuf + clusterLen(suffixText)

	var ops []Op
	if p > 0 {
		ops = append(ops, Retain(p))
	}
	if midDel := len(ms) - cp - csuf; midDel > 0 {
		ops = append(ops, Delete(midDel))
	}
	if midIns := join(md[cp : len(md)-csuf]); midIns != "" {
		ops = append(ops, Insert(midIns))
	}
	if suf > 0 {
		ops = append(ops, Retain(suf))
	}
	return ops
}
