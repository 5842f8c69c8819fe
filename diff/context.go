package diff

// DefaultLocatorThreshold is the context locator's minimum confidence score
// when no caller-supplied threshold is given (spec §9, Open Question 2).
const DefaultLocatorThreshold = 1.5

// contextCandidate is one candidate sub-range of a larger document that
// might correspond to a diff's captured source (spec §4.2).
type contextCandidate struct {
	start, end int // document line indices, inclusive
	score      float64
}

// applyWithLocator implements the context locator (spec §4.2): it scans
// document for the dual-context anchors (preceding_context/
// following_context), scores each candidate sub-range, and applies the
// diff's operations to the winning sub-range before splicing the result
// back into document.
func applyWithLocator(document string, d Diff, threshold float64) (string, error) {
	meta := d.Metadata
	if meta.SourceTotalLines <= 0 {
		return "", &SectionNotFoundError{
			PrecedingContext: meta.PrecedingContext,
			FollowingContext: meta.FollowingContext,
		}
	}

	docLines := splitLines(document)
	var srcLines []string
	if meta.SourceContent != nil {
		srcLines = splitLines(*meta.SourceContent)
	}

	candidates := findCandidates(docLines, srcLines, meta)

	best, bestScore := topCandidates(candidates)
	if len(best) == 0 || bestScore < threshold {
		return "", &SectionNotFoundError{
			PrecedingContext: meta.PrecedingContext,
			FollowingContext: meta.FollowingContext,
		}
	}

	chosen, ambiguous := chooseCandidate(best, meta.SourceStartLine)
	if ambiguous {
		return "", &AmbiguousMatchError{Candidates: len(best), Score: bestScore}
	}

	startOff := len(joinLines(docLines[:chosen.start]))
	endOff := startOff + len(joinLines(docLines[chosen.start:chosen.end+1]))

	section := document[startOff:endOff]
	result, err := apply(section, d.Ops)
	if err != nil {
		return "", err
	}
	return document[:startOff] + result + document[endOff:], nil
}

// findCandidates locates every (start, end) line range whose first line
// matches PrecedingContext and whose last line (span lines later) matches
// FollowingContext, and scores each one per spec §4.2 step 3.
func findCandidates(docLines, srcLines []string, meta *Metadata) []contextCandidate {
	span := meta.SourceTotalLines
	var out []contextCandidate

	for i := 0; i+span-1 < len(docLines); i++ {
		if lineText(docLines[i]) != meta.PrecedingContext {
			continue
		}
		end := i + span - 1
		if lineText(docLines[end]) != meta.FollowingContext {
			continue
		}

		// Base credit for the candidate existing at all: both anchor lines
		// already matched to get here (spec §4.2 step 2-3).
		score := 1.0
		if meta.SourceStartLine != nil && *meta.SourceStartLine == i {
			score += 1.0
		}

		if span > 2 && len(srcLines) == span {
			matched := 0
			for k := 1; k < span-1; k++ {
				if lineText(docLines[i+k]) == lineText(srcLines[k]) {
					matched++
				}
			}
			score += float64(matched) / float64(span-2)
		} else {
			// No intermediate lines to compare (span <= 2, or the source
			// snapshot is unavailable): the two anchors matching is all the
			// evidence there is, so credit it in full.
			score += 1.0
		}

		out = append(out, contextCandidate{start: i, end: end, score: score})
	}
	return out
}

func topCandidates(cands []contextCandidate) ([]contextCandidate, float64) {
	var best []contextCandidate
	bestScore := -1.0
	for _, c := range cands {
		switch {
		case c.score > bestScore:
			bestScore = c.score
			best = []contextCandidate{c}
		case c.score == bestScore:
			best = append(best, c)
		}
	}
	return best, bestScore
}

// chooseCandidate implements spec §4.2 step 4's tie-break: prefer the
// candidate whose start line is closest to the source_start_line hint; if
// no hint is available and more than one candidate remains tied, the match
// is ambiguous.
func chooseCandidate(best []contextCandidate, hint *int) (chosen contextCandidate, ambiguous bool) {
	if len(best) == 1 {
		return best[0], false
	}
	if hint == nil {
		return contextCandidate{}, true
	}
	chosen = best[0]
	bestDist := absInt(chosen.start - *hint)
	for _, c := range best[1:] {
		if d := absInt(c.start - *hint); d < bestDist {
			chosen = c
			bestDist = d
		}
	}
	return chosen, false
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
