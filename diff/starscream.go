package diff

// starscream implements the Starscream algorithm (spec §4.3.3): a
// line-unit diff. Lines are aligned via lineLCS; matched lines become
// Retain, and a run of consecutive unmatched lines on either side is
// folded into one Delete and/or one Insert.
func starscream(source, destination string) []Op {
	return alignLines(splitLines(source), splitLines(destination), false)
}
