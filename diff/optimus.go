package diff

// optimus implements the Optimus algorithm (spec §4.3.4): the same
// line-LCS backbone as Starscream, but a run of consecutive unmatched
// lines is never batched — every removed line gets its own Delete and
// every added line its own Insert, producing the highest operation count
// and the finest-grained edit history of the five generators.
func optimus(source, destination string) []Op {
	return alignLines(splitLines(source), splitLines(destination), true)
}
