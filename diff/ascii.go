package diff

import "strings"

// The canonical ASCII-codec alphabet (spec §4.5). Emit always uses these;
// Parse also accepts the legacy single-character alphabet below for
// compatibility with patches produced by older tooling.
const (
	prefixRetain = "📎 "
	prefixDelete = "❌ "
	prefixInsert = "✅ "

	legacyPrefixRetain = "= "
	legacyPrefixDelete = "- "
	legacyPrefixInsert = "+ "
)

// EmitASCII renders a diff as a line-oriented ASCII patch (spec §4.5 Emit).
// The codec only represents whole-line operations, so EmitASCII recomputes
// destination by applying d to source and re-derives a line-aligned
// decomposition via the same line-LCS backbone Starscream and Megatron use,
// rather than walking d.Ops directly — this keeps the rendering well-formed
// even for a Zoom/Flash-generated diff whose operations don't align to line
// boundaries.
//
// lineText strips every line's own terminator before emission, so on its
// own the rendered text can't tell a source/destination that ends in "\n"
// apart from one that doesn't — ParseASCII would have to guess. EmitASCII
// resolves this the same way the codec already represents a genuine blank
// line inside a run (spec §4.5 Parse step 2): once the true last line of a
// stream has been written, if that stream's own text actually ended in
// "\n", emit one more blank line of that stream's kind as a continuation
// marker. That marker becomes the stream's new last contributor, so
// lineTerminator's existing per-stream "omit at the last contributor"
// rule only fires where a terminator is genuinely absent.
func EmitASCII(d Diff, source string) (string, error) {
	destination, err := apply(source, d.Ops)
	if err != nil {
		return "", err
	}

	srcLines := splitLines(source)
	dstLines := splitLines(destination)
	anchors := lineLCS(srcLines, dstLines)

	srcHasNL := strings.HasSuffix(source, "\n")
	dstHasNL := strings.HasSuffix(destination, "\n")
	srcMarked, dstMarked := false, false

	var b strings.Builder
	first := true
	emit := func(prefix, content string) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(prefix)
		b.WriteString(content)
	}
	emitRun := func(prefix string, lines []string) {
		for _, line := range lines {
			emit(prefix, lineText(line))
		}
	}
	markSrc := func(covered int) {
		if srcMarked || covered != len(srcLines) {
			return
		}
		srcMarked = true
		if srcHasNL {
			emit(prefixDelete, "")
		}
	}
	markDst := func(covered int) {
		if dstMarked || covered != len(dstLines) {
			return
		}
		dstMarked = true
		if dstHasNL {
			emit(prefixInsert, "")
		}
	}

	prevI, prevJ := 0, 0
	for _, anc := range anchors {
		emitRun(prefixDelete, srcLines[prevI:anc.I])
		emitRun(prefixInsert, dstLines[prevJ:anc.J])
		emitRun(prefixRetain, srcLines[anc.I:anc.I+1])
		markSrc(anc.I + 1)
		markDst(anc.J + 1)
		prevI, prevJ = anc.I+1, anc.J+1
	}
	emitRun(prefixDelete, srcLines[prevI:])
	markSrc(len(srcLines))
	emitRun(prefixInsert, dstLines[prevJ:])
	markDst(len(dstLines))

	return b.String(), nil
}

type asciiLine struct {
	kind    Operation
	content string
}

// ParseASCII parses an ASCII patch produced by EmitASCII (or a compatible
// legacy-prefix patch) back into a Diff, reconstructing metadata from the
// patch content alone (spec §4.5 Parse).
func ParseASCII(text string) (Diff, error) {
	if text == "" {
		return Diff{}, &EmptyPatchError{}
	}

	rawLines := strings.Split(text, "\n")
	lines := make([]asciiLine, 0, len(rawLines))

	for idx, raw := range rawLines {
		lineNo := idx + 1
		if raw == "" {
			if len(lines) == 0 {
				return Diff{}, &InvalidFormatError{Line: lineNo, Content: raw}
			}
			lines = append(lines, asciiLine{kind: lines[len(lines)-1].kind, content: ""})
			continue
		}

		kind, rest, ok := stripASCIIPrefix(raw)
		if !ok {
			runes := []rune(raw)
			if len(runes) < 2 {
				return Diff{}, &InvalidFormatError{Line: lineNo, Content: raw}
			}
			return Diff{}, &InvalidPrefixError{Line: lineNo, Prefix: string(runes[:2])}
		}
		lines = append(lines, asciiLine{kind: kind, content: rest})
	}

	ops := buildASCIIOps(lines)
	meta := reconstructASCIIMetadata(lines)
	return Diff{Ops: ops, Metadata: meta}, nil
}

func stripASCIIPrefix(raw string) (Operation, string, bool) {
	switch {
	case strings.HasPrefix(raw, prefixRetain):
		return OpRetain, raw[len(prefixRetain):], true
	case strings.HasPrefix(raw, prefixDelete):
		return OpDelete, raw[len(prefixDelete):], true
	case strings.HasPrefix(raw, prefixInsert):
		return OpInsert, raw[len(prefixInsert):], true
	case strings.HasPrefix(raw, legacyPrefixRetain):
		return OpRetain, raw[len(legacyPrefixRetain):], true
	case strings.HasPrefix(raw, legacyPrefixDelete):
		return OpDelete, raw[len(legacyPrefixDelete):], true
	case strings.HasPrefix(raw, legacyPrefixInsert):
		return OpInsert, raw[len(legacyPrefixInsert):], true
	default:
		return 0, "", false
	}
}

// lastStreamIndices returns the highest classified-line index contributing
// to source_content (retain/delete) and to destination_content
// (retain/insert). A shared Retain line terminates a stream only if it is
// that stream's own last contributor — source and destination end at
// different points whenever a trailing run on one side isn't mirrored on
// the other (e.g. an unterminated final source line that gets replaced by
// fresh destination lines), so the two indices must be tracked separately.
//
// This is never confused with a stream's last contributor *elsewhere* in
// the patch that isn't actually its stream's end: EmitASCII appends a
// blank continuation line of the owning kind immediately after a stream's
// true final line whenever that stream's text ends in "\n" (see EmitASCII),
// so the last Retain/Delete index is always genuinely source's last line,
// and the last Retain/Insert index is always genuinely destination's.
func lastStreamIndices(lines []asciiLine) (lastSource, lastDest int) {
	lastSource, lastDest = -1, -1
	for idx, l := range lines {
		switch l.kind {
		case OpRetain:
			lastSource, lastDest = idx, idx
		case OpDelete:
			lastSource = idx
		case OpInsert:
			lastDest = idx
		}
	}
	return lastSource, lastDest
}

// lineTerminator reports the terminator to use for a classified line when
// reconstructing either op text or metadata content (spec §4.5 step 3's
// terminator accounting, applied per-stream rather than per-patch so each
// of source_content/destination_content's own trailing-newline presence is
// recovered independently).
func lineTerminator(idx int, kind Operation, lastSource, lastDest int) string {
	switch kind {
	case OpRetain:
		if idx == lastSource && idx == lastDest {
			return ""
		}
	case OpDelete:
		if idx == lastSource {
			return ""
		}
	case OpInsert:
		if idx == lastDest {
			return ""
		}
	}
	return "\n"
}

// buildASCIIOps groups consecutive same-kind lines into runs and emits one
// operation per run.
func buildASCIIOps(lines []asciiLine) []Op {
	lastSource, lastDest := lastStreamIndices(lines)

	var ops []Op
	n := len(lines)
	i := 0
	for i < n {
		kind := lines[i].kind
		j := i
		var text strings.Builder
		count := 0
		for j < n && lines[j].kind == kind {
			piece := lines[j].content + lineTerminator(j, kind, lastSource, lastDest)
			text.WriteString(piece)
			count += clusterLen(piece)
			j++
		}
		switch kind {
		case OpRetain:
			ops = append(ops, Retain(count))
		case OpDelete:
			ops = append(ops, Delete(count))
		case OpInsert:
			ops = append(ops, Insert(text.String()))
		}
		i = j
	}
	return coalesce(ops)
}

// reconstructASCIIMetadata implements spec §4.5 step 4.
func reconstructASCIIMetadata(lines []asciiLine) *Metadata {
	lastSource, lastDest := lastStreamIndices(lines)
	joinKind := func(include func(Operation) bool) string {
		var b strings.Builder
		for idx, l := range lines {
			if !include(l.kind) {
				continue
			}
			b.WriteString(l.content)
			b.WriteString(lineTerminator(idx, l.kind, lastSource, lastDest))
		}
		return b.String()
	}

	isSource := func(k Operation) bool { return k == OpRetain || k == OpDelete }
	isDest := func(k Operation) bool { return k == OpRetain || k == OpInsert }

	src := joinKind(isSource)
	dst := joinKind(isDest)

	var preceding, following string
	firstRetain, lastRetain := -1, -1
	for idx, l := range lines {
		if l.kind == OpRetain {
			if firstRetain == -1 {
				firstRetain = idx
			}
			lastRetain = idx
		}
	}
	if firstRetain != -1 {
		preceding = lines[firstRetain].content
		following = lines[lastRetain].content
	}

	// isTerminatorMarker reports whether idx is the blank continuation line
	// EmitASCII appends after a stream's true last line to carry its
	// trailing-newline bit (see EmitASCII, lastStreamIndices): it contributes
	// nothing to line counts or to the source_start_line hint, only to
	// source_content/destination_content's reconstructed terminator.
	isTerminatorMarker := func(idx int, l asciiLine) bool {
		return l.content == "" && ((l.kind == OpDelete && idx == lastSource) || (l.kind == OpInsert && idx == lastDest))
	}

	var hint *int
	for idx, l := range lines {
		if l.kind == OpRetain || isTerminatorMarker(idx, l) {
			continue
		}
		i := idx
		hint = &i
		break
	}

	return &Metadata{
		SourceStartLine:    hint,
		SourceTotalLines:   len(splitLines(src)),
		PrecedingContext:   preceding,
		FollowingContext:   following,
		SourceContent:      &src,
		DestinationContent: &dst,
		AlgorithmUsed:      Megatron,
		DiffHash:           checksum(buildASCIIOps(lines)),
		ApplicationType:    RequiresFullSource,
	}
}
