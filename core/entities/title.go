package entities

import "strings"

// titleStopwords are segments of a page title that never name the
// company ("Home | Twinn Health").
var titleStopwords = map[string]struct{}{
	"home": {}, "homepage": {}, "welcome": {}, "official": {}, "website": {},
	"site": {}, "page": {}, "index": {}, "login": {}, "blog": {},
}

// titleSide is one segment of a split page title.
type titleSide struct {
	text      string
	words     int
	allProper bool
}

// nameFromTitle derives a company-name guess from a page title.
// Titles like "Acme Robotics | Home" split on their separator; the
// side made entirely of proper nouns wins, boilerplate-only sides are
// discarded, and remaining ties go to the side with fewer words.
func nameFromTitle(title string) string {
	segments := splitTitle(title)
	if len(segments) == 0 {
		return ""
	}
	if len(segments) == 1 {
		return leadingProperPhrase(segments[0])
	}

	var sides []titleSide
	for _, seg := range segments {
		toks := strings.Fields(seg)
		if len(toks) == 0 || boilerplateSide(toks) {
			continue
		}
		sides = append(sides, titleSide{
			text:      joinTrimmed(toks),
			words:     len(toks),
			allProper: allProperSide(toks),
		})
	}
	if len(sides) == 0 {
		return ""
	}
	if len(sides) == 1 {
		return sides[0].text
	}

	pool := sides
	if proper := properSides(sides); len(proper) == 1 {
		return proper[0].text
	} else if len(proper) > 1 {
		pool = proper
	}

	// fewer words reads as a brand, more words as a tagline
	best := pool[0]
	for _, s := range pool[1:] {
		if s.words < best.words {
			best = s
		}
	}
	return best.text
}

// splitTitle breaks a title on "|", em/en dashes, and spaced hyphens.
func splitTitle(title string) []string {
	s := strings.NewReplacer(" - ", "|", "—", "|", "–", "|").Replace(title)
	var out []string
	for _, seg := range strings.Split(s, "|") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// boilerplateSide reports whether every token is a title stopword.
func boilerplateSide(toks []string) bool {
	for _, tok := range toks {
		l := lowerTok(tok)
		if _, ok := titleStopwords[l]; ok {
			continue
		}
		if _, ok := nameStopwords[l]; ok {
			continue
		}
		return false
	}
	return true
}

// allProperSide reports whether a segment reads as a proper-noun
// phrase, allowing lowercase connectors as in "Bank of America".
func allProperSide(toks []string) bool {
	proper := 0
	for _, tok := range toks {
		if properNameToken(tok) {
			proper++
			continue
		}
		if _, ok := connectorStopwords[lowerTok(tok)]; ok {
			continue
		}
		return false
	}
	return proper > 0
}

func properSides(sides []titleSide) []titleSide {
	var out []titleSide
	for _, s := range sides {
		if s.allProper {
			out = append(out, s)
		}
	}
	return out
}

// leadingProperPhrase handles separator-free titles: the leading
// proper-noun run when there is one, otherwise a short title verbatim.
func leadingProperPhrase(segment string) string {
	toks := strings.Fields(segment)
	if len(toks) == 0 || boilerplateSide(toks) {
		return ""
	}
	start := 0
	for start < len(toks) && isStopword(toks[start]) {
		start++
	}
	var run []string
	for _, tok := range toks[start:] {
		if !properNameToken(tok) {
			break
		}
		run = append(run, trimPunct(tok))
	}
	if len(run) > 0 {
		return strings.Join(run, " ")
	}
	if len(toks) <= 4 {
		return joinTrimmed(toks)
	}
	return ""
}

func joinTrimmed(toks []string) string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if t := trimPunct(tok); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}
