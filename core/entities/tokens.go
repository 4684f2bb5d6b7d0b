package entities

import (
	"strings"
	"unicode"
)

// nameStopwords never start a name or company-name run.
var nameStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "our": {}, "we": {}, "your": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "meet": {}, "about": {}, "team": {},
	"contact": {}, "join": {}, "why": {}, "how": {}, "what": {},
	"in": {}, "at": {}, "on": {}, "of": {}, "and": {}, "with": {}, "by": {},
	"from": {}, "to": {}, "for": {}, "is": {}, "was": {}, "are": {},
}

// connectorStopwords may appear lowercase inside an otherwise
// proper-noun phrase ("Bank of America").
var connectorStopwords = map[string]struct{}{
	"of": {}, "and": {}, "the": {}, "for": {}, "to": {}, "a": {}, "an": {}, "&": {},
}

// roleWords are job titles, not name parts.
var roleWords = map[string]struct{}{
	"founder": {}, "founders": {}, "co-founder": {}, "co-founders": {},
	"cofounder": {}, "ceo": {}, "cto": {}, "coo": {}, "cfo": {},
	"president": {}, "chief": {}, "executive": {}, "officer": {},
	"director": {}, "partner": {},
}

// honorifics are skipped inside a name run without ending it.
var honorifics = map[string]struct{}{
	"dr": {}, "mr": {}, "mrs": {}, "ms": {}, "prof": {},
}

const (
	minNameTokens = 2
	maxNameTokens = 4
)

// trimPunct strips leading and trailing punctuation from a token,
// keeping interior hyphens and apostrophes.
func trimPunct(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func lowerTok(tok string) string {
	return strings.ToLower(trimPunct(tok))
}

// properNameToken reports whether a token can be part of a person or
// company name: leading capital, at least one lowercase rune, no
// digits, and not a job title. All-caps tokens read as acronyms or
// section headers and are rejected.
func properNameToken(tok string) bool {
	t := trimPunct(tok)
	if t == "" {
		return false
	}
	if _, ok := roleWords[strings.ToLower(t)]; ok {
		return false
	}
	runes := []rune(t)
	if !unicode.IsUpper(runes[0]) || len(runes) < 2 {
		return false
	}
	hasLower := false
	for _, r := range runes[1:] {
		if unicode.IsDigit(r) {
			return false
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return hasLower
}

func isStopword(tok string) bool {
	_, ok := nameStopwords[lowerTok(tok)]
	return ok
}

func isHonorific(tok string) bool {
	_, ok := honorifics[lowerTok(tok)]
	return ok
}

// separatorToken is punctuation standing alone between words, like the
// dash in "Jane Doe — CEO".
func separatorToken(tok string) bool {
	return trimPunct(tok) == ""
}

func connectorToken(tok string) bool {
	l := lowerTok(tok)
	return l == "and" || l == "&" || separatorToken(tok)
}

func validNameRun(run []string) bool {
	return len(run) >= minNameTokens && len(run) <= maxNameTokens && !isStopword(run[0])
}

// namesAfter collects the comma/and-separated proper-noun runs that
// follow an attribution phrase ("founded by Jane Doe and John Roe"),
// stopping at the first token that is neither a name part nor a
// connector.
func namesAfter(toks []string, start int) []string {
	var names []string
	var run []string
	flush := func() {
		if validNameRun(run) {
			names = append(names, strings.Join(run, " "))
		}
		run = nil
	}
	for i := start; i < len(toks); i++ {
		tok := toks[i]
		if connectorToken(tok) {
			if len(run) == 0 && len(names) == 0 {
				break
			}
			flush()
			continue
		}
		if isHonorific(tok) {
			continue
		}
		if !properNameToken(tok) {
			break
		}
		run = append(run, trimPunct(tok))
		// a trailing comma or period closes the current name
		if t := tok[len(tok)-1]; t == ',' || t == '.' || t == ';' {
			flush()
		}
	}
	flush()
	return names
}

// nameBefore collects the proper-noun run immediately preceding a role
// word, as in "Jane Doe, Founder".
func nameBefore(toks []string, at int) string {
	var run []string
	for i := at - 1; i >= 0 && len(run) < maxNameTokens; i-- {
		tok := toks[i]
		if separatorToken(tok) {
			if len(run) == 0 {
				continue
			}
			break
		}
		if isHonorific(tok) {
			break
		}
		if !properNameToken(tok) || isStopword(tok) {
			break
		}
		run = append([]string{trimPunct(tok)}, run...)
	}
	if !validNameRun(run) {
		return ""
	}
	return strings.Join(run, " ")
}

// nameAfterRole collects the proper-noun run directly following a role
// word, as in "CEO Jane Doe".
func nameAfterRole(toks []string, start int) string {
	var run []string
	for i := start; i < len(toks) && len(run) < maxNameTokens; i++ {
		tok := toks[i]
		if separatorToken(tok) {
			if len(run) == 0 {
				continue
			}
			break
		}
		if isHonorific(tok) {
			continue
		}
		if !properNameToken(tok) {
			break
		}
		run = append(run, trimPunct(tok))
		if t := tok[len(tok)-1]; t == ',' || t == '.' || t == ';' {
			break
		}
	}
	if !validNameRun(run) {
		return ""
	}
	return strings.Join(run, " ")
}

// properRuns returns the maximal proper-noun runs of a sentence after
// trimming leading stopwords, keeping runs of plausible name length.
func properRuns(toks []string) [][]string {
	var runs [][]string
	var run []string
	flush := func() {
		for len(run) > 0 && isStopword(run[0]) {
			run = run[1:]
		}
		if len(run) >= minNameTokens && len(run) <= maxNameTokens {
			runs = append(runs, run)
		}
		run = nil
	}
	for _, tok := range toks {
		if properNameToken(tok) {
			run = append(run, trimPunct(tok))
			continue
		}
		flush()
	}
	flush()
	return runs
}
