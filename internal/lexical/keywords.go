package lexical

import (
	"sort"
	"strings"
)

// DefaultTopKeywords is the keyword cap used when callers pass topN <= 0.
const DefaultTopKeywords = 20

// lemmaExceptions maps irregular plurals and terms the suffix rules would
// otherwise mangle.
var lemmaExceptions = map[string]string{
	"analyses":   "analysis",
	"data":       "data",
	"media":      "media",
	"series":     "series",
	"species":    "species",
	"men":        "man",
	"women":      "woman",
	"children":   "child",
	"people":     "people",
	"leaves":     "leaf",
	"lives":      "life",
	"sales":      "sales",
	"aws":        "aws",
	"kubernetes": "kubernetes",
	"devops":     "devops",
	"postgres":   "postgres",
	"css":        "css",
	"analytics":  "analytics",
	"statistics": "statistics",
	"logistics":  "logistics",
}

// Lemmatize reduces an already-normalized token to a singular base form using
// a small set of English plural rules. Verb inflections pass through
// unchanged, so "managed" and "manage" remain distinct terms.
func Lemmatize(token string) string {
	if base, ok := lemmaExceptions[token]; ok {
		return base
	}
	if len(token) <= 3 {
		return token
	}

	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "xes"), strings.HasSuffix(token, "zes"),
		strings.HasSuffix(token, "ches"), strings.HasSuffix(token, "shes"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "ss"), strings.HasSuffix(token, "us"),
		strings.HasSuffix(token, "is"):
		return token
	case strings.HasSuffix(token, "es") && len(token) > 4:
		return token[:len(token)-1]
	case strings.HasSuffix(token, "s"):
		return token[:len(token)-1]
	}

	return token
}

// ExtractKeywords returns up to topN salient terms from text, ranked by
// frequency with ties broken by first occurrence. Stopwords are removed and
// tokens are lemmatized before counting. A topN <= 0 falls back to
// DefaultTopKeywords.
func ExtractKeywords(text string, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	normalized, err := Normalize(text)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	for _, token := range Tokenize(normalized) {
		if IsStopword(token) {
			continue
		}
		lemma := Lemmatize(token)
		if lemma == "" || IsStopword(lemma) {
			continue
		}
		if _, seen := counts[lemma]; !seen {
			firstSeen[lemma] = order
		}
		counts[lemma]++
		order++
	}

	keywords := make([]string, 0, len(counts))
	for k := range counts {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		a, b := keywords[i], keywords[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstSeen[a] < firstSeen[b]
	})

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords, nil
}
