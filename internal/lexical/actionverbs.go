package lexical

import "strings"

// actionVerbs holds base forms of verbs that signal accomplishment-oriented
// resume writing.
var actionVerbs = map[string]struct{}{}

func init() {
	for _, w := range actionVerbList {
		actionVerbs[w] = struct{}{}
	}
}

// irregularVerbs maps common irregular past forms to their base verb.
var irregularVerbs = map[string]string{
	"led":     "lead",
	"built":   "build",
	"wrote":   "write",
	"written": "write",
	"grew":    "grow",
	"grown":   "grow",
	"drove":   "drive",
	"driven":  "drive",
	"ran":     "run",
	"oversaw": "oversee",
}

// CountActionVerbs returns the number of action-verb occurrences in the raw
// resume text. Regular inflections ("managed", "managing", "manages") count
// toward their base verb.
func CountActionVerbs(text string) (int, error) {
	normalized, err := Normalize(text)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, token := range Tokenize(normalized) {
		if isActionVerb(token) {
			count++
		}
	}
	return count, nil
}

func isActionVerb(token string) bool {
	if _, ok := actionVerbs[token]; ok {
		return true
	}
	if base, ok := irregularVerbs[token]; ok {
		_, hit := actionVerbs[base]
		return hit
	}
	for _, candidate := range verbStems(token) {
		if _, ok := actionVerbs[candidate]; ok {
			return true
		}
	}
	return false
}

// verbStems generates plausible base forms for a regularly inflected verb:
// suffix removal, silent-e restoration, and undoubling of final consonants.
func verbStems(token string) []string {
	var stems []string
	add := func(stem string) {
		if len(stem) >= 3 {
			stems = append(stems, stem)
			stems = append(stems, stem+"e")
			if len(stem) >= 4 && stem[len(stem)-1] == stem[len(stem)-2] {
				stems = append(stems, stem[:len(stem)-1])
			}
		}
	}
	switch {
	case strings.HasSuffix(token, "ing"):
		add(token[:len(token)-3])
	case strings.HasSuffix(token, "ied"):
		add(token[:len(token)-3] + "y")
	case strings.HasSuffix(token, "ed"):
		add(token[:len(token)-2])
	case strings.HasSuffix(token, "ies"):
		add(token[:len(token)-3] + "y")
	case strings.HasSuffix(token, "es"):
		add(token[:len(token)-2])
	case strings.HasSuffix(token, "s"):
		add(token[:len(token)-1])
	}
	return stems
}

var actionVerbList = []string{
	"achieve", "administer", "analyze", "architect", "automate",
	"build", "collaborate", "conduct", "configure", "coordinate",
	"create", "define", "deliver", "deploy", "design", "develop",
	"direct", "drive", "engineer", "enhance", "establish", "evaluate",
	"execute", "expand", "facilitate", "found", "generate", "guide",
	"implement", "improve", "increase", "initiate", "integrate",
	"launch", "lead", "maintain", "manage", "mentor", "migrate",
	"modernize", "monitor", "negotiate", "optimize", "orchestrate",
	"organize", "oversee", "own", "partner", "pioneer", "plan",
	"present", "produce", "propose", "reduce", "refactor", "research",
	"resolve", "scale", "ship", "simplify", "spearhead", "streamline",
	"supervise", "support", "test", "train", "transform", "troubleshoot",
	"write",
}
