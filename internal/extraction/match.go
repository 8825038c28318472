package extraction

import (
	"regexp"
	"strings"
)

// containsKeyword reports whether keyword occurs in text, case-insensitively,
// delimited by non-alphanumeric boundaries. Plain substring containment would
// let "java" fire inside "JavaScript" and "cs" inside "physics", so matches
// must start and end at word boundaries. Multi-word keywords match across
// their internal spaces as written.
func containsKeyword(text, keyword string) bool {
	lowerText := strings.ToLower(text)
	lowerKeyword := strings.ToLower(keyword)

	for start := 0; ; {
		idx := strings.Index(lowerText[start:], lowerKeyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(lowerKeyword)

		leftOK := idx == 0 || !isWordByte(lowerText[idx-1])
		rightOK := end == len(lowerText) || !isWordByte(lowerText[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

// firstMatch returns the value of the first rule whose keyword set matches the
// text. Later matching rules are ignored even if also present.
func firstMatch(text string, rules []keywordRule) (string, bool) {
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if containsKeyword(text, keyword) {
				return rule.value, true
			}
		}
	}
	return "", false
}

// allMatches returns the values of every matching rule, in table order. Each
// rule contributes at most once regardless of how many of its keywords match.
func allMatches(text string, rules []keywordRule) []string {
	var values []string
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if containsKeyword(text, keyword) {
				values = append(values, rule.value)
				break
			}
		}
	}
	return values
}

var (
	// institutionPreposition locates candidate anchors for the school name.
	institutionPreposition = regexp.MustCompile(`(?i)\b(?:at|from|in)\b`)
	// institutionTail matches the school name immediately after an anchor:
	// up to four words ending in "university" or "college".
	institutionTail = regexp.MustCompile(`(?i)^\s+((?:[a-z][a-z'.&-]*\s+){0,4}?(?:university|college))\b`)
)

// matchInstitution extracts a school name of the form
// "(at|from|in) <words> (university|college)". The last preposition wins so
// that "in Computer Science from Stanford University" yields
// "Stanford University" rather than the whole span. Original casing is
// preserved. Absence of a match returns the empty string.
func matchInstitution(text string) string {
	anchors := institutionPreposition.FindAllStringIndex(text, -1)
	for i := len(anchors) - 1; i >= 0; i-- {
		tail := text[anchors[i][1]:]
		if m := institutionTail.FindStringSubmatch(tail); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
