package resolver

import (
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/ports"
)

var classTokenPattern = regexp.MustCompile(`\.([a-zA-Z0-9_-]+)`)

// matchSelectors returns the controls of the selector that best matches
// classes. The "root" entry never competes; ties keep the earlier selector.
func matchSelectors(classes []string, entries []ports.SelectorControls) (ports.SelectorControls, bool) {
	if len(classes) == 0 {
		return ports.SelectorControls{}, false
	}

	var best ports.SelectorControls
	bestScore := 0
	for _, entry := range entries {
		if entry.Selector == "root" {
			continue
		}
		if score := selectorScore(entry.Selector, classes); score > bestScore {
			best, bestScore = entry, score
		}
	}
	return best, bestScore > 0
}

// selectorScore rates how specifically selector targets an element carrying
// classes. Each comma-separated alternative scores independently and the best
// one counts. Within an alternative every .class token must be satisfied: an
// exact class is worth 2, a BEM child (token__x or token--x) is worth 1, and
// the number of tokens is added on top. Zero means no match.
func selectorScore(selector string, classes []string) int {
	score := 0
	for _, alternative := range strings.Split(selector, ",") {
		tokens := classTokenPattern.FindAllStringSubmatch(strings.TrimSpace(alternative), -1)
		if len(tokens) == 0 {
			continue
		}

		matched := 0
		for _, token := range tokens {
			points := tokenScore(token[1], classes)
			if points == 0 {
				matched = 0
				break
			}
			matched += points
		}

		if matched > 0 {
			score = max(score, matched+len(tokens))
		}
	}
	return score
}

func tokenScore(token string, classes []string) int {
	for _, class := range classes {
		if class == token {
			return 2
		}
		if strings.HasPrefix(class, token+"__") || strings.HasPrefix(class, token+"--") {
			return 1
		}
	}
	return 0
}

// controlsOf returns a copy of the controls declared for selector.
func controlsOf(entries []ports.SelectorControls, selector string) []control.Type {
	for _, entry := range entries {
		if entry.Selector == selector {
			return append([]control.Type(nil), entry.Controls...)
		}
	}
	return nil
}
