package process

import "regexp"

// Matches markdown inline links [label](target). Non-greedy, so the first
// ) after the opening ( closes the target.
var inlineLink = regexp.MustCompile(`\[.*?\]\((.*?)\)`)

// ExtractTargets returns the target of every markdown inline link in text,
// in document order. Targets pass through verbatim: no trimming, no
// normalization, and duplicates are kept.
func ExtractTargets(text string) []string {
	matches := inlineLink.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	targets := make([]string, 0, len(matches))
	for _, m := range matches {
		targets = append(targets, m[1])
	}
	return targets
}
