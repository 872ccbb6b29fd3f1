package completion

import (
	"regexp"
	"strings"
)

// Candidate extraction strategies, tried in fixed order. Model replies are
// not guaranteed to contain only JSON: they may wrap the payload in prose,
// echo the example object from the prompt before the real answer, or get
// truncated mid-object on token limits. Each strategy targets one of those
// failure modes; the order is load-bearing and must not be reshuffled.
var extractStrategies = []struct {
	name string
	fn   func(content string) (string, bool)
}{
	{"scenarios-fragment", lastScenariosCandidate},
	{"end-anchored", endAnchoredCandidate},
	{"greedy", greedyCandidate},
}

// extractCandidate returns the best brace-delimited JSON candidate in the
// content, along with the name of the strategy that produced it.
func extractCandidate(content string) (candidate, strategy string, ok bool) {
	for _, s := range extractStrategies {
		if c, found := s.fn(content); found {
			return c, s.name, true
		}
	}
	return "", "", false
}

// lastScenariosCandidate scans all non-overlapping brace-balanced regions
// (depth-naive: quoting is ignored) and picks the last one containing the
// literal `"scenarios"`. Late fragments win because the final answer tends
// to follow the model's reasoning preamble and any echoed examples.
func lastScenariosCandidate(content string) (string, bool) {
	regions := braceRegions(content)
	for i := len(regions) - 1; i >= 0; i-- {
		if strings.Contains(regions[i], `"scenarios"`) {
			return regions[i], true
		}
	}
	return "", false
}

var endAnchoredPattern = regexp.MustCompile(`(?s)\{.*\}$`)

// endAnchoredCandidate matches a greedy brace region ending at the very
// last character. Catches a trailing block that never balanced, e.g. output
// whose earlier braces are mismatched but whose tail is the real object.
func endAnchoredCandidate(content string) (string, bool) {
	m := endAnchoredPattern.FindString(content)
	return m, m != ""
}

// greedyCandidate spans from the first '{' to the last '}' in the whole
// text. The coarsest net, only reached when everything else came up empty.
func greedyCandidate(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// braceRegions collects every non-overlapping substring running from a
// top-level '{' to the '}' that returns the depth counter to zero. The
// counter is naive about string literals; stray braces inside quoted text
// will skew a region, which the later strategies then compensate for.
func braceRegions(content string) []string {
	var regions []string
	depth := 0
	start := -1
	for i, ch := range content {
		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				regions = append(regions, content[start:i+1])
				start = -1
			}
		}
	}
	return regions
}
