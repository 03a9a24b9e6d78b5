// Package clean strips recurring publisher boilerplate from extracted text:
// bare page numbers, copyright lines, access notices and similar running
// headers. Lines are never reordered and non-blank lines are never merged;
// paragraph structure survives the pass.
package clean

import (
	"fmt"
	"regexp"
	"strings"
)

// builtinPatterns match common academic journal artifacts. Each pattern is
// applied case-insensitively to a whitespace-stripped line, anchored at the
// line start.
var builtinPatterns = []string{
	`^\s*\d{1,3}\s*$`, // standalone page numbers
	`^Copyright\s*[©®]?\s*\d{4}`,
	`^\s*Access\s+provided\s+by`,
	`^DOI:\s*10\.`,
	`^http://muse\.jhu\.edu`,
	`^Published by .* Press`,
}

// excessBreaks caps blank-line runs: four or more consecutive line breaks
// collapse to exactly three.
var excessBreaks = regexp.MustCompile(`\n{4,}`)

// Clean filters boilerplate lines out of text. Extra patterns are appended
// to the built-in set and carry equal removal authority: a line is dropped
// when any pattern matches its stripped form at the start. Blank-line runs
// collapse to a single blank between content and at most two blanks overall;
// leading and trailing blanks are removed. Clean is idempotent.
func Clean(text string, extra []string) (string, error) {
	rules, err := compileRules(extra)
	if err != nil {
		return "", err
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)

		// Blank lines: suppress leading runs, collapse interior runs to one.
		if stripped == "" {
			if len(kept) > 0 && kept[len(kept)-1] != "" {
				kept = append(kept, "")
			}
			continue
		}

		if matchesAny(rules, stripped) {
			continue
		}
		kept = append(kept, line)
	}

	// Trim blank edges left over after rule-based removals.
	for len(kept) > 0 && kept[0] == "" {
		kept = kept[1:]
	}
	for len(kept) > 0 && kept[len(kept)-1] == "" {
		kept = kept[:len(kept)-1]
	}

	// The regex pass is the authoritative cap on blank runs; the per-line
	// collapse above only sees blanks that arrive as blank input lines.
	return excessBreaks.ReplaceAllString(strings.Join(kept, "\n"), "\n\n\n"), nil
}

func compileRules(extra []string) ([]*regexp.Regexp, error) {
	patterns := make([]string, 0, len(builtinPatterns)+len(extra))
	patterns = append(patterns, builtinPatterns...)
	patterns = append(patterns, extra...)

	rules := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(anchor(p))
		if err != nil {
			return nil, fmt.Errorf("removal pattern %q: %w", p, err)
		}
		rules = append(rules, re)
	}
	return rules, nil
}

// anchor compiles a pattern fragment so it matches case-insensitively from
// the start of the line only.
func anchor(p string) string {
	if strings.HasPrefix(p, "^") {
		return "(?i)" + p
	}
	return "(?i)^(?:" + p + ")"
}

func matchesAny(rules []*regexp.Regexp, line string) bool {
	for _, re := range rules {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
